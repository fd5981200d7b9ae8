// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package expr

import "github.com/gx-org/exprvec/storage"

// Scaler is implemented by element types which can be multiplied and divided
// by a float64 but do not support the native arithmetic operators,
// for example points or complex user types.
type Scaler[T any] interface {
	// Scale returns k*x.
	Scale(k float64) T
	// Div returns x/k.
	Div(k float64) T
}

// ScaleL computes k * y[i] for a float64 scalar k.
type ScaleL[T Scaler[T], Y storage.Reader[T]] struct {
	k float64
	y Y
}

// NewScaleL returns a node computing k * y[i].
func NewScaleL[T Scaler[T], Y storage.Reader[T]](k float64, y Y) ScaleL[T, Y] {
	return ScaleL[T, Y]{k: k, y: y}
}

// Len returns the number of elements.
func (n ScaleL[T, Y]) Len() int { return n.y.Len() }

// At returns k * y[i].
func (n ScaleL[T, Y]) At(i int) T { return n.y.At(i).Scale(n.k) }

// Validate the vector operand.
func (n ScaleL[T, Y]) Validate() error { return Validate(n.y) }

// ScaleR computes x[i] * k for a float64 scalar k.
type ScaleR[T Scaler[T], X storage.Reader[T]] struct {
	x X
	k float64
}

// NewScaleR returns a node computing x[i] * k.
func NewScaleR[T Scaler[T], X storage.Reader[T]](x X, k float64) ScaleR[T, X] {
	return ScaleR[T, X]{x: x, k: k}
}

// Len returns the number of elements.
func (n ScaleR[T, X]) Len() int { return n.x.Len() }

// At returns x[i] * k.
func (n ScaleR[T, X]) At(i int) T { return n.x.At(i).Scale(n.k) }

// Validate the vector operand.
func (n ScaleR[T, X]) Validate() error { return Validate(n.x) }

// DivR computes x[i] / k for a float64 scalar k.
type DivR[T Scaler[T], X storage.Reader[T]] struct {
	x X
	k float64
}

// NewDivR returns a node computing x[i] / k.
func NewDivR[T Scaler[T], X storage.Reader[T]](x X, k float64) DivR[T, X] {
	return DivR[T, X]{x: x, k: k}
}

// Len returns the number of elements.
func (n DivR[T, X]) Len() int { return n.x.Len() }

// At returns x[i] / k.
func (n DivR[T, X]) At(i int) T { return n.x.At(i).Div(n.k) }

// Validate the vector operand.
func (n DivR[T, X]) Validate() error { return Validate(n.x) }

// ScaleBy computes w[i] * y[i] where w is a vector of float64.
type ScaleBy[T Scaler[T], W storage.Reader[float64], Y storage.Reader[T]] struct {
	w W
	y Y
}

// NewScaleBy returns a node computing w[i] * y[i].
func NewScaleBy[T Scaler[T], W storage.Reader[float64], Y storage.Reader[T]](w W, y Y) ScaleBy[T, W, Y] {
	return ScaleBy[T, W, Y]{w: w, y: y}
}

// Len returns the number of elements.
func (n ScaleBy[T, W, Y]) Len() int { return n.y.Len() }

// At returns w[i] * y[i].
func (n ScaleBy[T, W, Y]) At(i int) T { return n.y.At(i).Scale(n.w.At(i)) }

// Validate checks that both operands have the same length.
func (n ScaleBy[T, W, Y]) Validate() error { return validateBinary("*", n.w, n.y) }

// DivBy computes x[i] / w[i] where w is a vector of float64.
type DivBy[T Scaler[T], X storage.Reader[T], W storage.Reader[float64]] struct {
	x X
	w W
}

// NewDivBy returns a node computing x[i] / w[i].
func NewDivBy[T Scaler[T], X storage.Reader[T], W storage.Reader[float64]](x X, w W) DivBy[T, X, W] {
	return DivBy[T, X, W]{x: x, w: w}
}

// Len returns the number of elements.
func (n DivBy[T, X, W]) Len() int { return n.x.Len() }

// At returns x[i] / w[i].
func (n DivBy[T, X, W]) At(i int) T { return n.x.At(i).Div(n.w.At(i)) }

// Validate checks that both operands have the same length.
func (n DivBy[T, X, W]) Validate() error { return validateBinary("/", n.x, n.w) }
