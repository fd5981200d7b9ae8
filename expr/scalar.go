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

// AddL computes k + y[i] for a scalar k.
type AddL[T Number, Y storage.Reader[T]] struct {
	k T
	y Y
}

// NewAddL returns a node computing k + y[i].
func NewAddL[T Number, Y storage.Reader[T]](k T, y Y) AddL[T, Y] {
	return AddL[T, Y]{k: k, y: y}
}

// Len returns the number of elements.
func (n AddL[T, Y]) Len() int { return n.y.Len() }

// At returns k + y[i].
func (n AddL[T, Y]) At(i int) T { return n.k + n.y.At(i) }

// Validate the vector operand.
func (n AddL[T, Y]) Validate() error { return Validate(n.y) }

// AddR computes x[i] + k for a scalar k.
type AddR[T Number, X storage.Reader[T]] struct {
	x X
	k T
}

// NewAddR returns a node computing x[i] + k.
func NewAddR[T Number, X storage.Reader[T]](x X, k T) AddR[T, X] {
	return AddR[T, X]{x: x, k: k}
}

// Len returns the number of elements.
func (n AddR[T, X]) Len() int { return n.x.Len() }

// At returns x[i] + k.
func (n AddR[T, X]) At(i int) T { return n.x.At(i) + n.k }

// Validate the vector operand.
func (n AddR[T, X]) Validate() error { return Validate(n.x) }

// SubL computes k - y[i] for a scalar k.
type SubL[T Number, Y storage.Reader[T]] struct {
	k T
	y Y
}

// NewSubL returns a node computing k - y[i].
func NewSubL[T Number, Y storage.Reader[T]](k T, y Y) SubL[T, Y] {
	return SubL[T, Y]{k: k, y: y}
}

// Len returns the number of elements.
func (n SubL[T, Y]) Len() int { return n.y.Len() }

// At returns k - y[i].
func (n SubL[T, Y]) At(i int) T { return n.k - n.y.At(i) }

// Validate the vector operand.
func (n SubL[T, Y]) Validate() error { return Validate(n.y) }

// SubR computes x[i] - k for a scalar k.
type SubR[T Number, X storage.Reader[T]] struct {
	x X
	k T
}

// NewSubR returns a node computing x[i] - k.
func NewSubR[T Number, X storage.Reader[T]](x X, k T) SubR[T, X] {
	return SubR[T, X]{x: x, k: k}
}

// Len returns the number of elements.
func (n SubR[T, X]) Len() int { return n.x.Len() }

// At returns x[i] - k.
func (n SubR[T, X]) At(i int) T { return n.x.At(i) - n.k }

// Validate the vector operand.
func (n SubR[T, X]) Validate() error { return Validate(n.x) }

// MulL computes k * y[i] for a scalar k.
type MulL[T Number, Y storage.Reader[T]] struct {
	k T
	y Y
}

// NewMulL returns a node computing k * y[i].
func NewMulL[T Number, Y storage.Reader[T]](k T, y Y) MulL[T, Y] {
	return MulL[T, Y]{k: k, y: y}
}

// Len returns the number of elements.
func (n MulL[T, Y]) Len() int { return n.y.Len() }

// At returns k * y[i].
func (n MulL[T, Y]) At(i int) T { return n.k * n.y.At(i) }

// Validate the vector operand.
func (n MulL[T, Y]) Validate() error { return Validate(n.y) }

// MulR computes x[i] * k for a scalar k.
type MulR[T Number, X storage.Reader[T]] struct {
	x X
	k T
}

// NewMulR returns a node computing x[i] * k.
func NewMulR[T Number, X storage.Reader[T]](x X, k T) MulR[T, X] {
	return MulR[T, X]{x: x, k: k}
}

// Len returns the number of elements.
func (n MulR[T, X]) Len() int { return n.x.Len() }

// At returns x[i] * k.
func (n MulR[T, X]) At(i int) T { return n.x.At(i) * n.k }

// Validate the vector operand.
func (n MulR[T, X]) Validate() error { return Validate(n.x) }

// QuoL computes k / y[i] for a scalar k.
type QuoL[T Number, Y storage.Reader[T]] struct {
	k T
	y Y
}

// NewQuoL returns a node computing k / y[i].
func NewQuoL[T Number, Y storage.Reader[T]](k T, y Y) QuoL[T, Y] {
	return QuoL[T, Y]{k: k, y: y}
}

// Len returns the number of elements.
func (n QuoL[T, Y]) Len() int { return n.y.Len() }

// At returns k / y[i].
func (n QuoL[T, Y]) At(i int) T { return n.k / n.y.At(i) }

// Validate the vector operand.
func (n QuoL[T, Y]) Validate() error { return Validate(n.y) }

// QuoR computes x[i] / k for a scalar k.
type QuoR[T Number, X storage.Reader[T]] struct {
	x X
	k T
}

// NewQuoR returns a node computing x[i] / k.
func NewQuoR[T Number, X storage.Reader[T]](x X, k T) QuoR[T, X] {
	return QuoR[T, X]{x: x, k: k}
}

// Len returns the number of elements.
func (n QuoR[T, X]) Len() int { return n.x.Len() }

// At returns x[i] / k.
func (n QuoR[T, X]) At(i int) T { return n.x.At(i) / n.k }

// Validate the vector operand.
func (n QuoR[T, X]) Validate() error { return Validate(n.x) }
