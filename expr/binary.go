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

// Add computes x[i] + y[i].
type Add[T Number, X, Y storage.Reader[T]] struct {
	x X
	y Y
}

// NewAdd returns a node computing the element-wise addition of x and y.
func NewAdd[T Number, X, Y storage.Reader[T]](x X, y Y) Add[T, X, Y] {
	return Add[T, X, Y]{x: x, y: y}
}

// Len returns the number of elements.
func (n Add[T, X, Y]) Len() int { return n.x.Len() }

// At returns x[i] + y[i].
func (n Add[T, X, Y]) At(i int) T { return n.x.At(i) + n.y.At(i) }

// Validate checks that both operands have the same length.
func (n Add[T, X, Y]) Validate() error { return validateBinary("+", n.x, n.y) }

// Sub computes x[i] - y[i].
type Sub[T Number, X, Y storage.Reader[T]] struct {
	x X
	y Y
}

// NewSub returns a node computing the element-wise subtraction of x and y.
func NewSub[T Number, X, Y storage.Reader[T]](x X, y Y) Sub[T, X, Y] {
	return Sub[T, X, Y]{x: x, y: y}
}

// Len returns the number of elements.
func (n Sub[T, X, Y]) Len() int { return n.x.Len() }

// At returns x[i] - y[i].
func (n Sub[T, X, Y]) At(i int) T { return n.x.At(i) - n.y.At(i) }

// Validate checks that both operands have the same length.
func (n Sub[T, X, Y]) Validate() error { return validateBinary("-", n.x, n.y) }

// Mul computes x[i] * y[i].
type Mul[T Number, X, Y storage.Reader[T]] struct {
	x X
	y Y
}

// NewMul returns a node computing the element-wise multiplication of x and y.
func NewMul[T Number, X, Y storage.Reader[T]](x X, y Y) Mul[T, X, Y] {
	return Mul[T, X, Y]{x: x, y: y}
}

// Len returns the number of elements.
func (n Mul[T, X, Y]) Len() int { return n.x.Len() }

// At returns x[i] * y[i].
func (n Mul[T, X, Y]) At(i int) T { return n.x.At(i) * n.y.At(i) }

// Validate checks that both operands have the same length.
func (n Mul[T, X, Y]) Validate() error { return validateBinary("*", n.x, n.y) }

// Quo computes x[i] / y[i].
type Quo[T Number, X, Y storage.Reader[T]] struct {
	x X
	y Y
}

// NewQuo returns a node computing the element-wise division of x and y.
func NewQuo[T Number, X, Y storage.Reader[T]](x X, y Y) Quo[T, X, Y] {
	return Quo[T, X, Y]{x: x, y: y}
}

// Len returns the number of elements.
func (n Quo[T, X, Y]) Len() int { return n.x.Len() }

// At returns x[i] / y[i].
func (n Quo[T, X, Y]) At(i int) T { return n.x.At(i) / n.y.At(i) }

// Validate checks that both operands have the same length.
func (n Quo[T, X, Y]) Validate() error { return validateBinary("/", n.x, n.y) }
