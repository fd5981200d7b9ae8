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

// Adder is implemented by element types with their own addition and
// subtraction, for example points.
type Adder[T any] interface {
	// Add returns x+y.
	Add(y T) T
	// Sub returns x-y.
	Sub(y T) T
}

// AddBy computes x[i].Add(y[i]).
type AddBy[T Adder[T], X, Y storage.Reader[T]] struct {
	x X
	y Y
}

// NewAddBy returns a node computing x[i].Add(y[i]).
func NewAddBy[T Adder[T], X, Y storage.Reader[T]](x X, y Y) AddBy[T, X, Y] {
	return AddBy[T, X, Y]{x: x, y: y}
}

// Len returns the number of elements.
func (n AddBy[T, X, Y]) Len() int { return n.x.Len() }

// At returns x[i].Add(y[i]).
func (n AddBy[T, X, Y]) At(i int) T { return n.x.At(i).Add(n.y.At(i)) }

// Validate checks that both operands have the same length.
func (n AddBy[T, X, Y]) Validate() error { return validateBinary("+", n.x, n.y) }

// SubBy computes x[i].Sub(y[i]).
type SubBy[T Adder[T], X, Y storage.Reader[T]] struct {
	x X
	y Y
}

// NewSubBy returns a node computing x[i].Sub(y[i]).
func NewSubBy[T Adder[T], X, Y storage.Reader[T]](x X, y Y) SubBy[T, X, Y] {
	return SubBy[T, X, Y]{x: x, y: y}
}

// Len returns the number of elements.
func (n SubBy[T, X, Y]) Len() int { return n.x.Len() }

// At returns x[i].Sub(y[i]).
func (n SubBy[T, X, Y]) At(i int) T { return n.x.At(i).Sub(n.y.At(i)) }

// Validate checks that both operands have the same length.
func (n SubBy[T, X, Y]) Validate() error { return validateBinary("-", n.x, n.y) }
