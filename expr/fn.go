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

// Fn1 applies a function to every element of x.
// The result element type R may differ from the operand element type T.
type Fn1[T, R any, X storage.Reader[T]] struct {
	x X
	f func(T) R
}

// NewFn1 returns a node computing f(x[i]).
func NewFn1[T, R any, X storage.Reader[T]](x X, f func(T) R) Fn1[T, R, X] {
	return Fn1[T, R, X]{x: x, f: f}
}

// Len returns the number of elements.
func (n Fn1[T, R, X]) Len() int { return n.x.Len() }

// At returns f(x[i]).
func (n Fn1[T, R, X]) At(i int) R { return n.f(n.x.At(i)) }

// Validate the operand.
func (n Fn1[T, R, X]) Validate() error { return Validate(n.x) }

// Fn2 applies a function to every pair of elements of x and y.
type Fn2[T, U, R any, X storage.Reader[T], Y storage.Reader[U]] struct {
	x X
	y Y
	f func(T, U) R
}

// NewFn2 returns a node computing f(x[i], y[i]).
func NewFn2[T, U, R any, X storage.Reader[T], Y storage.Reader[U]](x X, y Y, f func(T, U) R) Fn2[T, U, R, X, Y] {
	return Fn2[T, U, R, X, Y]{x: x, y: y, f: f}
}

// Len returns the number of elements.
func (n Fn2[T, U, R, X, Y]) Len() int { return n.x.Len() }

// At returns f(x[i], y[i]).
func (n Fn2[T, U, R, X, Y]) At(i int) R { return n.f(n.x.At(i), n.y.At(i)) }

// Validate checks that both operands have the same length.
func (n Fn2[T, U, R, X, Y]) Validate() error { return validateBinary("fn", n.x, n.y) }

// Kernelize turns a float64 Go math function into a function over T.
func Kernelize[T Number](f func(float64) float64) func(T) T {
	return func(x T) T {
		return T(f(float64(x)))
	}
}

// Kernelize2 turns a binary float64 Go math function into a function over T.
func Kernelize2[T Number](f func(float64, float64) float64) func(T, T) T {
	return func(x, y T) T {
		return T(f(float64(x), float64(y)))
	}
}
