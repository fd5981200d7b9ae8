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

package vec

import (
	"math"

	"github.com/gx-org/exprvec/storage"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Zeros returns an owned vector of n zeros.
func Zeros[T Number](n int) Owned[T] {
	return Sized[T](n)
}

// Linspace returns n evenly spaced numbers from a to b, both included.
func Linspace[T constraints.Float](a, b T, n int) Owned[T] {
	v := Sized[T](max(n, 0))
	if n <= 0 {
		return v
	}
	if n == 1 {
		v.s.Set(0, a)
		return v
	}
	step := (b - a) / T(n-1)
	for i := range n - 1 {
		v.s.Set(i, a+T(i)*step)
	}
	v.s.Set(n-1, b)
	return v
}

// ArangeLen returns the number of elements of Arange(a, b, step),
// that is ceil((b-a)/step) or 0 if that number is negative.
func ArangeLen[T Number](a, b, step T) int {
	n := math.Ceil((float64(b) - float64(a)) / float64(step))
	if n <= 0 || math.IsNaN(n) {
		return 0
	}
	return int(n)
}

// Arange returns the numbers a, a+step, a+2*step, ... strictly before b.
// ErrBadStride is returned if step is 0.
func Arange[T Number](a, b, step T) (Owned[T], error) {
	if step == 0 {
		return Owned[T]{}, errors.Wrapf(storage.ErrBadStride, "cannot arange from %v to %v", a, b)
	}
	n := ArangeLen(a, b, step)
	v := Sized[T](n)
	for i := range n {
		v.s.Set(i, a+T(i)*step)
	}
	return v, nil
}

// Iota returns the numbers a, a+1, ... strictly before b.
func Iota[T Number](a, b T) Owned[T] {
	v, _ := Arange(a, b, 1)
	return v
}
