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
	"github.com/gx-org/exprvec/base/iter"
	"github.com/gx-org/exprvec/storage"
	"github.com/pkg/errors"
)

// Reduce left-folds the elements of v with f, starting from the first element.
// It returns ErrEmptyReduction if v has no elements.
func Reduce[T any, S storage.Reader[T]](v Vector[T, S], f func(T, T) T) (T, error) {
	var acc T
	if err := v.Validate(); err != nil {
		return acc, err
	}
	n := v.s.Len()
	if n == 0 {
		return acc, errors.Wrapf(ErrEmptyReduction, "cannot reduce %T", v.s)
	}
	acc = v.s.At(0)
	for i := 1; i < n; i++ {
		acc = f(acc, v.s.At(i))
	}
	return acc, nil
}

// Sum returns v[0] + v[1] + ... + v[n-1].
// It returns ErrEmptyReduction if v has no elements.
func Sum[T Number, S storage.Reader[T]](v Vector[T, S]) (T, error) {
	return Reduce(v, func(x, y T) T { return x + y })
}

// SumOf returns v[0].Add(v[1]).Add(...) for element types with their own addition.
// It returns ErrEmptyReduction if v has no elements.
func SumOf[T Adder[T], S storage.Reader[T]](v Vector[T, S]) (T, error) {
	return Reduce(v, func(x, y T) T { return x.Add(y) })
}

// Count returns the number of elements of v equal to x.
func Count[T comparable, S storage.Reader[T]](v Vector[T, S], x T) int {
	count := 0
	for range iter.Filter(func(el T) bool { return el == x }, v.All()) {
		count++
	}
	return count
}
