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

package storage

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

// Owned is a contiguous buffer owned by a vector.
// Its zero value is an empty storage ready to use.
type Owned[T any] struct {
	values []T
}

var (
	_ Storage[int]    = (*Owned[int])(nil)
	_ Resizer         = (*Owned[int])(nil)
	_ Contiguous[int] = (*Owned[int])(nil)
)

// NewOwned returns a storage of n zero elements.
func NewOwned[T any](n int) *Owned[T] {
	if n < 0 {
		panic(fmt.Sprintf("cannot allocate a storage of negative length %d", n))
	}
	return &Owned[T]{values: make([]T, n)}
}

// NewOwnedFilled returns a storage of n elements all set to x.
func NewOwnedFilled[T any](n int, x T) *Owned[T] {
	s := NewOwned[T](n)
	for i := range s.values {
		s.values[i] = x
	}
	return s
}

// NewOwnedFrom returns a storage with a copy of the given values.
func NewOwnedFrom[T any](vals []T) *Owned[T] {
	return &Owned[T]{values: slices.Clone(vals)}
}

// Len returns the number of elements.
// A nil storage has no elements.
func (s *Owned[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// At returns the element at index i.
func (s *Owned[T]) At(i int) T {
	return s.values[i]
}

// Set the element at index i.
func (s *Owned[T]) Set(i int, v T) {
	s.values[i] = v
}

// Data returns the underlying buffer.
// The buffer is invalidated by the next call to Resize.
func (s *Owned[T]) Data() []T {
	if s == nil {
		return nil
	}
	return s.values
}

// Resize the storage to n elements.
// Elements up to min(Len(), n) are preserved.
func (s *Owned[T]) Resize(n int) error {
	if s == nil {
		return errors.Wrapf(ErrNilStorage, "cannot resize to %d elements", n)
	}
	if n < 0 {
		return errors.Errorf("cannot resize a storage to negative length %d", n)
	}
	old := len(s.values)
	if n > cap(s.values) {
		s.values = slices.Grow(s.values, n-old)
	}
	s.values = s.values[:n]
	if n > old {
		clear(s.values[old:])
	}
	return nil
}
