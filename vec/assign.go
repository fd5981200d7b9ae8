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
	"github.com/gx-org/exprvec/expr"
	"github.com/gx-org/exprvec/storage"
	"github.com/pkg/errors"
)

var (
	// ErrSizeMismatch is returned when operands or a source and a destination differ in length.
	ErrSizeMismatch = expr.ErrSizeMismatch

	// ErrResizeUnsupported is returned when a borrowed vector or a view needs to be resized.
	ErrResizeUnsupported = storage.ErrResizeUnsupported

	// ErrBadStride is returned when a slice or a range has a zero step.
	ErrBadStride = storage.ErrBadStride

	// ErrNilStorage is returned when assigning to the zero value of a vector.
	ErrNilStorage = storage.ErrNilStorage

	// ErrEmptyReduction is returned when reducing a vector without elements.
	ErrEmptyReduction = errors.New("reduction of an empty vector")
)

// Set the element at index i of v.
func Set[T any, S storage.Storage[T]](v Vector[T, S], i int, x T) {
	v.s.Set(i, x)
}

// Fill sets all the elements of v to x. The length of v is unchanged.
func Fill[T any, S storage.Storage[T]](v Vector[T, S], x T) {
	n := v.s.Len()
	for i := range n {
		v.s.Set(i, x)
	}
}

// Assign evaluates src into dst in a single pass over the indices.
//
// An owned destination is resized to the length of src. Any other destination
// must already have the length of src, otherwise ErrSizeMismatch is returned
// and dst is left unmodified. ErrSizeMismatch is also returned, before any
// write, if two operands of the expression differ in length.
//
// Elements are written in increasing index order. The expression is not
// protected against aliasing: if src reads from dst, it reads the elements
// already written by the assignment.
func Assign[T any, D storage.Storage[T], S storage.Reader[T]](dst Vector[T, D], src Vector[T, S]) error {
	if storage.IsNil[T](dst.s) {
		return errors.Wrapf(ErrNilStorage, "cannot assign to a %T without storage: create it with New, Sized or Borrow", dst)
	}
	if err := expr.Validate(src.s); err != nil {
		return err
	}
	n := src.s.Len()
	if dst.s.Len() != n {
		if err := storage.TryResize[T](dst.s, n); err != nil {
			return errors.Wrapf(ErrSizeMismatch, "cannot assign %d elements to a destination of %d elements (%v)", n, dst.s.Len(), err)
		}
	}
	assign(dst.s, src.s, n)
	return nil
}

func assign[T any, D storage.Storage[T], S storage.Reader[T]](dst D, src S, n int) {
	for i := range n {
		dst.Set(i, src.At(i))
	}
}

// Clone evaluates v into a new owned vector.
func Clone[T any, S storage.Reader[T]](v Vector[T, S]) (Owned[T], error) {
	dst := New[T]()
	if err := Assign(dst, v); err != nil {
		return Owned[T]{}, err
	}
	return dst, nil
}
