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

// Package vec provides vectors whose arithmetic is evaluated lazily.
//
// Operators such as Add or MulL do not compute anything: they return a vector
// backed by an expression node referencing the operands. The expression is
// evaluated element by element, in a single pass and without temporary
// buffers, when it is assigned to a destination:
//
//	c := vec.New[float64]()
//	err := vec.Assign(c, vec.Add(a, vec.Add(vec.MulL(0.5, a), vec.MulL(0.5, b))))
//
// Operands are referenced, not copied: an expression must be assigned before
// any of its operands is modified or resized.
package vec

import (
	"iter"

	"github.com/gx-org/backend/dtype"
	xiter "github.com/gx-org/exprvec/base/iter"
	"github.com/gx-org/exprvec/expr"
	"github.com/gx-org/exprvec/storage"
)

type (
	// Vector is a sequence of elements of type T read from (and, when S is a
	// storage.Storage, written to) a backing S. S is either a storage or an
	// expression node.
	//
	// The zero value of an Owned or a Borrowed vector has no storage. It reads
	// as empty but cannot be written to: use New, Sized or Borrow instead.
	Vector[T any, S storage.Reader[T]] struct {
		s S
	}

	// Owned is a vector owning its memory. It is resized by assignments.
	Owned[T any] = Vector[T, *storage.Owned[T]]

	// Borrowed is a vector writing through to a buffer supplied by the caller.
	Borrowed[T any] = Vector[T, *storage.Borrowed[T]]

	// ReadOnly is a vector reading from a buffer supplied by the caller.
	ReadOnly[T any] = Vector[T, *storage.ReadOnly[T]]

	// View is a strided view over the storage S of another vector.
	View[T any, S storage.Storage[T]] = Vector[T, storage.Strided[T, S]]

	// Number is the set of element types supporting the native arithmetic operators.
	Number = expr.Number
)

// Wrap returns a vector backed by s.
func Wrap[T any, S storage.Reader[T]](s S) Vector[T, S] {
	return Vector[T, S]{s: s}
}

// New returns an empty owned vector. It is sized by its first assignment.
func New[T any]() Owned[T] {
	return Wrap[T](&storage.Owned[T]{})
}

// Sized returns an owned vector of n zero elements.
func Sized[T any](n int) Owned[T] {
	return Wrap[T](storage.NewOwned[T](n))
}

// Filled returns an owned vector of n elements set to x.
func Filled[T any](n int, x T) Owned[T] {
	return Wrap[T](storage.NewOwnedFilled(n, x))
}

// Of returns an owned vector with a copy of the given elements.
func Of[T any](vals ...T) Owned[T] {
	return Wrap[T](storage.NewOwnedFrom(vals))
}

// Borrow returns a vector writing through to buf.
// buf must not be grown or released while the vector is in use.
func Borrow[T any](buf []T) Borrowed[T] {
	return Wrap[T](storage.NewBorrowed(buf))
}

// SetBuffer makes a borrowed vector write through to the first n elements of buf.
// v must have been created by Borrow: SetBuffer panics on the zero value.
func SetBuffer[T any](v Borrowed[T], buf []T, n int) {
	v.s.SetBuffer(buf, n)
}

// BorrowBytes returns a vector writing through to the first n elements of
// type T stored in a raw byte buffer.
func BorrowBytes[T dtype.GoDataType](data []byte, n int) Borrowed[T] {
	return Wrap[T](storage.FromBytes[T](data, n))
}

// BorrowReadOnly returns a vector reading from buf.
// The vector cannot be assigned to.
func BorrowReadOnly[T any](buf []T) ReadOnly[T] {
	return Wrap[T](storage.NewReadOnly(buf))
}

// Len returns the number of elements of the vector.
func (v Vector[T, S]) Len() int {
	return v.s.Len()
}

// At returns the element at index i.
// For an expression, the element is computed from the operands.
func (v Vector[T, S]) At(i int) T {
	return v.s.At(i)
}

// Validate checks that all the operands of the expression backing the vector have matching lengths.
func (v Vector[T, S]) Validate() error {
	return expr.Validate(v.s)
}

// All iterates over the elements of the vector in order.
func (v Vector[T, S]) All() iter.Seq[T] {
	return xiter.Indexed(v.s.Len(), v.s.At)
}

// Enumerate iterates over the (index, element) pairs of the vector.
func (v Vector[T, S]) Enumerate() iter.Seq2[int, T] {
	return xiter.Enumerate(v.s.Len(), v.s.At)
}

// Backward iterates over the elements of the vector from the last to the first.
func (v Vector[T, S]) Backward() iter.Seq[T] {
	return xiter.Backward(v.s.Len(), v.s.At)
}

// ToSlice copies the elements of the vector into a new slice.
func (v Vector[T, S]) ToSlice() []T {
	n := v.s.Len()
	vals := make([]T, n)
	for i := range n {
		vals[i] = v.s.At(i)
	}
	return vals
}

// Data returns the contiguous buffer backing an owned or borrowed vector.
// It returns nil for views and expressions.
func Data[T any, S storage.Reader[T]](v Vector[T, S]) []T {
	c, ok := any(v.s).(storage.Contiguous[T])
	if !ok {
		return nil
	}
	return c.Data()
}
