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

	"github.com/gx-org/backend/dtype"
	"github.com/pkg/errors"
)

// Borrowed is a contiguous buffer supplied by the caller.
// Writes go through to the caller's memory. The storage never reallocates:
// the caller must keep the buffer alive and must not grow it while the storage is in use.
type Borrowed[T any] struct {
	buf []T
}

var (
	_ Storage[int]    = (*Borrowed[int])(nil)
	_ Resizer         = (*Borrowed[int])(nil)
	_ Contiguous[int] = (*Borrowed[int])(nil)
)

// NewBorrowed returns a storage writing through to buf.
func NewBorrowed[T any](buf []T) *Borrowed[T] {
	return &Borrowed[T]{buf: buf[:len(buf):len(buf)]}
}

// FromBytes adopts a raw byte buffer as a storage of n elements of type T.
// The byte buffer must be at least n*sizeof(T) bytes long.
func FromBytes[T dtype.GoDataType](data []byte, n int) *Borrowed[T] {
	vals := dtype.ToSlice[T](data)
	if n > len(vals) {
		panic(fmt.Sprintf("cannot borrow %d elements from a buffer of %d bytes (%d elements)", n, len(data), len(vals)))
	}
	return NewBorrowed(vals[:n])
}

// SetBuffer replaces the memory the storage writes through to with the first n elements of buf.
func (s *Borrowed[T]) SetBuffer(buf []T, n int) {
	if s == nil {
		panic("cannot set the buffer of a nil storage: create the vector with Borrow")
	}
	if n < 0 || n > len(buf) {
		panic(fmt.Sprintf("cannot borrow %d elements from a buffer of length %d", n, len(buf)))
	}
	s.buf = buf[:n:n]
}

// Len returns the number of elements.
func (s *Borrowed[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.buf)
}

// At returns the element at index i.
func (s *Borrowed[T]) At(i int) T {
	return s.buf[i]
}

// Set the element at index i in the caller's buffer.
func (s *Borrowed[T]) Set(i int, v T) {
	s.buf[i] = v
}

// Data returns the borrowed buffer.
func (s *Borrowed[T]) Data() []T {
	if s == nil {
		return nil
	}
	return s.buf
}

// Resize always fails: a borrowed buffer is never reallocated.
func (s *Borrowed[T]) Resize(n int) error {
	return errors.Wrapf(ErrResizeUnsupported, "borrowed buffer of length %d cannot be resized to %d", s.Len(), n)
}

// ReadOnly is a contiguous buffer supplied by the caller which can only be read.
type ReadOnly[T any] struct {
	buf []T
}

var _ Reader[int] = (*ReadOnly[int])(nil)

// NewReadOnly returns a read-only storage over buf.
func NewReadOnly[T any](buf []T) *ReadOnly[T] {
	return &ReadOnly[T]{buf: buf[:len(buf):len(buf)]}
}

// Len returns the number of elements.
func (s *ReadOnly[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.buf)
}

// At returns the element at index i.
func (s *ReadOnly[T]) At(i int) T {
	return s.buf[i]
}
