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

// Package storage implements the backings a vector can read from and write to.
//
// Three kinds are provided: Owned, a contiguous buffer owned by the vector;
// Borrowed (and its read-only counterpart ReadOnly), a contiguous buffer
// supplied by the caller; and Strided, a view over another storage.
package storage

import "github.com/pkg/errors"

type (
	// Reader is anything with an indexed read and a length.
	// Storages and expression nodes are all readers.
	Reader[T any] interface {
		// Len returns the number of elements.
		Len() int
		// At returns the element at index i.
		At(i int) T
	}

	// Storage is a reader that can also be written to.
	Storage[T any] interface {
		Reader[T]
		// Set the element at index i.
		Set(i int, v T)
	}

	// Resizer is implemented by storages which may change their length.
	Resizer interface {
		// Resize the storage to n elements.
		// Returns ErrResizeUnsupported if the storage cannot be resized.
		Resize(n int) error
	}

	// Contiguous is implemented by storages backed by a Go slice.
	Contiguous[T any] interface {
		Data() []T
	}
)

var (
	// ErrResizeUnsupported is returned when resizing a storage which does not own its memory.
	ErrResizeUnsupported = errors.New("storage cannot be resized")

	// ErrBadStride is returned when a strided view is created with a zero step.
	ErrBadStride = errors.New("stride cannot be zero")

	// ErrNilStorage is returned when writing to a nil storage.
	ErrNilStorage = errors.New("nil storage")
)

// IsNil reports whether s is a nil pointer to one of the storages of this package.
func IsNil[T any](s Reader[T]) bool {
	switch s := s.(type) {
	case *Owned[T]:
		return s == nil
	case *Borrowed[T]:
		return s == nil
	case *ReadOnly[T]:
		return s == nil
	}
	return false
}

// TryResize resizes a storage to n elements if the storage supports it.
func TryResize[T any](s Reader[T], n int) error {
	r, ok := s.(Resizer)
	if !ok {
		return errors.Wrapf(ErrResizeUnsupported, "cannot resize %T from %d to %d", s, s.Len(), n)
	}
	return r.Resize(n)
}
