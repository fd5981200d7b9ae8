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

import "github.com/pkg/errors"

// Strided is a view over a parent storage.
// Element i of the view is element start+i*step of the parent.
// The view does not own any memory and does not check the indices
// it computes: the parent must outlive the view.
type Strided[T any, S Storage[T]] struct {
	parent S
	start  int
	step   int
	n      int
}

var _ Storage[int] = Strided[int, *Owned[int]]{}

// StridedLen returns the number of elements of a view going from start
// (included) to end (excluded) by step.
func StridedLen(start, end, step int) int {
	return (abs(end-start) + abs(step) - 1) / abs(step)
}

// NewStrided returns a view over parent going from start (included) to end (excluded) by step.
// Indices must already be normalized: no wrap-around is applied.
func NewStrided[T any, S Storage[T]](parent S, start, end, step int) (Strided[T, S], error) {
	if step == 0 {
		return Strided[T, S]{}, errors.Wrapf(ErrBadStride, "view [%d:%d:%d]", start, end, step)
	}
	return NewStridedLen[T](parent, start, step, StridedLen(start, end, step))
}

// NewStridedLen returns a view of n elements over parent starting at start.
func NewStridedLen[T any, S Storage[T]](parent S, start, step, n int) (Strided[T, S], error) {
	if step == 0 {
		return Strided[T, S]{}, errors.Wrapf(ErrBadStride, "view of %d elements from %d", n, start)
	}
	return Strided[T, S]{
		parent: parent,
		start:  start,
		step:   step,
		n:      n,
	}, nil
}

// Len returns the number of elements in the view.
func (s Strided[T, S]) Len() int {
	return s.n
}

// At returns the element at index i of the view.
func (s Strided[T, S]) At(i int) T {
	return s.parent.At(s.start + i*s.step)
}

// Set the element at index i of the view, that is in the parent storage.
func (s Strided[T, S]) Set(i int, v T) {
	s.parent.Set(s.start+i*s.step, v)
}

// Resize always fails: the length of a view is fixed at construction.
func (s Strided[T, S]) Resize(n int) error {
	return errors.Wrapf(ErrResizeUnsupported, "view of length %d cannot be resized to %d", s.n, n)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
