// Copyright 2024 Google LLC
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

// Package iter provides iterators over indexed sequences.
package iter

import "iter"

// Indexed iterates over at(0), ..., at(n-1).
func Indexed[T any](n int, at func(int) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range n {
			if !yield(at(i)) {
				return
			}
		}
	}
}

// Enumerate iterates over the (i, at(i)) pairs for i in [0, n).
func Enumerate[T any](n int, at func(int) T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range n {
			if !yield(i, at(i)) {
				return
			}
		}
	}
}

// Backward iterates over at(n-1), ..., at(0).
func Backward[T any](n int, at func(int) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := n - 1; i >= 0; i-- {
			if !yield(at(i)) {
				return
			}
		}
	}
}

// Filter iterates over the elements of a sequence
// and excludes elements for which the filter returns false.
func Filter[T any](f func(T) bool, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for el := range seq {
			if !f(el) {
				continue
			}
			if !yield(el) {
				return
			}
		}
	}
}
