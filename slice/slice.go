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

// Package slice resolves Python-style slice arguments into strided views.
//
// A slice is given by a start, an end and a step. Each component is either an
// int or Omit, in which case a default is chosen from the sign of the step and
// the length of the sliced vector:
//
//	step:  1
//	start: 0 if step > 0, length-1 otherwise
//	end:   length if step > 0, -1 otherwise (before index 0, never wrapped)
//
// Negative start or end given explicitly count from the end of the vector,
// whatever the sign of the step: with a length of 10, [5:-1:-1] ends at index 9
// and selects the elements 5, 4, 3 and 2.
//
// The number of elements is (|end-start| + |step| - 1) / |step|. It does not
// depend on whether the step points from start towards end: [2:8:-1] selects
// 6 elements, walking down from index 2 (2, 1, 0, -1, ...). Such a slice
// reads out of range of its parent and is the caller's responsibility.
package slice

import (
	"fmt"

	"github.com/gx-org/exprvec/storage"
	"github.com/pkg/errors"
)

type (
	// Default marks a slice component for which the default value is used.
	Default struct{}

	// Bound is the type of a slice component: either an int or Default.
	Bound interface {
		int | Default
	}
)

// Omit is the slice component meaning "use the default".
var Omit = Default{}

// Params are the resolved parameters of a slice.
type Params struct {
	// Start is the index of the first element (included).
	Start int
	// End is the index where the slice stops (excluded).
	// -1 means before index 0 when Step is negative.
	End int
	// Step is the distance between two consecutive elements. Never zero.
	Step int
	// Len is the number of elements in the slice.
	Len int
}

func (p Params) String() string {
	return fmt.Sprintf("[%d:%d:%d]", p.Start, p.End, p.Step)
}

func value[B Bound](b B) (int, bool) {
	v, ok := any(b).(int)
	return v, ok
}

// wrap adds size to a negative index until it is non-negative.
func wrap(i, size int) int {
	if size <= 0 {
		return max(i, 0)
	}
	for i < 0 {
		i += size
	}
	return i
}

// Resolve computes the parameters of a slice of a vector of the given length.
func Resolve[B1, B2, B3 Bound](size int, start B1, end B2, step B3) (Params, error) {
	var p Params
	p.Step = 1
	if st, ok := value(step); ok {
		if st == 0 {
			return p, errors.Wrapf(storage.ErrBadStride, "cannot slice a vector of length %d", size)
		}
		p.Step = st
	}
	if s, ok := value(start); ok {
		p.Start = wrap(s, size)
	} else if p.Step < 0 {
		p.Start = size - 1
	}
	if e, ok := value(end); ok {
		p.End = wrap(e, size)
	} else if p.Step > 0 {
		p.End = size
	} else {
		p.End = -1
	}
	if size > 0 {
		p.Len = storage.StridedLen(p.Start, p.End, p.Step)
	}
	return p, nil
}

// Range computes the parameters of a slice with a step of 1.
func Range[B1, B2 Bound](size int, start B1, end B2) (Params, error) {
	return Resolve(size, start, end, Omit)
}
