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
	"github.com/gx-org/exprvec/slice"
	"github.com/gx-org/exprvec/storage"
)

// Slice returns a view of v going from start to end (excluded) by step.
// Each of start, end and step is either an int or slice.Omit; see package
// slice for the defaults and the handling of negative indices.
//
// The view reads from and writes to v. It can be assigned to but never
// resized: its length is fixed here. ErrBadStride is returned if step is 0.
func Slice[T any, S storage.Storage[T], B1, B2, B3 slice.Bound](v Vector[T, S], start B1, end B2, step B3) (View[T, S], error) {
	p, err := slice.Resolve(v.s.Len(), start, end, step)
	if err != nil {
		return View[T, S]{}, err
	}
	return viewOf(v, p)
}

// Range returns a view of v going from start to end (excluded) with a step of 1.
func Range[T any, S storage.Storage[T], B1, B2 slice.Bound](v Vector[T, S], start B1, end B2) (View[T, S], error) {
	p, err := slice.Range(v.s.Len(), start, end)
	if err != nil {
		return View[T, S]{}, err
	}
	return viewOf(v, p)
}

func viewOf[T any, S storage.Storage[T]](v Vector[T, S], p slice.Params) (View[T, S], error) {
	st, err := storage.NewStridedLen[T](v.s, p.Start, p.Step, p.Len)
	if err != nil {
		return View[T, S]{}, err
	}
	return Wrap[T](st), nil
}
