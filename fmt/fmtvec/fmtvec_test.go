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

package fmtvec_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/exprvec/fmt/fmtvec"
)

func TestSprint(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{got: fmtvec.Sprint(slices.Values([]int32{})), want: "[]"},
		{got: fmtvec.Sprint(slices.Values([]int32{42})), want: "[42]"},
		{got: fmtvec.Sprint(slices.Values([]int32{1, 2, 3})), want: "[1, 2, 3]"},
		{got: fmtvec.Sprint(slices.Values([]float64{0, 0.25, 0.5, 1})), want: "[0, 0.25, 0.5, 1]"},
		{got: fmtvec.Sprint(slices.Values([]float32{1.5, -2})), want: "[1.5, -2]"},
		{got: fmtvec.Sprint(slices.Values([]float64{1e-12, 3.5})), want: "[1e-12, 3.5]"},
		{got: fmtvec.Sprint(slices.Values([]float32{0.1, 1e-9})), want: "[0.1, 1e-09]"},
		{got: fmtvec.Sprint(slices.Values([]string{"string 0", "string 2"})), want: `["string 0", "string 2"]`},
		{got: fmtvec.Sprint(slices.Values([]bool{true, false})), want: "[true, false]"},
	}
	for i, test := range tests {
		if test.got != test.want {
			t.Errorf("test %d: got %s but want %s", i, test.got, test.want)
		}
	}
}

type point struct{ x, y int }

func (p point) String() string {
	return fmt.Sprintf("(%d,%d)", p.x, p.y)
}

func TestSprintStringer(t *testing.T) {
	got := fmtvec.Sprint(slices.Values([]point{{1, 2}, {3, 4}}))
	want := "[(1,2), (3,4)]"
	if got != want {
		t.Errorf("got %s but want %s", got, want)
	}
}

func TestTyped(t *testing.T) {
	got := fmtvec.Typed(3, slices.Values([]float32{1, 2.5, 3}))
	want := fmt.Sprintf("[3]%s{1, 2.5, 3}", dtype.Float32.String())
	if got != want {
		t.Errorf("got %s but want %s", got, want)
	}
}
