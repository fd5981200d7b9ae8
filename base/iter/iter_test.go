// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package iter_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/exprvec/base/iter"
)

var letters = []string{"a", "b", "c", "d"}

func at(i int) string {
	return letters[i]
}

func TestIndexed(t *testing.T) {
	var got []string
	for el := range iter.Indexed(len(letters), at) {
		got = append(got, el)
	}
	if !cmp.Equal(got, letters) {
		t.Errorf("got %v but want %v", got, letters)
	}
}

func TestIndexedBreak(t *testing.T) {
	var got []string
	for el := range iter.Indexed(len(letters), at) {
		if el == "c" {
			break
		}
		got = append(got, el)
	}
	want := []string{"a", "b"}
	if !cmp.Equal(got, want) {
		t.Errorf("got %v but want %v", got, want)
	}
}

func TestEnumerate(t *testing.T) {
	var got []int
	for i, el := range iter.Enumerate(len(letters), at) {
		if letters[i] != el {
			t.Errorf("element %d: got %q but want %q", i, el, letters[i])
		}
		got = append(got, i)
	}
	want := []int{0, 1, 2, 3}
	if !cmp.Equal(got, want) {
		t.Errorf("got %v but want %v", got, want)
	}
}

func TestBackward(t *testing.T) {
	var got []string
	for el := range iter.Backward(len(letters), at) {
		got = append(got, el)
	}
	want := []string{"d", "c", "b", "a"}
	if !cmp.Equal(got, want) {
		t.Errorf("got %v but want %v", got, want)
	}
}

func isEven(n int) bool {
	return n%2 == 0
}

func TestFilter(t *testing.T) {
	vals := []int{0, 1, 2, 3, 4, 5}
	var got []int
	for el := range iter.Filter(isEven, iter.Indexed(len(vals), func(i int) int { return vals[i] })) {
		got = append(got, el)
	}
	want := []int{0, 2, 4}
	if !cmp.Equal(got, want) {
		t.Errorf("got %v but want %v", got, want)
	}
}
