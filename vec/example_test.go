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

package vec_test

import (
	"fmt"

	"github.com/gx-org/exprvec/slice"
	"github.com/gx-org/exprvec/vec"
)

func Example() {
	a := vec.Of(1.0, 2, 3)
	b := vec.Of(10.0, 20, 30)
	c := vec.New[float64]()
	if err := vec.Assign(c, vec.Add(a, vec.Add(vec.MulL(0.5, a), vec.MulL(0.5, b)))); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c)
	// Output: [6.5, 13, 19.5]
}

func ExampleSlice() {
	v := vec.Iota(0, 6)
	rev, err := vec.Slice(v, slice.Omit, slice.Omit, -1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(rev)
	odd, err := vec.Slice(v, 1, slice.Omit, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	vec.Fill(odd, 0)
	fmt.Println(v)
	// Output:
	// [5, 4, 3, 2, 1, 0]
	// [0, 0, 2, 0, 4, 0]
}
