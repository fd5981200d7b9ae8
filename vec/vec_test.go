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
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/gx-org/exprvec/slice"
	"github.com/gx-org/exprvec/vec"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestArithmetic(t *testing.T) {
	a := vec.Of(1.0, 2, 3, 4)
	b := vec.Of(0.5, 4, -1, 8)
	tests := []struct {
		name string
		got  func() (vec.Owned[float64], error)
		want []float64
	}{
		{"a+b", func() (vec.Owned[float64], error) { return vec.Clone(vec.Add(a, b)) }, []float64{1.5, 6, 2, 12}},
		{"a-b", func() (vec.Owned[float64], error) { return vec.Clone(vec.Sub(a, b)) }, []float64{0.5, -2, 4, -4}},
		{"a*b", func() (vec.Owned[float64], error) { return vec.Clone(vec.Mul(a, b)) }, []float64{0.5, 8, -3, 32}},
		{"a/b", func() (vec.Owned[float64], error) { return vec.Clone(vec.Quo(a, b)) }, []float64{2, 0.5, -3, 0.5}},
		{"-a", func() (vec.Owned[float64], error) { return vec.Clone(vec.Neg(a)) }, []float64{-1, -2, -3, -4}},
		{"2+a", func() (vec.Owned[float64], error) { return vec.Clone(vec.AddL(2, a)) }, []float64{3, 4, 5, 6}},
		{"2-a", func() (vec.Owned[float64], error) { return vec.Clone(vec.SubL(2, a)) }, []float64{1, 0, -1, -2}},
		{"2*a", func() (vec.Owned[float64], error) { return vec.Clone(vec.MulL(2, a)) }, []float64{2, 4, 6, 8}},
		{"2/a", func() (vec.Owned[float64], error) { return vec.Clone(vec.QuoL(2, a)) }, []float64{2, 1, 2.0 / 3, 0.5}},
		{"a+2", func() (vec.Owned[float64], error) { return vec.Clone(vec.AddR(a, 2)) }, []float64{3, 4, 5, 6}},
		{"a-2", func() (vec.Owned[float64], error) { return vec.Clone(vec.SubR(a, 2)) }, []float64{-1, 0, 1, 2}},
		{"a*2", func() (vec.Owned[float64], error) { return vec.Clone(vec.MulR(a, 2)) }, []float64{2, 4, 6, 8}},
		{"a/2", func() (vec.Owned[float64], error) { return vec.Clone(vec.QuoR(a, 2)) }, []float64{0.5, 1, 1.5, 2}},
		{"(a+b)*(a-b)/2", func() (vec.Owned[float64], error) {
			return vec.Clone(vec.QuoR(vec.Mul(vec.Add(a, b), vec.Sub(a, b)), 2))
		}, []float64{0.375, -6, 4, -24}},
	}
	for _, test := range tests {
		got, err := test.got()
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if diff := cmp.Diff(got.ToSlice(), test.want, approx); diff != "" {
			t.Errorf("%s: unexpected result (-got +want):\n%s", test.name, diff)
		}
	}
}

func TestElementWiseProperties(t *testing.T) {
	a := vec.Iota(1, 50)
	b := vec.Iota(100, 149)
	sum, prod := vec.Add(a, b), vec.Mul(a, b)
	left, right := vec.MulL(3, a), vec.MulR(a, 3)
	neg := vec.Neg(a)
	for i := range a.Len() {
		if got, want := sum.At(i), a.At(i)+b.At(i); got != want {
			t.Errorf("(a+b)[%d] = %d but want %d", i, got, want)
		}
		if got, want := prod.At(i), a.At(i)*b.At(i); got != want {
			t.Errorf("(a*b)[%d] = %d but want %d", i, got, want)
		}
		if got, want := left.At(i), 3*a.At(i); got != want {
			t.Errorf("(3*a)[%d] = %d but want %d", i, got, want)
		}
		if got, want := right.At(i), a.At(i)*3; got != want {
			t.Errorf("(a*3)[%d] = %d but want %d", i, got, want)
		}
		if got, want := neg.At(i), -a.At(i); got != want {
			t.Errorf("(-a)[%d] = %d but want %d", i, got, want)
		}
	}
}

func TestAssignResizesOwned(t *testing.T) {
	a := vec.Iota(0, 5)
	dst := vec.New[int]()
	if err := vec.Assign(dst, vec.MulL(2, a)); err != nil {
		t.Fatal(err)
	}
	if got, want := dst.ToSlice(), []int{0, 2, 4, 6, 8}; !cmp.Equal(got, want) {
		t.Errorf("got %v but want %v", got, want)
	}
	if err := vec.Assign(dst, vec.AddR(vec.Iota(0, 2), 1)); err != nil {
		t.Fatal(err)
	}
	if got, want := dst.ToSlice(), []int{1, 2}; !cmp.Equal(got, want) {
		t.Errorf("after shrinking: got %v but want %v", got, want)
	}
}

func TestAssignBorrowedDoesNotResize(t *testing.T) {
	a, b := vec.Of(1.0, 2, 3), vec.Of(10.0, 20, 30)
	buf := make([]float64, 3)
	dst := vec.Borrow(buf)
	if err := vec.Assign(dst, vec.Add(a, vec.MulL(0.5, b))); err != nil {
		t.Fatal(err)
	}
	if got, want := buf, []float64{6, 12, 18}; !cmp.Equal(got, want) {
		t.Errorf("got %v but want %v", got, want)
	}
	if &vec.Data(dst)[0] != &buf[0] {
		t.Errorf("destination buffer has been reallocated")
	}
	if got, want := a.ToSlice(), []float64{1, 2, 3}; !cmp.Equal(got, want) {
		t.Errorf("operand modified: got %v but want %v", got, want)
	}
	if got, want := b.ToSlice(), []float64{10, 20, 30}; !cmp.Equal(got, want) {
		t.Errorf("operand modified: got %v but want %v", got, want)
	}
}

func TestAssignSizeMismatch(t *testing.T) {
	buf := []int{7, 7}
	dst := vec.Borrow(buf)
	err := vec.Assign(dst, vec.Iota(0, 3))
	if !errors.Is(err, vec.ErrSizeMismatch) {
		t.Errorf("got error %v but want %v", err, vec.ErrSizeMismatch)
	}
	if got, want := buf, []int{7, 7}; !cmp.Equal(got, want) {
		t.Errorf("destination modified on error: got %v but want %v", got, want)
	}
}

func TestAssignOperandMismatch(t *testing.T) {
	dst := vec.Zeros[int](3)
	err := vec.Assign(dst, vec.Add(vec.Iota(0, 3), vec.Iota(0, 4)))
	if !errors.Is(err, vec.ErrSizeMismatch) {
		t.Errorf("got error %v but want %v", err, vec.ErrSizeMismatch)
	}
	if got, want := dst.ToSlice(), []int{0, 0, 0}; !cmp.Equal(got, want) {
		t.Errorf("destination modified on error: got %v but want %v", got, want)
	}
}

func TestAssignAscendingOrder(t *testing.T) {
	// v[i] = v[i-1] + 1 for i >= 1: reading the destination itself sees
	// the elements already written.
	v := vec.Filled(5, 1)
	prev, err := vec.Range(v, 0, 4)
	if err != nil {
		t.Fatal(err)
	}
	next, err := vec.Range(v, 1, slice.Omit)
	if err != nil {
		t.Fatal(err)
	}
	if err := vec.Assign(next, vec.AddR(prev, 1)); err != nil {
		t.Fatal(err)
	}
	if got, want := v.ToSlice(), []int{1, 2, 3, 4, 5}; !cmp.Equal(got, want) {
		t.Errorf("got %v but want %v", got, want)
	}
}

func TestReadOnly(t *testing.T) {
	buf := []int{1, 2, 3}
	ro := vec.BorrowReadOnly(buf)
	dst := vec.New[int]()
	if err := vec.Assign(dst, vec.MulR(ro, 10)); err != nil {
		t.Fatal(err)
	}
	if got, want := dst.ToSlice(), []int{10, 20, 30}; !cmp.Equal(got, want) {
		t.Errorf("got %v but want %v", got, want)
	}
	if vec.Data(ro) != nil {
		t.Errorf("read-only vector exposes a writable buffer")
	}
}

func TestSetBuffer(t *testing.T) {
	dst := vec.Borrow[float64](nil)
	if dst.Len() != 0 {
		t.Fatalf("got length %d but want 0", dst.Len())
	}
	buf := make([]float64, 8)
	vec.SetBuffer(dst, buf, 4)
	if err := vec.Assign(dst, vec.Linspace(0.0, 3, 4)); err != nil {
		t.Fatal(err)
	}
	if got, want := buf, []float64{0, 1, 2, 3, 0, 0, 0, 0}; !cmp.Equal(got, want) {
		t.Errorf("got %v but want %v", got, want)
	}
}

func TestZeroValue(t *testing.T) {
	var c vec.Owned[float64]
	if c.Len() != 0 {
		t.Errorf("got length %d but want 0", c.Len())
	}
	if got := c.String(); got != "[]" {
		t.Errorf("got %s but want []", got)
	}
	if got := c.ToSlice(); len(got) != 0 {
		t.Errorf("got %v but want an empty slice", got)
	}
	if err := vec.Assign(c, vec.Of(1.0, 2)); !errors.Is(err, vec.ErrNilStorage) {
		t.Errorf("got error %v but want %v", err, vec.ErrNilStorage)
	}
	var b vec.Borrowed[float64]
	if err := vec.Assign(b, vec.Of(1.0)); !errors.Is(err, vec.ErrNilStorage) {
		t.Errorf("got error %v but want %v", err, vec.ErrNilStorage)
	}
	sum := vec.Add(c, c)
	if sum.Len() != 0 {
		t.Errorf("got length %d but want 0", sum.Len())
	}
}

func TestSetBufferZeroValue(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic when setting the buffer of a zero vector")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "Borrow") {
			t.Errorf("got panic %v but want a message pointing to Borrow", r)
		}
	}()
	var b vec.Borrowed[float64]
	vec.SetBuffer(b, make([]float64, 4), 4)
}

func TestBorrowBytes(t *testing.T) {
	data := make([]byte, 4*8)
	v := vec.BorrowBytes[float64](data, 3)
	if err := vec.Assign(v, vec.Iota(1.0, 4)); err != nil {
		t.Fatal(err)
	}
	again := vec.BorrowBytes[float64](data, 4)
	if got, want := again.ToSlice(), []float64{1, 2, 3, 0}; !cmp.Equal(got, want) {
		t.Errorf("got %v but want %v", got, want)
	}
	if err := vec.Assign(v, vec.Sized[float64](4)); !errors.Is(err, vec.ErrSizeMismatch) {
		t.Errorf("got error %v but want %v", err, vec.ErrSizeMismatch)
	}
}

func TestFillAndSet(t *testing.T) {
	v := vec.Sized[int](4)
	vec.Fill(v, 9)
	vec.Set(v, 2, 1)
	if got, want := v.ToSlice(), []int{9, 9, 1, 9}; !cmp.Equal(got, want) {
		t.Errorf("got %v but want %v", got, want)
	}
	if v.Len() != 4 {
		t.Errorf("fill changed the length to %d", v.Len())
	}
	view, err := vec.Slice(v, slice.Omit, slice.Omit, 2)
	if err != nil {
		t.Fatal(err)
	}
	vec.Fill(view, 0)
	if got, want := v.ToSlice(), []int{0, 9, 0, 9}; !cmp.Equal(got, want) {
		t.Errorf("after filling a view: got %v but want %v", got, want)
	}
}

func TestSumAndReduce(t *testing.T) {
	v := vec.Of(3, 1, 4, 1, 5)
	sum, err := vec.Sum(v)
	if err != nil {
		t.Fatal(err)
	}
	if sum != 14 {
		t.Errorf("got %d but want 14", sum)
	}
	sum, err = vec.Sum(vec.MulL(2, v))
	if err != nil {
		t.Fatal(err)
	}
	if sum != 28 {
		t.Errorf("sum of an expression: got %d but want 28", sum)
	}
	concat, err := vec.Reduce(vec.Of("a", "b", "c"), func(x, y string) string { return x + y })
	if err != nil {
		t.Fatal(err)
	}
	if concat != "abc" {
		t.Errorf("got %q but want %q", concat, "abc")
	}
	if _, err := vec.Sum(vec.New[float64]()); !errors.Is(err, vec.ErrEmptyReduction) {
		t.Errorf("got error %v but want %v", err, vec.ErrEmptyReduction)
	}
	if _, err := vec.Sum(vec.Add(vec.Iota(0, 2), vec.Iota(0, 3))); !errors.Is(err, vec.ErrSizeMismatch) {
		t.Errorf("got error %v but want %v", err, vec.ErrSizeMismatch)
	}
}

func TestCount(t *testing.T) {
	v := vec.Of(1, 0, 2, 0, 0)
	if got := vec.Count(v, 0); got != 3 {
		t.Errorf("got %d but want 3", got)
	}
	if got := vec.Count(vec.MulL(0, v), 0); got != 5 {
		t.Errorf("count over an expression: got %d but want 5", got)
	}
	if got := vec.Count(vec.Of("x", "y"), "z"); got != 0 {
		t.Errorf("got %d but want 0", got)
	}
}

func TestIteration(t *testing.T) {
	v := vec.Of(1, 2, 3)
	var got []int
	for x := range v.All() {
		got = append(got, x)
	}
	if want := []int{1, 2, 3}; !cmp.Equal(got, want) {
		t.Errorf("All: got %v but want %v", got, want)
	}
	got = nil
	for x := range v.Backward() {
		got = append(got, x)
	}
	if want := []int{3, 2, 1}; !cmp.Equal(got, want) {
		t.Errorf("Backward: got %v but want %v", got, want)
	}
	for i, x := range vec.AddR(v, 1).Enumerate() {
		if x != v.At(i)+1 {
			t.Errorf("Enumerate: element %d is %d but want %d", i, x, v.At(i)+1)
		}
	}
}

func TestToSliceCopies(t *testing.T) {
	v := vec.Of(1, 2)
	s := v.ToSlice()
	s[0] = 100
	if v.At(0) != 1 {
		t.Errorf("ToSlice returned the underlying buffer")
	}
	if got := vec.New[int]().ToSlice(); got == nil || len(got) != 0 {
		t.Errorf("got %v but want an empty non-nil slice", got)
	}
}

func TestMath(t *testing.T) {
	x := vec.Of(0.0, 0.5, 1, 4)
	y := vec.Of(1.0, 2, 0.5, 3)
	tests := []struct {
		name string
		got  vec.Owned[float64]
		want func(x, y float64) float64
	}{
		{"sin", must(vec.Clone(vec.Sin(x))), func(x, _ float64) float64 { return math.Sin(x) }},
		{"cos", must(vec.Clone(vec.Cos(x))), func(x, _ float64) float64 { return math.Cos(x) }},
		{"tan", must(vec.Clone(vec.Tan(x))), func(x, _ float64) float64 { return math.Tan(x) }},
		{"sqrt", must(vec.Clone(vec.Sqrt(x))), func(x, _ float64) float64 { return math.Sqrt(x) }},
		{"abs", must(vec.Clone(vec.Abs(vec.Neg(x)))), func(x, _ float64) float64 { return x }},
		{"exp", must(vec.Clone(vec.Exp(x))), func(x, _ float64) float64 { return math.Exp(x) }},
		{"log", must(vec.Clone(vec.Log(y))), func(_, y float64) float64 { return math.Log(y) }},
		{"atan2", must(vec.Clone(vec.Atan2(y, x))), func(x, y float64) float64 { return math.Atan2(y, x) }},
		{"pow", must(vec.Clone(vec.Pow(x, y))), math.Pow},
		{"hypot", must(vec.Clone(vec.Hypot(x, y))), math.Hypot},
		{"sin(x+y)", must(vec.Clone(vec.Sin(vec.Add(x, y)))), func(x, y float64) float64 { return math.Sin(x + y) }},
	}
	for _, test := range tests {
		for i := range x.Len() {
			want := test.want(x.At(i), y.At(i))
			if !cmp.Equal(test.got.At(i), want, approx) {
				t.Errorf("%s: element %d is %v but want %v", test.name, i, test.got.At(i), want)
			}
		}
	}
}

func TestMathIntegers(t *testing.T) {
	got, err := vec.Clone(vec.Abs(vec.Iota[int32](-2, 3)))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int32{2, 1, 0, 1, 2}; !cmp.Equal(got.ToSlice(), want) {
		t.Errorf("got %v but want %v", got, want)
	}
}

func TestMap(t *testing.T) {
	words := vec.Of("a", "bb", "ccc")
	lengths, err := vec.Clone(vec.Map(words, func(s string) int { return len(s) }))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2, 3}; !cmp.Equal(lengths.ToSlice(), want) {
		t.Errorf("got %v but want %v", lengths, want)
	}
	repeat := vec.Map2(words, lengths, strings.Repeat)
	if want := `["a", "bbbb", "ccccccccc"]`; repeat.String() != want {
		t.Errorf("got %s but want %s", repeat.String(), want)
	}
	if err := vec.Map2(words, vec.Iota(0, 2), strings.Repeat).Validate(); !errors.Is(err, vec.ErrSizeMismatch) {
		t.Errorf("got error %v but want %v", err, vec.ErrSizeMismatch)
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
