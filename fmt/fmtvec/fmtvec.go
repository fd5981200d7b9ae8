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

// Package fmtvec formats vectors into strings.
package fmtvec

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/gx-org/backend/dtype"
)

// Value returns the string representation of a single element.
// Floating-point numbers use the shortest representation that reads back to
// the same value and strings are quoted.
func Value[T any](x T) string {
	switch xT := any(x).(type) {
	case float32:
		return strconv.FormatFloat(float64(xT), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(xT, 'g', -1, 64)
	case string:
		return strconv.Quote(xT)
	default:
		return fmt.Sprint(x)
	}
}

func join[T any](vals iter.Seq[T]) string {
	var s []string
	for v := range vals {
		s = append(s, Value(v))
	}
	return strings.Join(s, ", ")
}

// Sprint returns the printable form of a sequence of values: [v0, v1, ..., vk].
func Sprint[T any](vals iter.Seq[T]) string {
	return "[" + join(vals) + "]"
}

// Typed returns a Go-like literal of a sequence of values of known length,
// for example [3]float32{1, 2.5, 3}.
func Typed[T dtype.GoDataType](n int, vals iter.Seq[T]) string {
	return fmt.Sprintf("[%d]%s{%s}", n, dtype.Generic[T]().String(), join(vals))
}
