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
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/exprvec/fmt/fmtvec"
	"github.com/gx-org/exprvec/storage"
)

// String returns the printable form of the vector: [v0, v1, ..., vk].
func (v Vector[T, S]) String() string {
	return fmtvec.Sprint(v.All())
}

// GoString returns the vector as a Go-like literal, for example [3]float64{1, 2, 3}.
func GoString[T dtype.GoDataType, S storage.Reader[T]](v Vector[T, S]) string {
	return fmtvec.Typed(v.Len(), v.All())
}
