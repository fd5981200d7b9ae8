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

// Package expr implements lazy expression nodes over indexed readers.
//
// A node references its operands and computes a single element on each call
// to At. No node stores results: a tree of nodes is evaluated element by
// element when it is assigned to a storage.
package expr

import (
	"github.com/gx-org/exprvec/storage"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/exp/constraints"
)

// Number is the set of element types supporting the native arithmetic operators.
type Number interface {
	constraints.Integer | constraints.Float
}

// ErrSizeMismatch is returned when two operands, or a source and a destination, differ in length.
var ErrSizeMismatch = errors.New("size mismatch")

// Validator is implemented by nodes which can check the lengths of their operands.
type Validator interface {
	Validate() error
}

// Validate checks a reader and all the nodes it references.
// Readers which are not nodes are always valid.
// All the mismatches found in the tree are returned.
func Validate(r any) error {
	v, ok := r.(Validator)
	if !ok {
		return nil
	}
	return v.Validate()
}

func validateBinary(op string, x, y lener) error {
	var err error
	if x.Len() != y.Len() {
		err = errors.Wrapf(ErrSizeMismatch, "%s: left operand has %d elements but right operand has %d", op, x.Len(), y.Len())
	}
	return multierr.Combine(err, Validate(x), Validate(y))
}

type lener interface {
	Len() int
}

var _ storage.Reader[float32] = Neg[float32, *storage.Owned[float32]]{}

// Neg computes -x[i].
type Neg[T Number, X storage.Reader[T]] struct {
	x X
}

// NewNeg returns a node negating x.
func NewNeg[T Number, X storage.Reader[T]](x X) Neg[T, X] {
	return Neg[T, X]{x: x}
}

// Len returns the number of elements.
func (n Neg[T, X]) Len() int { return n.x.Len() }

// At returns -x[i].
func (n Neg[T, X]) At(i int) T { return -n.x.At(i) }

// Validate the operand.
func (n Neg[T, X]) Validate() error { return Validate(n.x) }
