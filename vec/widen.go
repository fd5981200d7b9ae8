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
	"github.com/gx-org/exprvec/expr"
	"github.com/gx-org/exprvec/storage"
)

// Scaler is implemented by element types which can be scaled by a float64.
// Vectors of such elements use the widening operators below in place of MulL,
// MulR and QuoR, which are reserved for native numbers.
type Scaler[T any] = expr.Scaler[T]

// Adder is implemented by element types with their own addition.
// Vectors of such elements use AddBy, SubBy and SumOf in place of Add, Sub and Sum.
type Adder[T any] = expr.Adder[T]

// ScaleL returns the vector k * y for a float64 scalar k.
func ScaleL[T Scaler[T], Y storage.Reader[T]](k float64, y Vector[T, Y]) Vector[T, expr.ScaleL[T, Y]] {
	return Wrap[T](expr.NewScaleL[T](k, y.s))
}

// ScaleR returns the vector x * k for a float64 scalar k.
func ScaleR[T Scaler[T], X storage.Reader[T]](x Vector[T, X], k float64) Vector[T, expr.ScaleR[T, X]] {
	return Wrap[T](expr.NewScaleR[T](x.s, k))
}

// DivR returns the vector x / k for a float64 scalar k.
func DivR[T Scaler[T], X storage.Reader[T]](x Vector[T, X], k float64) Vector[T, expr.DivR[T, X]] {
	return Wrap[T](expr.NewDivR[T](x.s, k))
}

// ScaleBy returns the vector w[i] * y[i] where w is a vector of float64.
func ScaleBy[T Scaler[T], W storage.Reader[float64], Y storage.Reader[T]](w Vector[float64, W], y Vector[T, Y]) Vector[T, expr.ScaleBy[T, W, Y]] {
	return Wrap[T](expr.NewScaleBy[T](w.s, y.s))
}

// DivBy returns the vector x[i] / w[i] where w is a vector of float64.
func DivBy[T Scaler[T], X storage.Reader[T], W storage.Reader[float64]](x Vector[T, X], w Vector[float64, W]) Vector[T, expr.DivBy[T, X, W]] {
	return Wrap[T](expr.NewDivBy[T](x.s, w.s))
}

// AddBy returns the vector x[i].Add(y[i]).
func AddBy[T Adder[T], X, Y storage.Reader[T]](x Vector[T, X], y Vector[T, Y]) Vector[T, expr.AddBy[T, X, Y]] {
	return Wrap[T](expr.NewAddBy[T](x.s, y.s))
}

// SubBy returns the vector x[i].Sub(y[i]).
func SubBy[T Adder[T], X, Y storage.Reader[T]](x Vector[T, X], y Vector[T, Y]) Vector[T, expr.SubBy[T, X, Y]] {
	return Wrap[T](expr.NewSubBy[T](x.s, y.s))
}
