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

// Neg returns the vector -x.
func Neg[T Number, X storage.Reader[T]](x Vector[T, X]) Vector[T, expr.Neg[T, X]] {
	return Wrap[T](expr.NewNeg[T](x.s))
}

// Add returns the element-wise sum x + y.
// x and y must have the same length.
func Add[T Number, X, Y storage.Reader[T]](x Vector[T, X], y Vector[T, Y]) Vector[T, expr.Add[T, X, Y]] {
	return Wrap[T](expr.NewAdd[T](x.s, y.s))
}

// AddL returns the vector k + y for a scalar k.
func AddL[T Number, Y storage.Reader[T]](k T, y Vector[T, Y]) Vector[T, expr.AddL[T, Y]] {
	return Wrap[T](expr.NewAddL(k, y.s))
}

// AddR returns the vector x + k for a scalar k.
func AddR[T Number, X storage.Reader[T]](x Vector[T, X], k T) Vector[T, expr.AddR[T, X]] {
	return Wrap[T](expr.NewAddR(x.s, k))
}

// Sub returns the element-wise difference x - y.
// x and y must have the same length.
func Sub[T Number, X, Y storage.Reader[T]](x Vector[T, X], y Vector[T, Y]) Vector[T, expr.Sub[T, X, Y]] {
	return Wrap[T](expr.NewSub[T](x.s, y.s))
}

// SubL returns the vector k - y for a scalar k.
func SubL[T Number, Y storage.Reader[T]](k T, y Vector[T, Y]) Vector[T, expr.SubL[T, Y]] {
	return Wrap[T](expr.NewSubL(k, y.s))
}

// SubR returns the vector x - k for a scalar k.
func SubR[T Number, X storage.Reader[T]](x Vector[T, X], k T) Vector[T, expr.SubR[T, X]] {
	return Wrap[T](expr.NewSubR(x.s, k))
}

// Mul returns the element-wise product x * y.
// x and y must have the same length.
func Mul[T Number, X, Y storage.Reader[T]](x Vector[T, X], y Vector[T, Y]) Vector[T, expr.Mul[T, X, Y]] {
	return Wrap[T](expr.NewMul[T](x.s, y.s))
}

// MulL returns the vector k * y for a scalar k.
func MulL[T Number, Y storage.Reader[T]](k T, y Vector[T, Y]) Vector[T, expr.MulL[T, Y]] {
	return Wrap[T](expr.NewMulL(k, y.s))
}

// MulR returns the vector x * k for a scalar k.
func MulR[T Number, X storage.Reader[T]](x Vector[T, X], k T) Vector[T, expr.MulR[T, X]] {
	return Wrap[T](expr.NewMulR(x.s, k))
}

// Quo returns the element-wise quotient x / y.
// x and y must have the same length.
func Quo[T Number, X, Y storage.Reader[T]](x Vector[T, X], y Vector[T, Y]) Vector[T, expr.Quo[T, X, Y]] {
	return Wrap[T](expr.NewQuo[T](x.s, y.s))
}

// QuoL returns the vector k / y for a scalar k.
func QuoL[T Number, Y storage.Reader[T]](k T, y Vector[T, Y]) Vector[T, expr.QuoL[T, Y]] {
	return Wrap[T](expr.NewQuoL(k, y.s))
}

// QuoR returns the vector x / k for a scalar k.
func QuoR[T Number, X storage.Reader[T]](x Vector[T, X], k T) Vector[T, expr.QuoR[T, X]] {
	return Wrap[T](expr.NewQuoR(x.s, k))
}
