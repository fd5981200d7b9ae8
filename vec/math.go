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
	"math"

	"github.com/gx-org/exprvec/expr"
	"github.com/gx-org/exprvec/storage"
)

// Map returns the vector f(x[i]). The element type of the result may differ from the one of x.
func Map[T, R any, X storage.Reader[T]](x Vector[T, X], f func(T) R) Vector[R, expr.Fn1[T, R, X]] {
	return Wrap[R](expr.NewFn1(x.s, f))
}

// Map2 returns the vector f(x[i], y[i]).
// x and y must have the same length.
func Map2[T, U, R any, X storage.Reader[T], Y storage.Reader[U]](x Vector[T, X], y Vector[U, Y], f func(T, U) R) Vector[R, expr.Fn2[T, U, R, X, Y]] {
	return Wrap[R](expr.NewFn2(x.s, y.s, f))
}

func mathFn[T Number, X storage.Reader[T]](x Vector[T, X], f func(float64) float64) Vector[T, expr.Fn1[T, T, X]] {
	return Map(x, expr.Kernelize[T](f))
}

func mathFn2[T Number, X, Y storage.Reader[T]](x Vector[T, X], y Vector[T, Y], f func(float64, float64) float64) Vector[T, expr.Fn2[T, T, T, X, Y]] {
	return Map2(x, y, expr.Kernelize2[T](f))
}

// Sin returns the vector sin(x[i]).
func Sin[T Number, X storage.Reader[T]](x Vector[T, X]) Vector[T, expr.Fn1[T, T, X]] {
	return mathFn(x, math.Sin)
}

// Cos returns the vector cos(x[i]).
func Cos[T Number, X storage.Reader[T]](x Vector[T, X]) Vector[T, expr.Fn1[T, T, X]] {
	return mathFn(x, math.Cos)
}

// Tan returns the vector tan(x[i]).
func Tan[T Number, X storage.Reader[T]](x Vector[T, X]) Vector[T, expr.Fn1[T, T, X]] {
	return mathFn(x, math.Tan)
}

// Sqrt returns the vector sqrt(x[i]).
func Sqrt[T Number, X storage.Reader[T]](x Vector[T, X]) Vector[T, expr.Fn1[T, T, X]] {
	return mathFn(x, math.Sqrt)
}

// Abs returns the vector |x[i]|.
func Abs[T Number, X storage.Reader[T]](x Vector[T, X]) Vector[T, expr.Fn1[T, T, X]] {
	return mathFn(x, math.Abs)
}

// Exp returns the vector e**x[i].
func Exp[T Number, X storage.Reader[T]](x Vector[T, X]) Vector[T, expr.Fn1[T, T, X]] {
	return mathFn(x, math.Exp)
}

// Log returns the vector ln(x[i]).
func Log[T Number, X storage.Reader[T]](x Vector[T, X]) Vector[T, expr.Fn1[T, T, X]] {
	return mathFn(x, math.Log)
}

// Atan2 returns the vector atan2(y[i], x[i]).
func Atan2[T Number, Y, X storage.Reader[T]](y Vector[T, Y], x Vector[T, X]) Vector[T, expr.Fn2[T, T, T, Y, X]] {
	return mathFn2(y, x, math.Atan2)
}

// Pow returns the vector x[i]**y[i].
func Pow[T Number, X, Y storage.Reader[T]](x Vector[T, X], y Vector[T, Y]) Vector[T, expr.Fn2[T, T, T, X, Y]] {
	return mathFn2(x, y, math.Pow)
}

// Hypot returns the vector sqrt(x[i]*x[i] + y[i]*y[i]).
func Hypot[T Number, X, Y storage.Reader[T]](x Vector[T, X], y Vector[T, Y]) Vector[T, expr.Fn2[T, T, T, X, Y]] {
	return mathFn2(x, y, math.Hypot)
}
