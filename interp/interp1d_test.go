// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func linspace(a, b float64, n int) []float64 {
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = a + (b-a)*float64(i)/float64(n-1)
	}
	return x
}

func Test_interp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp01. value at knots, all kinds")

	x := linspace(0, 3, 12)
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = math.Sin(xi) + 0.1*xi*xi
	}
	grid, err := NewGrid1D(x, y)
	if err != nil {
		tst.Fatal(err)
	}

	for _, kind := range []Kind{Akima, Cubic, Steffen} {
		f, err := NewInterpolator1D(grid, kind)
		if err != nil {
			tst.Fatal(err)
		}
		for j, xj := range x {
			chk.Scalar(tst, "value at knot", 1e-12, f.Value(xj), y[j])
		}
	}
}

func Test_interp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp02. clamping outside knot range")

	x := linspace(0, 1, 8)
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = xi * xi
	}
	grid, _ := NewGrid1D(x, y)
	f, _ := NewInterpolator1D(grid, Cubic)

	chk.Scalar(tst, "clamp below", 1e-12, f.Value(-5), f.Value(0))
	chk.Scalar(tst, "clamp above", 1e-12, f.Value(5), f.Value(1))
}

func Test_interp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp03. unknown kind string is an error")

	if _, err := ParseKind1D("bogus"); err == nil {
		tst.Fatal("expected error for unknown interpolator kind")
	}
}

func Test_interp04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp04. d1 continuity across interior knots")

	x := linspace(0, 6, 20)
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = math.Cos(xi)
	}
	grid, _ := NewGrid1D(x, y)
	f, _ := NewInterpolator1D(grid, Cubic)

	for i := 1; i < len(x)-1; i++ {
		eps := 1e-7
		left := f.D1(x[i] - eps)
		right := f.D1(x[i] + eps)
		chk.Scalar(tst, "d1 continuous", 1e-4, left, right)
	}
}
