// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func buildPeriodicGrid(nx, ny int) *Grid2D {
	x := linspace(0, 3, nx)
	y := make([]float64, ny)
	for j := 0; j < ny; j++ {
		y[j] = TwoPi * float64(j) / float64(ny)
	}
	v := make([][]float64, nx)
	for i := 0; i < nx; i++ {
		v[i] = make([]float64, ny)
		for j := 0; j < ny; j++ {
			v[i][j] = 1 + 0.2*x[i] + math.Cos(y[j]) + 0.1*x[i]*math.Sin(y[j])
		}
	}
	g, err := NewGrid2D(x, y, v)
	if err != nil {
		panic(err)
	}
	return g
}

func Test_bicubic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bicubic01. value at nodes")

	g := buildPeriodicGrid(10, 16)
	f, err := NewBicubic(g)
	if err != nil {
		tst.Fatal(err)
	}
	for i, xi := range g.X {
		for j, yj := range g.Y {
			chk.Scalar(tst, "value at node", 1e-8, f.Value(xi, yj), g.V[i][j])
		}
	}
}

func Test_bicubic02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bicubic02. periodicity in theta")

	g := buildPeriodicGrid(9, 14)
	f, err := NewBicubic(g)
	if err != nil {
		tst.Fatal(err)
	}
	for _, psip := range []float64{0.3, 1.1, 2.7} {
		chk.Scalar(tst, "value(psip,0)==value(psip,2pi)", 1e-6, f.Value(psip, 0), f.Value(psip, TwoPi))
		chk.Scalar(tst, "d/dtheta periodic", 1e-4, f.DDy(psip, 1e-6), f.DDy(psip, TwoPi-1e-6))
	}
}
