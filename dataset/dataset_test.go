// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// minimalFixture builds a Data with the smallest shapes validate() accepts,
// kept local to this package (rather than importing dataset/stub) to avoid
// stub's own dependency on this package turning into an import cycle for
// the dataset test binary.
func minimalFixture() *Data {
	psip := []float64{0, 1, 2, 3}
	theta := []float64{0, 1, 2, 3}
	return &Data{
		Path: "<fixture>", Baxis: 1.5, Raxis: 2,
		Psip: psip, Theta: theta,
		Psi: []float64{0, 0.3, 0.6, 1}, Q: []float64{1, 1.3, 1.6, 2},
		G: []float64{2, 1.3, 0.6, 0}, I: []float64{0, 0.6, 1.3, 2},
		B: [][]float64{{1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}},
		R: [][]float64{{2, 2, 2, 2}, {2, 2, 2, 2}, {2, 2, 2, 2}, {2, 2, 2, 2}},
		Z: [][]float64{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
	}
}

func Test_dataset01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dataset01. shape invariants")

	d := minimalFixture()
	if err := d.validate(); err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "psip_wall", 1e-12, d.Psip[len(d.Psip)-1], 3)
}

func Test_dataset02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dataset02. NaN/Inf sanitised to zero in alphas/phases")

	alphas := [][][]float64{{{nan(), 1, 2, math.Inf(1)}}}
	sanitize3D(alphas)
	chk.Scalar(tst, "sanitised", 0, alphas[0][0][0], 0)
	chk.Scalar(tst, "sanitised inf", 0, alphas[0][0][3], 0)
}

func Test_dataset03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dataset03. mismatched variable length is a LoadError-shaped error")

	d := minimalFixture()
	d.Q = d.Q[:2]
	if err := d.validate(); err == nil {
		tst.Fatal("expected validate() to reject mismatched q length")
	}
}

func nan() float64 {
	var z float64
	return z / z
}
