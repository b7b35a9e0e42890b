// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stub builds an in-memory dataset.Data fixture matching the
// canonical stub equilibrium used across this repo's tests: 100 psip
// knots, 200 theta knots, a linear q/psi/g/I profile, random (but
// deterministic) B/R/Z grids, and one sentinel mode. Grounded on
// `_examples/original_source/equilibrium/scripts/stub_npz.py`.
package stub

import (
	"math"
	"math/rand"

	"github.com/plasmafusion/poincare/dataset"
)

// New builds the canonical stub dataset, identical in shape and sentinel
// values to stub_npz.py: baxis=1.5, raxis=2, theta=linspace(0,pi,200),
// psip=linspace(0,3,100), psi=linspace(0,1,100), q=linspace(1,2,100),
// g=linspace(2,0,100), i=linspace(0,2,100), modes m=[-1..3], n=[-2..7],
// with alphas[2,3,0]=1111, phases[2,3,0]=9999, alphas[2,3,-1]=11111,
// phases[2,3,-1]=99999.
func New() *dataset.Data {
	const npsi, ntheta = 100, 200

	theta := linspace(0, math.Pi, ntheta)
	psip := linspace(0, 3, npsi)
	psi := linspace(0, 1, npsi)
	q := linspace(1, 2, npsi)
	g := linspace(2, 0, npsi)
	i := linspace(0, 2, npsi)

	rng := rand.New(rand.NewSource(1))
	b := randGrid(rng, npsi, ntheta)
	r := randGrid(rng, npsi, ntheta)
	z := randGrid(rng, npsi, ntheta)

	m := rangeInts(-1, 4)
	n := rangeInts(-2, 8)

	alphas := randGrid3(rng, len(m), len(n), npsi)
	phases := randGrid3(rng, len(m), len(n), npsi)

	// sentinel mode (2,3): m=2 is at index 3 of m=[-1..3], n=3 at index 5 of n=[-2..7]
	mi, ni := indexOf(m, 2), indexOf(n, 3)
	alphas[mi][ni][0] = 1111
	phases[mi][ni][0] = 9999
	alphas[mi][ni][npsi-1] = 11111
	phases[mi][ni][npsi-1] = 99999

	return &dataset.Data{
		Path:  "<stub>",
		Baxis: 1.5,
		Raxis: 2,
		Psip:  psip,
		Theta: theta,
		Psi:   psi,
		Q:     q,
		G:     g,
		I:     i,
		B:     b,
		R:     r,
		Z:     z,
		M:     m,
		N:     n,
		Alphas: alphas,
		Phases: phases,
	}
}

func linspace(a, b float64, n int) []float64 {
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = a + (b-a)*float64(i)/float64(n-1)
	}
	return x
}

func rangeInts(lo, hiExclusive int) []int {
	out := make([]int, 0, hiExclusive-lo)
	for v := lo; v < hiExclusive; v++ {
		out = append(out, v)
	}
	return out
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func randGrid(rng *rand.Rand, n0, n1 int) [][]float64 {
	v := make([][]float64, n0)
	for i := range v {
		v[i] = make([]float64, n1)
		for j := range v[i] {
			v[i][j] = rng.Float64()
		}
	}
	return v
}

func randGrid3(rng *rand.Rand, n0, n1, n2 int) [][][]float64 {
	v := make([][][]float64, n0)
	for i := range v {
		v[i] = make([][]float64, n1)
		for j := range v[i] {
			v[i][j] = make([]float64, n2)
			for k := range v[i][j] {
				v[i][j][k] = rng.Float64()
			}
		}
	}
	return v
}
