// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import "math"

// akimaSpline implements Akima's 1970 method. Produces C¹, not C².
// Boundary slopes are estimated by the usual reflection: extrapolating the
// neighbouring secant slopes outward by one step on each side.
type akimaSpline struct {
	grid *Grid1D
	segs []segCoeffs
}

func newAkima(grid *Grid1D) *akimaSpline {
	n := grid.N()
	x, y := grid.X, grid.Y

	// secant slopes, with two reflected slopes padded on each side so the
	// standard 5-point Akima weight stencil is uniform at the boundaries.
	m := make([]float64, n+3)
	for i := 0; i < n-1; i++ {
		m[i+2] = (y[i+1] - y[i]) / (x[i+1] - x[i])
	}
	m[1] = 2*m[2] - m[3]
	m[0] = 2*m[1] - m[2]
	m[n+1] = 2*m[n] - m[n-1]
	m[n+2] = 2*m[n+1] - m[n]

	slope := func(i int) float64 {
		// slope at knot i using m[i..i+3] (shifted by the 2-element pad)
		m1, m2, m3, m4 := m[i], m[i+1], m[i+2], m[i+3]
		w1 := math.Abs(m4 - m3)
		w2 := math.Abs(m2 - m1)
		if w1+w2 == 0 {
			return (m2 + m3) / 2
		}
		return (w1*m2 + w2*m3) / (w1 + w2)
	}

	t := make([]float64, n)
	for i := 0; i < n; i++ {
		t[i] = slope(i)
	}

	segs := make([]segCoeffs, n-1)
	for i := 0; i < n-1; i++ {
		h := x[i+1] - x[i]
		a := y[i]
		b := t[i]
		sec := (y[i+1] - y[i]) / h
		c := (3*sec - 2*t[i] - t[i+1]) / h
		d := (t[i] + t[i+1] - 2*sec) / (h * h)
		segs[i] = segCoeffs{a: a, b: b, c: c, d: d}
	}
	return &akimaSpline{grid: grid, segs: segs}
}

func (s *akimaSpline) Value(x float64) float64 {
	return evalSegmented(s.grid, s.segs, x, segCoeffs.value)
}
func (s *akimaSpline) D1(x float64) float64 {
	return evalSegmented(s.grid, s.segs, x, segCoeffs.d1)
}
func (s *akimaSpline) D2(x float64) float64 {
	return evalSegmented(s.grid, s.segs, x, segCoeffs.d2)
}
func (s *akimaSpline) Kind() Kind     { return Akima }
func (s *akimaSpline) Grid() *Grid1D { return s.grid }
