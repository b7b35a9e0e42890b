// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import "math"

// steffenSpline implements Steffen's 1990 monotone-preserving cubic.
// Produces C¹, not C². Never overshoots monotone input data, unlike plain
// Akima or cubic splines.
type steffenSpline struct {
	grid *Grid1D
	segs []segCoeffs
}

func newSteffen(grid *Grid1D) *steffenSpline {
	n := grid.N()
	x, y := grid.X, grid.Y

	h := make([]float64, n-1)
	sec := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = x[i+1] - x[i]
		sec[i] = (y[i+1] - y[i]) / h[i]
	}

	t := make([]float64, n)
	for i := 0; i < n; i++ {
		switch i {
		case 0:
			t[i] = oneSidedSlope(sec[0])
		case n - 1:
			t[i] = oneSidedSlope(sec[n-2])
		default:
			sl, sr := sec[i-1], sec[i]
			if sl*sr <= 0 {
				t[i] = 0
			} else {
				p := (sl*h[i] + sr*h[i-1]) / (h[i-1] + h[i])
				bound := 2 * math.Min(math.Abs(sl), math.Abs(sr))
				t[i] = math.Copysign(math.Min(math.Abs(p), bound), sl)
			}
		}
	}

	segs := make([]segCoeffs, n-1)
	for i := 0; i < n-1; i++ {
		hi := h[i]
		a := y[i]
		b := t[i]
		c := (3*sec[i] - 2*t[i] - t[i+1]) / hi
		d := (t[i] + t[i+1] - 2*sec[i]) / (hi * hi)
		segs[i] = segCoeffs{a: a, b: b, c: c, d: d}
	}
	return &steffenSpline{grid: grid, segs: segs}
}

func oneSidedSlope(sec float64) float64 { return sec }

func (s *steffenSpline) Value(x float64) float64 {
	return evalSegmented(s.grid, s.segs, x, segCoeffs.value)
}
func (s *steffenSpline) D1(x float64) float64 {
	return evalSegmented(s.grid, s.segs, x, segCoeffs.d1)
}
func (s *steffenSpline) D2(x float64) float64 {
	return evalSegmented(s.grid, s.segs, x, segCoeffs.d2)
}
func (s *steffenSpline) Kind() Kind     { return Steffen }
func (s *steffenSpline) Grid() *Grid1D { return s.grid }
