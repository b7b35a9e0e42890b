// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import "fmt"

// Interpolator1D is a piecewise-cubic function built once from a Grid1D and
// queried many times. Queries outside the knot range clamp to the boundary
// knot rather than extrapolating.
type Interpolator1D interface {
	// Value returns the interpolated value at x.
	Value(x float64) float64
	// D1 returns the first derivative at x.
	D1(x float64) float64
	// D2 returns the second derivative at x. Akima and Steffen splines are
	// only C¹; D2 is still defined piecewise (from the local cubic) but is
	// discontinuous across knots for those kinds.
	D2(x float64) float64
	// Kind returns which interpolator kind this is.
	Kind() Kind
	// Grid returns the owned Grid1D.
	Grid() *Grid1D
}

// segCoeffs holds one segment's cubic coefficients in the local form
//
//	p(t) = a + b*t + c*t^2 + d*t^3,  t = x - X[i], t in [0, X[i+1]-X[i]]
type segCoeffs struct {
	a, b, c, d float64
}

func (s segCoeffs) value(t float64) float64 { return s.a + t*(s.b+t*(s.c+t*s.d)) }
func (s segCoeffs) d1(t float64) float64    { return s.b + t*(2*s.c+t*3*s.d) }
func (s segCoeffs) d2(t float64) float64    { return 2*s.c + t*6*s.d }

// NewInterpolator1D builds an Interpolator1D of the given kind from grid.
func NewInterpolator1D(grid *Grid1D, kind Kind) (Interpolator1D, error) {
	switch kind {
	case Akima:
		return newAkima(grid), nil
	case Cubic:
		return newCubicSpline(grid), nil
	case Steffen:
		return newSteffen(grid), nil
	}
	return nil, fmt.Errorf("interp: invalid Kind value %d", kind)
}

// evalSegmented evaluates fn at x using the segment coefficients built for
// grid, clamping x to the grid boundary first (spec §4.1: no extrapolation).
func evalSegmented(grid *Grid1D, segs []segCoeffs, x float64, fn func(segCoeffs, float64) float64) float64 {
	seg, xc := grid.clampIndex(x)
	t := xc - grid.X[seg]
	return fn(segs[seg], t)
}
