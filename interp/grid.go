// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package interp implements 1D (akima, not-a-knot cubic, Steffen) and
// 2D (periodic bicubic) interpolators over flux-surface data.
package interp

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/chk"
)

// Kind identifies a closed set of supported interpolator kinds. The public
// constructors accept the matching string and parse it once at the
// boundary; internally only the Kind variant is carried.
type Kind int

const (
	// Akima selects Akima's 1970 method: C¹, boundary slopes by reflection.
	Akima Kind = iota
	// Cubic selects a not-a-knot cubic spline: C².
	Cubic
	// Steffen selects Steffen's monotone-preserving cubic: C¹.
	Steffen
)

// ParseKind1D parses a 1D interpolator kind string.
func ParseKind1D(s string) (Kind, error) {
	switch s {
	case "akima":
		return Akima, nil
	case "cubic":
		return Cubic, nil
	case "steffen":
		return Steffen, nil
	}
	return 0, chk.Err("interp: unknown 1D interpolator kind %q (want akima, cubic or steffen)", s)
}

// Grid1D holds a strictly increasing set of knots and their values.
// Constructed once at load time and read-only thereafter.
type Grid1D struct {
	X []float64 // [N] knots, strictly increasing
	Y []float64 // [N] values at knots
}

// NewGrid1D validates and wraps x, y into a Grid1D.
func NewGrid1D(x, y []float64) (*Grid1D, error) {
	if len(x) != len(y) {
		return nil, chk.Err("interp: Grid1D: len(x)=%d != len(y)=%d", len(x), len(y))
	}
	if len(x) < 4 {
		return nil, &Error{Kind: ErrInsufficientKnots, Msg: fmt.Sprintf("Grid1D: need at least 4 knots, got %d", len(x))}
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, chk.Err("interp: Grid1D: knot x[%d] is not finite", i)
		}
		if math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return nil, chk.Err("interp: Grid1D: value y[%d] is not finite", i)
		}
		if i > 0 && x[i] <= x[i-1] {
			return nil, &Error{Kind: ErrNonMonotonicKnots, Msg: fmt.Sprintf("Grid1D: knots not strictly increasing at index %d", i)}
		}
	}
	return &Grid1D{X: x, Y: y}, nil
}

// N returns the number of knots.
func (g *Grid1D) N() int { return len(g.X) }

// clampIndex returns the segment index i such that X[i] <= x <= X[i+1],
// clamping x to the grid boundary rather than extrapolating.
func (g *Grid1D) clampIndex(x float64) (seg int, xc float64) {
	n := len(g.X)
	if x <= g.X[0] {
		return 0, g.X[0]
	}
	if x >= g.X[n-1] {
		return n - 2, g.X[n-1]
	}
	// binary search for the bracketing segment
	lo, hi := 0, n-2
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if g.X[mid] <= x {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo, x
}

// Grid2D holds a tensor-product grid of strictly increasing knots in both
// directions, with values v[i][j] = f(x[i], y[j]). Read-only thereafter.
type Grid2D struct {
	X []float64   // [Nx] knots (ψp direction)
	Y []float64   // [Ny] knots (θ direction, periodic with period 2π)
	V [][]float64 // [Nx][Ny] values
}

// NewGrid2D validates and wraps x, y, v into a Grid2D.
func NewGrid2D(x, y []float64, v [][]float64) (*Grid2D, error) {
	if len(x) < 4 || len(y) < 4 {
		return nil, &Error{Kind: ErrInsufficientKnots, Msg: fmt.Sprintf("Grid2D: need at least 4 knots per axis, got Nx=%d Ny=%d", len(x), len(y))}
	}
	if len(v) != len(x) {
		return nil, chk.Err("interp: Grid2D: len(v)=%d != len(x)=%d", len(v), len(x))
	}
	for i, row := range v {
		if len(row) != len(y) {
			return nil, chk.Err("interp: Grid2D: row %d has len=%d, want %d", i, len(row), len(y))
		}
	}
	for i, xv := range x {
		if i > 0 && xv <= x[i-1] {
			return nil, &Error{Kind: ErrNonMonotonicKnots, Msg: fmt.Sprintf("Grid2D: x-knots not strictly increasing at index %d", i)}
		}
	}
	for j, yv := range y {
		if j > 0 && yv <= y[j-1] {
			return nil, &Error{Kind: ErrNonMonotonicKnots, Msg: fmt.Sprintf("Grid2D: y-knots not strictly increasing at index %d", j)}
		}
	}
	return &Grid2D{X: x, Y: y, V: v}, nil
}

func (g *Grid2D) Nx() int { return len(g.X) }
func (g *Grid2D) Ny() int { return len(g.Y) }
