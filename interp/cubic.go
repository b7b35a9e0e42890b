// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

// cubicSpline implements a not-a-knot cubic spline: C² continuous
// throughout, including at the second and second-to-last knots where the
// third derivative is forced continuous instead of fixing the end second
// derivatives to zero (natural spline). Chosen per spec §9 "Open
// Questions" for compatibility with downstream consumers of endpoint
// derivatives.
type cubicSpline struct {
	grid *Grid1D
	segs []segCoeffs
}

func newCubicSpline(grid *Grid1D) *cubicSpline {
	n := grid.N()
	x, y := grid.X, grid.Y

	h := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = x[i+1] - x[i]
	}

	// Solve for second derivatives M[0..n-1]: the interior rows are the
	// usual tridiagonal spline equations and the first/last rows are the
	// not-a-knot conditions, each touching three unknowns. For n==4 there
	// are exactly two interior knots, handled by the same general solve
	// (dense Gaussian elimination in solveNotAKnot).
	lower := make([]float64, n)
	diag := make([]float64, n)
	upper := make([]float64, n)
	rhs := make([]float64, n)

	for i := 1; i < n-1; i++ {
		lower[i] = h[i-1]
		diag[i] = 2 * (h[i-1] + h[i])
		upper[i] = h[i]
		rhs[i] = 6 * ((y[i+1]-y[i])/h[i] - (y[i]-y[i-1])/h[i-1])
	}

	// not-a-knot: third derivative continuous at x[1] and x[n-2], which
	// translates to these boundary equations on M.
	diag[0] = h[1]
	upper[0] = -(h[0] + h[1])
	rhs[0] = 0
	// the boundary row also touches M[2]; fold it via a third coefficient
	// using a length-n+1 style elimination below instead of a pure
	// tridiagonal solve.
	far0 := h[0]

	lower[n-1] = -(h[n-2] + h[n-3])
	diag[n-1] = h[n-3]
	rhs[n-1] = 0
	farN := h[n-2]

	M := solveNotAKnot(lower, diag, upper, rhs, far0, farN, n)

	segs := make([]segCoeffs, n-1)
	for i := 0; i < n-1; i++ {
		hi := h[i]
		a := y[i]
		b := (y[i+1]-y[i])/hi - hi*(2*M[i]+M[i+1])/6
		c := M[i] / 2
		d := (M[i+1] - M[i]) / (6 * hi)
		segs[i] = segCoeffs{a: a, b: b, c: c, d: d}
	}
	return &cubicSpline{grid: grid, segs: segs}
}

// solveNotAKnot solves the (n x n) linear system for second derivatives M
// given the interior tridiagonal rows (lower, diag, upper, rhs for rows
// 1..n-2) plus the two not-a-knot boundary rows:
//
//	row 0:   diag[0]*M[0] + upper[0]*M[1] + far0*M[2] = rhs[0]                (=0)
//	row n-1: farN*M[n-3] + lower[n-1]*M[n-2] + diag[n-1]*M[n-1] = rhs[n-1]  (=0)
//
// The system is solved by Gaussian elimination on the full n x n matrix,
// which is simplest to get right for small n (equilibrium profiles here
// run to a few hundred knots at most).
func solveNotAKnot(lower, diag, upper, rhs []float64, far0, farN float64, n int) []float64 {
	A := make([][]float64, n)
	for i := range A {
		A[i] = make([]float64, n)
	}
	b := make([]float64, n)
	copy(b, rhs)

	A[0][0] = diag[0]
	A[0][1] = upper[0]
	A[0][2] = far0
	for i := 1; i < n-1; i++ {
		A[i][i-1] = lower[i]
		A[i][i] = diag[i]
		A[i][i+1] = upper[i]
	}
	A[n-1][n-3] = farN
	A[n-1][n-2] = lower[n-1]
	A[n-1][n-1] = diag[n-1]

	return gaussSolve(A, b)
}

// gaussSolve solves A x = b by Gaussian elimination with partial pivoting.
// A is modified in place; b is modified in place; returns x.
func gaussSolve(A [][]float64, b []float64) []float64 {
	n := len(b)
	for col := 0; col < n; col++ {
		piv := col
		best := A[col][col]
		if best < 0 {
			best = -best
		}
		for r := col + 1; r < n; r++ {
			v := A[r][col]
			if v < 0 {
				v = -v
			}
			if v > best {
				best, piv = v, r
			}
		}
		if piv != col {
			A[col], A[piv] = A[piv], A[col]
			b[col], b[piv] = b[piv], b[col]
		}
		if A[col][col] == 0 {
			continue
		}
		for r := col + 1; r < n; r++ {
			f := A[r][col] / A[col][col]
			if f == 0 {
				continue
			}
			for c := col; c < n; c++ {
				A[r][c] -= f * A[col][c]
			}
			b[r] -= f * b[col]
		}
	}
	x := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		sum := b[r]
		for c := r + 1; c < n; c++ {
			sum -= A[r][c] * x[c]
		}
		x[r] = sum / A[r][r]
	}
	return x
}

func (s *cubicSpline) Value(x float64) float64 {
	return evalSegmented(s.grid, s.segs, x, segCoeffs.value)
}
func (s *cubicSpline) D1(x float64) float64 {
	return evalSegmented(s.grid, s.segs, x, segCoeffs.d1)
}
func (s *cubicSpline) D2(x float64) float64 {
	return evalSegmented(s.grid, s.segs, x, segCoeffs.d2)
}
func (s *cubicSpline) Kind() Kind     { return Cubic }
func (s *cubicSpline) Grid() *Grid1D { return s.grid }
