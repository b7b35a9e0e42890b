// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// TwoPi is one full poloidal period.
const TwoPi = 2 * math.Pi

// Interpolator2D is a tensor-product bicubic interpolator, C² continuous
// internally, periodic with period 2π in its second (θ) argument. Queries
// outside the first-axis range clamp to the boundary; queries in the
// second axis wrap modulo 2π.
type Interpolator2D interface {
	Value(psip, theta float64) float64
	DDx(psip, theta float64) float64   // ∂/∂psip
	DDy(psip, theta float64) float64   // ∂/∂theta
	D2Dx2(psip, theta float64) float64
	D2Dy2(psip, theta float64) float64
	D2DxDy(psip, theta float64) float64
	Grid() *Grid2D
}

// bicubic precomputes nodal value, both first partials, and the cross
// partial on the grid via centred finite differences (spec §4.1), then
// interpolates each grid cell with the standard 16-coefficient bicubic
// patch built from those four corner quantities.
type bicubic struct {
	grid   *Grid2D
	fx     [][]float64 // ∂f/∂x at nodes
	fy     [][]float64 // ∂f/∂y at nodes
	fxy    [][]float64 // ∂²f/∂x∂y at nodes
	coeffs [][][16]float64
}

// NewBicubic builds a periodic bicubic interpolator from grid. The second
// axis (θ) is treated as periodic with period 2π: grid.Y is expected to
// cover one period, and wrap-around neighbours are used at its boundary
// when estimating nodal derivatives.
func NewBicubic(grid *Grid2D) (Interpolator2D, error) {
	nx, ny := grid.Nx(), grid.Ny()
	if grid.Y[ny-1]-grid.Y[0] > TwoPi+1e-9 {
		return nil, chk.Err("interp: Grid2D theta-axis must cover at most one period (2π), got span=%.6f", grid.Y[ny-1]-grid.Y[0])
	}
	b := &bicubic{grid: grid}
	b.fx = alloc2(nx, ny)
	b.fy = alloc2(nx, ny)
	b.fxy = alloc2(nx, ny)

	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			b.fx[i][j] = centredX(grid, i, j)
			b.fy[i][j] = centredY(grid, i, j)
		}
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			b.fxy[i][j] = centredXofFy(b.fy, grid, i, j)
		}
	}

	// ny cells in theta: the ny-1 regular cells [Y[0],Y[1]]..[Y[ny-2],Y[ny-1]]
	// plus the wrap cell [Y[ny-1], Y[0]+2π) closing the period, since Grid2D's
	// theta axis is half-open [0,2π) with no duplicate endpoint.
	b.coeffs = make([][][16]float64, nx-1)
	for i := 0; i < nx-1; i++ {
		b.coeffs[i] = make([][16]float64, ny)
		for j := 0; j < ny-1; j++ {
			hy := grid.Y[j+1] - grid.Y[j]
			b.coeffs[i][j] = bicubicPatchCoeffs(grid, b.fx, b.fy, b.fxy, i, j, j+1, hy)
		}
		hyWrap := grid.Y[0] + TwoPi - grid.Y[ny-1]
		b.coeffs[i][ny-1] = bicubicPatchCoeffs(grid, b.fx, b.fy, b.fxy, i, ny-1, 0, hyWrap)
	}
	return b, nil
}

func alloc2(nx, ny int) [][]float64 {
	v := make([][]float64, nx)
	for i := range v {
		v[i] = make([]float64, ny)
	}
	return v
}

// centredX estimates ∂f/∂x at node (i,j) using a centred finite difference
// in the ψp direction (clamped at the boundary: one-sided there, since ψp
// is not periodic).
func centredX(g *Grid2D, i, j int) float64 {
	nx := g.Nx()
	switch {
	case i == 0:
		return (g.V[1][j] - g.V[0][j]) / (g.X[1] - g.X[0])
	case i == nx-1:
		return (g.V[nx-1][j] - g.V[nx-2][j]) / (g.X[nx-1] - g.X[nx-2])
	default:
		return num.DerivCentral(func(x float64) float64 {
			return interp1dAtRow(g, x, j)
		}, g.X[i], 1e-4*math.Max(1, math.Abs(g.X[i])))
	}
}

// interp1dAtRow linearly interpolates column j's values at an arbitrary x
// for use inside the centred finite-difference probe.
func interp1dAtRow(g *Grid2D, x float64, j int) float64 {
	nx := g.Nx()
	lo, hi := 0, nx-2
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if g.X[mid] <= x {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	t := (x - g.X[lo]) / (g.X[lo+1] - g.X[lo])
	return g.V[lo][j]*(1-t) + g.V[lo+1][j]*t
}

// centredY estimates ∂f/∂y at node (i,j) in the periodic θ direction, using
// wrap-around neighbours at the boundary as spec §4.1 requires.
func centredY(g *Grid2D, i, j int) float64 {
	ny := g.Ny()
	jm, jp := j-1, j+1
	var left, right, dleft, dright float64
	if jm < 0 {
		jm = ny - 1 // nearest periodic neighbour: grid has no duplicate endpoint
		left = g.V[i][jm]
		dleft = g.Y[j] + TwoPi - g.Y[jm]
	} else {
		left = g.V[i][jm]
		dleft = g.Y[j] - g.Y[jm]
	}
	if jp > ny-1 {
		jp = 0
		right = g.V[i][jp]
		dright = g.Y[jp] + TwoPi - g.Y[j]
	} else {
		right = g.V[i][jp]
		dright = g.Y[jp] - g.Y[j]
	}
	return (right - left) / (dleft + dright)
}

// centredXofFy estimates ∂²f/∂x∂y as the x-derivative of the precomputed
// fy table, matching spec §4.1's "cross partials from centered differences
// of the single partials".
func centredXofFy(fy [][]float64, g *Grid2D, i, j int) float64 {
	nx := g.Nx()
	switch {
	case i == 0:
		return (fy[1][j] - fy[0][j]) / (g.X[1] - g.X[0])
	case i == nx-1:
		return (fy[nx-1][j] - fy[nx-2][j]) / (g.X[nx-1] - g.X[nx-2])
	default:
		return (fy[i+1][j] - fy[i-1][j]) / (g.X[i+1] - g.X[i-1])
	}
}

// bicubicPatchCoeffs builds the 16 coefficients of the bicubic patch
// spanning theta columns j..jNext (jNext = j+1 for a regular cell, or 0
// for the wrap cell closing the period at j=ny-1) in local coordinates
// u = (x-X[i])/hx, v = (y-Y[j])/hy, both in [0,1], from the four corner
// values/derivatives, following the standard Hermite-to-power-basis
// bicubic construction.
func bicubicPatchCoeffs(g *Grid2D, fx, fy, fxy [][]float64, i, j, jNext int, hy float64) [16]float64 {
	hx := g.X[i+1] - g.X[i]

	// corner function/derivative values scaled to unit-square Hermite data
	f := [4]float64{g.V[i][j], g.V[i+1][j], g.V[i][jNext], g.V[i+1][jNext]}
	fu := [4]float64{fx[i][j] * hx, fx[i+1][j] * hx, fx[i][jNext] * hx, fx[i+1][jNext] * hx}
	fv := [4]float64{fy[i][j] * hy, fy[i+1][j] * hy, fy[i][jNext] * hy, fy[i+1][jNext] * hy}
	fuv := [4]float64{fxy[i][j] * hx * hy, fxy[i+1][j] * hx * hy, fxy[i][jNext] * hx * hy, fxy[i+1][jNext] * hx * hy}

	// Hermite basis matrix for cubic interpolation on [0,1] with endpoint
	// value/derivative data, applied in both directions (tensor product).
	// H maps (f00,f10,fu00,fu10) -> power-basis coefficients (a0..a3) of a
	// 1D cubic satisfying p(0)=f00, p(1)=f10, p'(0)=fu00, p'(1)=fu10.
	H := [4][4]float64{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{-3, 3, -2, -1},
		{2, -2, 1, 1},
	}

	// Build the 4x4 matrix of corner data G in the order the standard
	// bicubic Hermite patch expects: G[0][0]=f(0,0), G[1][0]=f(1,0), etc.
	G := [4][4]float64{
		{f[0], f[2], fv[0], fv[2]},
		{f[1], f[3], fv[1], fv[3]},
		{fu[0], fu[2], fuv[0], fuv[2]},
		{fu[1], fu[3], fuv[1], fuv[3]},
	}

	// A = H * G * H^T
	var HG [4][4]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += H[r][k] * G[k][c]
			}
			HG[r][c] = sum
		}
	}
	var A [4][4]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += HG[r][k] * H[c][k]
			}
			A[r][c] = sum
		}
	}

	var coeffs [16]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			coeffs[r*4+c] = A[r][c]
		}
	}
	return coeffs
}

// locate finds the cell and local (u,v) in [0,1]^2 for (psip, theta),
// clamping psip and wrapping theta modulo 2π.
func (b *bicubic) locate(psip, theta float64) (i, j int, u, v float64) {
	g := b.grid
	nx, ny := g.Nx(), g.Ny()

	if psip <= g.X[0] {
		i, u = 0, 0
	} else if psip >= g.X[nx-1] {
		i, u = nx-2, 1
	} else {
		lo, hi := 0, nx-2
		for lo < hi {
			mid := (lo + hi + 1) / 2
			if g.X[mid] <= psip {
				lo = mid
			} else {
				hi = mid - 1
			}
		}
		i = lo
		u = (psip - g.X[i]) / (g.X[i+1] - g.X[i])
	}

	th := math.Mod(theta, TwoPi)
	if th < 0 {
		th += TwoPi
	}
	// ny cells total: the ny-1 regular cells plus the wrap cell j=ny-1
	// covering [Y[ny-1], Y[0]+2π); search over all ny knots for the last
	// one not exceeding th.
	lo, hi := 0, ny-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if g.Y[mid] <= th {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	j = lo
	if j == ny-1 {
		v = (th - g.Y[ny-1]) / (g.Y[0] + TwoPi - g.Y[ny-1])
	} else {
		v = (th - g.Y[j]) / (g.Y[j+1] - g.Y[j])
	}
	return
}

func (b *bicubic) patch(psip, theta float64) (c [16]float64, u, v, hx, hy float64) {
	g := b.grid
	i, j, uu, vv := b.locate(psip, theta)
	hx = g.X[i+1] - g.X[i]
	if j == g.Ny()-1 {
		hy = g.Y[0] + TwoPi - g.Y[j]
	} else {
		hy = g.Y[j+1] - g.Y[j]
	}
	return b.coeffs[i][j], uu, vv, hx, hy
}

func polyEval(c [16]float64, u, v float64) float64 {
	var sum float64
	up := [4]float64{1, u, u * u, u * u * u}
	vp := [4]float64{1, v, v * v, v * v * v}
	for r := 0; r < 4; r++ {
		for k := 0; k < 4; k++ {
			sum += c[r*4+k] * up[r] * vp[k]
		}
	}
	return sum
}

func (b *bicubic) Value(psip, theta float64) float64 {
	c, u, v, _, _ := b.patch(psip, theta)
	return polyEval(c, u, v)
}

func (b *bicubic) DDx(psip, theta float64) float64 {
	c, u, v, hx, _ := b.patch(psip, theta)
	var sum float64
	up := [4]float64{0, 1, 2 * u, 3 * u * u}
	vp := [4]float64{1, v, v * v, v * v * v}
	for r := 0; r < 4; r++ {
		for k := 0; k < 4; k++ {
			sum += c[r*4+k] * up[r] * vp[k]
		}
	}
	return sum / hx
}

func (b *bicubic) DDy(psip, theta float64) float64 {
	c, u, v, _, hy := b.patch(psip, theta)
	var sum float64
	up := [4]float64{1, u, u * u, u * u * u}
	vp := [4]float64{0, 1, 2 * v, 3 * v * v}
	for r := 0; r < 4; r++ {
		for k := 0; k < 4; k++ {
			sum += c[r*4+k] * up[r] * vp[k]
		}
	}
	return sum / hy
}

func (b *bicubic) D2Dx2(psip, theta float64) float64 {
	c, u, v, hx, _ := b.patch(psip, theta)
	var sum float64
	up := [4]float64{0, 0, 2, 6 * u}
	vp := [4]float64{1, v, v * v, v * v * v}
	for r := 0; r < 4; r++ {
		for k := 0; k < 4; k++ {
			sum += c[r*4+k] * up[r] * vp[k]
		}
	}
	return sum / (hx * hx)
}

func (b *bicubic) D2Dy2(psip, theta float64) float64 {
	c, u, v, _, hy := b.patch(psip, theta)
	var sum float64
	up := [4]float64{1, u, u * u, u * u * u}
	vp := [4]float64{0, 0, 2, 6 * v}
	for r := 0; r < 4; r++ {
		for k := 0; k < 4; k++ {
			sum += c[r*4+k] * up[r] * vp[k]
		}
	}
	return sum / (hy * hy)
}

func (b *bicubic) D2DxDy(psip, theta float64) float64 {
	c, u, v, hx, hy := b.patch(psip, theta)
	var sum float64
	up := [4]float64{0, 1, 2 * u, 3 * u * u}
	vp := [4]float64{0, 1, 2 * v, 3 * v * v}
	for r := 0; r < 4; r++ {
		for k := 0; k < 4; k++ {
			sum += c[r*4+k] * up[r] * vp[k]
		}
	}
	return sum / (hx * hy)
}

func (b *bicubic) Grid() *Grid2D { return b.grid }
