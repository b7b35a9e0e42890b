// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import "github.com/plasmafusion/poincare/dynamics"

// DenseStep is a cubic Hermite interpolant over one accepted RK step
// [T0,T1], built from the endpoint states and their derivatives. gosl's
// ode.Solver reports only accepted-step endpoints, not continuous-
// extension coefficients, so this layer supplies the "evaluate s(t)
// inside the step" capability the Poincaré event engine needs (spec §9,
// "dense-output root-finding inside an adaptive integrator").
type DenseStep struct {
	T0, T1 float64
	X0, X1 dynamics.State
	F0, F1 dynamics.State // dX/dt at the endpoints
}

// Contains reports whether t lies within [T0,T1].
func (s *DenseStep) Contains(t float64) bool {
	return t >= s.T0 && t <= s.T1
}

// Eval returns the Hermite interpolant's value at t (T0 <= t <= T1).
func (s *DenseStep) Eval(t float64) dynamics.State {
	h := s.T1 - s.T0
	if h == 0 {
		return s.X0
	}
	u := (t - s.T0) / h
	return dynamics.State{
		Theta: hermite(s.X0.Theta, s.F0.Theta, s.X1.Theta, s.F1.Theta, h, u),
		Psip:  hermite(s.X0.Psip, s.F0.Psip, s.X1.Psip, s.F1.Psip, h, u),
		Rho:   hermite(s.X0.Rho, s.F0.Rho, s.X1.Rho, s.F1.Rho, h, u),
		Zeta:  hermite(s.X0.Zeta, s.F0.Zeta, s.X1.Zeta, s.F1.Zeta, h, u),
	}
}

// hermite evaluates the scalar cubic Hermite basis at parameter u in
// [0,1], given endpoint values y0,y1 and endpoint derivatives m0,m1
// (with respect to true time, so they are scaled by the step length h).
func hermite(y0, m0, y1, m1, h, u float64) float64 {
	u2 := u * u
	u3 := u2 * u
	h00 := 2*u3 - 3*u2 + 1
	h10 := u3 - 2*u2 + u
	h01 := -2*u3 + 3*u2
	h11 := u3 - u2
	return h00*y0 + h10*h*m0 + h01*y1 + h11*h*m1
}
