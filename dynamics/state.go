// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dynamics implements the guiding-centre right-hand side of spec
// §4.4: a pure, stateless function mapping (t, state) to its time
// derivative, given the shared equilibrium and perturbation collaborators.
package dynamics

import (
	"github.com/plasmafusion/poincare/equilibrium"
	"github.com/plasmafusion/poincare/perturbation"
)

// State is the dynamical state vector X = (theta, psip, rho, zeta).
type State struct {
	Theta float64
	Psip  float64
	Rho   float64 // rho_parallel
	Zeta  float64
}

// Equilibrium bundles the three read-only, shared equilibrium models. It
// owns no mutable state and is safe to share across many integrator
// workers (spec §5).
type Equilibrium struct {
	Qfactor  *equilibrium.Qfactor
	Currents *equilibrium.Currents
	Bfield   *equilibrium.Bfield
}

// D returns the Boozer-coordinate Jacobian g(psip)*q(psip) + I(psip)
// (spec §4.4).
func (eq *Equilibrium) D(psip float64) float64 {
	return eq.Currents.G(psip)*eq.Qfactor.Q(psip) + eq.Currents.I(psip)
}

// Ptheta returns the canonical poloidal momentum Ptheta = psip + rho*I(psip).
func (x State) Ptheta(eq *Equilibrium) float64 {
	return x.Psip + x.Rho*eq.Currents.I(x.Psip)
}

// Pzeta returns the canonical toroidal momentum Pzeta = rho*g(psip) - psi(psip).
func (x State) Pzeta(eq *Equilibrium) float64 {
	return x.Rho*eq.Currents.G(x.Psip) - eq.Qfactor.Psi(x.Psip)
}

// Energy returns the Hamiltonian H = (1/2) rho^2 b^2 + mu*b + Phi, with
// b = B(psip,theta)/B0 already normalised in the input dataset (spec §6).
func (x State) Energy(eq *Equilibrium, per *perturbation.Perturbation, mu, zeta float64) float64 {
	b := eq.Bfield.B(x.Psip, x.Theta)
	phi := 0.0
	if per != nil {
		phi = per.Phi(x.Psip, x.Theta, x.Zeta)
	}
	return 0.5*x.Rho*x.Rho*b*b + mu*b + phi
}
