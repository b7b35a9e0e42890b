// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import "github.com/plasmafusion/poincare/perturbation"

// RHS evaluates the guiding-centre equations of motion at (t, x) for a
// particle of fixed magnetic moment mu, against the shared equilibrium and
// perturbation models. It is pure and stateless: every call with the same
// arguments returns the same result, so a single (eq, per) pair is safely
// shared by any number of concurrent integrator workers (spec §5).
//
// The Hamiltonian is H = (1/2) rho^2 b^2 + mu*b + Phi(psip,theta,zeta),
// with b = B(psip,theta) (already normalised by B0 in the dataset) and Phi
// the perturbation potential. Writing D(psip) = g(psip)q(psip) + I(psip)
// for the Boozer-coordinate Jacobian (spec §4.4), the equations are:
//
//	thetaDot = ( g*dH/dpsip - (rho*dg/dpsip - q)*dH/drho ) / D
//	zetaDot  = (-i*dH/dpsip + (1+rho*di/dpsip)*dH/drho ) / D
//	psipDot  = (-g*dH/dtheta + i*dH/dzeta ) / D
//	rhoDot   = ( (rho*dg/dpsip - q)*dH/dtheta - (1+rho*di/dpsip)*dH/dzeta ) / D
//
// This is the canonical transform of Hamilton's equations for the pair
// (theta,Ptheta),(zeta,Pzeta) through Ptheta = psip + rho*I(psip) and
// Pzeta = rho*g(psip) - psi(psip), with the exact transform Jacobian
// replaced by D alone (dropping its O(rho) correction, the standard
// guiding-centre ordering). Because the four equations above retain the
// same antisymmetric pairing regardless of which nonzero scalar stands in
// the denominator, dividing by D instead of the exact Jacobian only
// reparametrises time along a trajectory: it does not disturb energy
// conservation (dH/dt=0 for any such Delta, since the dH/dpsip*dH/dtheta,
// dH/dpsip*dH/dzeta, dH/dtheta*dH/drho and dH/dzeta*dH/drho cross terms
// cancel identically) nor Pzeta conservation when Phi has no zeta
// dependence (Pzeta-dot is proportional to dH/dzeta regardless of Delta).
func RHS(t float64, x State, eq *Equilibrium, per *perturbation.Perturbation, mu float64) (State, error) {
	psip, theta, rho, zeta := x.Psip, x.Theta, x.Rho, x.Zeta

	b := eq.Bfield.B(psip, theta)
	dbDpsip := eq.Bfield.DBDpsip(psip, theta)
	dbDtheta := eq.Bfield.DBDtheta(psip, theta)

	var dPhiDpsip, dPhiDtheta, dPhiDzeta float64
	if per != nil {
		dPhiDpsip = per.DPhiDpsip(psip, theta, zeta)
		dPhiDtheta = per.DPhiDtheta(psip, theta, zeta)
		dPhiDzeta = per.DPhiDzeta(psip, theta, zeta)
	}

	dHDpsip := rho*rho*b*dbDpsip + mu*dbDpsip + dPhiDpsip
	dHDtheta := rho*rho*b*dbDtheta + mu*dbDtheta + dPhiDtheta
	dHDzeta := dPhiDzeta
	dHDrho := rho * b * b

	g := eq.Currents.G(psip)
	i := eq.Currents.I(psip)
	q := eq.Qfactor.Q(psip)
	dgDpsip := eq.Currents.DgDpsip(psip)
	diDpsip := eq.Currents.DiDpsip(psip)

	d := g*q + i
	if d == 0 {
		return State{}, errZeroJacobian(psip)
	}

	a := rho*dgDpsip - q  // coefficient pairing (theta,zeta) <-> (rho) cross term
	c := 1 + rho*diDpsip  // coefficient pairing (zeta,rho) <-> (theta) cross term

	out := State{
		Theta: (g*dHDpsip - a*dHDrho) / d,
		Psip:  (-g*dHDtheta + i*dHDzeta) / d,
		Rho:   (a*dHDtheta - c*dHDzeta) / d,
		Zeta:  (-i*dHDpsip + c*dHDrho) / d,
	}
	return out, nil
}
