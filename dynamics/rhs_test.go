// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/plasmafusion/poincare/dataset/stub"
	"github.com/plasmafusion/poincare/equilibrium"
	"github.com/plasmafusion/poincare/perturbation"
)

func buildEquilibrium(tst *testing.T) *Equilibrium {
	d := stub.New()
	for i := range d.B {
		for j := range d.B[i] {
			d.B[i][j] += 0.5
		}
	}
	q, err := equilibrium.NewQfactorFromData(d, "cubic")
	if err != nil {
		tst.Fatal(err)
	}
	c, err := equilibrium.NewCurrentsFromData(d, "steffen")
	if err != nil {
		tst.Fatal(err)
	}
	b, err := equilibrium.NewBfieldFromData(d, "bicubic")
	if err != nil {
		tst.Fatal(err)
	}
	return &Equilibrium{Qfactor: q, Currents: c, Bfield: b}
}

func Test_rhs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rhs01. RHS returns finite derivatives everywhere")

	eq := buildEquilibrium(tst)
	x := State{Theta: 1.0, Psip: 1.2, Rho: 0.001, Zeta: 0.4}
	xdot, err := RHS(0, x, eq, nil, 0)
	if err != nil {
		tst.Fatal(err)
	}
	for _, v := range []float64{xdot.Theta, xdot.Psip, xdot.Rho, xdot.Zeta} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			tst.Fatalf("non-finite derivative: %v", v)
		}
	}
}

func Test_rhs02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rhs02. unperturbed, mu=0: dH/dzeta is zero so Pzeta-dot is zero")

	eq := buildEquilibrium(tst)
	x := State{Theta: 0.8, Psip: 1.5, Rho: 0.001, Zeta: 1.1}
	xdot, err := RHS(0, x, eq, nil, 0)
	if err != nil {
		tst.Fatal(err)
	}
	// Pzeta-dot = rhoDot*g + psipDot*(rho*dg/dpsip - q); check it vanishes
	g := eq.Currents.G(x.Psip)
	dg := eq.Currents.DgDpsip(x.Psip)
	q := eq.Qfactor.Q(x.Psip)
	pzetaDot := xdot.Rho*g + xdot.Psip*(x.Rho*dg-q)
	chk.Scalar(tst, "pzeta_dot", 1e-9, pzetaDot, 0)
}

func Test_rhs03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rhs03. energy is stationary under the flow (dH/dt=0 identity)")

	eq := buildEquilibrium(tst)
	per := perturbation.NewPerturbation(nil)
	x := State{Theta: 0.5, Psip: 1.0, Rho: 0.002, Zeta: 0.3}
	xdot, err := RHS(0, x, eq, per, 0.1)
	if err != nil {
		tst.Fatal(err)
	}

	const h = 1e-6
	eBase := x.Energy(eq, per, 0.1, x.Zeta)
	xPlus := State{
		Theta: x.Theta + h*xdot.Theta,
		Psip:  x.Psip + h*xdot.Psip,
		Rho:   x.Rho + h*xdot.Rho,
		Zeta:  x.Zeta + h*xdot.Zeta,
	}
	ePlus := xPlus.Energy(eq, per, 0.1, xPlus.Zeta)
	chk.Scalar(tst, "energy drift over one Euler micro-step", 1e-8, (ePlus-eBase)/h, 0)
}

func Test_rhs04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rhs04. degenerate Jacobian g*q+i=0 is reported, not silently divided")

	eq := buildEquilibrium(tst)
	// construct an equilibrium whose currents vanish identically so D=0
	d := stub.New()
	for i := range d.G {
		d.G[i] = 0
		d.I[i] = 0
	}
	c, err := equilibrium.NewCurrentsFromData(d, "steffen")
	if err != nil {
		tst.Fatal(err)
	}
	eq.Currents = c
	_, err = RHS(0, State{Theta: 0.5, Psip: 1.0, Rho: 0, Zeta: 0}, eq, nil, 0)
	if err == nil {
		tst.Fatal("expected error for degenerate Jacobian")
	}
}
