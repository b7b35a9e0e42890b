// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/plasmafusion/poincare/dataset/stub"
	"github.com/plasmafusion/poincare/dynamics"
	"github.com/plasmafusion/poincare/equilibrium"
	"github.com/plasmafusion/poincare/perturbation"
)

func buildEquilibrium(tst *testing.T) *dynamics.Equilibrium {
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
	return &dynamics.Equilibrium{Qfactor: q, Currents: c, Bfield: b}
}

func Test_orbit01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orbit01. unperturbed run conserves Pzeta and energy (spec scenario 3)")

	eq := buildEquilibrium(tst)
	per := perturbation.NewPerturbation(nil)
	g := NewIntegrator(eq, per, 0, DefaultOptions())

	x0 := dynamics.State{Theta: 3.14, Psip: 0.5 * eq.Qfactor.PsipWall(), Rho: 0.001, Zeta: 0}
	ev, err := g.Run(0, 1.0, x0, nil)
	if err != nil {
		tst.Fatal(err)
	}
	if len(ev.T) < 2 {
		tst.Fatal("expected more than one stored step")
	}
	pz0 := ev.Pzeta[0]
	for i, pz := range ev.Pzeta {
		if math.Abs(pz-pz0) > 1e-6 {
			tst.Fatalf("Pzeta drifted at stored point %d: %g vs %g", i, pz, pz0)
		}
	}
	e0 := ev.Energy[0]
	for i, e := range ev.Energy {
		if math.Abs(e-e0) > 10*g.Opts.Rtol {
			tst.Fatalf("energy drifted at stored point %d: %g vs %g", i, e, e0)
		}
	}
}

func Test_orbit02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orbit02. t_end <= t0 is InvalidArgument (spec scenario 6)")

	eq := buildEquilibrium(tst)
	per := perturbation.NewPerturbation(nil)
	g := NewIntegrator(eq, per, 0, DefaultOptions())
	x0 := dynamics.State{Theta: 0, Psip: 1, Rho: 0.001, Zeta: 0}
	if _, err := g.Run(0, -1, x0, nil); err != ErrInvalidArgument {
		tst.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func Test_orbit03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orbit03. onStep can stop integration early")

	eq := buildEquilibrium(tst)
	per := perturbation.NewPerturbation(nil)
	g := NewIntegrator(eq, per, 0, DefaultOptions())
	x0 := dynamics.State{Theta: 0, Psip: 1, Rho: 0.001, Zeta: 0}

	calls := 0
	ev, err := g.Run(0, 10, x0, func(step *DenseStep) (bool, error) {
		calls++
		return calls >= 3, nil
	})
	if err != nil {
		tst.Fatal(err)
	}
	if calls != 3 {
		tst.Fatalf("expected exactly 3 onStep calls, got %d", calls)
	}
	if ev.T[len(ev.T)-1] >= 10 {
		tst.Fatal("expected early stop before t=10")
	}
}

func Test_orbit04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orbit04. dense step interpolates the endpoints exactly")

	eq := buildEquilibrium(tst)
	per := perturbation.NewPerturbation(nil)
	g := NewIntegrator(eq, per, 0, DefaultOptions())
	x0 := dynamics.State{Theta: 0.2, Psip: 1, Rho: 0.001, Zeta: 0}

	var captured *DenseStep
	_, err := g.Run(0, 1, x0, func(step *DenseStep) (bool, error) {
		captured = step
		return true, nil
	})
	if err != nil {
		tst.Fatal(err)
	}
	if captured == nil {
		tst.Fatal("expected a captured dense step")
	}
	x0interp := captured.Eval(captured.T0)
	chk.Scalar(tst, "theta at T0", 1e-9, x0interp.Theta, captured.X0.Theta)
	x1interp := captured.Eval(captured.T1)
	chk.Scalar(tst, "theta at T1", 1e-9, x1interp.Theta, captured.X1.Theta)
}

func Test_orbit05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orbit05. IndicesNear locates stored steps nearest requested report times")

	eq := buildEquilibrium(tst)
	per := perturbation.NewPerturbation(nil)
	g := NewIntegrator(eq, per, 0, DefaultOptions())
	x0 := dynamics.State{Theta: 0, Psip: 1, Rho: 0.001, Zeta: 0}

	ev, err := g.Run(0, 1.0, x0, nil)
	if err != nil {
		tst.Fatal(err)
	}

	idx := ev.IndicesNear([]float64{0, ev.T[len(ev.T)-1]}, 1e-6)
	if len(idx) != 2 {
		tst.Fatalf("expected 2 indices, got %d", len(idx))
	}
	if idx[0] != 0 {
		tst.Fatalf("expected index 0 nearest t=0, got %d", idx[0])
	}
	if idx[1] != len(ev.T)-1 {
		tst.Fatalf("expected last index nearest final t, got %d", idx[1])
	}
}
