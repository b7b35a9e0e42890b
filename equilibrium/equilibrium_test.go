// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equilibrium

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/plasmafusion/poincare/dataset/stub"
)

func Test_equil01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("equil01. qfactor psip_wall and psi_wall")

	d := stub.New()
	q, err := NewQfactorFromData(d, "cubic")
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "psip_wall", 1e-12, q.PsipWall(), 3)
	chk.Scalar(tst, "psi_wall", 1e-9, q.PsiWall(), q.Psi(3))
	chk.Scalar(tst, "psi_wall value", 1e-9, q.PsiWall(), 1) // psi=linspace(0,1,.) at psip=3 (last knot)
}

func Test_equil02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("equil02. q_data_derived matches q at knots")

	d := stub.New()
	// the stub's linear psi profile is unrelated to its q profile; replace
	// it with psi = integral of q = psip + psip^2/6 so dpsi/dpsip == q holds
	for i, p := range d.Psip {
		d.Psi[i] = p + p*p/6
	}
	q, err := NewQfactorFromData(d, "cubic")
	if err != nil {
		tst.Fatal(err)
	}
	derived := q.QDataDerived()
	for i := 1; i < len(derived)-1; i++ {
		chk.Scalar(tst, "dpsi/dpsip ~= q", 1e-2, derived[i], q.QData()[i])
	}
}

func Test_equil03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("equil03. unknown interpolator kind is InvalidArgument-shaped")

	d := stub.New()
	if _, err := NewQfactorFromData(d, "bogus"); err == nil {
		tst.Fatal("expected error for unknown kind")
	}
}

func Test_equil04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("equil04. bfield eval returns finite values and partials")

	d := stub.New()
	// ensure B is strictly positive for this fixture (stub uses [0,1) rng)
	for i := range d.B {
		for j := range d.B[i] {
			d.B[i][j] += 0.5
		}
	}
	bf, err := NewBfieldFromData(d, "bicubic")
	if err != nil {
		tst.Fatal(err)
	}
	psip, theta := 0.015, 1.0
	for _, v := range []float64{
		bf.B(psip, theta), bf.DBDpsip(psip, theta), bf.DBDtheta(psip, theta),
		bf.D2BDpsip2(psip, theta), bf.D2BDtheta2(psip, theta), bf.D2BDpsipDtheta(psip, theta),
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			tst.Fatalf("non-finite bfield evaluation: %v", v)
		}
	}
}

func Test_equil05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("equil05. currents g and i at wall boundary")

	d := stub.New()
	c, err := NewCurrentsFromData(d, "steffen")
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "g(psip_wall)", 1e-9, c.G(c.PsipWall()), 0)
	chk.Scalar(tst, "i(psip_wall)", 1e-9, c.I(c.PsipWall()), 2)
}
