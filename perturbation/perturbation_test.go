// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perturbation

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/plasmafusion/poincare/dataset/stub"
)

func Test_harmonic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("harmonic01. sentinel amplitude extraction for mode (2,3)")

	d := stub.New()
	h, err := NewHarmonicFromData(d, "akima", 2, 3, 0)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "alpha_data[0]", 1e-12, h.AlphaData()[0], 1111)
	chk.Scalar(tst, "alpha_data[-1]", 1e-12, h.AlphaData()[len(h.AlphaData())-1], 11111)
}

func Test_harmonic02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("harmonic02. eval returns finite scalars")

	d := stub.New()
	h, err := NewHarmonicFromData(d, "akima", 1, 2, 0.3)
	if err != nil {
		tst.Fatal(err)
	}
	psip, theta, zeta := 0.015, 1.0, 2.0
	for _, v := range []float64{
		h.H(psip, theta, zeta), h.DHDpsip(psip, theta, zeta),
		h.DHDtheta(psip, theta, zeta), h.DHDzeta(psip, theta, zeta), h.DHDt(psip, theta, zeta),
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			tst.Fatalf("non-finite harmonic evaluation: %v", v)
		}
	}
	chk.Scalar(tst, "dh/dt static", 0, h.DHDt(psip, theta, zeta), 0)
}

func Test_harmonic03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("harmonic03. unknown mode number is an error")

	d := stub.New()
	if _, err := NewHarmonicFromData(d, "akima", 99, 3, 0); err == nil {
		tst.Fatal("expected error for unknown mode m")
	}
}

func Test_perturbation01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("perturbation01. empty perturbation is inert")

	p := NewPerturbation(nil)
	chk.Scalar(tst, "phi", 0, p.Phi(0.1, 1, 2), 0)
	chk.Scalar(tst, "dphi/dpsip", 0, p.DPhiDpsip(0.1, 1, 2), 0)
	chk.Scalar(tst, "dphi/dtheta", 0, p.DPhiDtheta(0.1, 1, 2), 0)
	chk.Scalar(tst, "dphi/dzeta", 0, p.DPhiDzeta(0.1, 1, 2), 0)
}

func Test_perturbation02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("perturbation02. derivatives sum linearly over harmonics")

	d := stub.New()
	h1, err := NewHarmonicFromData(d, "akima", 1, 2, 0)
	if err != nil {
		tst.Fatal(err)
	}
	h2, err := NewHarmonicFromData(d, "akima", 1, 3, 0.5)
	if err != nil {
		tst.Fatal(err)
	}
	p := NewPerturbation([]*Harmonic{h1, h2})
	psip, theta, zeta := 0.2, 0.5, 1.1
	chk.Scalar(tst, "phi sum", 1e-12, p.Phi(psip, theta, zeta), h1.H(psip, theta, zeta)+h2.H(psip, theta, zeta))
	chk.Scalar(tst, "dphi/dpsip sum", 1e-12, p.DPhiDpsip(psip, theta, zeta), h1.DHDpsip(psip, theta, zeta)+h2.DHDpsip(psip, theta, zeta))
	chk.Scalar(tst, "dphi/dtheta sum", 1e-12, p.DPhiDtheta(psip, theta, zeta), h1.DHDtheta(psip, theta, zeta)+h2.DHDtheta(psip, theta, zeta))
	chk.Scalar(tst, "dphi/dzeta sum", 1e-12, p.DPhiDzeta(psip, theta, zeta), h1.DHDzeta(psip, theta, zeta)+h2.DHDzeta(psip, theta, zeta))
	chk.IntAssert(p.Len(), 2)
}

func Test_perturbation03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("perturbation03. Prms reports mode numbers and phase, prefixed per harmonic")

	d := stub.New()
	h1, err := NewHarmonicFromData(d, "akima", 1, 2, 0)
	if err != nil {
		tst.Fatal(err)
	}
	h2, err := NewHarmonicFromData(d, "akima", 1, 3, 0.5)
	if err != nil {
		tst.Fatal(err)
	}
	p := NewPerturbation([]*Harmonic{h1, h2})
	prms := p.Prms()
	if len(prms) != 8 {
		tst.Fatalf("expected 4 params per harmonic * 2 harmonics = 8, got %d", len(prms))
	}
	found := false
	for _, prm := range prms {
		if prm.N == "harmonic1.phase_average" {
			found = true
			chk.Scalar(tst, "harmonic1.phase_average", 1e-12, prm.V, 0.5)
		}
	}
	if !found {
		tst.Fatal("expected harmonic1.phase_average in Prms()")
	}
}
