// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package equilibrium implements the three axisymmetric equilibrium
// models of spec §4.2: Qfactor, Currents, Bfield. Each owns its
// interpolator(s) and the raw grid it was built from; all are read-only
// after construction and safe for concurrent, shared use by many
// integrator workers.
package equilibrium

import (
	"github.com/plasmafusion/poincare/dataset"
	"github.com/plasmafusion/poincare/interp"
)

// Qfactor holds q(psip) and psi(psip), plus the wall boundary values.
type Qfactor struct {
	path      string
	kind      interp.Kind
	q         interp.Interpolator1D
	psi       interp.Interpolator1D
	psipWall  float64
	psiWall   float64
	psipData  []float64
	psiData   []float64
	qData     []float64
}

// NewQfactor loads path and builds a Qfactor using interpolator kind.
func NewQfactor(path, kind string) (*Qfactor, error) {
	d, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	return NewQfactorFromData(d, kind)
}

// NewQfactorFromData builds a Qfactor from an already-loaded Data, for use
// by tests and by callers that share one Data across several models.
func NewQfactorFromData(d *dataset.Data, kind string) (*Qfactor, error) {
	k, err := interp.ParseKind1D(kind)
	if err != nil {
		return nil, err
	}
	qGrid, err := interp.NewGrid1D(d.Psip, d.Q)
	if err != nil {
		return nil, err
	}
	psiGrid, err := interp.NewGrid1D(d.Psip, d.Psi)
	if err != nil {
		return nil, err
	}
	qInterp, err := interp.NewInterpolator1D(qGrid, k)
	if err != nil {
		return nil, err
	}
	psiInterp, err := interp.NewInterpolator1D(psiGrid, k)
	if err != nil {
		return nil, err
	}
	psipWall := d.Psip[len(d.Psip)-1]
	return &Qfactor{
		path: d.Path, kind: k, q: qInterp, psi: psiInterp,
		psipWall: psipWall, psiWall: psiInterp.Value(psipWall),
		psipData: d.Psip, psiData: d.Psi, qData: d.Q,
	}, nil
}

// Path returns the file path the model was built from.
func (o *Qfactor) Path() string { return o.path }

// Kind returns the interpolator kind name.
func (o *Qfactor) Kind() string { return kindName(o.kind) }

// PsipWall is the outer boundary flux value read from the file.
func (o *Qfactor) PsipWall() float64 { return o.psipWall }

// PsiWall is psi(psip_wall).
func (o *Qfactor) PsiWall() float64 { return o.psiWall }

// Q returns q(psip).
func (o *Qfactor) Q(psip float64) float64 { return o.q.Value(psip) }

// Psi returns psi(psip).
func (o *Qfactor) Psi(psip float64) float64 { return o.psi.Value(psip) }

// DPsiDPsip returns dpsi/dpsip, the "derived" q profile of spec §4.2
// (q_data_derived), which should agree with Q at the knots to a tabulated
// tolerance (spec §8).
func (o *Qfactor) DPsiDPsip(psip float64) float64 { return o.psi.D1(psip) }

// PsipData returns the raw psip knot array (read-only).
func (o *Qfactor) PsipData() []float64 { return o.psipData }

// PsiData returns the raw psi value array (read-only).
func (o *Qfactor) PsiData() []float64 { return o.psiData }

// QData returns the raw q value array (read-only).
func (o *Qfactor) QData() []float64 { return o.qData }

// QDataDerived returns dpsi/dpsip evaluated at every psip knot.
func (o *Qfactor) QDataDerived() []float64 {
	out := make([]float64, len(o.psipData))
	for i, p := range o.psipData {
		out[i] = o.psi.D1(p)
	}
	return out
}

func kindName(k interp.Kind) string {
	switch k {
	case interp.Akima:
		return "akima"
	case interp.Cubic:
		return "cubic"
	case interp.Steffen:
		return "steffen"
	}
	return "unknown"
}
