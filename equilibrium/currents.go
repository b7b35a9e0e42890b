// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equilibrium

import (
	"github.com/plasmafusion/poincare/dataset"
	"github.com/plasmafusion/poincare/interp"
)

// Currents holds g(psip) and I(psip), the covariant toroidal and poloidal
// field components in Boozer coordinates, and their derivatives.
type Currents struct {
	path     string
	kind     interp.Kind
	g        interp.Interpolator1D
	i        interp.Interpolator1D
	psipWall float64
}

// NewCurrents loads path and builds a Currents model using interpolator
// kind.
func NewCurrents(path, kind string) (*Currents, error) {
	d, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	return NewCurrentsFromData(d, kind)
}

// NewCurrentsFromData builds a Currents model from an already-loaded Data.
func NewCurrentsFromData(d *dataset.Data, kind string) (*Currents, error) {
	k, err := interp.ParseKind1D(kind)
	if err != nil {
		return nil, err
	}
	gGrid, err := interp.NewGrid1D(d.Psip, d.G)
	if err != nil {
		return nil, err
	}
	iGrid, err := interp.NewGrid1D(d.Psip, d.I)
	if err != nil {
		return nil, err
	}
	gInterp, err := interp.NewInterpolator1D(gGrid, k)
	if err != nil {
		return nil, err
	}
	iInterp, err := interp.NewInterpolator1D(iGrid, k)
	if err != nil {
		return nil, err
	}
	return &Currents{
		path: d.Path, kind: k, g: gInterp, i: iInterp,
		psipWall: d.Psip[len(d.Psip)-1],
	}, nil
}

func (o *Currents) Path() string     { return o.path }
func (o *Currents) Kind() string     { return kindName(o.kind) }
func (o *Currents) PsipWall() float64 { return o.psipWall }

// G returns g(psip).
func (o *Currents) G(psip float64) float64 { return o.g.Value(psip) }

// I returns I(psip).
func (o *Currents) I(psip float64) float64 { return o.i.Value(psip) }

// DgDpsip returns dg/dpsip.
func (o *Currents) DgDpsip(psip float64) float64 { return o.g.D1(psip) }

// DiDpsip returns dI/dpsip.
func (o *Currents) DiDpsip(psip float64) float64 { return o.i.D1(psip) }
