// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equilibrium

import (
	"github.com/cpmech/gosl/chk"
	"github.com/plasmafusion/poincare/dataset"
	"github.com/plasmafusion/poincare/interp"
)

// Bfield holds the 2D interpolators for B(psip,theta), R(psip,theta),
// Z(psip,theta) over a periodic poloidal grid, plus the scalars baxis,
// raxis, psip_wall, psi_wall. R and Z are exposed for plotting (out of
// scope for this core) and are otherwise unused by the dynamics.
type Bfield struct {
	path     string
	b        interp.Interpolator2D
	r        interp.Interpolator2D
	z        interp.Interpolator2D
	baxis    float64
	raxis    float64
	psipWall float64
	psiWall  float64

	psipData []float64
	thetaData []float64
	bData    [][]float64
	rData    [][]float64
	zData    [][]float64
}

// NewBfield loads path and builds a Bfield model. kind is accepted for API
// symmetry with the other constructors but must be "bicubic" (spec §4.2:
// "the 2D model always uses bicubic").
func NewBfield(path, kind string) (*Bfield, error) {
	d, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	return NewBfieldFromData(d, kind)
}

// NewBfieldFromData builds a Bfield model from an already-loaded Data.
func NewBfieldFromData(d *dataset.Data, kind string) (*Bfield, error) {
	if kind != "bicubic" {
		return nil, chk.Err("equilibrium: Bfield: interpolator kind must be \"bicubic\", got %q", kind)
	}
	bGrid, err := interp.NewGrid2D(d.Psip, d.Theta, d.B)
	if err != nil {
		return nil, err
	}
	rGrid, err := interp.NewGrid2D(d.Psip, d.Theta, d.R)
	if err != nil {
		return nil, err
	}
	zGrid, err := interp.NewGrid2D(d.Psip, d.Theta, d.Z)
	if err != nil {
		return nil, err
	}
	bInterp, err := interp.NewBicubic(bGrid)
	if err != nil {
		return nil, err
	}
	rInterp, err := interp.NewBicubic(rGrid)
	if err != nil {
		return nil, err
	}
	zInterp, err := interp.NewBicubic(zGrid)
	if err != nil {
		return nil, err
	}
	for _, row := range d.B {
		for _, v := range row {
			if v <= 0 {
				return nil, chk.Err("equilibrium: Bfield: B must be > 0 everywhere, found %g", v)
			}
		}
	}
	psipWall := d.Psip[len(d.Psip)-1]
	psiWall := d.Psi[len(d.Psi)-1]
	return &Bfield{
		path: d.Path, b: bInterp, r: rInterp, z: zInterp,
		baxis: d.Baxis, raxis: d.Raxis, psipWall: psipWall, psiWall: psiWall,
		psipData: d.Psip, thetaData: d.Theta,
		bData: d.B, rData: d.R, zData: d.Z,
	}, nil
}

func (o *Bfield) Path() string      { return o.path }
func (o *Bfield) Baxis() float64    { return o.baxis }
func (o *Bfield) Raxis() float64    { return o.raxis }
func (o *Bfield) PsipWall() float64 { return o.psipWall }
func (o *Bfield) PsiWall() float64  { return o.psiWall }

// B returns B(psip,theta).
func (o *Bfield) B(psip, theta float64) float64 { return o.b.Value(psip, theta) }

// DBDpsip returns dB/dpsip.
func (o *Bfield) DBDpsip(psip, theta float64) float64 { return o.b.DDx(psip, theta) }

// DBDtheta returns dB/dtheta.
func (o *Bfield) DBDtheta(psip, theta float64) float64 { return o.b.DDy(psip, theta) }

// D2BDpsip2 returns d2B/dpsip2.
func (o *Bfield) D2BDpsip2(psip, theta float64) float64 { return o.b.D2Dx2(psip, theta) }

// D2BDtheta2 returns d2B/dtheta2.
func (o *Bfield) D2BDtheta2(psip, theta float64) float64 { return o.b.D2Dy2(psip, theta) }

// D2BDpsipDtheta returns the mixed partial d2B/(dpsip dtheta).
func (o *Bfield) D2BDpsipDtheta(psip, theta float64) float64 { return o.b.D2DxDy(psip, theta) }

// R returns R(psip,theta) (lab-frame major radius), for plotting.
func (o *Bfield) R(psip, theta float64) float64 { return o.r.Value(psip, theta) }

// Z returns Z(psip,theta) (lab-frame height), for plotting.
func (o *Bfield) Z(psip, theta float64) float64 { return o.z.Value(psip, theta) }

// PsipData returns the raw psip knot array.
func (o *Bfield) PsipData() []float64 { return o.psipData }

// ThetaData returns the raw theta knot array.
func (o *Bfield) ThetaData() []float64 { return o.thetaData }

// BData returns the raw B grid, for plotting.
func (o *Bfield) BData() [][]float64 { return o.bData }

// RData returns the raw R grid, for plotting.
func (o *Bfield) RData() [][]float64 { return o.rData }

// ZData returns the raw Z grid, for plotting.
func (o *Bfield) ZData() [][]float64 { return o.zData }
