// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package perturbation implements the harmonic perturbation model of spec
// §4.3: a single Harmonic contributes
//
//	h(psip, theta, zeta, t) = alpha(psip) * cos(m*theta - n*zeta + phi0)
//
// and a Perturbation is an ordered sum of Harmonics.
package perturbation

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/plasmafusion/poincare/dataset"
	"github.com/plasmafusion/poincare/interp"
)

// Harmonic holds one perturbation mode (m,n) with amplitude profile
// alpha(psip) and constant phase phi0.
type Harmonic struct {
	path     string
	kind     string
	m, n     int
	phase    float64
	alpha    interp.Interpolator1D
	amax     float64
	psipWall float64
	psipData []float64
	alphaData []float64
}

// NewHarmonic loads path and builds a Harmonic for mode numbers (m,n) with
// constant phase (default 0, spec §6).
func NewHarmonic(path, kind string, m, n int, phase float64) (*Harmonic, error) {
	d, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	return NewHarmonicFromData(d, kind, m, n, phase)
}

// NewHarmonicFromData builds a Harmonic from an already-loaded Data,
// extracting the amplitude profile alpha(psip) for mode (m,n) from the
// (Nm,Nn,Npsi) alphas array.
func NewHarmonicFromData(d *dataset.Data, kind string, m, n int, phase float64) (*Harmonic, error) {
	k, err := interp.ParseKind1D(kind)
	if err != nil {
		return nil, err
	}
	mi := indexOf(d.M, m)
	if mi < 0 {
		return nil, chk.Err("perturbation: mode number m=%d not present in dataset", m)
	}
	ni := indexOf(d.N, n)
	if ni < 0 {
		return nil, chk.Err("perturbation: mode number n=%d not present in dataset", n)
	}
	alphaData := d.Alphas[mi][ni]
	grid, err := interp.NewGrid1D(d.Psip, alphaData)
	if err != nil {
		return nil, err
	}
	alphaInterp, err := interp.NewInterpolator1D(grid, k)
	if err != nil {
		return nil, err
	}
	amax := 0.0
	for _, v := range alphaData {
		if math.Abs(v) > amax {
			amax = math.Abs(v)
		}
	}
	return &Harmonic{
		path: d.Path, kind: kind, m: m, n: n, phase: phase,
		alpha: alphaInterp, amax: amax,
		psipWall: d.Psip[len(d.Psip)-1],
		psipData: d.Psip, alphaData: alphaData,
	}, nil
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func (h *Harmonic) Path() string       { return h.path }
func (h *Harmonic) Kind() string       { return h.kind }
func (h *Harmonic) M() int             { return h.m }
func (h *Harmonic) N() int             { return h.n }
func (h *Harmonic) PhaseAverage() float64 { return h.phase }
func (h *Harmonic) Amax() float64      { return h.amax }
func (h *Harmonic) PsipWall() float64  { return h.psipWall }
func (h *Harmonic) PsipData() []float64  { return h.psipData }
func (h *Harmonic) AlphaData() []float64 { return h.alphaData }

// Prms reports the mode's scalar parameters (mode numbers, phase and amax) in
// the named-parameter record shape gofem's material models use for
// introspection and logging (fun.Prms), rather than a bespoke struct.
func (h *Harmonic) Prms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "m", V: float64(h.m)},
		&fun.Prm{N: "n", V: float64(h.n)},
		&fun.Prm{N: "phase_average", V: h.phase},
		&fun.Prm{N: "amax", V: h.amax},
	}
}

// Alpha returns alpha(psip).
func (h *Harmonic) Alpha(psip float64) float64 { return h.alpha.Value(psip) }

// phaseArg returns the angular phase m*theta - n*zeta + phi0.
func (h *Harmonic) phaseArg(theta, zeta float64) float64 {
	return float64(h.m)*theta - float64(h.n)*zeta + h.phase
}

// H returns h(psip,theta,zeta).
func (h *Harmonic) H(psip, theta, zeta float64) float64 {
	return h.alpha.Value(psip) * math.Cos(h.phaseArg(theta, zeta))
}

// DHDpsip returns dh/dpsip = alpha'(psip) * cos(phase).
func (h *Harmonic) DHDpsip(psip, theta, zeta float64) float64 {
	return h.alpha.D1(psip) * math.Cos(h.phaseArg(theta, zeta))
}

// DHDtheta returns dh/dtheta = -m * alpha(psip) * sin(phase).
func (h *Harmonic) DHDtheta(psip, theta, zeta float64) float64 {
	return -float64(h.m) * h.alpha.Value(psip) * math.Sin(h.phaseArg(theta, zeta))
}

// DHDzeta returns dh/dzeta = n * alpha(psip) * sin(phase).
func (h *Harmonic) DHDzeta(psip, theta, zeta float64) float64 {
	return float64(h.n) * h.alpha.Value(psip) * math.Sin(h.phaseArg(theta, zeta))
}

// DHDt returns dh/dt = 0 for this static perturbation (spec §4.3).
func (h *Harmonic) DHDt(psip, theta, zeta float64) float64 { return 0 }
