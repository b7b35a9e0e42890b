// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perturbation

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Perturbation is an ordered superposition of Harmonics. The zero value
// (no harmonics) is a valid, inert perturbation: every accessor returns 0,
// matching spec §8's "unperturbed run" test scenario.
type Perturbation struct {
	harmonics []*Harmonic
}

// NewPerturbation wraps an ordered list of Harmonics.
func NewPerturbation(harmonics []*Harmonic) *Perturbation {
	return &Perturbation{harmonics: harmonics}
}

// Len returns the number of harmonics.
func (p *Perturbation) Len() int { return len(p.harmonics) }

// At returns the i-th harmonic (read-only indexable, spec §3).
func (p *Perturbation) At(i int) *Harmonic { return p.harmonics[i] }

func (p *Perturbation) Phi(psip, theta, zeta float64) float64 {
	var sum float64
	for _, h := range p.harmonics {
		sum += h.H(psip, theta, zeta)
	}
	return sum
}

func (p *Perturbation) DPhiDpsip(psip, theta, zeta float64) float64 {
	var sum float64
	for _, h := range p.harmonics {
		sum += h.DHDpsip(psip, theta, zeta)
	}
	return sum
}

func (p *Perturbation) DPhiDtheta(psip, theta, zeta float64) float64 {
	var sum float64
	for _, h := range p.harmonics {
		sum += h.DHDtheta(psip, theta, zeta)
	}
	return sum
}

func (p *Perturbation) DPhiDzeta(psip, theta, zeta float64) float64 {
	var sum float64
	for _, h := range p.harmonics {
		sum += h.DHDzeta(psip, theta, zeta)
	}
	return sum
}

// DPhiDt is always 0: every harmonic is static (spec §4.3).
func (p *Perturbation) DPhiDt(psip, theta, zeta float64) float64 { return 0 }

// Prms concatenates every harmonic's named-parameter record, prefixed
// with its index, for config echoing and logging.
func (p *Perturbation) Prms() fun.Prms {
	var out fun.Prms
	for i, h := range p.harmonics {
		for _, prm := range h.Prms() {
			out = append(out, &fun.Prm{N: io.Sf("harmonic%d.%s", i, prm.N), V: prm.V})
		}
	}
	return out
}
