// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poincare

import (
	"context"

	"github.com/plasmafusion/poincare/dynamics"
	"github.com/plasmafusion/poincare/orbit"
	"github.com/plasmafusion/poincare/perturbation"
)

// Status is the Particle lifecycle tag of spec §3/§9 ("status field as
// state machine"): transitions are one-directional until the Particle
// is reset by constructing a new one.
type Status int

const (
	Initialized Status = iota
	Integrated
	Mapped
	Errored
)

func (s Status) String() string {
	switch s {
	case Initialized:
		return "Initialized"
	case Integrated:
		return "Integrated"
	case Mapped:
		return "Mapped"
	case Errored:
		return "Errored"
	}
	return "Unknown"
}

// Crossing is one recorded section crossing (spec §4.6): the full state
// at the crossing time, plus the (angle, flux) pair the mapping stores.
type Crossing struct {
	T, Theta, Psip, Rho, Zeta, Psi float64
	Angle, Flux                    float64
}

// Particle couples one InitialConditions to its integration/mapping
// results. Mutated only by Integrate/Map (spec §3).
type Particle struct {
	IC        InitialConditions
	Status    Status
	Evolution *orbit.Evolution
	Crossings []Crossing
	Err       error
}

// NewParticle builds a freshly Initialized Particle.
func NewParticle(ic InitialConditions) *Particle {
	return &Particle{IC: ic, Status: Initialized}
}

// Integrate runs the full trajectory over [t0, tEnd] and stores the
// resulting Evolution, independent of Map (spec §6's binding surface
// lists integrate and map as two distinct operations on Particle).
func (p *Particle) Integrate(eq *dynamics.Equilibrium, per *perturbation.Perturbation, tEnd float64, opts orbit.Options) error {
	g := orbit.NewIntegrator(eq, per, p.IC.Mu, opts)
	ev, err := g.Run(p.IC.T0, tEnd, p.IC.State(), nil)
	p.Evolution = ev
	if err != nil {
		p.Status = Errored
		p.Err = err
		return err
	}
	p.Status = Integrated
	return nil
}

// Map integrates the particle with the Poincaré event engine active,
// stopping once params.Intersections crossings are collected or the
// particle leaves the valid [0, psip_wall] domain. ctx is checked
// between accepted steps (spec §5); a nil ctx is treated as
// context.Background().
func (p *Particle) Map(ctx context.Context, eq *dynamics.Equilibrium, per *perturbation.Perturbation, params MappingParameters, opts orbit.Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ev, crossings, err := runMapping(ctx, eq, per, p.IC, params, opts)
	p.Evolution = ev
	p.Crossings = crossings
	if err != nil {
		p.Status = Errored
		p.Err = err
		return err
	}
	p.Status = Mapped
	return nil
}
