// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poincare

import (
	"context"
	"runtime"
	"sync"

	"github.com/plasmafusion/poincare/dynamics"
	"github.com/plasmafusion/poincare/orbit"
	"github.com/plasmafusion/poincare/perturbation"
)

// Poincare is the parallel orchestrator of spec §4.7: an ensemble of
// InitialConditions mapped against one MappingParameters.
type Poincare struct {
	InitialConditions []InitialConditions
	Params            MappingParameters
}

// NewPoincare builds a Poincare ensemble.
func NewPoincare(ics []InitialConditions, params MappingParameters) *Poincare {
	return &Poincare{InitialConditions: ics, Params: params}
}

// Run maps every particle independently on a pool of
// min(runtime.GOMAXPROCS(0), n) worker goroutines that take particle
// indices from a buffered job channel (mirroring the buffered-channel
// fan-out/fan-in pattern gofem's own parallel analysis tests use), and
// returns the resulting Particles in input order
// regardless of completion order (spec §4.7, §5). ctx is checked
// between accepted steps in each worker; a nil ctx runs uncancellable.
func (pc *Poincare) Run(ctx context.Context, eq *dynamics.Equilibrium, per *perturbation.Perturbation, opts orbit.Options) []*Particle {
	if ctx == nil {
		ctx = context.Background()
	}

	n := len(pc.InitialConditions)
	particles := make([]*Particle, n)

	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				p := NewParticle(pc.InitialConditions[i])
				p.Map(ctx, eq, per, pc.Params, opts)
				particles[i] = p
			}
		}()
	}
	wg.Wait()

	return particles
}

// Angles returns the per-particle angle arrays, in input order, one
// slice per particle (spec §3's `angles[i]`).
func (pc *Poincare) Angles(particles []*Particle) [][]float64 {
	out := make([][]float64, len(particles))
	for i, p := range particles {
		angles := make([]float64, len(p.Crossings))
		for j, c := range p.Crossings {
			angles[j] = c.Angle
		}
		out[i] = angles
	}
	return out
}

// Fluxes returns the per-particle flux arrays, in input order, one
// slice per particle (spec §3's `fluxes[i]`).
func (pc *Poincare) Fluxes(particles []*Particle) [][]float64 {
	out := make([][]float64, len(particles))
	for i, p := range particles {
		fluxes := make([]float64, len(p.Crossings))
		for j, c := range p.Crossings {
			fluxes[j] = c.Flux
		}
		out[i] = fluxes
	}
	return out
}
