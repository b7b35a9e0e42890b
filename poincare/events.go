// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poincare

import (
	"context"
	"math"

	"github.com/cpmech/gosl/num"
	"github.com/plasmafusion/poincare/dynamics"
	"github.com/plasmafusion/poincare/orbit"
	"github.com/plasmafusion/poincare/perturbation"
)

const twoPi = 2 * math.Pi

// maxMappingSpan bounds how far a single Map call integrates while
// searching for params.Intersections crossings; spec §4.6 leaves this
// open ("integration terminates when N crossings have been collected or
// when the particle leaves the valid domain"), so a generous but finite
// span guards against a particle that neither leaves the domain nor
// crosses the section (e.g. a section angle its orbit never reaches).
const maxMappingSpan = 1e6

// sectionValue returns the raw (unwrapped) section coordinate used for
// crossing detection: theta-alpha for ConstTheta, zeta-alpha for
// ConstZeta. It is NOT reduced modulo 2*pi, since theta/zeta wind up
// without bound as the particle circulates; a crossing is any point
// where this value passes through an integer multiple of 2*pi.
func sectionValue(x dynamics.State, params MappingParameters) float64 {
	if params.Section == ConstZeta {
		return x.Zeta - params.Alpha
	}
	return x.Theta - params.Alpha
}

// makeCrossing builds the recorded Crossing tuple at time t, state x
// (spec §4.6: store the complementary angle, wrapped, and the flux
// label matching the section).
func makeCrossing(eq *dynamics.Equilibrium, params MappingParameters, t float64, x dynamics.State) Crossing {
	psi := eq.Qfactor.Psi(x.Psip)
	c := Crossing{T: t, Theta: x.Theta, Psip: x.Psip, Rho: x.Rho, Zeta: x.Zeta, Psi: psi}
	if params.Section == ConstTheta {
		c.Angle = wrap(x.Zeta)
		c.Flux = x.Psip
	} else {
		c.Angle = wrap(x.Theta)
		c.Flux = psi
	}
	return c
}

// runMapping drives one particle's integration with the Poincaré event
// engine active: after each accepted step it checks the domain and
// brackets any increasing-direction crossings of the section, refining
// each with Brent's method to 1e-12 in t (spec §4.6).
func runMapping(ctx context.Context, eq *dynamics.Equilibrium, per *perturbation.Perturbation, ic InitialConditions, params MappingParameters, opts orbit.Options) (*orbit.Evolution, []Crossing, error) {
	psipWall := eq.Currents.PsipWall()
	var crossings []Crossing
	var leftDomain bool
	var leftPsip float64
	var cancelled bool

	onStep := func(step *orbit.DenseStep) (bool, error) {
		if ctx.Err() != nil {
			cancelled = true
			return true, nil
		}
		if step.X1.Psip < 0 || step.X1.Psip > psipWall {
			leftDomain = true
			leftPsip = step.X1.Psip
			return true, nil
		}

		s0 := sectionValue(step.X0, params)
		s1 := sectionValue(step.X1, params)
		if s1 <= s0 {
			return false, nil
		}
		kLo := int(math.Ceil(s0 / twoPi))
		kHi := int(math.Floor(s1 / twoPi))
		for k := kLo; k <= kHi; k++ {
			target := twoPi * float64(k)
			root, err := bracketRoot(step, params, target)
			if err != nil {
				return false, err
			}
			crossings = append(crossings, makeCrossing(eq, params, root, step.Eval(root)))
			if len(crossings) >= params.Intersections {
				return true, nil
			}
		}
		return false, nil
	}

	g := orbit.NewIntegrator(eq, per, ic.Mu, opts)
	ev, err := g.Run(ic.T0, ic.T0+maxMappingSpan, ic.State(), onStep)
	if err != nil {
		return ev, crossings, err
	}
	if cancelled {
		return ev, crossings, ErrCancelled
	}
	if leftDomain {
		return ev, crossings, &MappingError{Reason: ReasonLeftDomain, Psip: leftPsip}
	}
	return ev, crossings, nil
}

// bracketRoot finds t in [step.T0, step.T1] with sectionValue(step.Eval(t)) == target,
// via gosl/num's Brent bracketed root-finder, to a tolerance of 1e-12 in t.
func bracketRoot(step *orbit.DenseStep, params MappingParameters, target float64) (float64, error) {
	f := func(t float64) float64 {
		return sectionValue(step.Eval(t), params) - target
	}
	var solver num.Brent
	solver.Init(f, nil)
	root, err := solver.Root(step.T0, step.T1)
	if err != nil {
		return 0, err
	}
	return root, nil
}
