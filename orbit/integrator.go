// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"math"

	"github.com/cpmech/gosl/ode"
	"github.com/plasmafusion/poincare/dynamics"
	"github.com/plasmafusion/poincare/perturbation"
)

// StepFunc is invoked after each accepted step with the dense-output
// interpolant over that step. Returning stop=true, or a non-nil err,
// ends the integration early: stop=true is a clean early exit (used by
// the Poincaré event engine once N crossings are collected), err aborts
// with that error.
type StepFunc func(step *DenseStep) (stop bool, err error)

// Integrator advances one particle's guiding-centre state under a fixed
// (Equilibrium, Perturbation, mu), using gosl/ode's Dormand-Prince
// stepper. Equilibrium and Perturbation are read-only, shared
// collaborators (spec §5); Integrator itself owns a private gosl
// ode.Solver workspace and must not be shared across goroutines.
type Integrator struct {
	Eq   *dynamics.Equilibrium
	Per  *perturbation.Perturbation
	Mu   float64
	Opts Options

	last *DenseStep
}

// NewIntegrator builds an Integrator for one particle's parameters.
func NewIntegrator(eq *dynamics.Equilibrium, per *perturbation.Perturbation, mu float64, opts Options) *Integrator {
	return &Integrator{Eq: eq, Per: per, Mu: mu, Opts: opts}
}

// LastStep returns the dense-output interpolant over the most recently
// accepted step, or nil before the first step.
func (g *Integrator) LastStep() *DenseStep { return g.last }

const ndim = 4

func stateToSlice(x dynamics.State, y []float64) {
	y[0], y[1], y[2], y[3] = x.Theta, x.Psip, x.Rho, x.Zeta
}

func sliceToState(y []float64) dynamics.State {
	return dynamics.State{Theta: y[0], Psip: y[1], Rho: y[2], Zeta: y[3]}
}

// Run integrates from t0 to t1 starting at x0, calling onStep after each
// accepted step (nil means "store everything, stop only at t1"), and
// returns the resulting Evolution. A non-nil onStep may end integration
// before t1 by returning stop=true; the returned Evolution still holds
// every step stored up to that point.
func (g *Integrator) Run(t0, t1 float64, x0 dynamics.State, onStep StepFunc) (*Evolution, error) {
	// spec §7/§8 scenario 6: a t_eval span with t_end <= t0 is malformed,
	// not a request to integrate backward (Dormand-Prince here is used
	// strictly forward in time; see DESIGN.md on the round-trip property).
	if t1 <= t0 {
		return nil, ErrInvalidArgument
	}

	ev := newEvolution(256)
	nonFinite := false
	var nonFiniteT float64
	steps := 0
	var lastF dynamics.State

	fcn := func(f []float64, dt, t float64, y []float64) error {
		x := sliceToState(y)
		xdot, err := dynamics.RHS(t, x, g.Eq, g.Per, g.Mu)
		if err != nil {
			nonFinite = true
			nonFiniteT = t
			return err
		}
		if !finiteState(xdot) {
			nonFinite = true
			nonFiniteT = t
			return errNonFinite
		}
		stateToSlice(xdot, f)
		return nil
	}

	out := func(istep int, h, t float64, y []float64) error {
		steps++
		if steps > g.Opts.MaxSteps {
			return errBudget
		}
		x := sliceToState(y)
		xdot, err := dynamics.RHS(t, x, g.Eq, g.Per, g.Mu)
		if err != nil {
			nonFinite = true
			nonFiniteT = t
			return err
		}
		appendState(ev, t, x, xdot, g.Eq, g.Per, g.Mu)
		var step DenseStep
		if len(ev.T) >= 2 {
			n := len(ev.T)
			step = DenseStep{
				T0: ev.T[n-2], T1: ev.T[n-1],
				X0: dynamics.State{Theta: ev.Theta[n-2], Psip: ev.Psip[n-2], Rho: ev.Rho[n-2], Zeta: ev.Zeta[n-2]},
				X1: x,
				F1: xdot,
			}
			step.F0 = lastF
			g.last = &step
			if onStep != nil {
				stop, err := onStep(&step)
				if err != nil {
					return err
				}
				if stop {
					return errStopRequested
				}
			}
		}
		lastF = xdot
		return nil
	}

	var sol ode.Solver
	sol.Init("Dopri5", ndim, fcn, nil, nil, out)
	sol.SetTol(g.Opts.Atol, g.Opts.Rtol)
	sol.Distr = false

	y := make([]float64, ndim)
	stateToSlice(x0, y)

	first := g.Opts.FirstStep
	if first == 0 {
		first = (t1 - t0) / 1000
	}
	// seed the record with the initial point, mirroring the first `out`
	// callback invocation's shape so Evolution always starts at t0.
	x0dot, err := dynamics.RHS(t0, x0, g.Eq, g.Per, g.Mu)
	if err == nil {
		appendState(ev, t0, x0, x0dot, g.Eq, g.Per, g.Mu)
		lastF = x0dot
	}

	solveErr := sol.Solve(y, t0, t1, first, false)
	ev.StepsTaken = steps

	if nonFinite {
		return ev, &IntegrationError{Kind: KindNonFiniteDerivative, T: nonFiniteT, Msg: "right-hand side evaluated to a non-finite value"}
	}
	if solveErr == errBudget {
		return ev, &IntegrationError{Kind: KindBudgetExceeded, T: t1, Msg: "max_steps exceeded"}
	}
	if solveErr == errStopRequested {
		return ev, nil
	}
	if solveErr != nil {
		return ev, &IntegrationError{Kind: KindStepUnderflow, T: t1, Msg: solveErr.Error()}
	}
	return ev, nil
}

func finiteState(x dynamics.State) bool {
	for _, v := range []float64{x.Theta, x.Psip, x.Rho, x.Zeta} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func appendState(ev *Evolution, t float64, x, xdot dynamics.State, eq *dynamics.Equilibrium, per *perturbation.Perturbation, mu float64) {
	ev.T = append(ev.T, t)
	ev.Theta = append(ev.Theta, x.Theta)
	ev.Psip = append(ev.Psip, x.Psip)
	ev.Psi = append(ev.Psi, eq.Qfactor.Psi(x.Psip))
	ev.Rho = append(ev.Rho, x.Rho)
	ev.Zeta = append(ev.Zeta, x.Zeta)
	ev.Ptheta = append(ev.Ptheta, x.Ptheta(eq))
	ev.Pzeta = append(ev.Pzeta, x.Pzeta(eq))
	ev.Energy = append(ev.Energy, x.Energy(eq, per, mu, x.Zeta))
	ev.StepsStored++
}
