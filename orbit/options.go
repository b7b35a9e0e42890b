// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package orbit implements the adaptive ODE integrator of spec §4.5: a
// Dormand-Prince stepper (via gosl/ode) with a thin dense-output layer
// exposed so the Poincaré event engine can locate crossings inside a
// step without re-integrating.
package orbit

import "math"

// Options configures one Integrator run, defaults matching spec §4.5.
type Options struct {
	Rtol      float64 // relative tolerance per component
	Atol      float64 // absolute tolerance per component
	MaxStep   float64 // ceiling on step size; Integrator.Run does not pass it to the stepper, so steps are not capped by it
	FirstStep float64 // initial step size; 0 means (t1-t0)/1000, not an estimate from the state or tolerances
	MaxSteps  int     // fatal if exceeded
}

// DefaultOptions returns spec §4.5's defaults.
func DefaultOptions() Options {
	return Options{
		Rtol:      1e-8,
		Atol:      1e-10,
		MaxStep:   math.Inf(1),
		FirstStep: 0,
		MaxSteps:  10000000,
	}
}
