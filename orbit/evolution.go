// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import "github.com/cpmech/gosl/utl"

// Evolution is the time-ordered trajectory record of spec §3: equal-
// length arrays, one entry per stored (accepted) step, with Pθ, Pζ and
// energy recomputed at storage time from the stored (θ, ψp, ρ∥, ζ) so
// they stay numerically consistent with the state columns.
type Evolution struct {
	T, Theta, Psip, Psi, Rho, Zeta []float64
	Ptheta, Pzeta, Energy          []float64

	StepsTaken  int // accepted RK steps reported by the stepper; rejected attempts are not counted
	StepsStored int // entries appended to the arrays, including the initial point at t0
}

// IndicesNear returns, for each requested time in tout, the index of the
// nearest stored step within tol (or -1 if none is within tol), the same
// nearest-output-time lookup gofem's result writer uses to subsample a
// dense time series down to a handful of reporting times.
func (ev *Evolution) IndicesNear(tout []float64, tol float64) []int {
	idx, _ := utl.GetITout(ev.T, tout, tol)
	return idx
}

func newEvolution(capHint int) *Evolution {
	return &Evolution{
		T:      make([]float64, 0, capHint),
		Theta:  make([]float64, 0, capHint),
		Psip:   make([]float64, 0, capHint),
		Psi:    make([]float64, 0, capHint),
		Rho:    make([]float64, 0, capHint),
		Zeta:   make([]float64, 0, capHint),
		Ptheta: make([]float64, 0, capHint),
		Pzeta:  make([]float64, 0, capHint),
		Energy: make([]float64, 0, capHint),
	}
}
