// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poincare

import (
	"math"

	"github.com/plasmafusion/poincare/dynamics"
)

// InitialConditions is the immutable per-particle starting point of
// spec §3: t0, theta0, psip0, rho0, zeta0, mu.
type InitialConditions struct {
	T0     float64
	Theta0 float64
	Psip0  float64
	Rho0   float64
	Zeta0  float64
	Mu     float64
}

// NewInitialConditions validates and builds an InitialConditions: every
// field finite, and 0 <= psip0 <= psipWall (spec §3).
func NewInitialConditions(t0, theta0, psip0, rho0, zeta0, mu, psipWall float64) (InitialConditions, error) {
	for _, v := range []float64{t0, theta0, psip0, rho0, zeta0, mu} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return InitialConditions{}, ErrInvalidArgument
		}
	}
	if psip0 < 0 || psip0 > psipWall {
		return InitialConditions{}, ErrInvalidArgument
	}
	return InitialConditions{T0: t0, Theta0: theta0, Psip0: psip0, Rho0: rho0, Zeta0: zeta0, Mu: mu}, nil
}

// State returns the dynamics.State this InitialConditions starts from.
func (ic InitialConditions) State() dynamics.State {
	return dynamics.State{Theta: ic.Theta0, Psip: ic.Psip0, Rho: ic.Rho0, Zeta: ic.Zeta0}
}
