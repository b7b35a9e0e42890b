// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"errors"
	"fmt"
)

// ErrorKind distinguishes the three integration failure modes of spec §7.
type ErrorKind int

const (
	KindStepUnderflow ErrorKind = iota
	KindBudgetExceeded
	KindNonFiniteDerivative
)

func (k ErrorKind) String() string {
	switch k {
	case KindStepUnderflow:
		return "StepSizeUnderflow"
	case KindBudgetExceeded:
		return "BudgetExceeded"
	case KindNonFiniteDerivative:
		return "NonFiniteDerivative"
	}
	return "Unknown"
}

// IntegrationError reports a failed integration: the step required for
// tolerance underflowed, the step budget was exhausted, or the RHS
// returned a non-finite value (e.g. psip left the interpolation domain).
// The affected particle is marked Errored with this cause; the
// orchestrator never aborts its peers (spec §7).
type IntegrationError struct {
	Kind ErrorKind
	T    float64
	Msg  string
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("orbit: integration failed at t=%g: %s: %s", e.T, e.Kind, e.Msg)
}

// ErrInvalidArgument is returned for malformed integration requests, e.g.
// a t_eval span with t_end <= t0 (spec §7, §8 scenario 6).
var ErrInvalidArgument = errors.New("orbit: invalid argument")

// internal sentinels returned from the gosl/ode callback closures in
// integrator.go, translated into a typed *IntegrationError by Run before
// ever reaching a caller.
var (
	errNonFinite      = errors.New("orbit: non-finite derivative")
	errBudget         = errors.New("orbit: step budget exceeded")
	errStopRequested  = errors.New("orbit: step callback requested stop")
)
