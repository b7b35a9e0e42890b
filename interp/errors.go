// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import "fmt"

// ErrKind enumerates the InterpolatorError variants of spec §7.
type ErrKind int

const (
	// ErrInsufficientKnots: fewer than the minimum required knots.
	ErrInsufficientKnots ErrKind = iota
	// ErrNonMonotonicKnots: knots not strictly increasing.
	ErrNonMonotonicKnots
	// ErrQueryOutOfRange: informational only; not raised by default
	// since out-of-range queries clamp to the boundary knot (spec §4.1).
	ErrQueryOutOfRange
)

func (k ErrKind) String() string {
	switch k {
	case ErrInsufficientKnots:
		return "InsufficientKnots"
	case ErrNonMonotonicKnots:
		return "NonMonotonicKnots"
	case ErrQueryOutOfRange:
		return "QueryOutOfRange"
	}
	return "Unknown"
}

// Error is the interp package's error type, distinguishable by Kind.
type Error struct {
	Kind ErrKind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("interp: %s: %s", e.Kind, e.Msg)
}
