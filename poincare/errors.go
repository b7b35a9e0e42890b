// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poincare

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for malformed construction arguments:
// non-positive Intersections, a non-finite Alpha, an unknown section
// string (spec §7).
var ErrInvalidArgument = errors.New("poincare: invalid argument")

// ErrCancelled is returned by a worker that observed ctx.Err() != nil
// between accepted steps (spec §5/§7).
var ErrCancelled = errors.New("poincare: cancelled")

// MappingReason distinguishes why a mapping ended before collecting
// Intersections crossings.
type MappingReason int

const (
	ReasonLeftDomain MappingReason = iota
)

func (r MappingReason) String() string {
	switch r {
	case ReasonLeftDomain:
		return "LeftDomain"
	}
	return "Unknown"
}

// MappingError reports a particle leaving the valid domain
// (psip outside [0, psip_wall]) before N crossings were collected; the
// partial crossing list is retained on the Particle (spec §4.6).
type MappingError struct {
	Reason MappingReason
	Psip   float64
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("poincare: mapping stopped (%s) at psip=%g", e.Reason, e.Psip)
}
