// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poincare

import "math"

// MappingParameters fixes one Poincaré mapping request (spec §3): the
// section to cross, its constant value, and the number of intersections
// to collect before stopping.
type MappingParameters struct {
	Section       Section
	Alpha         float64
	Intersections int
}

// NewMappingParameters validates and builds MappingParameters. Alpha is
// reduced modulo 2*pi for comparison purposes only; the stored value is
// kept as given (spec §3: "alpha reduced mod 2pi for comparison").
func NewMappingParameters(section Section, alpha float64, intersections int) (MappingParameters, error) {
	if intersections <= 0 {
		return MappingParameters{}, ErrInvalidArgument
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return MappingParameters{}, ErrInvalidArgument
	}
	return MappingParameters{Section: section, Alpha: alpha, Intersections: intersections}, nil
}

// wrap reduces an angle to (-pi, pi].
func wrap(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
