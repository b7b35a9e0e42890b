// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package poincare implements the event-driven Poincaré mapping engine
// and parallel orchestrator of spec §4.6/§4.7: given a Particle and
// MappingParameters, it integrates until N crossings of a constant-angle
// section have been located, and runs many independent particles
// concurrently.
package poincare

import "fmt"

// Section names the constant-angle surface a trajectory is mapped
// against (spec §3/§9: "configuration via strings... re-architect as a
// closed variant set").
type Section int

const (
	ConstTheta Section = iota
	ConstZeta
)

func (s Section) String() string {
	switch s {
	case ConstTheta:
		return "ConstTheta"
	case ConstZeta:
		return "ConstZeta"
	}
	return "Unknown"
}

// ParseSection parses the boundary string form of Section, used at the
// CLI/config-file edge (spec §6's string-named "section").
func ParseSection(name string) (Section, error) {
	switch name {
	case "ConstTheta", "const_theta", "theta":
		return ConstTheta, nil
	case "ConstZeta", "const_zeta", "zeta":
		return ConstZeta, nil
	}
	return 0, fmt.Errorf("poincare: unknown section kind %q: %w", name, ErrInvalidArgument)
}
