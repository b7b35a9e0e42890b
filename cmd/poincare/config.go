// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"

	"github.com/plasmafusion/poincare/orbit"
	"github.com/plasmafusion/poincare/poincare"
)

// runConfig is the JSON run-configuration file layout (spec §10): paths
// to the three NetCDF datasets and their interpolator kinds, the
// optional perturbation harmonics, the mapping section/alpha/N, and the
// particle ensemble's initial conditions.
type runConfig struct {
	QfactorPath   string `json:"qfactor_path"`
	QfactorKind   string `json:"qfactor_kind"`
	CurrentsPath  string `json:"currents_path"`
	CurrentsKind  string `json:"currents_kind"`
	BfieldPath    string `json:"bfield_path"`
	BfieldKind    string `json:"bfield_kind"`

	Harmonics []harmonicConfig `json:"harmonics"`

	Section       string  `json:"section"`
	Alpha         float64 `json:"alpha"`
	Intersections int     `json:"intersections"`

	Particles []particleConfig `json:"particles"`

	Rtol     float64 `json:"rtol"`
	Atol     float64 `json:"atol"`
	MaxSteps int     `json:"max_steps"`

	Output string `json:"output"`
}

type harmonicConfig struct {
	Path  string  `json:"path"`
	Kind  string  `json:"kind"`
	M     int     `json:"m"`
	N     int     `json:"n"`
	Phase float64 `json:"phase"`
}

type particleConfig struct {
	T0     float64 `json:"t0"`
	Theta0 float64 `json:"theta0"`
	Psip0  float64 `json:"psip0"`
	Rho0   float64 `json:"rho0"`
	Zeta0  float64 `json:"zeta0"`
	Mu     float64 `json:"mu"`
}

// loadConfig reads and parses a run-configuration file (spec §10, the
// JSON `.sim`-file analogue gofem's `inp` package loads).
func loadConfig(path string) (*runConfig, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &runConfig{
		Section:       "ConstTheta",
		Intersections: 100,
		Output:        "poincare_out.dat",
	}
	if err := json.Unmarshal(buf, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// orbitOptions builds orbit.Options from the config, falling back to
// orbit.DefaultOptions() for any field left at its zero value.
func (c *runConfig) orbitOptions() orbit.Options {
	opts := orbit.DefaultOptions()
	if c.Rtol != 0 {
		opts.Rtol = c.Rtol
	}
	if c.Atol != 0 {
		opts.Atol = c.Atol
	}
	if c.MaxSteps != 0 {
		opts.MaxSteps = c.MaxSteps
	}
	return opts
}

// mappingParameters builds poincare.MappingParameters from the config.
func (c *runConfig) mappingParameters() (poincare.MappingParameters, error) {
	section, err := poincare.ParseSection(c.Section)
	if err != nil {
		return poincare.MappingParameters{}, err
	}
	return poincare.NewMappingParameters(section, c.Alpha, c.Intersections)
}
