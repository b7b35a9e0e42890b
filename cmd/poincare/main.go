// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/plasmafusion/poincare/dynamics"
	"github.com/plasmafusion/poincare/equilibrium"
	"github.com/plasmafusion/poincare/perturbation"
	"github.com/plasmafusion/poincare/poincare"
)

func main() {

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\nPoincare -- guiding-centre orbit and Poincaré-mapping engine\n\n")
	io.Pf("Copyright 2024 The Poincare Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("Please, provide a run-configuration filename. Ex.: run.json\n")
	}
	fnamepath := flag.Arg(0)

	cfg, err := loadConfig(fnamepath)
	if err != nil {
		chk.Panic("cannot load run configuration: %v\n", err)
	}

	eq, err := buildEquilibrium(cfg)
	if err != nil {
		chk.Panic("cannot build equilibrium: %v\n", err)
	}
	per, err := buildPerturbation(cfg)
	if err != nil {
		chk.Panic("cannot build perturbation: %v\n", err)
	}
	params, err := cfg.mappingParameters()
	if err != nil {
		chk.Panic("invalid mapping parameters: %v\n", err)
	}

	psipWall := eq.Currents.PsipWall()
	ics := make([]poincare.InitialConditions, len(cfg.Particles))
	for i, pc := range cfg.Particles {
		ic, err := poincare.NewInitialConditions(pc.T0, pc.Theta0, pc.Psip0, pc.Rho0, pc.Zeta0, pc.Mu, psipWall)
		if err != nil {
			chk.Panic("invalid initial conditions for particle %d: %v\n", i, err)
		}
		ics[i] = ic
	}

	ens := poincare.NewPoincare(ics, params)
	particles := ens.Run(context.Background(), eq, per, cfg.orbitOptions())

	writeResults(cfg, particles)
}

func buildEquilibrium(cfg *runConfig) (*dynamics.Equilibrium, error) {
	q, err := equilibrium.NewQfactor(cfg.QfactorPath, cfg.QfactorKind)
	if err != nil {
		return nil, err
	}
	c, err := equilibrium.NewCurrents(cfg.CurrentsPath, cfg.CurrentsKind)
	if err != nil {
		return nil, err
	}
	b, err := equilibrium.NewBfield(cfg.BfieldPath, cfg.BfieldKind)
	if err != nil {
		return nil, err
	}
	return &dynamics.Equilibrium{Qfactor: q, Currents: c, Bfield: b}, nil
}

func buildPerturbation(cfg *runConfig) (*perturbation.Perturbation, error) {
	harmonics := make([]*perturbation.Harmonic, len(cfg.Harmonics))
	for i, hc := range cfg.Harmonics {
		h, err := perturbation.NewHarmonic(hc.Path, hc.Kind, hc.M, hc.N, hc.Phase)
		if err != nil {
			return nil, err
		}
		harmonics[i] = h
	}
	return perturbation.NewPerturbation(harmonics), nil
}

// writeResults writes one row per (particle, crossing) pair: particle
// index, angle, flux, status (spec §10's tabular output, in the style
// of gofem's `io.WriteFileSD`-written text tables). A particle with no
// crossings gets a single row with "-" in the angle and flux columns.
func writeResults(cfg *runConfig, particles []*poincare.Particle) {
	var buf bytes.Buffer
	io.Ff(&buf, "# particle angle flux status\n")
	for i, p := range particles {
		if len(p.Crossings) == 0 {
			io.Ff(&buf, "%d - - %s\n", i, p.Status)
			continue
		}
		for _, c := range p.Crossings {
			io.Ff(&buf, "%d %.15g %.15g %s\n", i, c.Angle, c.Flux, p.Status)
		}
	}

	dirout := filepath.Dir(cfg.Output)
	fn := filepath.Base(cfg.Output)
	os.MkdirAll(dirout, 0777)
	io.WriteFileSD(dirout, fn, buf.String())
	io.Pf("\nresults written to %s/%s\n", dirout, fn)
}
