// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dataset reads the canonical tabular equilibrium input file (a
// NetCDF-4/HDF5 container, spec §6) into typed Go slices, normalises
// endianness, and validates shape invariants. This is the sole I/O
// boundary of the core: every downstream model (equilibrium, harmonic)
// is built from a *dataset.Data loaded here.
package dataset

import (
	"math"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/ctessum/cdf"
)

// Data holds the raw arrays read from one equilibrium file, normalised to
// host byte order and with NaN/Inf in Alphas/Phases replaced by 0 (spec
// §6). Read-only after Load returns.
type Data struct {
	Path string

	Baxis float64 // T, B on magnetic axis
	Raxis float64 // m, major radius

	Psip []float64 // (Npsi,) normalised poloidal flux
	Theta []float64 // (Ntheta,) rad, Boozer theta on [0, 2pi)
	Psi   []float64 // (Npsi,) normalised toroidal flux
	Q     []float64 // (Npsi,) safety factor
	G     []float64 // (Npsi,) normalised toroidal current
	I     []float64 // (Npsi,) normalised poloidal current

	B [][]float64 // (Npsi, Ntheta) normalised B magnitude
	R [][]float64 // (Npsi, Ntheta) m, lab-frame R
	Z [][]float64 // (Npsi, Ntheta) m, lab-frame Z

	M []int // (Nm,) poloidal mode numbers, optional
	N []int // (Nn,) toroidal mode numbers, optional

	Alphas [][][]float64 // (Nm, Nn, Npsi) normalised amplitude profiles
	Phases [][][]float64 // (Nm, Nn, Npsi) rad, phase profiles
}

// LoadError distinguishes dataset load failures (spec §7).
type LoadError struct {
	Path string
	Msg  string
}

func (e *LoadError) Error() string {
	return io.Sf("dataset: load %q: %s", e.Path, e.Msg)
}

// Load reads path (a NetCDF-4/HDF5 tabular equilibrium file) and returns a
// validated Data. Any failure (unreadable file, missing variable, wrong
// shape, non-finite psip) is returned as a *LoadError; Load does not
// panic and never substitutes a silent default.
func Load(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Msg: err.Error()}
	}
	defer f.Close()

	nc, err := cdf.Open(f)
	if err != nil {
		return nil, &LoadError{Path: path, Msg: "not a readable NetCDF/CDF container: " + err.Error()}
	}

	d := &Data{Path: path}

	d.Baxis, err = readScalar(nc, "baxis")
	if err != nil {
		return nil, &LoadError{Path: path, Msg: err.Error()}
	}
	d.Raxis, err = readScalar(nc, "raxis")
	if err != nil {
		return nil, &LoadError{Path: path, Msg: err.Error()}
	}

	for _, v := range []struct {
		name string
		dst  *[]float64
	}{
		{"psip", &d.Psip}, {"theta", &d.Theta}, {"psi", &d.Psi},
		{"q", &d.Q}, {"g", &d.G}, {"i", &d.I},
	} {
		arr, err := read1D(nc, v.name)
		if err != nil {
			return nil, &LoadError{Path: path, Msg: err.Error()}
		}
		*v.dst = arr
	}

	npsi, ntheta := len(d.Psip), len(d.Theta)
	for _, v := range []struct {
		name string
		dst  *[][]float64
	}{
		{"b", &d.B}, {"R", &d.R}, {"Z", &d.Z},
	} {
		arr, err := read2D(nc, v.name, npsi, ntheta)
		if err != nil {
			return nil, &LoadError{Path: path, Msg: err.Error()}
		}
		*v.dst = arr
	}

	// modes are optional: only present if perturbations exist in the file
	if hasVariable(nc, "m") && hasVariable(nc, "n") {
		mf, err := read1D(nc, "m")
		if err != nil {
			return nil, &LoadError{Path: path, Msg: err.Error()}
		}
		nf, err := read1D(nc, "n")
		if err != nil {
			return nil, &LoadError{Path: path, Msg: err.Error()}
		}
		d.M = toInts(mf)
		d.N = toInts(nf)

		d.Alphas, err = read3D(nc, "alphas", len(d.M), len(d.N), npsi)
		if err != nil {
			return nil, &LoadError{Path: path, Msg: err.Error()}
		}
		d.Phases, err = read3D(nc, "phases", len(d.M), len(d.N), npsi)
		if err != nil {
			return nil, &LoadError{Path: path, Msg: err.Error()}
		}
		sanitize3D(d.Alphas)
		sanitize3D(d.Phases)
	}

	if err := d.validate(); err != nil {
		return nil, &LoadError{Path: path, Msg: err.Error()}
	}
	return d, nil
}

// validate checks the shape invariants of spec §3/§6.
func (d *Data) validate() error {
	if len(d.Psip) < 4 {
		return chk.Err("need at least 4 psip knots, got %d", len(d.Psip))
	}
	if len(d.Theta) < 4 {
		return chk.Err("need at least 4 theta knots, got %d", len(d.Theta))
	}
	for _, name := range []string{"psi", "q", "g", "i"} {
		var arr []float64
		switch name {
		case "psi":
			arr = d.Psi
		case "q":
			arr = d.Q
		case "g":
			arr = d.G
		case "i":
			arr = d.I
		}
		if len(arr) != len(d.Psip) {
			return chk.Err("variable %q has length %d, want %d (= len(psip))", name, len(arr), len(d.Psip))
		}
	}
	for i, v := range d.Psip {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return chk.Err("psip[%d] is not finite", i)
		}
	}
	// m and n are independent axes of alphas/phases (Nm, Nn), not
	// required to have equal length; nothing further to check here.
	return nil
}

func sanitize3D(v [][][]float64) {
	for i := range v {
		for j := range v[i] {
			for k, x := range v[i][j] {
				if math.IsNaN(x) || math.IsInf(x, 0) {
					v[i][j][k] = 0
				}
			}
		}
	}
}

func toInts(f []float64) []int {
	out := make([]int, len(f))
	for i, v := range f {
		out[i] = int(v)
	}
	return out
}

func hasVariable(nc *cdf.File, name string) bool {
	for _, v := range nc.Header.Variables() {
		if v == name {
			return true
		}
	}
	return false
}

// readFlat reads variable name in full and normalises it to []float64
// regardless of whether the file stored it as float32 or float64 (CDF
// classic files commonly use float32 for science data; this core always
// works in float64 internally, so the narrowing/widening happens once
// here rather than scattered across every caller).
func readFlat(nc *cdf.File, name string) ([]float64, error) {
	if !hasVariable(nc, name) {
		return nil, chk.Err("variable %q not found in file", name)
	}
	shape := nc.Header.Lengths(name)
	n := 1
	for _, d := range shape {
		n *= d
	}
	r := nc.Reader(name, nil, nil)
	buf := r.Zero(n)
	if _, err := r.Read(buf); err != nil {
		return nil, chk.Err("cannot read %q: %v", name, err)
	}
	switch v := buf.(type) {
	case []float64:
		return v, nil
	case []float32:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	case []int32:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	case []int64:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	default:
		return nil, chk.Err("variable %q has unsupported CDF type %T", name, buf)
	}
}

func readScalar(nc *cdf.File, name string) (float64, error) {
	flat, err := readFlat(nc, name)
	if err != nil {
		return 0, err
	}
	if len(flat) != 1 {
		return 0, chk.Err("variable %q has %d elements, want a scalar", name, len(flat))
	}
	return flat[0], nil
}

func read1D(nc *cdf.File, name string) ([]float64, error) {
	shape := nc.Header.Lengths(name)
	if len(shape) != 1 {
		return nil, chk.Err("variable %q has rank %d, want 1", name, len(shape))
	}
	return readFlat(nc, name)
}

func read2D(nc *cdf.File, name string, n0, n1 int) ([][]float64, error) {
	shape := nc.Header.Lengths(name)
	if len(shape) != 2 || shape[0] != n0 || shape[1] != n1 {
		return nil, chk.Err("variable %q has shape %v, want (%d,%d)", name, shape, n0, n1)
	}
	flat, err := readFlat(nc, name)
	if err != nil {
		return nil, err
	}
	out := utl.DblsAlloc(n0, n1)
	idx := 0
	for i := range out {
		copy(out[i], flat[idx:idx+n1])
		idx += n1
	}
	return out, nil
}

func read3D(nc *cdf.File, name string, n0, n1, n2 int) ([][][]float64, error) {
	shape := nc.Header.Lengths(name)
	if len(shape) != 3 || shape[0] != n0 || shape[1] != n1 || shape[2] != n2 {
		return nil, chk.Err("variable %q has shape %v, want (%d,%d,%d)", name, shape, n0, n1, n2)
	}
	flat, err := readFlat(nc, name)
	if err != nil {
		return nil, err
	}
	out := make([][][]float64, n0)
	idx := 0
	for i := range out {
		out[i] = make([][]float64, n1)
		for j := range out[i] {
			out[i][j] = flat[idx : idx+n2]
			idx += n2
		}
	}
	return out, nil
}
