// Copyright 2024 The Poincare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import "github.com/cpmech/gosl/chk"

// errZeroJacobian reports a degenerate Boozer-coordinate Jacobian
// D(psip) = g*q+i = 0, which makes the right-hand side undefined. This is
// a data/configuration problem (an equilibrium file with g*q+i vanishing
// somewhere inside the domain), surfaced the same way gosl's chk package
// reports fatal construction errors elsewhere in this module.
func errZeroJacobian(psip float64) error {
	return chk.Err("dynamics: RHS: Boozer Jacobian g*q+i vanishes at psip=%g", psip)
}
