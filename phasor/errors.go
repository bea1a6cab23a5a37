// SPDX-License-Identifier: MIT
package phasor

import "errors"

// Sentinel errors for phasor container operations.
var (
	// ErrModeMismatch indicates a binary operation over containers of
	// different representations (Sym vs Asym).
	ErrModeMismatch = errors.New("phasor: representation mode mismatch")
)
