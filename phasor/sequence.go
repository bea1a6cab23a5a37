// SPDX-License-Identifier: MIT
// Package phasor: scalar phasor helpers, rotation constants, and the
// NaN-angle sentinel rules shared by Real and Value.
package phasor

import (
	"math"
	"math/cmplx"
)

// Sqrt3 is √3, the line-to-phase voltage ratio of a three-phase system.
const Sqrt3 = 1.7320508075688772935274463415058723669428

// Deg120 is 120° in radians, the phase separation of a balanced system.
const Deg120 = 2 * math.Pi / 3

// Deg240 is 240° in radians.
const Deg240 = 2 * Deg120

// Rotation operators of the sequence-component transform.
var (
	// RotA is a = e^{j2π/3}, rotation by +120°.
	RotA = cmplx.Rect(1, Deg120)
	// RotA2 is a² = e^{-j2π/3}, rotation by −120°.
	RotA2 = cmplx.Rect(1, -Deg120)
)

// nan is the sentinel imaginary part marking "angle unknown".
var nan = math.NaN()

// FromPolar builds a single phasor from magnitude and angle (radians).
// A NaN angle yields the sentinel complex(mag, NaN): the magnitude was
// measured and is kept, only the phase is unknown.
func FromPolar(mag, angle float64) complex128 {
	if math.IsNaN(angle) {
		return complex(mag, nan)
	}
	return cmplx.Rect(mag, angle)
}

// HasAngle reports whether c carries a measured angle, i.e. is not the
// sentinel complex(m, NaN).
func HasAngle(c complex128) bool {
	return !math.IsNaN(imag(c))
}

// Abs returns the modulus of c. For the sentinel complex(m, NaN) the
// modulus is the stored magnitude m itself.
func Abs(c complex128) float64 {
	if !HasAngle(c) {
		return real(c)
	}
	return cmplx.Abs(c)
}

// Arg returns the argument of c in (−π, π]; NaN for the sentinel.
func Arg(c complex128) float64 {
	if !HasAngle(c) {
		return nan
	}
	return cmplx.Phase(c)
}
