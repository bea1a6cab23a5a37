// SPDX-License-Identifier: MIT
// Package phasor: the per-phase complex container and its conversions.
package phasor

// Value is an immutable complex-valued per-phase quantity: one
// positive-sequence phasor in Sym mode, three per-phase phasors in Asym
// mode, in per-unit of the owning base voltage.
//
// A phase whose angle was never measured is stored as the sentinel
// complex(magnitude, NaN): the real part still carries the measured
// magnitude and must not be destroyed by blind IEEE propagation. Use
// Abs, Arg and HasAngle, which understand the sentinel.
// The zero value is a symmetric zero phasor.
type Value struct {
	mode Mode
	v    [phases3]complex128
}

// NewSymValue wraps a single phasor as a symmetric quantity.
func NewSymValue(c complex128) Value {
	return Value{mode: Sym, v: [phases3]complex128{c}}
}

// NewAsymValue wraps three per-phase phasors as an asymmetric quantity.
func NewAsymValue(a, b, c complex128) Value {
	return Value{mode: Asym, v: [phases3]complex128{a, b, c}}
}

// Polar builds a Value from per-phase magnitudes and angles (radians).
// A NaN angle entry produces the sentinel complex(magnitude, NaN) for
// that phase. Returns ErrModeMismatch when the two containers disagree
// on representation.
func Polar(mag, angle Real) (Value, error) {
	if mag.Mode() != angle.Mode() {
		return Value{}, ErrModeMismatch
	}
	out := Value{mode: mag.Mode()}
	for i := 0; i < out.mode.Phases(); i++ {
		out.v[i] = FromPolar(mag.v[i], angle.v[i])
	}
	return out, nil
}

// Balanced broadcasts a single phasor to the three phases of a balanced
// system: A = c, B = c rotated by −120°, C = c rotated by +120°.
// A sentinel phasor is broadcast without rotation — rotating an unknown
// angle would fabricate spurious distinctness between phases.
func Balanced(c complex128) Value {
	if !HasAngle(c) {
		return Uniform(c)
	}
	return Value{mode: Asym, v: [phases3]complex128{c, c * RotA2, c * RotA}}
}

// Uniform broadcasts a single phasor to all three phases unrotated.
func Uniform(c complex128) Value {
	return Value{mode: Asym, v: [phases3]complex128{c, c, c}}
}

// Mode reports the representation of p.
func (p Value) Mode() Mode { return p.mode }

// Phases returns the number of phase entries in p: 1 or 3.
func (p Value) Phases() int { return p.mode.Phases() }

// At returns the i-th phase phasor. Valid indices are 0..Phases()-1;
// anything else is a programmer error and panics.
func (p Value) At(i int) complex128 {
	if i < 0 || i >= p.mode.Phases() {
		panic("phasor: phase index out of range")
	}
	return p.v[i]
}

// All returns a fresh slice with the active phase phasors.
func (p Value) All() []complex128 {
	out := make([]complex128, p.mode.Phases())
	copy(out, p.v[:p.mode.Phases()])
	return out
}

// Magnitude returns the per-phase moduli of p, sentinel-aware: the
// modulus of complex(m, NaN) is m, not NaN.
func (p Value) Magnitude() Real {
	out := Real{mode: p.mode}
	for i := 0; i < p.mode.Phases(); i++ {
		out.v[i] = Abs(p.v[i])
	}
	return out
}

// Angle returns the per-phase arguments of p in radians; a sentinel
// phase yields NaN.
func (p Value) Angle() Real {
	out := Real{mode: p.mode}
	for i := 0; i < p.mode.Phases(); i++ {
		out.v[i] = Arg(p.v[i])
	}
	return out
}

// AngleKnown reports whether every active phase carries a measured
// angle, i.e. no phase holds the NaN sentinel.
func (p Value) AngleKnown() bool {
	for i := 0; i < p.mode.Phases(); i++ {
		if !HasAngle(p.v[i]) {
			return false
		}
	}
	return true
}

// Positive collapses p to its positive-sequence component.
//
// Sym mode is already the positive sequence and is returned as-is.
// Asym mode applies the classical transform
//
//	V1 = (Va + a·Vb + a²·Vc) / 3,  a = e^{j2π/3}
//
// unless any phase holds the NaN sentinel: combining an unknown angle
// through the transform would yield an uninformative full-NaN result,
// so the collapse falls back to complex(mean of the moduli, NaN),
// preserving the magnitude information.
func (p Value) Positive() complex128 {
	if p.mode == Sym {
		return p.v[0]
	}
	if !p.AngleKnown() {
		return complex(p.Magnitude().Mean(), nan)
	}
	return (p.v[0] + RotA*p.v[1] + RotA2*p.v[2]) / phases3
}
