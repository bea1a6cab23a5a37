// Package phasor provides the scalar-or-three-phase numeric containers
// used throughout the measurement layer, together with the classical
// sequence-component math that moves between them.
//
// 🚀 What is a phasor here?
//
//	A complex number encoding magnitude and phase angle of an electrical
//	quantity, expressed in per-unit of a base voltage.  A quantity is
//	carried in one of two representations:
//	  • Sym  — a single positive-sequence value (balanced three-phase)
//	  • Asym — three explicit per-phase values A, B, C
//
// ✨ Key features:
//   - Real and Value: immutable 1-or-3 element containers tagged with
//     their Mode, so every operation is written once for both shapes
//   - Positive: the sequence transform V1 = (Va + a·Vb + a²·Vc)/3
//   - Balanced / Uniform: rotated and unrotated three-phase broadcasts
//   - NaN-angle sentinel: a sensor that measured magnitude but not phase
//     stores complex(magnitude, NaN); Abs and Arg understand the
//     sentinel, so the magnitude information is never destroyed
//
// ⚙️ Usage:
//
//	m := phasor.NewSymReal(1.01)             // per-unit magnitude
//	a := phasor.NewSymReal(math.NaN())       // angle not measured
//	v, err := phasor.Polar(m, a)             // sentinel phasor (1.01, NaN)
//	three := phasor.Balanced(v.At(0))        // broadcast, unrotated: the
//	                                         // sentinel forbids rotation
//
// All containers are immutable values; every function is total except
// where a sentinel error or documented panic says otherwise.
package phasor
