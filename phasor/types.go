// Package phasor: representation modes and the per-phase real container.
package phasor

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Mode selects the representation of a per-phase quantity:
// a single positive-sequence value (Sym) or three per-phase values (Asym).
type Mode uint8

const (
	// Sym is the symmetric representation: one aggregate value.
	Sym Mode = iota
	// Asym is the asymmetric representation: explicit phases A, B, C.
	Asym
)

// phases3 is the phase count of the asymmetric representation.
const phases3 = 3

// Phases returns the number of phase entries carried by the mode: 1 or 3.
func (m Mode) Phases() int {
	if m == Asym {
		return phases3
	}
	return 1
}

// String returns "sym" or "asym".
func (m Mode) String() string {
	if m == Asym {
		return "asym"
	}
	return "sym"
}

// Real is an immutable real-valued per-phase quantity: one scalar in Sym
// mode, three scalars A/B/C in Asym mode. Semantically it holds a
// per-unit or physical magnitude, or a phase angle in radians.
// The zero value is a symmetric zero.
type Real struct {
	mode Mode
	v    [phases3]float64
}

// NewSymReal wraps a single scalar as a symmetric quantity.
func NewSymReal(x float64) Real {
	return Real{mode: Sym, v: [phases3]float64{x}}
}

// NewAsymReal wraps three per-phase scalars as an asymmetric quantity.
func NewAsymReal(a, b, c float64) Real {
	return Real{mode: Asym, v: [phases3]float64{a, b, c}}
}

// Mode reports the representation of r.
func (r Real) Mode() Mode { return r.mode }

// Phases returns the number of phase entries in r: 1 or 3.
func (r Real) Phases() int { return r.mode.Phases() }

// At returns the i-th phase entry. Valid indices are 0..Phases()-1;
// anything else is a programmer error and panics.
func (r Real) At(i int) float64 {
	if i < 0 || i >= r.mode.Phases() {
		panic("phasor: phase index out of range")
	}
	return r.v[i]
}

// All returns a fresh slice with the active phase entries, so callers
// cannot alias the container's storage.
func (r Real) All() []float64 {
	out := make([]float64, r.mode.Phases())
	copy(out, r.v[:r.mode.Phases()])
	return out
}

// Scale returns r with every phase entry multiplied by f.
func (r Real) Scale(f float64) Real {
	out := r
	for i := 0; i < r.mode.Phases(); i++ {
		out.v[i] = r.v[i] * f
	}
	return out
}

// Sub returns the element-wise difference r − o. Both operands must share
// one mode; mixing representations is a programmer error and panics.
// NaN entries propagate, which is exactly what the angle-residual rule
// needs: an unknown own angle yields an unknown residual.
func (r Real) Sub(o Real) Real {
	if r.mode != o.mode {
		panic(ErrModeMismatch)
	}
	out := r
	for i := 0; i < r.mode.Phases(); i++ {
		out.v[i] = r.v[i] - o.v[i]
	}
	return out
}

// Mean returns the arithmetic mean over the active phases: the value
// itself in Sym mode, (A+B+C)/3 in Asym mode. NaN entries propagate.
func (r Real) Mean() float64 {
	n := r.mode.Phases()
	return floats.Sum(r.v[:n]) / float64(n)
}

// IsNaN reports whether every active phase entry is NaN. Used by partial
// update records where NaN means "field not supplied".
func (r Real) IsNaN() bool {
	for i := 0; i < r.mode.Phases(); i++ {
		if !math.IsNaN(r.v[i]) {
			return false
		}
	}
	return true
}
