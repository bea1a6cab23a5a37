// Package powergridmodel is the measurement layer of a power-flow and
// state-estimation engine for electrical grids: it turns raw sensor
// readings into the per-unit phasor parameters a weighted-least-squares
// solver consumes, and turns solved-state phasors back into user-facing
// residual reports.
//
// 🚀 What lives here?
//
//	phasor/ — scalar-or-three-phase numeric containers (Real, Value),
//	          the positive-sequence transform, balanced broadcasts, and
//	          the NaN-angle sentinel convention ("magnitude known,
//	          phase unknown")
//	sensor/ — measurement records, calculation parameters, and the
//	          immutable VoltageSensor adapter with its CalcParam and
//	          Output operations
//
// ✨ Design guarantees:
//
//   - Immutable adapters — every sensor is normalized once at
//     construction and never mutated; both operations are pure
//     functions, safe to call from any number of goroutines
//   - Exact sequence math — symmetric ↔ asymmetric conversion uses the
//     classical transform V1 = (Va + a·Vb + a²·Vc)/3, a = e^{j2π/3}
//   - Honest unknowns — a sensor that reports magnitude without phase
//     angle keeps its magnitude; the unknown angle travels as an
//     explicit NaN sentinel, never as a fully-NaN value
//
// Collaborators (validation, topology, the iterative solver, reporting)
// sit outside this module; they exchange plain records and phasors with
// it — no I/O, no locks, no hidden state.
//
//	go get github.com/FrankKr/power-grid-model
package powergridmodel
