// Package sensor turns raw grid-sensor readings into the per-unit
// calculation parameters consumed by the iterative power-flow /
// state-estimation solver, and turns solved-state phasors back into
// user-facing residual reports.
//
// 🚀 How a measurement flows:
//
//	VoltageSensorInput + rated voltage
//	        │  NewVoltageSensor (normalizes to per-unit, once)
//	        ▼
//	VoltageSensor ── CalcParam(target) ──▶ CalcParam ──▶ solver
//	        │                                              │
//	        └──────── Output(solved phasor) ◀──────────────┘
//	                        ▼
//	              VoltageSensorOutput (residuals, physical units)
//
// ✨ Guarantees:
//   - Adapters are immutable after construction; CalcParam and Output are
//     pure O(1) functions of that state plus their arguments, so any
//     number of goroutines may evaluate constructed sensors concurrently
//   - Representation conversion follows the classical sequence transform;
//     an unmeasured angle travels as the NaN sentinel and is never
//     replaced by an assumed angle
//   - Construction fails fast on a non-positive rated voltage; after
//     that, every operation is total
//
// Input records arrive pre-validated (u_sigma > 0, resolvable object
// references) — semantic validation is the upstream validator's job and
// is not repeated here.
//
// Only the voltage sensor is implemented; the Sensor interface is the
// contract power and current adapters will satisfy as well.
package sensor
