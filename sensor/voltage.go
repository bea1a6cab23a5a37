// SPDX-License-Identifier: MIT
// Package sensor: the voltage sensor adapter.
package sensor

import (
	"fmt"
	"math"

	"github.com/FrankKr/power-grid-model/phasor"
)

// VoltageSensor holds one sensor's measurement normalized to per-unit.
// Its native representation is fixed at construction: symmetric sensors
// measure line voltage (base = uRated), asymmetric sensors line-to-ground
// voltage per phase (base = uRated/√3). The adapter is immutable;
// CalcParam and Output are pure functions of it.
type VoltageSensor struct {
	id             ID
	measuredObject ID
	uRated         float64
	value          phasor.Value // per-unit measured phasor, native mode
	variance       float64      // (uSigma/base)², shared by all phases
}

// NewVoltageSensor normalizes a measurement record against the measured
// object's rated voltage.
//
// Stage 1 (Validate): uRated must be positive, the record's magnitude
// and angle containers must share one representation.
// Stage 2 (Execute): divide magnitudes and sigma by the representation's
// base voltage, combine with the angles into the native phasor.
//
// Returns ErrRatedVoltage or phasor.ErrModeMismatch.
func NewVoltageSensor(in VoltageSensorInput, uRated float64) (*VoltageSensor, error) {
	if uRated <= 0 {
		return nil, fmt.Errorf("voltage sensor %d: %w", in.ID, ErrRatedVoltage)
	}
	base := baseVoltage(in.UMeasured.Mode(), uRated)
	value, err := phasor.Polar(in.UMeasured.Scale(1/base), in.UAngleMeasured)
	if err != nil {
		return nil, fmt.Errorf("voltage sensor %d: %w", in.ID, err)
	}
	sigma := in.USigma / base
	return &VoltageSensor{
		id:             in.ID,
		measuredObject: in.MeasuredObject,
		uRated:         uRated,
		value:          value,
		variance:       sigma * sigma,
	}, nil
}

// baseVoltage returns the per-unit base of a representation: line
// voltage for Sym, line-to-ground voltage for Asym.
func baseVoltage(m phasor.Mode, uRated float64) float64 {
	if m == phasor.Asym {
		return uRated / phasor.Sqrt3
	}
	return uRated
}

// ID returns the sensor's own object id.
func (s *VoltageSensor) ID() ID { return s.id }

// MeasuredObject returns the id of the measured grid object.
func (s *VoltageSensor) MeasuredObject() ID { return s.measuredObject }

// Mode returns the sensor's native representation.
func (s *VoltageSensor) Mode() phasor.Mode { return s.value.Mode() }

// RatedVoltage returns the rated voltage the sensor was normalized with.
func (s *VoltageSensor) RatedVoltage() float64 { return s.uRated }

// Variance returns the normalized measurement variance.
func (s *VoltageSensor) Variance() float64 { return s.variance }

// CalcParam produces the solver input in the requested representation.
//
//   - native == target: the stored phasor, unchanged
//   - Sym → Asym: balanced broadcast, phases rotated by ∓120°; a sensor
//     without a measured angle is broadcast unrotated, every phase
//     keeping the (magnitude, NaN) sentinel
//   - Asym → Sym: positive-sequence collapse V1 = (Va + a·Vb + a²·Vc)/3;
//     with any angle unknown the collapse falls back to the mean of the
//     moduli with a NaN angle
//
// The variance is never rescaled: it belongs to the sensor's own
// per-unit base, not to the representation bookkeeping.
func (s *VoltageSensor) CalcParam(target phasor.Mode) CalcParam {
	out := CalcParam{Variance: s.variance}
	switch {
	case target == s.value.Mode():
		out.Value = s.value
	case target == phasor.Asym:
		out.Value = phasor.Balanced(s.value.At(0))
	default:
		out.Value = phasor.NewSymValue(s.value.Positive())
	}
	return out
}

// Output compares the sensor's own measurement against a solved-state
// phasor and reports the residuals in physical units. The target
// representation is that of calculated; energized comes from the
// topology collaborator and is passed through.
//
// The own comparison value is aligned to the target first:
//
//   - native == target: the stored phasor, element-wise
//   - Asym native, Sym target: the positive-sequence collapse, as in
//     CalcParam
//   - Sym native, Asym target: the stored scalar broadcast UNROTATED to
//     all three phases — a single-phase measurement carries no genuine
//     per-phase distinction to rotate. This intentionally differs from
//     CalcParam's balanced broadcast.
//
// Residuals are own − calculated, scaled by the target representation's
// base voltage; the angle residual is NaN when the own angle is unknown.
func (s *VoltageSensor) Output(calculated phasor.Value, energized bool) VoltageSensorOutput {
	target := calculated.Mode()
	var own phasor.Value
	switch {
	case target == s.value.Mode():
		own = s.value
	case target == phasor.Sym:
		own = phasor.NewSymValue(s.value.Positive())
	default:
		own = phasor.Uniform(s.value.At(0))
	}
	base := baseVoltage(target, s.uRated)
	return VoltageSensorOutput{
		ID:             s.id,
		Energized:      energized,
		UResidual:      own.Magnitude().Sub(calculated.Magnitude()).Scale(base),
		UAngleResidual: own.Angle().Sub(calculated.Angle()),
	}
}

// WithUpdate applies a batch-update record and returns a new adapter;
// the receiver is never mutated. NaN update fields keep the current
// value, per phase. The update must carry the sensor's own id and its
// native representation.
func (s *VoltageSensor) WithUpdate(u VoltageSensorUpdate) (*VoltageSensor, error) {
	if u.ID != s.id {
		return nil, fmt.Errorf("voltage sensor %d: %w", s.id, ErrUpdateID)
	}
	base := baseVoltage(s.value.Mode(), s.uRated)

	// Recover the physical record held by the adapter, then merge.
	in := VoltageSensorInput{
		ID:             s.id,
		MeasuredObject: s.measuredObject,
		USigma:         math.Sqrt(s.variance) * base,
		UMeasured:      s.value.Magnitude().Scale(base),
		UAngleMeasured: s.value.Angle(),
	}
	if !math.IsNaN(u.USigma) {
		in.USigma = u.USigma
	}
	if !u.UMeasured.IsNaN() {
		merged, err := mergeReal(in.UMeasured, u.UMeasured)
		if err != nil {
			return nil, fmt.Errorf("voltage sensor %d: %w", s.id, err)
		}
		in.UMeasured = merged
	}
	if !u.UAngleMeasured.IsNaN() {
		merged, err := mergeReal(in.UAngleMeasured, u.UAngleMeasured)
		if err != nil {
			return nil, fmt.Errorf("voltage sensor %d: %w", s.id, err)
		}
		in.UAngleMeasured = merged
	}
	return NewVoltageSensor(in, s.uRated)
}

// mergeReal overlays upd onto cur, keeping cur wherever upd is NaN.
func mergeReal(cur, upd phasor.Real) (phasor.Real, error) {
	if cur.Mode() != upd.Mode() {
		return phasor.Real{}, phasor.ErrModeMismatch
	}
	merged := make([]float64, cur.Phases())
	for i := range merged {
		merged[i] = cur.At(i)
		if !math.IsNaN(upd.At(i)) {
			merged[i] = upd.At(i)
		}
	}
	if cur.Mode() == phasor.Sym {
		return phasor.NewSymReal(merged[0]), nil
	}
	return phasor.NewAsymReal(merged[0], merged[1], merged[2]), nil
}
