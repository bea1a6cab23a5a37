// Package sensor: measurement records, calculation parameters, and the
// sensor capability contract.
package sensor

import (
	"github.com/FrankKr/power-grid-model/phasor"
)

// ID identifies a grid object (a sensor or the object it measures).
type ID int64

// CalcParam is the per-sensor input of the weighted-least-squares
// solver: a per-unit phasor plus the variance of the underlying
// measurement. The solver consumes it uniformly for every sensor kind.
type CalcParam struct {
	// Value is the measured quantity in the requested representation,
	// per-unit of the sensor's own base.
	Value phasor.Value
	// Variance is the normalized measurement variance, ≥ 0. It is
	// intrinsic to the sensor's per-unit base and identical for every
	// representation the sensor is asked for.
	Variance float64
}

// Sensor is the capability contract every measurement adapter satisfies:
// voltage here, power and current in later components. Implementations
// are immutable after construction and safe for concurrent use.
type Sensor interface {
	// ID returns the sensor's own object id.
	ID() ID
	// MeasuredObject returns the id of the grid object being measured.
	MeasuredObject() ID
	// CalcParam produces the solver input in the requested
	// representation, independent of the sensor's native one.
	CalcParam(target phasor.Mode) CalcParam
}

// VoltageSensorInput is the declared measurement record of one voltage
// sensor, in physical units. A symmetric record holds line voltage, an
// asymmetric record per-phase line-to-ground voltages. It arrives
// pre-validated: USigma > 0 and MeasuredObject resolvable.
type VoltageSensorInput struct {
	// ID is the sensor's own object id.
	ID ID
	// MeasuredObject references the node or terminal being measured.
	MeasuredObject ID
	// USigma is the standard deviation of the magnitude measurement, in
	// the same physical unit as UMeasured.
	USigma float64
	// UMeasured is the measured magnitude per phase, physical units.
	UMeasured phasor.Real
	// UAngleMeasured is the measured angle per phase in radians. A NaN
	// entry means "angle not measured" — a valid value, not an error.
	UAngleMeasured phasor.Real
}

// VoltageSensorUpdate is a partial re-measurement for a batch run. NaN
// fields (or NaN phase entries) mean "keep the current value"; because a
// NaN angle doubles as the angle-unknown sentinel, an update cannot
// un-measure a previously known angle.
type VoltageSensorUpdate struct {
	// ID must match the sensor being updated.
	ID ID
	// USigma replaces the magnitude standard deviation; NaN keeps it.
	USigma float64
	// UMeasured replaces magnitudes per phase; NaN entries keep them.
	// Must be in the sensor's native representation.
	UMeasured phasor.Real
	// UAngleMeasured replaces angles per phase; NaN entries keep them.
	// Must be in the sensor's native representation.
	UAngleMeasured phasor.Real
}

// VoltageSensorOutput is the user-facing residual report of one voltage
// sensor after the solver converged, in physical units.
type VoltageSensorOutput struct {
	// ID is the sensor's own object id.
	ID ID
	// Energized reports whether the measured object is energized; it is
	// supplied by the topology collaborator, not computed here.
	Energized bool
	// UResidual is (own − calculated) magnitude per phase, physical units.
	UResidual phasor.Real
	// UAngleResidual is (own − calculated) angle per phase in radians;
	// NaN when the sensor never measured the angle.
	UAngleResidual phasor.Real
}

// CalcParams collects the solver input of every sensor in one
// representation — the measurement-assembly fan-out the iterative solver
// performs once per run. Pure and allocation-bounded; the sensors are
// only read.
func CalcParams(sensors []Sensor, target phasor.Mode) []CalcParam {
	out := make([]CalcParam, len(sensors))
	for i, s := range sensors {
		out[i] = s.CalcParam(target)
	}
	return out
}
