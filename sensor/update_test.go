// Package sensor_test: batch-update behavior of the voltage adapter.
package sensor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrankKr/power-grid-model/phasor"
	"github.com/FrankKr/power-grid-model/sensor"
)

// keepSym is a "field not supplied" marker for a symmetric record.
func keepSym() phasor.Real { return phasor.NewSymReal(math.NaN()) }

func TestWithUpdateMagnitude(t *testing.T) {
	s := symSensor(t, 0.2)

	next, err := s.WithUpdate(sensor.VoltageSensorUpdate{
		ID:             0,
		USigma:         math.NaN(),
		UMeasured:      phasor.NewSymReal(10.2e3),
		UAngleMeasured: keepSym(),
	})
	require.NoError(t, err)

	p := next.CalcParam(phasor.Sym)
	assert.InDelta(t, 1.02, phasor.Abs(p.Value.At(0)), eps, "new magnitude applies")
	assert.InDelta(t, 0.2, phasor.Arg(p.Value.At(0)), eps, "angle is kept")
	assert.InDelta(t, 1.0e-8, p.Variance, 1e-16, "sigma is kept")

	// The receiver is immutable: the original adapter still reports the
	// old measurement.
	old := s.CalcParam(phasor.Sym)
	assert.InDelta(t, 1.01, phasor.Abs(old.Value.At(0)), eps)
}

func TestWithUpdateSigma(t *testing.T) {
	s := symSensor(t, 0.2)

	next, err := s.WithUpdate(sensor.VoltageSensorUpdate{
		ID:             0,
		USigma:         2.0,
		UMeasured:      keepSym(),
		UAngleMeasured: keepSym(),
	})
	require.NoError(t, err)
	assert.InDelta(t, 4.0e-8, next.Variance(), 1e-16)
	assert.InDelta(t, 1.01, phasor.Abs(next.CalcParam(phasor.Sym).Value.At(0)), eps)
}

func TestWithUpdatePerPhase(t *testing.T) {
	s := asymSensor(t, 0.1, 0.2, 0.3)

	// Re-measure phase B only; NaN entries keep the other phases.
	next, err := s.WithUpdate(sensor.VoltageSensorUpdate{
		ID:             0,
		USigma:         math.NaN(),
		UMeasured:      phasor.NewAsymReal(math.NaN(), 10.4e3/phasor.Sqrt3, math.NaN()),
		UAngleMeasured: phasor.NewAsymReal(math.NaN(), 0.4, math.NaN()),
	})
	require.NoError(t, err)

	p := next.CalcParam(phasor.Asym)
	assert.InDelta(t, 1.01, phasor.Abs(p.Value.At(0)), eps)
	assert.InDelta(t, 0.1, phasor.Arg(p.Value.At(0)), eps)
	assert.InDelta(t, 1.04, phasor.Abs(p.Value.At(1)), eps)
	assert.InDelta(t, 0.4, phasor.Arg(p.Value.At(1)), eps)
	assert.InDelta(t, 1.03, phasor.Abs(p.Value.At(2)), eps)
	assert.InDelta(t, 0.3, phasor.Arg(p.Value.At(2)), eps)
}

func TestWithUpdateKeepsSentinel(t *testing.T) {
	s := symSensor(t, math.NaN())

	next, err := s.WithUpdate(sensor.VoltageSensorUpdate{
		ID:             0,
		USigma:         math.NaN(),
		UMeasured:      phasor.NewSymReal(10.3e3),
		UAngleMeasured: keepSym(),
	})
	require.NoError(t, err)

	v := next.CalcParam(phasor.Sym).Value.At(0)
	assert.InDelta(t, 1.03, real(v), eps, "new magnitude, still angle-unknown")
	assert.True(t, math.IsNaN(imag(v)), "an update cannot invent an angle")
}

func TestWithUpdateErrors(t *testing.T) {
	s := symSensor(t, 0.2)

	_, err := s.WithUpdate(sensor.VoltageSensorUpdate{
		ID:             99,
		USigma:         math.NaN(),
		UMeasured:      keepSym(),
		UAngleMeasured: keepSym(),
	})
	assert.ErrorIs(t, err, sensor.ErrUpdateID)

	_, err = s.WithUpdate(sensor.VoltageSensorUpdate{
		ID:             0,
		USigma:         math.NaN(),
		UMeasured:      phasor.NewAsymReal(1, 2, 3),
		UAngleMeasured: keepSym(),
	})
	assert.ErrorIs(t, err, phasor.ErrModeMismatch,
		"an update must use the sensor's native representation")
}
