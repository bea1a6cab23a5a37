package sensor_test

import (
	"testing"

	"github.com/FrankKr/power-grid-model/phasor"
	"github.com/FrankKr/power-grid-model/sensor"
)

func benchSensor(b *testing.B) *sensor.VoltageSensor {
	b.Helper()
	s, err := sensor.NewVoltageSensor(sensor.VoltageSensorInput{
		ID:             0,
		MeasuredObject: 1,
		USigma:         1.0,
		UMeasured:      phasor.NewAsymReal(10.1e3/phasor.Sqrt3, 10.2e3/phasor.Sqrt3, 10.3e3/phasor.Sqrt3),
		UAngleMeasured: phasor.NewAsymReal(0.1, 0.2, 0.3),
	}, 10.0e3)
	if err != nil {
		b.Fatal(err)
	}
	return s
}

func BenchmarkCalcParamCollapse(b *testing.B) {
	s := benchSensor(b)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.CalcParam(phasor.Sym)
	}
}

func BenchmarkOutputAsym(b *testing.B) {
	s := benchSensor(b)
	calc := phasor.NewAsymValue(
		phasor.FromPolar(1.02, 0.2),
		phasor.FromPolar(1.04, 0.4),
		phasor.FromPolar(1.06, 0.6),
	)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Output(calc, true)
	}
}
