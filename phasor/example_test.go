package phasor_test

import (
	"fmt"
	"math"

	"github.com/FrankKr/power-grid-model/phasor"
)

// ExampleValue_Positive collapses a perfectly balanced three-phase
// quantity back to its positive-sequence phasor.
func ExampleValue_Positive() {
	va := phasor.FromPolar(1.0, 0)
	three := phasor.Balanced(va)
	v1 := three.Positive()
	fmt.Printf("%.3f∠%.3f\n", phasor.Abs(v1), phasor.Arg(v1))
	// Output:
	// 1.000∠0.000
}

// ExampleFromPolar shows the sentinel for a sensor that measured a
// magnitude without a phase angle.
func ExampleFromPolar() {
	c := phasor.FromPolar(1.01, math.NaN())
	fmt.Printf("magnitude %.2f, angle known: %v\n", phasor.Abs(c), phasor.HasAngle(c))
	// Output:
	// magnitude 1.01, angle known: false
}
