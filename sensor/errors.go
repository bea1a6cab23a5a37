// SPDX-License-Identifier: MIT
package sensor

import "errors"

// Sentinel errors for sensor construction and update. Operations on a
// constructed sensor are total and never fail.
var (
	// ErrRatedVoltage indicates a non-positive rated voltage: the
	// per-unit base would divide by zero. A configuration error.
	ErrRatedVoltage = errors.New("sensor: rated voltage must be positive")

	// ErrUpdateID indicates an update record addressed to a different
	// sensor id.
	ErrUpdateID = errors.New("sensor: update id does not match sensor id")
)
