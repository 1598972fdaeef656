package tilt

import "errors"

var (
	// ErrInvalidParameter reports a caller contract violation: a tilt
	// outside [0, 90], an empty or out-of-range month set, or an unknown
	// sky condition. Callers must not proceed after receiving it.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDataIntegrity reports an upstream data problem: a record with
	// negative irradiance, an out-of-physical-range declination, or a
	// dataset that does not cover exactly one calendar year. The run
	// aborts rather than skipping rows, since dropping hours would skew
	// monthly sums non-uniformly.
	ErrDataIntegrity = errors.New("data integrity violation")
)
