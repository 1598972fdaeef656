package tilt

import (
	"math"
	"time"
)

// MaxTiltDeg is the upper bound of the optimizer's search grid.
const MaxTiltDeg = 90

// OptimalResult is the outcome of a brute-force tilt search: the best
// integer tilt and the energy it collects.
type OptimalResult struct {
	Tilt   int     `json:"tilt"`
	Energy float64 `json:"energy"`
}

// OptimalTilt evaluates the period energy at every integer tilt in
// [0, 90] and returns the maximum. The grid search is deliberate: the
// objective can have nearly-flat regions, and exhaustive evaluation
// has no convergence-tolerance ambiguity at this input size. When
// several tilts collect the same maximum energy, the smallest tilt
// wins (the scan ascends from 0 and only a strictly greater energy
// replaces the incumbent).
func (e *Engine) OptimalTilt(months []time.Month, sky SkyCondition) (OptimalResult, error) {
	best := OptimalResult{Tilt: -1, Energy: math.Inf(-1)}
	for tilt := 0; tilt <= MaxTiltDeg; tilt++ {
		energy, err := e.PeriodEnergy(float64(tilt), months, sky)
		if err != nil {
			return OptimalResult{}, err
		}
		if energy > best.Energy {
			best = OptimalResult{Tilt: tilt, Energy: energy}
		}
	}
	e.logger.Debugw("optimal tilt found",
		"months", len(months), "sky", sky, "tilt", best.Tilt, "energy", best.Energy)
	return best, nil
}
