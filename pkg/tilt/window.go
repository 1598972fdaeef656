package tilt

import (
	"fmt"
	"time"
)

// DefaultWindowSize is the number of consecutive calendar months in
// each sliding window.
const DefaultWindowSize = 3

// WindowResult is the optimizer outcome for one window of consecutive
// calendar months.
type WindowResult struct {
	Label       string       `json:"window_label"`
	Months      []time.Month `json:"months"`
	OptimalTilt int          `json:"optimal_tilt"`
	MaxEnergy   float64      `json:"max_energy"`
}

// SlidingWindows runs the tilt optimizer over twelve overlapping
// windows of consecutive calendar months, one starting at each month
// and wrapping circularly across the year boundary: the "Nov-Jan" and
// "Dec-Feb" windows include January (and February) of the same
// analyzed year. Window labels join the first and last month, e.g.
// "Jan-Mar".
func (e *Engine) SlidingWindows(size int, sky SkyCondition) ([]WindowResult, error) {
	if size < 1 || size > 12 {
		return nil, fmt.Errorf("window size %d outside 1-12: %w", size, ErrInvalidParameter)
	}

	results := make([]WindowResult, 0, 12)
	for start := 0; start < 12; start++ {
		months := make([]time.Month, size)
		for i := range months {
			months[i] = time.Month((start+i)%12 + 1)
		}

		opt, err := e.OptimalTilt(months, sky)
		if err != nil {
			return nil, err
		}
		results = append(results, WindowResult{
			Label:       fmt.Sprintf("%s-%s", monthLabel(months[0]), monthLabel(months[size-1])),
			Months:      months,
			OptimalTilt: opt.Tilt,
			MaxEnergy:   opt.Energy,
		})
	}
	return results, nil
}
