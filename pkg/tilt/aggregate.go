package tilt

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
)

// PeriodEnergy sums the hourly energy collected at the given tilt over
// every record whose month is in the set, for one sky condition. The
// month set is treated as a set: duplicates are ignored and the result
// depends only on which months are selected, never on their order.
func (e *Engine) PeriodEnergy(tiltDeg float64, months []time.Month, sky SkyCondition) (float64, error) {
	if err := validateTilt(tiltDeg); err != nil {
		return 0, err
	}
	if err := validateSky(sky); err != nil {
		return 0, err
	}
	mask, err := monthMask(months)
	if err != nil {
		return 0, err
	}

	latRad := degToRad(e.site.Latitude)
	contributions := make([]float64, 0, e.data.Len())
	for _, rec := range e.data.records {
		if !mask[rec.Month] {
			continue
		}
		contributions = append(contributions, hourlyEnergy(latRad, tiltDeg, rec, sky))
	}
	return floats.Sum(contributions), nil
}

// monthMask converts a month set into a membership mask, rejecting
// empty sets and out-of-range months.
func monthMask(months []time.Month) ([13]bool, error) {
	var mask [13]bool
	if len(months) == 0 {
		return mask, fmt.Errorf("empty month set: %w", ErrInvalidParameter)
	}
	for _, m := range months {
		if m < time.January || m > time.December {
			return mask, fmt.Errorf("month %d outside 1-12: %w", m, ErrInvalidParameter)
		}
		mask[m] = true
	}
	return mask, nil
}
