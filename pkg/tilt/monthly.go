package tilt

import (
	"fmt"
	"math"
	"time"
)

// MonthlyComparisonRow holds, for one calendar month, the energy each
// arrangement's tilt schedule collects during that month.
type MonthlyComparisonRow struct {
	Month  time.Month
	Energy map[Arrangement]float64
	Tilts  map[Arrangement]float64
}

// MonthlyComparison breaks the six arrangements down by calendar
// month: for each month it reports the energy collected at the tilt
// that each strategy mounts during that month. The monthly energies of
// an arrangement sum to its annual total.
func (e *Engine) MonthlyComparison(sky SkyCondition) ([]MonthlyComparisonRow, error) {
	if err := validateSky(sky); err != nil {
		return nil, err
	}

	// Resolve the tilt each optimizing strategy uses per month.
	monthlyOpt := make(map[time.Month]float64, 12)
	for _, m := range AllMonths() {
		opt, err := e.OptimalTilt([]time.Month{m}, sky)
		if err != nil {
			return nil, err
		}
		monthlyOpt[m] = float64(opt.Tilt)
	}
	summerOpt, err := e.OptimalTilt(e.site.SummerMonths, sky)
	if err != nil {
		return nil, err
	}
	winterOpt, err := e.OptimalTilt(e.site.WinterMonths, sky)
	if err != nil {
		return nil, err
	}
	annualOpt, err := e.OptimalTilt(AllMonths(), sky)
	if err != nil {
		return nil, err
	}

	offset := e.site.AxialTilt / 2
	rows := make([]MonthlyComparisonRow, 0, 12)
	for _, m := range AllMonths() {
		tilts := map[Arrangement]float64{
			FixedFlat:      0,
			FixedLatitude:  math.Round(e.site.Latitude),
			MonthlyOptimal: monthlyOpt[m],
			AnnualOptimal:  float64(annualOpt.Tilt),
		}
		if e.site.isSummer(m) {
			tilts[TwoSeasonFixed] = e.site.Latitude - offset
			tilts[TwoSeasonOptimal] = float64(summerOpt.Tilt)
		} else {
			tilts[TwoSeasonFixed] = e.site.Latitude + offset
			tilts[TwoSeasonOptimal] = float64(winterOpt.Tilt)
		}

		row := MonthlyComparisonRow{
			Month:  m,
			Energy: make(map[Arrangement]float64, len(Arrangements)),
			Tilts:  tilts,
		}
		for _, a := range Arrangements {
			energy, err := e.PeriodEnergy(tilts[a], []time.Month{m}, sky)
			if err != nil {
				return nil, fmt.Errorf("monthly energy for %s in %s: %w", a, m, err)
			}
			row.Energy[a] = energy
		}
		rows = append(rows, row)
	}
	return rows, nil
}
