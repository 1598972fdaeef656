// Package tilt implements a solar panel tilt analysis engine. It
// estimates the Global Horizontal Irradiance collected by a tilted
// panel over one calendar year of hourly data and searches for the
// tilt angles that maximize collected energy under six mounting
// strategies.
package tilt

import (
	"fmt"
	"time"
)

// SkyCondition selects which irradiance measurements a calculation
// uses: the measured (cloudy) values or the clear-sky model values.
type SkyCondition string

const (
	SkyCloudy SkyCondition = "cloudy"
	SkyClear  SkyCondition = "clear"
)

func (s SkyCondition) valid() bool {
	return s == SkyCloudy || s == SkyClear
}

// HourlyRecord is one hour of solar data: direct normal and diffuse
// horizontal irradiance under both sky conditions, plus the solar
// declination for that hour in degrees.
type HourlyRecord struct {
	Month       time.Month `json:"month"`
	HourIndex   int        `json:"hour_index"`
	DNICloudy   float64    `json:"dni_cloudy"`
	DNIClear    float64    `json:"dni_clear"`
	DHICloudy   float64    `json:"dhi_cloudy"`
	DHIClear    float64    `json:"dhi_clear"`
	Declination float64    `json:"declination"`
}

func (r HourlyRecord) dni(sky SkyCondition) float64 {
	if sky == SkyClear {
		return r.DNIClear
	}
	return r.DNICloudy
}

func (r HourlyRecord) dhi(sky SkyCondition) float64 {
	if sky == SkyClear {
		return r.DHIClear
	}
	return r.DHICloudy
}

// Site holds the immutable site constants for an analysis run. The
// axial tilt is used only as a sanity bound on record declinations and
// as the basis for the two-season fixed offsets.
type Site struct {
	Latitude     float64
	AxialTilt    float64
	SummerMonths []time.Month
	WinterMonths []time.Month
}

// Validate checks the site constants: latitude within [-90, 90], a
// physically plausible axial tilt, and summer/winter month sets that
// are disjoint and together cover all twelve months.
func (s Site) Validate() error {
	if s.Latitude < -90 || s.Latitude > 90 {
		return fmt.Errorf("latitude %.4f outside [-90, 90]: %w", s.Latitude, ErrInvalidParameter)
	}
	if s.AxialTilt <= 0 || s.AxialTilt >= 90 {
		return fmt.Errorf("axial tilt %.4f outside (0, 90): %w", s.AxialTilt, ErrInvalidParameter)
	}

	var seen [13]int
	for _, m := range s.SummerMonths {
		if m < time.January || m > time.December {
			return fmt.Errorf("summer month %d outside 1-12: %w", m, ErrInvalidParameter)
		}
		seen[m]++
	}
	for _, m := range s.WinterMonths {
		if m < time.January || m > time.December {
			return fmt.Errorf("winter month %d outside 1-12: %w", m, ErrInvalidParameter)
		}
		seen[m]++
	}
	for m := time.January; m <= time.December; m++ {
		switch seen[m] {
		case 0:
			return fmt.Errorf("month %s missing from both seasons: %w", m, ErrInvalidParameter)
		case 1:
		default:
			return fmt.Errorf("month %s assigned to both seasons: %w", m, ErrInvalidParameter)
		}
	}
	return nil
}

func (s Site) isSummer(m time.Month) bool {
	for _, sm := range s.SummerMonths {
		if sm == m {
			return true
		}
	}
	return false
}

// AllMonths returns the full twelve-month set, January through December.
func AllMonths() []time.Month {
	months := make([]time.Month, 12)
	for i := range months {
		months[i] = time.Month(i + 1)
	}
	return months
}
