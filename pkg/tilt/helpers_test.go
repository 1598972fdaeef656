package tilt

import (
	"math"
	"testing"
	"time"
)

// makeTestYear builds a deterministic synthetic non-leap year of
// hourly records: sinusoidal declination, a daytime irradiance bell,
// and a cloudy condition that shifts energy from the direct beam into
// the diffuse sky.
func makeTestYear() []HourlyRecord {
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	records := make([]HourlyRecord, 0, 8760)
	for i := 0; i < 8760; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		n := float64(ts.YearDay())
		decl := 23.45 * math.Sin(degToRad(360.0/365.0*(n-81)))

		var dniClear, dhiClear float64
		if h := ts.Hour(); h >= 6 && h <= 17 {
			s := math.Sin(math.Pi * (float64(h-6) + 0.5) / 12.0)
			dniClear = 900 * s
			dhiClear = 80 + 40*s
		}

		records = append(records, HourlyRecord{
			Month:       ts.Month(),
			HourIndex:   i,
			DNIClear:    dniClear,
			DHIClear:    dhiClear,
			DNICloudy:   0.55 * dniClear,
			DHICloudy:   1.4 * dhiClear,
			Declination: decl,
		})
	}
	return records
}

func testSite() Site {
	return Site{
		Latitude:  29.651949,
		AxialTilt: 23.45,
		SummerMonths: []time.Month{
			time.April, time.May, time.June,
			time.July, time.August, time.September,
		},
		WinterMonths: []time.Month{
			time.October, time.November, time.December,
			time.January, time.February, time.March,
		},
	}
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	data, err := NewDataset(makeTestYear(), 23.45)
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	e, err := NewEngine(testSite(), data, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

// zeroEngine returns an engine over a year with all irradiance zeroed,
// so every tilt collects exactly the same (zero) energy.
func zeroEngine(t *testing.T) *Engine {
	t.Helper()
	records := makeTestYear()
	for i := range records {
		records[i].DNICloudy = 0
		records[i].DNIClear = 0
		records[i].DHICloudy = 0
		records[i].DHIClear = 0
	}
	data, err := NewDataset(records, 23.45)
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	e, err := NewEngine(testSite(), data, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}
