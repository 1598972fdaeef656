package tilt

import (
	"fmt"
	"time"
)

const (
	hoursPerYear     = 8760
	hoursPerLeapYear = 8784

	// declinationTolerance absorbs small differences between data
	// providers' declination models and the nominal axial tilt bound.
	declinationTolerance = 0.5
)

// Dataset is a validated, read-only year of hourly records. Records
// are never mutated after construction; every engine call reads the
// same slice.
type Dataset struct {
	records []HourlyRecord
}

// NewDataset validates one calendar year of hourly records: the count
// must be a full year (8760 or 8784 hours), records must be
// time-ordered with no gaps, all twelve months must appear, irradiance
// must be non-negative, and every declination must fall within
// ±(declinationBound + tolerance) degrees.
func NewDataset(records []HourlyRecord, declinationBound float64) (*Dataset, error) {
	if n := len(records); n != hoursPerYear && n != hoursPerLeapYear {
		return nil, fmt.Errorf("dataset has %d hours, want %d or %d: %w",
			n, hoursPerYear, hoursPerLeapYear, ErrDataIntegrity)
	}

	var monthsSeen [13]bool
	for i, r := range records {
		if r.HourIndex != i {
			return nil, fmt.Errorf("record %d has hour index %d, records must be ordered with no gaps: %w",
				i, r.HourIndex, ErrDataIntegrity)
		}
		if r.Month < time.January || r.Month > time.December {
			return nil, fmt.Errorf("record %d has month %d outside 1-12: %w", i, r.Month, ErrDataIntegrity)
		}
		if i > 0 && r.Month < records[i-1].Month {
			return nil, fmt.Errorf("record %d month %s precedes %s, records must be time-ordered: %w",
				i, r.Month, records[i-1].Month, ErrDataIntegrity)
		}
		if r.DNICloudy < 0 || r.DNIClear < 0 || r.DHICloudy < 0 || r.DHIClear < 0 {
			return nil, fmt.Errorf("record %d has negative irradiance: %w", i, ErrDataIntegrity)
		}
		if bound := declinationBound + declinationTolerance; r.Declination < -bound || r.Declination > bound {
			return nil, fmt.Errorf("record %d declination %.4f° outside ±%.2f°: %w",
				i, r.Declination, bound, ErrDataIntegrity)
		}
		monthsSeen[r.Month] = true
	}
	for m := time.January; m <= time.December; m++ {
		if !monthsSeen[m] {
			return nil, fmt.Errorf("dataset has no hours for %s: %w", m, ErrDataIntegrity)
		}
	}

	return &Dataset{records: records}, nil
}

// Len returns the number of hourly records in the dataset.
func (d *Dataset) Len() int {
	return len(d.records)
}
