// Package dataset loads hourly solar CSV data into engine records.
// The expected input is one row per hour of a calendar year with
// measured and clear-sky irradiance columns; the declination column is
// optional when date/time columns are present, in which case the
// declination is derived astronomically.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/tiltwise/tiltwise/pkg/tilt"
)

// ErrDataLoad reports a problem reading or parsing the input file.
// The engine refuses to run on anything but a fully loaded dataset.
var ErrDataLoad = errors.New("data load failure")

// Column names expected in the input CSV.
const (
	colYear     = "Year"
	colMonth    = "Month"
	colDay      = "Day"
	colHour     = "Hour"
	colDHI      = "DHI"
	colDNI      = "DNI"
	colClearDHI = "Clearsky DHI"
	colClearDNI = "Clearsky DNI"
	colDecl     = "Declination Angle"
)

// LoadCSV reads the hourly solar CSV at path into engine records.
func LoadCSV(path string, logger *zap.SugaredLogger) ([]tilt.HourlyRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %v: %w", path, err, ErrDataLoad)
	}
	defer f.Close()
	return Parse(f, logger)
}

// Parse reads hourly solar CSV data from r. Rows must be in time
// order; the hour index of each record is its row position. When the
// declination column is absent, Year/Month/Day/Hour columns are
// required and the declination is computed for the middle of each
// hour.
func Parse(r io.Reader, logger *zap.SugaredLogger) ([]tilt.HourlyRecord, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %v: %w", err, ErrDataLoad)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{colMonth, colDHI, colDNI, colClearDHI, colClearDNI} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q: %w", required, ErrDataLoad)
		}
	}

	_, hasDecl := cols[colDecl]
	if !hasDecl {
		for _, required := range []string{colYear, colDay, colHour} {
			if _, ok := cols[required]; !ok {
				return nil, fmt.Errorf("no %q column and no %q column to derive it from: %w",
					colDecl, required, ErrDataLoad)
			}
		}
		logger.Infow("no declination column, deriving astronomically")
	}

	var records []tilt.HourlyRecord
	for row := 0; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %v: %w", row+1, err, ErrDataLoad)
		}

		month, err := intField(fields, cols, colMonth, row)
		if err != nil {
			return nil, err
		}
		rec := tilt.HourlyRecord{
			Month:     time.Month(month),
			HourIndex: row,
		}
		if rec.DHICloudy, err = floatField(fields, cols, colDHI, row); err != nil {
			return nil, err
		}
		if rec.DNICloudy, err = floatField(fields, cols, colDNI, row); err != nil {
			return nil, err
		}
		if rec.DHIClear, err = floatField(fields, cols, colClearDHI, row); err != nil {
			return nil, err
		}
		if rec.DNIClear, err = floatField(fields, cols, colClearDNI, row); err != nil {
			return nil, err
		}

		if hasDecl {
			if rec.Declination, err = floatField(fields, cols, colDecl, row); err != nil {
				return nil, err
			}
		} else {
			year, err := intField(fields, cols, colYear, row)
			if err != nil {
				return nil, err
			}
			day, err := intField(fields, cols, colDay, row)
			if err != nil {
				return nil, err
			}
			hour, err := intField(fields, cols, colHour, row)
			if err != nil {
				return nil, err
			}
			// Mid-hour instant for a representative declination.
			t := time.Date(year, rec.Month, day, hour, 30, 0, 0, time.UTC)
			rec.Declination = Declination(t)
		}

		records = append(records, rec)
	}

	logger.Infow("dataset loaded", "hours", len(records), "derived_declination", !hasDecl)
	return records, nil
}

func floatField(fields []string, cols map[string]int, name string, row int) (float64, error) {
	idx := cols[name]
	if idx >= len(fields) {
		return 0, fmt.Errorf("row %d has no %q field: %w", row+1, name, ErrDataLoad)
	}
	v, err := strconv.ParseFloat(fields[idx], 64)
	if err != nil {
		return 0, fmt.Errorf("row %d column %q: %v: %w", row+1, name, err, ErrDataLoad)
	}
	return v, nil
}

func intField(fields []string, cols map[string]int, name string, row int) (int, error) {
	v, err := floatField(fields, cols, name, row)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
