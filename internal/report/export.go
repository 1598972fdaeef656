package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tiltwise/tiltwise/pkg/tilt"
)

// Summary is the JSON export envelope handed to the external reporting
// layer: all six arrangement results for both sky conditions plus the
// sliding-window results, tagged with a unique run ID.
type Summary struct {
	RunID       string                   `json:"run_id"`
	GeneratedAt time.Time                `json:"generated_at"`
	Year        int                      `json:"year"`
	Latitude    float64                  `json:"latitude"`
	Cloudy      []tilt.ArrangementResult `json:"cloudy"`
	Clear       []tilt.ArrangementResult `json:"clear"`
	Windows     []tilt.WindowResult      `json:"windows"`
}

// NewSummary assembles a Summary with a fresh run ID.
func NewSummary(year int, latitude float64, cloudy, clear []tilt.ArrangementResult, windows []tilt.WindowResult) Summary {
	return Summary{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Year:        year,
		Latitude:    latitude,
		Cloudy:      cloudy,
		Clear:       clear,
		Windows:     windows,
	}
}

// WriteJSON writes the summary as indented JSON.
func WriteJSON(path string, s Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteWindowsCSV writes one row per sliding window.
func WriteWindowsCSV(path string, windows []tilt.WindowResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"window", "optimal_tilt_deg", "max_ghi"}); err != nil {
		return err
	}
	for _, win := range windows {
		row := []string{
			win.Label,
			strconv.Itoa(win.OptimalTilt),
			strconv.FormatFloat(win.MaxEnergy, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteMonthlyCSV writes the per-month energy of each arrangement, one
// row per calendar month, one column per arrangement.
func WriteMonthlyCSV(path string, rows []tilt.MonthlyComparisonRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"month"}
	for _, a := range tilt.Arrangements {
		header = append(header, a.String())
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{row.Month.String()[:3]}
		for _, a := range tilt.Arrangements {
			record = append(record, strconv.FormatFloat(row.Energy[a], 'f', 2, 64))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
