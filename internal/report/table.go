// Package report renders and exports engine results for human and
// machine consumption: aligned text tables, CSV and JSON exports, and
// PNG charts. The engine itself hands over plain structured data; all
// presentation concerns live here.
package report

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/tiltwise/tiltwise/pkg/tilt"
)

// ArrangementTable renders the six-arrangement comparison with cloudy
// and clear annual totals side by side. Both slices must be in
// Arrangements order, as returned by EvaluateAll.
func ArrangementTable(cloudy, clear []tilt.ArrangementResult) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "Arrangement\tTilt(s)\tCloudy Sky GHI\tClear Sky GHI")
	for i := range cloudy {
		clearEnergy := ""
		if i < len(clear) {
			clearEnergy = comma(clear[i].AnnualEnergy)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			cloudy[i].Name, tiltsLabel(cloudy[i].Tilts), comma(cloudy[i].AnnualEnergy), clearEnergy)
	}
	w.Flush()
	return buf.String()
}

// WindowTable renders the sliding-window optimal tilts.
func WindowTable(windows []tilt.WindowResult) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "Window\tOptimal Tilt\tMax GHI")
	for _, win := range windows {
		fmt.Fprintf(w, "%s\t%d°\t%s\n", win.Label, win.OptimalTilt, comma(win.MaxEnergy))
	}
	w.Flush()
	return buf.String()
}

func tiltsLabel(tilts []tilt.TiltSetting) string {
	if len(tilts) > 2 {
		return "per month"
	}
	parts := make([]string, len(tilts))
	for i, t := range tilts {
		if t.Label == "year-round" {
			parts[i] = fmt.Sprintf("%.1f°", t.Degrees)
		} else {
			parts[i] = fmt.Sprintf("%s %.1f°", t.Label, t.Degrees)
		}
	}
	return strings.Join(parts, " / ")
}

// comma formats an energy total as a whole number with thousands
// separators.
func comma(v float64) string {
	s := strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
