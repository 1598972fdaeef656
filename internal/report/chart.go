package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/tiltwise/tiltwise/pkg/tilt"
)

// WindowChart writes a line chart of the optimal tilt for each sliding
// window across the year.
func WindowChart(path string, year int, windows []tilt.WindowResult) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("3-Month Sliding Window Optimal Tilt (%d, Cloudy Sky)", year)
	p.X.Label.Text = "3-Month Window"
	p.Y.Label.Text = "Optimal Panel Tilt (°)"
	p.Y.Min = 0

	pts := make(plotter.XYs, len(windows))
	labels := make([]string, len(windows))
	for i, w := range windows {
		pts[i] = plotter.XY{X: float64(i), Y: float64(w.OptimalTilt)}
		labels[i] = w.Label
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("building window chart: %w", err)
	}
	line.Color = plotutil.Color(0)
	p.Add(line, points)
	p.Legend.Add(fmt.Sprintf("%d optimal tilt", year), line)
	p.NominalX(labels...)

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// ArrangementChart writes a grouped bar chart comparing the annual
// energy of all arrangements under both sky conditions.
func ArrangementChart(path string, year int, cloudy, clear []tilt.ArrangementResult) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Annual GHI Output Comparison for All Arrangements (%d)", year)
	p.Y.Label.Text = "Total GHI (Wh/m²)"

	names := make([]string, len(cloudy))
	cloudyVals := make(plotter.Values, len(cloudy))
	clearVals := make(plotter.Values, len(clear))
	for i := range cloudy {
		names[i] = cloudy[i].Name
		cloudyVals[i] = cloudy[i].AnnualEnergy
	}
	for i := range clear {
		clearVals[i] = clear[i].AnnualEnergy
	}

	width := vg.Points(18)
	cloudyBars, err := plotter.NewBarChart(cloudyVals, width)
	if err != nil {
		return fmt.Errorf("building arrangement chart: %w", err)
	}
	cloudyBars.Color = plotutil.Color(0)
	cloudyBars.Offset = -width / 2

	clearBars, err := plotter.NewBarChart(clearVals, width)
	if err != nil {
		return fmt.Errorf("building arrangement chart: %w", err)
	}
	clearBars.Color = plotutil.Color(1)
	clearBars.Offset = width / 2

	p.Add(cloudyBars, clearBars)
	p.Legend.Add("cloudy sky", cloudyBars)
	p.Legend.Add("clear sky", clearBars)
	p.Legend.Top = true
	p.NominalX(names...)

	if err := p.Save(12*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
