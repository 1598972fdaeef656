package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tiltwise/tiltwise/internal/constants"
	"github.com/tiltwise/tiltwise/internal/dataset"
	"github.com/tiltwise/tiltwise/internal/log"
	"github.com/tiltwise/tiltwise/internal/report"
	"github.com/tiltwise/tiltwise/pkg/config"
	"github.com/tiltwise/tiltwise/pkg/tilt"
)

func main() {
	cfgFile := flag.String("config", "config.yaml", "Path to YAML configuration file")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("tiltwise %s\n", constants.Version)
		os.Exit(0)
	}

	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(*cfgFile); err != nil {
		log.Errorf("Analysis failed: %v", err)
		os.Exit(1)
	}
}

func run(cfgFile string) error {
	filename, _ := filepath.Abs(cfgFile)
	cfg, err := config.NewYAMLProvider(filename).LoadConfig()
	if err != nil {
		return fmt.Errorf("error reading config file. Did you pass the -config flag? Run with -h for help: %w", err)
	}

	records, err := dataset.LoadCSV(cfg.Dataset.Path, log.GetSugaredLogger())
	if err != nil {
		return err
	}
	data, err := tilt.NewDataset(records, cfg.Site.AxialTilt)
	if err != nil {
		return err
	}

	site := tilt.Site{
		Latitude:     cfg.Site.Latitude,
		AxialTilt:    cfg.Site.AxialTilt,
		SummerMonths: config.Months(cfg.Site.SummerMonths),
		WinterMonths: config.Months(cfg.Site.WinterMonths),
	}
	engine, err := tilt.NewEngine(site, data, log.GetSugaredLogger())
	if err != nil {
		return err
	}

	cloudy, err := engine.EvaluateAll(tilt.SkyCloudy)
	if err != nil {
		return err
	}
	clear, err := engine.EvaluateAll(tilt.SkyClear)
	if err != nil {
		return err
	}
	windows, err := engine.SlidingWindows(tilt.DefaultWindowSize, tilt.SkyCloudy)
	if err != nil {
		return err
	}

	fmt.Printf("--- Annual GHI Output Table by Arrangement (%d) ---\n", cfg.Dataset.Year)
	fmt.Print(report.ArrangementTable(cloudy, clear))
	fmt.Printf("\n--- %d-Month Sliding Window Analysis (%d, cloudy sky) ---\n",
		tilt.DefaultWindowSize, cfg.Dataset.Year)
	fmt.Print(report.WindowTable(windows))

	if cfg.Output.Dir == "" {
		return nil
	}
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	summary := report.NewSummary(cfg.Dataset.Year, cfg.Site.Latitude, cloudy, clear, windows)
	if err := report.WriteJSON(filepath.Join(cfg.Output.Dir, "results.json"), summary); err != nil {
		return err
	}
	if err := report.WriteWindowsCSV(filepath.Join(cfg.Output.Dir, "sliding_window.csv"), windows); err != nil {
		return err
	}
	monthly, err := engine.MonthlyComparison(tilt.SkyCloudy)
	if err != nil {
		return err
	}
	if err := report.WriteMonthlyCSV(filepath.Join(cfg.Output.Dir, "monthly_ghi.csv"), monthly); err != nil {
		return err
	}

	if cfg.Output.Charts {
		if err := report.WindowChart(filepath.Join(cfg.Output.Dir, "sliding_window.png"), cfg.Dataset.Year, windows); err != nil {
			return err
		}
		if err := report.ArrangementChart(filepath.Join(cfg.Output.Dir, "arrangements.png"), cfg.Dataset.Year, cloudy, clear); err != nil {
			return err
		}
	}

	log.Infof("Results written to %s (run %s)", cfg.Output.Dir, summary.RunID)
	return nil
}
