// Package config loads site and run configuration for a tilt analysis.
package config

import (
	"fmt"
	"time"
)

// Provider defines the interface for configuration data sources
type Provider interface {
	// LoadConfig loads and validates the complete configuration
	LoadConfig() (*Config, error)
}

// Config is the complete configuration for one analysis run.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Dataset DatasetConfig `yaml:"dataset"`
	Output  OutputConfig  `yaml:"output"`
}

// SiteConfig holds the immutable site constants. Month sets are given
// as calendar month numbers 1-12.
type SiteConfig struct {
	Latitude     float64 `yaml:"latitude"`
	AxialTilt    float64 `yaml:"axial_tilt"`
	SummerMonths []int   `yaml:"summer_months"`
	WinterMonths []int   `yaml:"winter_months"`
}

// DatasetConfig points at the hourly solar CSV for the analyzed year.
type DatasetConfig struct {
	Path string `yaml:"path"`
	Year int    `yaml:"year"`
}

// OutputConfig controls where exports and charts are written. An
// empty Dir disables file output; tables still go to stdout.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Charts bool   `yaml:"charts"`
}

// Default returns the configuration for the Gainesville, FL reference
// site: latitude 29.651949°, April-September summer, October-March
// winter.
func Default() *Config {
	return &Config{
		Site: SiteConfig{
			Latitude:     29.651949,
			AxialTilt:    23.45,
			SummerMonths: []int{4, 5, 6, 7, 8, 9},
			WinterMonths: []int{10, 11, 12, 1, 2, 3},
		},
		Dataset: DatasetConfig{
			Path: "2023_with_declination.csv",
			Year: 2023,
		},
		Output: OutputConfig{
			Dir:    "out",
			Charts: true,
		},
	}
}

// Validate checks the configuration for contradictions before any
// computation starts.
func (c *Config) Validate() error {
	if c.Site.Latitude < -90 || c.Site.Latitude > 90 {
		return fmt.Errorf("site latitude %.4f outside [-90, 90]", c.Site.Latitude)
	}
	if c.Site.AxialTilt <= 0 || c.Site.AxialTilt >= 90 {
		return fmt.Errorf("axial tilt %.4f outside (0, 90)", c.Site.AxialTilt)
	}
	var seen [13]int
	for _, m := range append(append([]int{}, c.Site.SummerMonths...), c.Site.WinterMonths...) {
		if m < 1 || m > 12 {
			return fmt.Errorf("season month %d outside 1-12", m)
		}
		seen[m]++
	}
	for m := 1; m <= 12; m++ {
		if seen[m] != 1 {
			return fmt.Errorf("month %s must appear in exactly one season, found %d times",
				time.Month(m), seen[m])
		}
	}
	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset path must be set")
	}
	if c.Dataset.Year < 1900 || c.Dataset.Year > 2200 {
		return fmt.Errorf("dataset year %d implausible", c.Dataset.Year)
	}
	return nil
}

// Months converts a list of month numbers to time.Month values.
func Months(nums []int) []time.Month {
	months := make([]time.Month, len(nums))
	for i, n := range nums {
		months[i] = time.Month(n)
	}
	return months
}
