package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solar"
)

func main() {
	var timeStr string
	flag.StringVar(&timeStr, "time", "", "UTC time to calculate declination for (RFC3339 format, e.g., 2023-06-21T12:00:00Z)")
	flag.Parse()

	var t time.Time
	if timeStr == "" {
		t = time.Now().UTC()
	} else {
		var err error
		t, err = time.Parse(time.RFC3339, timeStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing time: %v\n", err)
			os.Exit(1)
		}
	}

	jd := julian.TimeToJD(t)
	ra, dec := solar.ApparentEquatorial(jd)

	fmt.Printf("Apparent solar position for %s\n", t.Format(time.RFC3339))
	fmt.Printf("  Julian Day:      %.5f\n", jd)
	fmt.Printf("  Right ascension: %.4f h\n", ra.Hour())
	fmt.Printf("  Declination:     %.4f°\n", dec.Deg())
}
