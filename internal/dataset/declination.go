package dataset

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solar"
)

// Declination returns the apparent solar declination in degrees at the
// given instant.
func Declination(t time.Time) float64 {
	jd := julian.TimeToJD(t.UTC())
	_, dec := solar.ApparentEquatorial(jd)
	return dec.Deg()
}
