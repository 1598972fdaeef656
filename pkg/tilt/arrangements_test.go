package tilt

import (
	"errors"
	"testing"
)

func TestEvaluateAllShape(t *testing.T) {
	e := testEngine(t)

	results, err := e.EvaluateAll(SkyCloudy)
	if err != nil {
		t.Fatalf("EvaluateAll: %v", err)
	}
	if len(results) != len(Arrangements) {
		t.Fatalf("got %d results, expected %d", len(results), len(Arrangements))
	}

	wantTilts := map[Arrangement]int{
		FixedFlat:        1,
		FixedLatitude:    1,
		TwoSeasonFixed:   2,
		MonthlyOptimal:   12,
		TwoSeasonOptimal: 2,
		AnnualOptimal:    1,
	}
	for i, r := range results {
		if r.Arrangement != Arrangements[i] {
			t.Errorf("result %d is %s, expected %s", i, r.Arrangement, Arrangements[i])
		}
		if r.Sky != SkyCloudy {
			t.Errorf("%s: sky = %q, expected cloudy", r.Name, r.Sky)
		}
		if len(r.Tilts) != wantTilts[r.Arrangement] {
			t.Errorf("%s: %d tilt settings, expected %d", r.Name, len(r.Tilts), wantTilts[r.Arrangement])
		}
		if r.AnnualEnergy <= 0 {
			t.Errorf("%s: annual energy %.2f, expected positive", r.Name, r.AnnualEnergy)
		}
	}
}

func TestArrangementDominanceChain(t *testing.T) {
	// More optimization freedom can never collect less energy:
	// monthly ≥ two-season optimal ≥ annual optimal ≥ both fixed
	// single-tilt strategies.
	e := testEngine(t)

	for _, sky := range []SkyCondition{SkyCloudy, SkyClear} {
		results, err := e.EvaluateAll(sky)
		if err != nil {
			t.Fatalf("EvaluateAll(%s): %v", sky, err)
		}
		byArr := make(map[Arrangement]ArrangementResult, len(results))
		for _, r := range results {
			byArr[r.Arrangement] = r
		}

		checks := []struct {
			higher, lower Arrangement
		}{
			{MonthlyOptimal, TwoSeasonOptimal},
			{TwoSeasonOptimal, AnnualOptimal},
			{AnnualOptimal, FixedFlat},
			{AnnualOptimal, FixedLatitude},
		}
		for _, c := range checks {
			hi, lo := byArr[c.higher], byArr[c.lower]
			if hi.AnnualEnergy < lo.AnnualEnergy {
				t.Errorf("%s: %s (%.2f) below %s (%.2f)",
					sky, c.higher, hi.AnnualEnergy, c.lower, lo.AnnualEnergy)
			}
		}
	}
}

func TestFixedLatitudeRounding(t *testing.T) {
	// 29.651949° rounds half-up to 30°.
	e := testEngine(t)

	r, err := e.EvaluateArrangement(FixedLatitude, SkyCloudy)
	if err != nil {
		t.Fatalf("EvaluateArrangement: %v", err)
	}
	if r.Tilts[0].Degrees != 30 {
		t.Errorf("latitude tilt = %.2f°, expected 30°", r.Tilts[0].Degrees)
	}
}

func TestTwoSeasonFixedOffsets(t *testing.T) {
	e := testEngine(t)

	r, err := e.EvaluateArrangement(TwoSeasonFixed, SkyCloudy)
	if err != nil {
		t.Fatalf("EvaluateArrangement: %v", err)
	}
	summer, winter := r.Tilts[0], r.Tilts[1]
	if summer.Label != "summer" || winter.Label != "winter" {
		t.Fatalf("tilt labels = %q, %q, expected summer, winter", summer.Label, winter.Label)
	}
	wantSummer := 29.651949 - 23.45/2
	wantWinter := 29.651949 + 23.45/2
	if summer.Degrees != wantSummer {
		t.Errorf("summer tilt = %.4f°, expected %.4f°", summer.Degrees, wantSummer)
	}
	if winter.Degrees != wantWinter {
		t.Errorf("winter tilt = %.4f°, expected %.4f°", winter.Degrees, wantWinter)
	}
}

func TestEvaluateArrangementUnknown(t *testing.T) {
	e := testEngine(t)

	if _, err := e.EvaluateArrangement(Arrangement(42), SkyCloudy); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("unknown arrangement: error = %v, expected ErrInvalidParameter", err)
	}
}

func TestSkyConditionsNeverMix(t *testing.T) {
	// The synthetic cloudy and clear inputs differ, so every
	// arrangement must produce different totals per condition.
	e := testEngine(t)

	cloudy, err := e.EvaluateAll(SkyCloudy)
	if err != nil {
		t.Fatalf("EvaluateAll cloudy: %v", err)
	}
	clear, err := e.EvaluateAll(SkyClear)
	if err != nil {
		t.Fatalf("EvaluateAll clear: %v", err)
	}
	for i := range cloudy {
		if cloudy[i].AnnualEnergy == clear[i].AnnualEnergy {
			t.Errorf("%s: cloudy and clear totals both %.2f", cloudy[i].Name, cloudy[i].AnnualEnergy)
		}
	}
}
