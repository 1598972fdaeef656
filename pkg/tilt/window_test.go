package tilt

import (
	"errors"
	"testing"
	"time"
)

func TestSlidingWindowsLabels(t *testing.T) {
	e := testEngine(t)

	windows, err := e.SlidingWindows(DefaultWindowSize, SkyCloudy)
	if err != nil {
		t.Fatalf("SlidingWindows: %v", err)
	}

	wantLabels := []string{
		"Jan-Mar", "Feb-Apr", "Mar-May", "Apr-Jun", "May-Jul", "Jun-Aug",
		"Jul-Sep", "Aug-Oct", "Sep-Nov", "Oct-Dec", "Nov-Jan", "Dec-Feb",
	}
	if len(windows) != len(wantLabels) {
		t.Fatalf("got %d windows, expected %d", len(windows), len(wantLabels))
	}
	for i, w := range windows {
		if w.Label != wantLabels[i] {
			t.Errorf("window %d label = %q, expected %q", i, w.Label, wantLabels[i])
		}
	}
}

func TestSlidingWindowsWrapAround(t *testing.T) {
	// Windows wrap circularly: "Nov-Jan" includes January of the same
	// analyzed year and "Dec-Feb" includes January and February.
	e := testEngine(t)

	windows, err := e.SlidingWindows(DefaultWindowSize, SkyCloudy)
	if err != nil {
		t.Fatalf("SlidingWindows: %v", err)
	}

	novJan := windows[10].Months
	if novJan[0] != time.November || novJan[1] != time.December || novJan[2] != time.January {
		t.Errorf("Nov-Jan months = %v, expected [November December January]", novJan)
	}
	decFeb := windows[11].Months
	if decFeb[0] != time.December || decFeb[1] != time.January || decFeb[2] != time.February {
		t.Errorf("Dec-Feb months = %v, expected [December January February]", decFeb)
	}
}

func TestSlidingWindowsMatchOptimizer(t *testing.T) {
	e := testEngine(t)

	windows, err := e.SlidingWindows(DefaultWindowSize, SkyCloudy)
	if err != nil {
		t.Fatalf("SlidingWindows: %v", err)
	}
	for _, w := range windows {
		opt, err := e.OptimalTilt(w.Months, SkyCloudy)
		if err != nil {
			t.Fatalf("OptimalTilt(%v): %v", w.Months, err)
		}
		if w.OptimalTilt != opt.Tilt || w.MaxEnergy != opt.Energy {
			t.Errorf("window %s: (%d°, %.2f) does not match direct optimizer result (%d°, %.2f)",
				w.Label, w.OptimalTilt, w.MaxEnergy, opt.Tilt, opt.Energy)
		}
	}
}

func TestSlidingWindowsSolsticeExtremes(t *testing.T) {
	e := testEngine(t)

	windows, err := e.SlidingWindows(DefaultWindowSize, SkyCloudy)
	if err != nil {
		t.Fatalf("SlidingWindows: %v", err)
	}
	var junAug, decFeb WindowResult
	for _, w := range windows {
		switch w.Label {
		case "Jun-Aug":
			junAug = w
		case "Dec-Feb":
			decFeb = w
		}
	}
	if decFeb.OptimalTilt <= junAug.OptimalTilt {
		t.Errorf("Dec-Feb optimum %d° not steeper than Jun-Aug optimum %d°",
			decFeb.OptimalTilt, junAug.OptimalTilt)
	}
}

func TestSlidingWindowsSizeValidation(t *testing.T) {
	e := testEngine(t)

	for _, size := range []int{0, -1, 13} {
		if _, err := e.SlidingWindows(size, SkyCloudy); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("size %d: error = %v, expected ErrInvalidParameter", size, err)
		}
	}
}
