package tilt

import (
	"fmt"
	"math"
	"time"
)

// Arrangement identifies one of the six panel-mounting strategies. The
// set is closed: each value maps to a fixed composition of aggregator
// and optimizer calls.
type Arrangement int

const (
	// FixedFlat keeps the panel horizontal all year.
	FixedFlat Arrangement = iota
	// FixedLatitude fixes the tilt at the site latitude, rounded
	// half-up to the nearest degree.
	FixedLatitude
	// TwoSeasonFixed uses latitude − axialTilt/2 in summer and
	// latitude + axialTilt/2 in winter.
	TwoSeasonFixed
	// MonthlyOptimal re-optimizes the tilt for each calendar month.
	MonthlyOptimal
	// TwoSeasonOptimal optimizes one tilt for the summer months and
	// one for the winter months.
	TwoSeasonOptimal
	// AnnualOptimal optimizes a single tilt over the whole year.
	AnnualOptimal
)

// Arrangements lists every strategy in evaluation order.
var Arrangements = []Arrangement{
	FixedFlat,
	FixedLatitude,
	TwoSeasonFixed,
	MonthlyOptimal,
	TwoSeasonOptimal,
	AnnualOptimal,
}

func (a Arrangement) String() string {
	switch a {
	case FixedFlat:
		return "0° Fixed"
	case FixedLatitude:
		return "Latitude Fixed"
	case TwoSeasonFixed:
		return "Two-Season Fixed"
	case MonthlyOptimal:
		return "Monthly Optimal"
	case TwoSeasonOptimal:
		return "Two-Season Optimal"
	case AnnualOptimal:
		return "Annual Optimal"
	default:
		return fmt.Sprintf("Arrangement(%d)", int(a))
	}
}

// TiltSetting is one labeled tilt used by a strategy: a single
// year-round angle, a summer/winter pair, or twelve monthly angles.
type TiltSetting struct {
	Label   string  `json:"label"`
	Degrees float64 `json:"degrees"`
}

// ArrangementResult is the outcome of evaluating one strategy under
// one sky condition.
type ArrangementResult struct {
	Arrangement  Arrangement   `json:"arrangement"`
	Name         string        `json:"name"`
	Sky          SkyCondition  `json:"sky"`
	AnnualEnergy float64       `json:"annual_energy"`
	Tilts        []TiltSetting `json:"tilt_angles"`
}

// EvaluateArrangement computes the annual energy and tilt angles for
// one strategy under one sky condition. Cloudy and clear results never
// mix: every term in the total uses the requested condition.
func (e *Engine) EvaluateArrangement(a Arrangement, sky SkyCondition) (ArrangementResult, error) {
	result := ArrangementResult{Arrangement: a, Name: a.String(), Sky: sky}

	switch a {
	case FixedFlat:
		energy, err := e.PeriodEnergy(0, AllMonths(), sky)
		if err != nil {
			return ArrangementResult{}, err
		}
		result.AnnualEnergy = energy
		result.Tilts = []TiltSetting{{Label: "year-round", Degrees: 0}}

	case FixedLatitude:
		tilt := math.Round(e.site.Latitude)
		energy, err := e.PeriodEnergy(tilt, AllMonths(), sky)
		if err != nil {
			return ArrangementResult{}, err
		}
		result.AnnualEnergy = energy
		result.Tilts = []TiltSetting{{Label: "year-round", Degrees: tilt}}

	case TwoSeasonFixed:
		offset := e.site.AxialTilt / 2
		summerTilt := e.site.Latitude - offset
		winterTilt := e.site.Latitude + offset
		summer, err := e.PeriodEnergy(summerTilt, e.site.SummerMonths, sky)
		if err != nil {
			return ArrangementResult{}, err
		}
		winter, err := e.PeriodEnergy(winterTilt, e.site.WinterMonths, sky)
		if err != nil {
			return ArrangementResult{}, err
		}
		result.AnnualEnergy = summer + winter
		result.Tilts = []TiltSetting{
			{Label: "summer", Degrees: summerTilt},
			{Label: "winter", Degrees: winterTilt},
		}

	case MonthlyOptimal:
		result.Tilts = make([]TiltSetting, 0, 12)
		for _, m := range AllMonths() {
			opt, err := e.OptimalTilt([]time.Month{m}, sky)
			if err != nil {
				return ArrangementResult{}, err
			}
			result.AnnualEnergy += opt.Energy
			result.Tilts = append(result.Tilts, TiltSetting{
				Label:   monthLabel(m),
				Degrees: float64(opt.Tilt),
			})
		}

	case TwoSeasonOptimal:
		summer, err := e.OptimalTilt(e.site.SummerMonths, sky)
		if err != nil {
			return ArrangementResult{}, err
		}
		winter, err := e.OptimalTilt(e.site.WinterMonths, sky)
		if err != nil {
			return ArrangementResult{}, err
		}
		result.AnnualEnergy = summer.Energy + winter.Energy
		result.Tilts = []TiltSetting{
			{Label: "summer", Degrees: float64(summer.Tilt)},
			{Label: "winter", Degrees: float64(winter.Tilt)},
		}

	case AnnualOptimal:
		opt, err := e.OptimalTilt(AllMonths(), sky)
		if err != nil {
			return ArrangementResult{}, err
		}
		result.AnnualEnergy = opt.Energy
		result.Tilts = []TiltSetting{{Label: "year-round", Degrees: float64(opt.Tilt)}}

	default:
		return ArrangementResult{}, fmt.Errorf("unknown arrangement %d: %w", a, ErrInvalidParameter)
	}

	e.logger.Debugw("arrangement evaluated",
		"arrangement", result.Name, "sky", sky, "annual_energy", result.AnnualEnergy)
	return result, nil
}

// EvaluateAll evaluates the six strategies for one sky condition, in
// the order given by Arrangements.
func (e *Engine) EvaluateAll(sky SkyCondition) ([]ArrangementResult, error) {
	results := make([]ArrangementResult, 0, len(Arrangements))
	for _, a := range Arrangements {
		r, err := e.EvaluateArrangement(a, sky)
		if err != nil {
			return nil, fmt.Errorf("evaluating %s: %w", a, err)
		}
		results = append(results, r)
	}
	return results, nil
}

func monthLabel(m time.Month) string {
	return m.String()[:3]
}
