package tilt

import (
	"fmt"
	"math"
)

// degToRad converts an angle from degrees to radians for trigonometric calculations
func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

// HourlyEnergy returns the energy a panel at the given tilt collects
// during one hourly record, in the units of the input irradiance.
// The direct beam is scaled by the cosine of the angle of incidence,
// clamped to zero when the sun is behind the panel; the diffuse term
// uses the isotropic-sky model, where a tilted panel sees a
// (1+cos(tilt))/2 fraction of the sky dome.
func (e *Engine) HourlyEnergy(tiltDeg float64, rec HourlyRecord, sky SkyCondition) (float64, error) {
	if err := validateTilt(tiltDeg); err != nil {
		return 0, err
	}
	if err := validateSky(sky); err != nil {
		return 0, err
	}
	if rec.DNICloudy < 0 || rec.DNIClear < 0 || rec.DHICloudy < 0 || rec.DHIClear < 0 {
		return 0, fmt.Errorf("hour %d has negative irradiance: %w", rec.HourIndex, ErrDataIntegrity)
	}
	return hourlyEnergy(degToRad(e.site.Latitude), tiltDeg, rec, sky), nil
}

// hourlyEnergy is the validated-input core of the irradiance model.
// Records coming from a Dataset have already passed integrity checks.
func hourlyEnergy(latRad, tiltDeg float64, rec HourlyRecord, sky SkyCondition) float64 {
	tiltRad := degToRad(tiltDeg)
	declRad := degToRad(rec.Declination)

	// Angle of incidence between the sun's rays and the panel normal
	// for an equator-facing panel: cos θ = cos(lat − tilt − δ),
	// expanded into sine/cosine products. At tilt 0 this is the cosine
	// of the solar zenith component.
	cosTheta := math.Sin(latRad-tiltRad)*math.Sin(declRad) +
		math.Cos(latRad-tiltRad)*math.Cos(declRad)
	if cosTheta < 0 {
		// Sun behind the panel, no direct contribution this hour.
		cosTheta = 0
	}

	diffuse := rec.dhi(sky) * (1 + math.Cos(tiltRad)) / 2
	return rec.dni(sky)*cosTheta + diffuse
}

func validateTilt(tiltDeg float64) error {
	if math.IsNaN(tiltDeg) || tiltDeg < 0 || tiltDeg > 90 {
		return fmt.Errorf("tilt %.2f° outside [0, 90]: %w", tiltDeg, ErrInvalidParameter)
	}
	return nil
}

func validateSky(sky SkyCondition) error {
	if !sky.valid() {
		return fmt.Errorf("unknown sky condition %q: %w", sky, ErrInvalidParameter)
	}
	return nil
}
