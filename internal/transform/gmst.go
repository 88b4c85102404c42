package transform

import "math"

// j2000 is the Julian Date of the J2000.0 epoch (January 1, 2000, 12:00:00 TT).
const j2000 = 2451545.0

// GMST calculates Greenwich Mean Sidereal Time in degrees for a given
// fractional Julian Date. Uses the IAU-82 model as described in Vallado
// "Fundamentals of Astrodynamics".
//
// Formula (Vallado Eq 3-47):
//
//	θ_GMST = 67310.54841 + (876600h + 8640184.812866)*T + 0.093104*T² - 6.2e-6*T³
//
// where T is Julian centuries of UT1 from J2000.0, result is in seconds of time.
// The returned angle is normalized to [0, 360) degrees.
func GMST(jd float64) float64 {
	tUT1 := (jd - j2000) / 36525.0

	// GMST in seconds of time.
	// 876600h = 876600 * 3600 = 3155760000 seconds.
	gmstSec := 67310.54841 +
		(3155760000.0+8640184.812866)*tUT1 +
		0.093104*tUT1*tUT1 -
		6.2e-6*tUT1*tUT1*tUT1

	// 240 seconds of time per degree (86400 s of time = 360°).
	gmstDeg := math.Mod(gmstSec/240.0, 360.0)

	// math.Mod keeps the sign of the dividend, so dates before J2000.0
	// come out negative and need the wrap to land in [0, 360).
	if gmstDeg < 0 {
		gmstDeg += 360.0
	}

	return gmstDeg
}
