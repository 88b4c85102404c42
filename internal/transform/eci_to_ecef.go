// Package transform converts Earth-Centered Inertial (ECI) positions to the
// Earth-Centered Earth-Fixed (ECEF) frame.
//
// Method: Simplified Vallado-style rotation using GMST only (ECI → PEF ≈ ECEF).
// This ignores polar motion and the equation of the equinoxes, which introduces
// ~50m error at most — acceptable for ground-track and visualization work.
//
// Reference: Vallado, "Fundamentals of Astrodynamics and Applications", Ch. 3.
package transform

import "math"

// Vector3 is a position in kilometers. The rotation itself is unit-agnostic,
// but kilometers is the documented contract throughout this package.
type Vector3 struct {
	X, Y, Z float64 // km
}

// Magnitude returns the Euclidean norm of the vector in kilometers.
func (v Vector3) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// ECIToECEF rotates an ECI position into the ECEF frame using a precomputed
// GMST angle in degrees.
//
// Position transform: r_ECEF = R3(θ) * r_ECI
//
// where R3(θ) is a rotation about the Z-axis by angle θ (GMST). The Z
// component is invariant because GMST-only rotation does not model polar
// motion.
func ECIToECEF(gmstDeg float64, eci Vector3) Vector3 {
	theta := gmstDeg * math.Pi / 180.0
	cosG := math.Cos(theta)
	sinG := math.Sin(theta)

	return Vector3{
		X: eci.X*cosG + eci.Y*sinG,
		Y: -eci.X*sinG + eci.Y*cosG,
		Z: eci.Z,
	}
}

// ECIToECEFAt runs the full pipeline for a civil UTC date/time: calendar date
// to Julian Date, Julian Date to GMST, then the R3(GMST) rotation.
func ECIToECEFAt(c CivilDateTime, eci Vector3) Vector3 {
	return ECIToECEF(GMST(c.JulianDate()), eci)
}

// ValidatePosition checks that a position is physically reasonable for an
// Earth-orbiting object. Returns true if valid.
// Expected: magnitude between Earth radius (~6371km) and ~50000km (high orbit).
func ValidatePosition(v Vector3) bool {
	// Check for NaN/Inf.
	if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) {
		return false
	}
	if math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0) {
		return false
	}

	mag := v.Magnitude()

	// Earth radius is ~6371km. LEO is ~6571-6971km. GEO is ~42164km.
	// Allow generous range: 6200km to 50000km.
	const minRadius = 6200.0
	const maxRadius = 50000.0

	return mag >= minRadius && mag <= maxRadius
}
