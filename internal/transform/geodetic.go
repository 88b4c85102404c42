package transform

import "math"

// WGS-84 ellipsoid parameters (kilometers).
const (
	wgs84A  = 6378.137              // semi-major axis (km)
	wgs84F  = 1.0 / 298.257223563   // flattening
	wgs84E2 = wgs84F * (2 - wgs84F) // first eccentricity squared
)

// GeodeticPoint holds a geodetic position (latitude/longitude in degrees,
// altitude in kilometers above the WGS-84 ellipsoid).
type GeodeticPoint struct {
	LatDeg, LonDeg, AltKm float64
}

// ECEFToGeodetic converts an ECEF position (kilometers) to geodetic
// coordinates using the iterative Bowring method. Converges in 2-3
// iterations for Earth orbits.
func ECEFToGeodetic(v Vector3) GeodeticPoint {
	lon := math.Atan2(v.Y, v.X)

	p := math.Sqrt(v.X*v.X + v.Y*v.Y)

	// Initial estimate using Bowring's method.
	lat := math.Atan2(v.Z, p*(1-wgs84E2))

	for i := 0; i < 5; i++ {
		sinLat := math.Sin(lat)
		N := wgs84A / math.Sqrt(1-wgs84E2*sinLat*sinLat)
		lat = math.Atan2(v.Z+wgs84E2*N*sinLat, p)
	}

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	N := wgs84A / math.Sqrt(1-wgs84E2*sinLat*sinLat)

	var alt float64
	if math.Abs(cosLat) > 1e-10 {
		alt = p/cosLat - N
	} else {
		alt = math.Abs(v.Z)/math.Abs(sinLat) - N*(1-wgs84E2)
	}

	return GeodeticPoint{
		LatDeg: lat * 180.0 / math.Pi,
		LonDeg: lon * 180.0 / math.Pi,
		AltKm:  alt,
	}
}
