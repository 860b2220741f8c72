// Package geo holds the spherical-geometry primitives behind the
// recommendation rules.
package geo

import "math"

const earthRadiusM = 6371000.0

// HaversineM returns the great-circle distance between two points in meters.
func HaversineM(lat1, lon1, lat2, lon2 float64) float64 {
	dlat := radians(lat2 - lat1)
	dlon := radians(lon2 - lon1)
	a := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Pow(math.Sin(dlon/2), 2)
	return earthRadiusM * 2 * math.Asin(math.Sqrt(a))
}

// InitialBearingDeg returns the initial compass bearing from the first point
// to the second, normalized to [0, 360).
func InitialBearingDeg(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	dlon := radians(lon2 - lon1)
	y := math.Sin(dlon) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dlon)
	brng := degrees(math.Atan2(y, x))
	return math.Mod(brng+360.0, 360.0)
}

// HeadwindMPH projects the wind vector onto the route bearing. Positive
// values are headwind, negative tailwind. windFromDeg is the direction the
// wind blows from.
func HeadwindMPH(windFromDeg, routeBearingDeg, windSpeedMPH float64) float64 {
	rel := radians(math.Mod(windFromDeg-routeBearingDeg, 360.0))
	return windSpeedMPH * math.Cos(rel)
}

func radians(deg float64) float64 { return deg * math.Pi / 180.0 }

func degrees(rad float64) float64 { return rad * 180.0 / math.Pi }
