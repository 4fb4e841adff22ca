// Package geo provides great-circle distance math for GPS fixes.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for haversine distances.
const EarthRadiusKm = 6371.0

// ToRad converts degrees to radians.
func ToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// HaversineKm returns the great-circle distance in kilometers between two
// lat/lng coordinates.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	if lat1 == lat2 && lng1 == lng2 {
		return 0
	}

	dLat := ToRad(lat2 - lat1)
	dLng := ToRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(ToRad(lat1))*math.Cos(ToRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}
