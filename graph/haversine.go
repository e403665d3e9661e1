package graph

import "math"

// earthRadiusMeters is the mean Earth radius used for great-circle
// distance calculations.
const earthRadiusMeters = 6371000.0

// HaversineMeters returns the great-circle distance, in meters, between
// two points given in degrees. Exported so metric.Haversine (and any
// other caller needing point-to-point geodesic distance) does not
// duplicate the formula.
//
// Complexity: O(1).
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return haversineMeters(lat1, lon1, lat2, lon2)
}

func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}
