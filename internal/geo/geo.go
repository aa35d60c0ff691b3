// Package geo provides great-circle distance calculations for
// location-tagged activities.
package geo

import "math"

// earthRadius is the mean radius of the Earth in metres.
const earthRadius = 6371000.0

// Distance returns the haversine distance in metres between two
// coordinates. ok is false if any input is NaN or infinite; a false
// result must not be rendered as a distance.
func Distance(lat1, lon1, lat2, lon2 float64) (meters float64, ok bool) {
	for _, v := range []float64{lat1, lon1, lat2, lon2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
	}

	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dphi := (lat2 - lat1) * math.Pi / 180
	dlambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dphi/2)*math.Sin(dphi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dlambda/2)*math.Sin(dlambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadius * c, true
}
