package geo

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometers between two
// points given in degrees. Symmetric, non-negative, 0 for coincident points.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	// Guard against a creeping past 1 from rounding near antipodes.
	if a > 1 {
		a = 1
	}
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// LocationScore maps a distance in km to (0, 1]: 1 at zero distance, soft
// decay with distance rather than a hard radius cutoff.
func LocationScore(km float64) float64 {
	return 1 / (1 + km)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
