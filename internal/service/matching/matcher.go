package matching

import (
	"math"
	"sort"

	"delivery-platform/internal/domain"
)

// earthRadiusKm is the sphere radius used for great-circle distances.
const earthRadiusKm = 6371.0

// Candidate pairs a courier with its distance from the requested point.
type Candidate struct {
	Courier    domain.Courier
	DistanceKm float64
}

// FindAvailable filters couriers that can take a delivery right now and ranks
// them by great-circle distance from (lat, lon), closest first. Couriers that
// are not available, soft-deleted, or have never reported a location are
// skipped. The ranking is recomputed fresh on every call; ties keep input order.
func FindAvailable(lat, lon float64, couriers []domain.Courier) []Candidate {
	out := make([]Candidate, 0, len(couriers))
	for _, c := range couriers {
		if c.Status != domain.CourierAvailable || !c.IsActive || !c.HasLocation() {
			continue
		}
		out = append(out, Candidate{
			Courier:    c,
			DistanceKm: Haversine(lat, lon, *c.Latitude, *c.Longitude),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	return out
}

// Haversine returns the great-circle distance in kilometers between two
// points given in signed decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
