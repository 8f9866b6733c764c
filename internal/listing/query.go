package listing

import "github.com/TheoHill/Piza-Motors/internal/models"

// Query produces the ordered result set for one (filter, search, sort)
// combination. It is a pure function of its inputs: the catalog slice is
// never mutated and the same inputs always yield the same order.
func Query(vehicles []models.Vehicle, f Filter, s Search, key SortKey) []models.Vehicle {
	out := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if !f.Matches(v) {
			continue
		}
		if !s.Matches(v) {
			continue
		}
		out = append(out, v)
	}
	sortVehicles(out, key)
	return out
}
