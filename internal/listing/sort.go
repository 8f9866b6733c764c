package listing

import (
	"sort"
	"strings"

	"github.com/TheoHill/Piza-Motors/internal/models"
)

// SortKey selects the ordering of a result set.
type SortKey string

const (
	SortNewest     SortKey = "newest" // default, same as year-new
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortYearNew    SortKey = "year-new"
	SortYearOld    SortKey = "year-old"
	SortMileageLow SortKey = "mileage-low"
	SortBrandAZ    SortKey = "brand-az"
)

// ParseSortKey maps a raw string onto a known key, defaulting to SortNewest.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortPriceLow, SortPriceHigh, SortYearNew, SortYearOld, SortMileageLow, SortBrandAZ:
		return SortKey(raw)
	default:
		return SortNewest
	}
}

// sortVehicles orders the slice in place by the given key. Ties always break
// by ascending id so the order is total and pagination stays stable.
func sortVehicles(vehicles []models.Vehicle, key SortKey) {
	less := lessFunc(key)
	sort.SliceStable(vehicles, func(i, j int) bool {
		a, b := vehicles[i], vehicles[j]
		switch {
		case less(a, b):
			return true
		case less(b, a):
			return false
		default:
			return a.ID < b.ID
		}
	})
}

func lessFunc(key SortKey) func(a, b models.Vehicle) bool {
	switch key {
	case SortPriceLow:
		return func(a, b models.Vehicle) bool { return a.Price < b.Price }
	case SortPriceHigh:
		return func(a, b models.Vehicle) bool { return a.Price > b.Price }
	case SortYearOld:
		return func(a, b models.Vehicle) bool { return a.Year < b.Year }
	case SortMileageLow:
		return func(a, b models.Vehicle) bool {
			return mileageValue(a.Mileage) < mileageValue(b.Mileage)
		}
	case SortBrandAZ:
		return func(a, b models.Vehicle) bool {
			return strings.ToLower(a.Brand) < strings.ToLower(b.Brand)
		}
	default: // SortNewest, SortYearNew
		return func(a, b models.Vehicle) bool { return a.Year > b.Year }
	}
}
