package listing

import "github.com/TheoHill/Piza-Motors/internal/models"

// transmissionTypes backs the demo transmission filter. Vehicle records carry
// no transmission field, so one is derived from the id; see TransmissionOf.
var transmissionTypes = [3]string{"Automatic", "Manual", "CVT"}

// TransmissionOf returns the transmission assigned to a vehicle id. The
// assignment (id mod 3) is a fixture artifact kept for filter parity with the
// showroom UI, not a modeled vehicle attribute.
func TransmissionOf(id int) string {
	i := id % 3
	if i < 0 {
		i += 3
	}
	return transmissionTypes[i]
}

// Filter is one set of facet constraints. Dimensions combine with AND; the
// values inside a dimension combine with OR. An empty dimension places no
// restriction.
type Filter struct {
	Brands        []string `json:"brands,omitempty"`
	PriceMin      *int     `json:"price_min,omitempty"`
	PriceMax      *int     `json:"price_max,omitempty"`
	YearMin       *int     `json:"year_min,omitempty"`
	YearMax       *int     `json:"year_max,omitempty"`
	BodyTypes     []string `json:"body_types,omitempty"`
	Transmissions []string `json:"transmissions,omitempty"`
	FuelTypes     []string `json:"fuel_types,omitempty"`
	Conditions    []string `json:"conditions,omitempty"`
}

// IsZero reports whether the filter places no restriction at all.
func (f Filter) IsZero() bool {
	return len(f.Brands) == 0 && f.PriceMin == nil && f.PriceMax == nil &&
		f.YearMin == nil && f.YearMax == nil && len(f.BodyTypes) == 0 &&
		len(f.Transmissions) == 0 && len(f.FuelTypes) == 0 && len(f.Conditions) == 0
}

// ActiveCount is the number of active constraints: one per selected facet
// value plus one for each active range (price, year). Drives the filter-chip
// badge in the UI.
func (f Filter) ActiveCount() int {
	n := len(f.Brands) + len(f.BodyTypes) + len(f.Transmissions) +
		len(f.FuelTypes) + len(f.Conditions)
	if f.PriceMin != nil || f.PriceMax != nil {
		n++
	}
	if f.YearMin != nil || f.YearMax != nil {
		n++
	}
	return n
}

// Matches reports whether the vehicle passes every dimension of the filter.
func (f Filter) Matches(v models.Vehicle) bool {
	if !memberOf(f.Brands, v.Brand) {
		return false
	}
	if f.PriceMin != nil && v.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && v.Price > *f.PriceMax {
		return false
	}
	if f.YearMin != nil && v.Year < *f.YearMin {
		return false
	}
	if f.YearMax != nil && v.Year > *f.YearMax {
		return false
	}
	if !memberOf(f.BodyTypes, v.BodyType()) {
		return false
	}
	if !memberOf(f.Transmissions, TransmissionOf(v.ID)) {
		return false
	}
	if !memberOf(f.FuelTypes, v.FuelType) {
		return false
	}
	return memberOf(f.Conditions, v.Condition)
}

// memberOf treats an empty set as "no restriction".
func memberOf(set []string, value string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
