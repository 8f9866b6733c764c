package models

// Vehicle is one car in the showroom catalog. Records are loaded once from the
// catalog fixture and never mutated.
type Vehicle struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Year      int    `json:"year"`
	Price     int    `json:"price"` // whole US dollars
	Mileage   string `json:"mileage"`
	FuelType  string `json:"fuelType"`
	Condition string `json:"condition"`
	Category  string `json:"category,omitempty"`
	Image     string `json:"image"`
}

// DefaultCategory is assumed for records without a body type.
const DefaultCategory = "Sedan"

// BodyType returns the vehicle's body type, falling back to DefaultCategory
// when the fixture omits one.
func (v Vehicle) BodyType() string {
	if v.Category == "" {
		return DefaultCategory
	}
	return v.Category
}
