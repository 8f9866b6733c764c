package models

// Brand is a manufacturer shown on the brand tiles.
type Brand struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}
