// Package site serves the static marketing content (stats, team, offers,
// showroom contact details) from an embedded fixture.
package site

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed site.json
var embeddedContent []byte

// Stat is one headline number on the stats band.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Member is one entry in the team section.
type Member struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Photo string `json:"photo"`
}

// Offer is one promotional card.
type Offer struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Badge       string `json:"badge"`
}

// Hours is one row of the opening-hours table.
type Hours struct {
	Days  string `json:"days"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Contact is the showroom's address block.
type Contact struct {
	Address string  `json:"address"`
	Phone   string  `json:"phone"`
	Email   string  `json:"email"`
	Hours   []Hours `json:"hours"`
}

// Content is everything the marketing pages need.
type Content struct {
	Stats   []Stat   `json:"stats"`
	Team    []Member `json:"team"`
	Offers  []Offer  `json:"offers"`
	Contact Contact  `json:"contact"`
}

// Load parses the embedded content fixture.
func Load() (*Content, error) {
	var c Content
	if err := json.Unmarshal(embeddedContent, &c); err != nil {
		return nil, fmt.Errorf("parse site content: %w", err)
	}
	return &c, nil
}
