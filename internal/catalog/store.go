// Package catalog holds the static vehicle and brand datasets behind a
// read-only store. The data is loaded once at startup, either from the
// embedded fixture or from a JSON file with the same shape.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/TheoHill/Piza-Motors/internal/models"
)

//go:embed catalog.json
var embeddedCatalog []byte

// ErrNotFound is returned when a vehicle id has no record in the catalog.
var ErrNotFound = errors.New("vehicle not found")

// Facets are the distinct filterable values observed across the full catalog,
// computed once at load time.
type Facets struct {
	Brands     []string `json:"brands"`
	BodyTypes  []string `json:"body_types"`
	FuelTypes  []string `json:"fuel_types"`
	Conditions []string `json:"conditions"`
	YearMin    int      `json:"year_min"`
	YearMax    int      `json:"year_max"`
	PriceMin   int      `json:"price_min"`
	PriceMax   int      `json:"price_max"`
}

// Store exposes the catalog as immutable collections. Safe for concurrent
// readers; nothing mutates it after Load.
type Store struct {
	vehicles []models.Vehicle
	brands   []models.Brand
	byID     map[int]int // id -> index into vehicles
	facets   Facets
}

type catalogFile struct {
	Cars   []models.Vehicle `json:"cars"`
	Brands []models.Brand   `json:"brands"`
}

// Load builds a store from the embedded fixture. If path is non-empty the
// fixture is read from that file instead.
func Load(path string) (*Store, error) {
	data := embeddedCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog file: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse builds a store from raw catalog JSON.
func Parse(data []byte) (*Store, error) {
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	byID := make(map[int]int, len(file.Cars))
	for i, v := range file.Cars {
		if _, dup := byID[v.ID]; dup {
			return nil, fmt.Errorf("parse catalog: duplicate vehicle id %d", v.ID)
		}
		byID[v.ID] = i
	}

	s := &Store{
		vehicles: file.Cars,
		brands:   file.Brands,
		byID:     byID,
	}
	s.facets = buildFacets(file.Cars)
	return s, nil
}

// Vehicles returns all vehicles in fixture order.
func (s *Store) Vehicles() []models.Vehicle {
	return s.vehicles
}

// Brands returns all brands in fixture order.
func (s *Store) Brands() []models.Brand {
	return s.brands
}

// VehicleByID looks up one vehicle. Returns ErrNotFound for unknown ids.
func (s *Store) VehicleByID(id int) (models.Vehicle, error) {
	i, ok := s.byID[id]
	if !ok {
		return models.Vehicle{}, ErrNotFound
	}
	return s.vehicles[i], nil
}

// Facets returns the cached filter facets.
func (s *Store) Facets() Facets {
	return s.facets
}

func buildFacets(vehicles []models.Vehicle) Facets {
	f := Facets{
		Brands:     distinct(vehicles, func(v models.Vehicle) string { return v.Brand }),
		BodyTypes:  distinct(vehicles, func(v models.Vehicle) string { return v.BodyType() }),
		FuelTypes:  distinct(vehicles, func(v models.Vehicle) string { return v.FuelType }),
		Conditions: distinct(vehicles, func(v models.Vehicle) string { return v.Condition }),
	}
	for i, v := range vehicles {
		if i == 0 {
			f.YearMin, f.YearMax = v.Year, v.Year
			f.PriceMin, f.PriceMax = v.Price, v.Price
			continue
		}
		if v.Year < f.YearMin {
			f.YearMin = v.Year
		}
		if v.Year > f.YearMax {
			f.YearMax = v.Year
		}
		if v.Price < f.PriceMin {
			f.PriceMin = v.Price
		}
		if v.Price > f.PriceMax {
			f.PriceMax = v.Price
		}
	}
	return f
}

func distinct(vehicles []models.Vehicle, key func(models.Vehicle) string) []string {
	seen := make(map[string]struct{}, len(vehicles))
	var out []string
	for _, v := range vehicles {
		k := key(v)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
