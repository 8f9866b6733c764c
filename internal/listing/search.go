// Package listing implements the catalog query pipeline: free-text search,
// faceted filtering, sorting and pagination, plus the controller that ties
// them together for one listing view.
package listing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/TheoHill/Piza-Motors/internal/models"
)

var (
	rangeToken = regexp.MustCompile(`^(\d+)-(\d+)$`)
	hyphenGap  = regexp.MustCompile(`(\d)\s*-\s*(\d)`)
	nonDigits  = regexp.MustCompile(`\D`)
	priceStrip = strings.NewReplacer("$", "", ",", "")
)

// Search is a parsed free-text query: lowercase tokens that must all match,
// plus an optional inclusive price range pulled out of the query.
type Search struct {
	Tokens   []string
	PriceMin *int
	PriceMax *int
}

// ParseSearch turns a raw query string into search criteria. The parse never
// fails: price formatting ($, commas, spaces around the hyphen) is stripped,
// a NNNN-NNNN token becomes the price range (the last one wins when several
// appear), and anything else is a free-text token. Empty input matches
// everything.
func ParseSearch(raw string) Search {
	s := strings.ToLower(priceStrip.Replace(raw))
	s = hyphenGap.ReplaceAllString(s, "$1-$2")

	var out Search
	for _, tok := range strings.Fields(s) {
		m := rangeToken.FindStringSubmatch(tok)
		if m == nil {
			out.Tokens = append(out.Tokens, tok)
			continue
		}
		lo, err1 := strconv.Atoi(m[1])
		hi, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			// Out of int range; treat as plain text.
			out.Tokens = append(out.Tokens, tok)
			continue
		}
		out.PriceMin, out.PriceMax = &lo, &hi
	}
	return out
}

// IsZero reports whether the search matches every vehicle.
func (s Search) IsZero() bool {
	return len(s.Tokens) == 0 && s.PriceMin == nil && s.PriceMax == nil
}

// Matches reports whether the vehicle satisfies every text token and the
// price range, if any.
func (s Search) Matches(v models.Vehicle) bool {
	if s.PriceMin != nil && v.Price < *s.PriceMin {
		return false
	}
	if s.PriceMax != nil && v.Price > *s.PriceMax {
		return false
	}
	if len(s.Tokens) == 0 {
		return true
	}
	text := searchText(v)
	for _, tok := range s.Tokens {
		if !strings.Contains(text, tok) {
			return false
		}
	}
	return true
}

// searchText is the haystack a token is matched against: the display name,
// brand, year, fuel type, condition, body type and price, lowercased.
func searchText(v models.Vehicle) string {
	parts := []string{
		v.Name,
		v.Brand,
		strconv.Itoa(v.Year),
		v.FuelType,
		v.Condition,
		v.Category,
		strconv.Itoa(v.Price),
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// mileageValue extracts the integer from a human-readable mileage string like
// "45,000 miles". A string with no digits counts as zero.
func mileageValue(mileage string) int {
	digits := nonDigits.ReplaceAllString(mileage, "")
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
