package listing

import "github.com/TheoHill/Piza-Motors/internal/models"

// Page is one visible window of a result set plus the metadata the results
// header and pager need. StartIndex/EndIndex are 1-based display positions
// ("Showing 7-12 of 31 results"); both are zero for an empty result set.
type Page struct {
	Items        []models.Vehicle `json:"items"`
	Number       int              `json:"page"`
	Size         int              `json:"per_page"`
	TotalPages   int              `json:"total_pages"`
	TotalResults int              `json:"total_results"`
	StartIndex   int              `json:"start_index"`
	EndIndex     int              `json:"end_index"`
}

// Paginate slices an ordered result set. Callers must pass pageSize > 0.
// A requested page past the end clamps back to page 1 (the result set shrank
// under the caller, typically after a filter change); pages below 1 clamp to
// 1. An empty result set yields one empty page.
func Paginate(results []models.Vehicle, pageSize, pageNumber int) Page {
	totalPages := len(results) / pageSize
	if len(results)%pageSize != 0 {
		totalPages++
	}
	if totalPages == 0 {
		totalPages = 1
	}
	if pageNumber < 1 || pageNumber > totalPages {
		pageNumber = 1
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if end > len(results) {
		end = len(results)
	}

	p := Page{
		Items:        results[start:end],
		Number:       pageNumber,
		Size:         pageSize,
		TotalPages:   totalPages,
		TotalResults: len(results),
	}
	if len(p.Items) > 0 {
		p.StartIndex = start + 1
		p.EndIndex = end
	}
	return p
}
