package listing

import (
	"sync"

	"github.com/TheoHill/Piza-Motors/internal/models"
)

// View is the controller's render snapshot: the visible page plus the active
// criteria, so the UI can draw the grid, the pager and the filter chips from
// one read.
type View struct {
	Page              Page    `json:"page"`
	Filter            Filter  `json:"filter"`
	SearchText        string  `json:"search_text"`
	SortKey           SortKey `json:"sort_key"`
	ActiveFilterCount int     `json:"active_filter_count"`
}

// Controller owns the mutable state of one listing view and recomputes the
// result set synchronously on every transition. Changing filter or search
// criteria resets to page 1; changing the sort key keeps the page (clamped).
type Controller struct {
	mu       sync.RWMutex
	catalog  []models.Vehicle
	pageSize int

	filter     Filter
	searchText string
	search     Search
	sortKey    SortKey
	pageNumber int

	results []models.Vehicle
}

// Option seeds controller state at construction, e.g. from URL parameters.
type Option func(*Controller)

// WithSearch seeds the initial search text (the ?search= parameter).
func WithSearch(text string) Option {
	return func(c *Controller) {
		c.searchText = text
		c.search = ParseSearch(text)
	}
}

// WithBrand seeds the filter with a single brand (the ?brand= parameter).
func WithBrand(brand string) Option {
	return func(c *Controller) {
		if brand != "" {
			c.filter.Brands = []string{brand}
		}
	}
}

// WithPageSize overrides the default page size. Values < 1 are ignored.
func WithPageSize(size int) Option {
	return func(c *Controller) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// DefaultPageSize matches the showroom grid (two rows of three).
const DefaultPageSize = 6

// NewController creates a controller over the given catalog with empty
// criteria, the newest-first sort and page 1.
func NewController(catalog []models.Vehicle, opts ...Option) *Controller {
	c := &Controller{
		catalog:    catalog,
		pageSize:   DefaultPageSize,
		sortKey:    SortNewest,
		pageNumber: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.recompute()
	return c
}

// SetFilter replaces the filter criteria and resets to page 1.
func (c *Controller) SetFilter(f Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = f
	c.pageNumber = 1
	c.recompute()
}

// SetSearch replaces the search text and resets to page 1.
func (c *Controller) SetSearch(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchText = text
	c.search = ParseSearch(text)
	c.pageNumber = 1
	c.recompute()
}

// SetSort re-sorts the current result set without resetting the page, though
// the page is clamped should it fall out of range.
func (c *Controller) SetSort(key SortKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sortKey = key
	sortVehicles(c.results, key)
	c.clampPage()
}

// SetPage moves to page n, clamped to [1, totalPages].
func (c *Controller) SetPage(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := c.totalPages()
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	c.pageNumber = n
}

// ClearFilters drops all filter criteria.
func (c *Controller) ClearFilters() {
	c.SetFilter(Filter{})
}

// ClearSearch drops the search text.
func (c *Controller) ClearSearch() {
	c.SetSearch("")
}

// View returns the current render snapshot.
func (c *Controller) View() View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return View{
		Page:              Paginate(c.results, c.pageSize, c.pageNumber),
		Filter:            c.filter,
		SearchText:        c.searchText,
		SortKey:           c.sortKey,
		ActiveFilterCount: c.filter.ActiveCount(),
	}
}

// recompute re-runs the full pipeline. Callers hold the write lock.
func (c *Controller) recompute() {
	c.results = Query(c.catalog, c.filter, c.search, c.sortKey)
	c.clampPage()
}

func (c *Controller) clampPage() {
	if total := c.totalPages(); c.pageNumber > total {
		c.pageNumber = total
	}
	if c.pageNumber < 1 {
		c.pageNumber = 1
	}
}

func (c *Controller) totalPages() int {
	total := len(c.results) / c.pageSize
	if len(c.results)%c.pageSize != 0 {
		total++
	}
	if total == 0 {
		total = 1
	}
	return total
}
