package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TheoHill/Piza-Motors/internal/catalog"
	"github.com/TheoHill/Piza-Motors/internal/listing"
)

// ListCars runs the listing pipeline over the catalog.
// GET /api/cars?search=&brand=&price_min=&price_max=&year_min=&year_max=
//
//	&body_type=&transmission=&fuel_type=&condition=&sort=&page=&per_page=
//
// Facet parameters repeat for multiple selections (brand=Toyota&brand=Honda).
func (h *Handler) ListCars(c *gin.Context) {
	filter := parseFilter(c)
	search := listing.ParseSearch(c.Query("search"))
	sortKey := listing.ParseSortKey(c.Query("sort"))

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(h.pageSize)))
	if perPage < 1 || perPage > 100 {
		perPage = h.pageSize
	}

	results := listing.Query(h.store.Vehicles(), filter, search, sortKey)
	window := listing.Paginate(results, perPage, page)

	c.JSON(http.StatusOK, gin.H{
		"data": vehicleResponses(window.Items),
		"pagination": gin.H{
			"page":        window.Number,
			"per_page":    window.Size,
			"total":       window.TotalResults,
			"total_pages": window.TotalPages,
			"start_index": window.StartIndex,
			"end_index":   window.EndIndex,
		},
		"filters": gin.H{
			"active_count": filter.ActiveCount(),
			"criteria":     filter,
			"search":       c.Query("search"),
			"sort":         sortKey,
		},
	})
}

// GetCar returns one vehicle.
// GET /api/cars/:id
func (h *Handler) GetCar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid car ID"})
		return
	}

	vehicle, err := h.store.VehicleByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
			return
		}
		h.logger.Error("Failed to load car", zap.Error(err), zap.Int("car_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load car"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": vehicleResponse(vehicle)})
}

// ListBrands returns the brand tiles.
// GET /api/brands
func (h *Handler) ListBrands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.store.Brands()})
}

// GetFacets returns the filter sidebar options.
// GET /api/cars/facets
func (h *Handler) GetFacets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.store.Facets()})
}

// ExportCars streams the current result set as an .xlsx workbook. The same
// query parameters as ListCars apply; pagination does not (the whole result
// set is exported).
// GET /api/cars/export
func (h *Handler) ExportCars(c *gin.Context) {
	filter := parseFilter(c)
	search := listing.ParseSearch(c.Query("search"))
	sortKey := listing.ParseSortKey(c.Query("sort"))

	results := listing.Query(h.store.Vehicles(), filter, search, sortKey)

	data, err := h.exports.InventoryWorkbook(results)
	if err != nil {
		h.logger.Error("Failed to generate export", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate export"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="piza-motors-inventory.xlsx"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// parseFilter reads the facet query parameters. Missing parameters leave the
// dimension unrestricted.
func parseFilter(c *gin.Context) listing.Filter {
	return listing.Filter{
		Brands:        c.QueryArray("brand"),
		PriceMin:      queryInt(c, "price_min"),
		PriceMax:      queryInt(c, "price_max"),
		YearMin:       queryInt(c, "year_min"),
		YearMax:       queryInt(c, "year_max"),
		BodyTypes:     c.QueryArray("body_type"),
		Transmissions: c.QueryArray("transmission"),
		FuelTypes:     c.QueryArray("fuel_type"),
		Conditions:    c.QueryArray("condition"),
	}
}

func queryInt(c *gin.Context, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
