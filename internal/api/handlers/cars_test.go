package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TheoHill/Piza-Motors/internal/catalog"
	"github.com/TheoHill/Piza-Motors/internal/service"
	"github.com/TheoHill/Piza-Motors/internal/site"
	"github.com/TheoHill/Piza-Motors/pkg/ws"
)

const handlerCatalogJSON = `{
  "cars": [
    {"id": 1, "name": "Toyota Camry", "brand": "Toyota", "year": 2021, "price": 18000,
     "mileage": "23,000 miles", "fuelType": "Gasoline", "condition": "Used", "category": "Sedan"},
    {"id": 2, "name": "Toyota RAV4", "brand": "Toyota", "year": 2023, "price": 25000,
     "mileage": "8,500 miles", "fuelType": "Hybrid", "condition": "Certified", "category": "SUV"},
    {"id": 3, "name": "Honda Accord", "brand": "Honda", "year": 2022, "price": 20000,
     "mileage": "15,200 miles", "fuelType": "Gasoline", "condition": "Used", "category": "Sedan"}
  ],
  "brands": [
    {"slug": "toyota", "name": "Toyota", "logo": "/assets/brands/toyota.png"},
    {"slug": "honda", "name": "Honda", "logo": "/assets/brands/honda.png"}
  ]
}`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := catalog.Parse([]byte(handlerCatalogJSON))
	if err != nil {
		t.Fatalf("parse test catalog: %v", err)
	}
	content, err := site.Load()
	if err != nil {
		t.Fatalf("load site content: %v", err)
	}

	logger := zap.NewNop()
	hub := ws.NewHub(logger)
	go hub.Run()

	handler := NewHandler(
		logger,
		store,
		content,
		service.NewInquiryService(logger),
		service.NewExportService(logger),
		hub,
		6,
	)

	router := gin.New()
	handler.RegisterRoutes(router)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type listResponse struct {
	Data []struct {
		ID           int    `json:"id"`
		Name         string `json:"name"`
		Price        int    `json:"price"`
		DisplayPrice string `json:"display_price"`
		Transmission string `json:"transmission"`
	} `json:"data"`
	Pagination struct {
		Page       int `json:"page"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
		StartIndex int `json:"start_index"`
		EndIndex   int `json:"end_index"`
	} `json:"pagination"`
	Filters struct {
		ActiveCount int    `json:"active_count"`
		Search      string `json:"search"`
	} `json:"filters"`
}

func TestListCars(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/cars", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp listResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 3 {
		t.Fatalf("expected 3 vehicles, got %d", len(resp.Data))
	}
	// Default sort is newest first.
	if resp.Data[0].ID != 2 {
		t.Errorf("expected the 2023 RAV4 first, got id %d", resp.Data[0].ID)
	}
	if resp.Pagination.Total != 3 || resp.Pagination.TotalPages != 1 {
		t.Errorf("unexpected pagination: %+v", resp.Pagination)
	}
}

func TestListCarsBrandFilterAndSort(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/cars?brand=Toyota&sort=price-low", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp listResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 Toyotas, got %d", len(resp.Data))
	}
	if resp.Data[0].Price != 18000 || resp.Data[1].Price != 25000 {
		t.Errorf("expected prices [18000 25000], got [%d %d]", resp.Data[0].Price, resp.Data[1].Price)
	}
	if resp.Filters.ActiveCount != 1 {
		t.Errorf("expected one active filter, got %d", resp.Filters.ActiveCount)
	}
}

func TestListCarsPriceRangeSearch(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/cars?search=20000-26000&sort=price-low", "")

	var resp listResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(resp.Data))
	}
	if resp.Data[0].ID != 3 || resp.Data[1].ID != 2 {
		t.Errorf("expected [Accord RAV4], got ids [%d %d]", resp.Data[0].ID, resp.Data[1].ID)
	}
}

func TestListCarsEmptyResult(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/cars?brand=Ferrari", "")
	if w.Code != http.StatusOK {
		t.Fatalf("an empty result is not an error, got %d", w.Code)
	}

	var resp listResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 0 || resp.Pagination.Total != 0 || resp.Pagination.TotalPages != 1 {
		t.Errorf("unexpected empty-result shape: %s", w.Body.String())
	}
}

func TestGetCar(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/cars/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data struct {
			Name         string `json:"name"`
			DisplayPrice string `json:"display_price"`
			Transmission string `json:"transmission"`
			BodyType     string `json:"body_type"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Name != "Toyota Camry" {
		t.Errorf("expected Toyota Camry, got %q", resp.Data.Name)
	}
	if resp.Data.DisplayPrice != "$18,000" {
		t.Errorf("expected $18,000, got %q", resp.Data.DisplayPrice)
	}
	if resp.Data.Transmission != "Manual" { // id 1 derives Manual
		t.Errorf("expected Manual, got %q", resp.Data.Transmission)
	}
}

func TestGetCarNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/cars/999", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/api/cars/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a non-numeric id, got %d", w.Code)
	}
}

func TestListBrands(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/brands", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data []struct {
			Slug string `json:"slug"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 2 || resp.Data[0].Slug != "toyota" {
		t.Errorf("unexpected brands: %s", w.Body.String())
	}
}

func TestGetFacets(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/cars/facets", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data struct {
			Brands   []string `json:"brands"`
			PriceMin int      `json:"price_min"`
			PriceMax int      `json:"price_max"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data.Brands) != 2 {
		t.Errorf("expected 2 brands, got %v", resp.Data.Brands)
	}
	if resp.Data.PriceMin != 18000 || resp.Data.PriceMax != 25000 {
		t.Errorf("expected price bounds 18000-25000, got %d-%d", resp.Data.PriceMin, resp.Data.PriceMax)
	}
}

func TestSubmitInquiry(t *testing.T) {
	router := newTestRouter(t)

	body := `{"name": "Jamie", "email": "jamie@example.com", "message": "Is the RAV4 still available?"}`
	w := doRequest(t, router, http.MethodPost, "/api/contact", body)
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Reference string `json:"reference"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Reference == "" {
		t.Errorf("expected a reference id")
	}
}

func TestSubmitInquiryValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing message", `{"name": "Jamie", "email": "jamie@example.com"}`},
		{"bad email", `{"name": "Jamie", "email": "not-an-email", "message": "hi"}`},
		{"empty body", `{}`},
	}
	for _, tt := range tests {
		w := doRequest(t, router, http.MethodPost, "/api/contact", tt.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tt.name, w.Code)
		}
	}
}

func TestSiteContentEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/site/stats", "/api/site/team", "/api/site/offers", "/api/site/contact",
	} {
		w := doRequest(t, router, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestExportCars(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/cars/export?brand=Toyota", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("unexpected content type %q", ct)
	}
	if w.Body.Len() == 0 {
		t.Errorf("expected workbook bytes")
	}
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected health payload: %s", w.Body.String())
	}
}
