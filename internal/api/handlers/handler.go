package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/TheoHill/Piza-Motors/internal/catalog"
	"github.com/TheoHill/Piza-Motors/internal/listing"
	"github.com/TheoHill/Piza-Motors/internal/service"
	"github.com/TheoHill/Piza-Motors/internal/site"
	"github.com/TheoHill/Piza-Motors/pkg/ws"
)

// Handler wires the HTTP surface to the catalog and services.
type Handler struct {
	logger    *zap.Logger
	store     *catalog.Store
	content   *site.Content
	inquiries *service.InquiryService
	exports   *service.ExportService
	wsHub     *ws.Hub
	pageSize  int
	upgrader  websocket.Upgrader
}

func NewHandler(
	logger *zap.Logger,
	store *catalog.Store,
	content *site.Content,
	inquiries *service.InquiryService,
	exports *service.ExportService,
	wsHub *ws.Hub,
	pageSize int,
) *Handler {
	if pageSize < 1 {
		pageSize = listing.DefaultPageSize
	}
	return &Handler{
		logger:    logger,
		store:     store,
		content:   content,
		inquiries: inquiries,
		exports:   exports,
		wsHub:     wsHub,
		pageSize:  pageSize,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // the site is served from a separate origin
			},
		},
	}
}

// RegisterRoutes attaches all routes to the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		// Catalog
		api.GET("/cars", h.ListCars)
		api.GET("/cars/facets", h.GetFacets)
		api.GET("/cars/export", h.ExportCars)
		api.GET("/cars/:id", h.GetCar)
		api.GET("/brands", h.ListBrands)

		// Contact
		api.POST("/contact", h.SubmitInquiry)

		// Marketing content
		api.GET("/site/stats", h.GetStats)
		api.GET("/site/team", h.GetTeam)
		api.GET("/site/offers", h.GetOffers)
		api.GET("/site/contact", h.GetContactInfo)
	}

	// Live listing sessions
	r.GET("/ws/listing", h.HandleListingSocket)

	r.GET("/health", h.HealthCheck)
}

// HandleListingSocket upgrades the connection and starts a listing session.
// The ?search= and ?brand= parameters seed the session's controller the same
// way they seed the listing page.
func (h *Handler) HandleListingSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade websocket", zap.Error(err))
		return
	}

	opts := []listing.Option{listing.WithPageSize(h.pageSize)}
	if q := c.Query("search"); q != "" {
		opts = append(opts, listing.WithSearch(q))
	}
	if b := c.Query("brand"); b != "" {
		opts = append(opts, listing.WithBrand(b))
	}
	controller := listing.NewController(h.store.Vehicles(), opts...)

	session := ws.NewSession(h.wsHub, conn, h.logger, controller)
	session.Register()

	go session.ReadPump()
	go session.WritePump()
}

// HealthCheck reports liveness.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"vehicles":    len(h.store.Vehicles()),
		"ws_sessions": h.wsHub.SessionCount(),
	})
}
