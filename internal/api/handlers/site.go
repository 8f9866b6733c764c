package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStats returns the headline numbers for the stats band.
// GET /api/site/stats
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.content.Stats})
}

// GetTeam returns the team section entries.
// GET /api/site/team
func (h *Handler) GetTeam(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.content.Team})
}

// GetOffers returns the promotional cards.
// GET /api/site/offers
func (h *Handler) GetOffers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.content.Offers})
}

// GetContactInfo returns the showroom address, phone and opening hours.
// GET /api/site/contact
func (h *Handler) GetContactInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.content.Contact})
}
