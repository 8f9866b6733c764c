package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TheoHill/Piza-Motors/internal/models"
)

// inquiryRequest is the contact-form payload.
type inquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// SubmitInquiry accepts a contact-form submission and returns the assigned
// reference. Submissions are logged only; there is no mailbox behind this.
// POST /api/contact
func (h *Handler) SubmitInquiry(c *gin.Context) {
	var req inquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	inq := h.inquiries.Submit(models.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})

	c.JSON(http.StatusAccepted, gin.H{
		"message":   "Thanks for reaching out. We'll get back to you shortly.",
		"reference": inq.Reference,
	})
}
