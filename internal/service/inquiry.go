package service

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TheoHill/Piza-Motors/internal/models"
)

// InquiryService handles contact-form submissions. There is no mailbox or
// database behind it: a submission is logged and acknowledged with a
// reference id the customer can quote.
type InquiryService struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewInquiryService(logger *zap.Logger) *InquiryService {
	return &InquiryService{
		logger: logger,
		now:    time.Now,
	}
}

// Submit records the inquiry and returns it with a reference assigned.
func (s *InquiryService) Submit(inq models.Inquiry) models.Inquiry {
	inq.Reference = uuid.NewString()
	inq.ReceivedAt = s.now()

	s.logger.Info("Contact inquiry received",
		zap.String("reference", inq.Reference),
		zap.String("name", inq.Name),
		zap.String("email", inq.Email),
		zap.String("subject", inq.Subject),
	)

	return inq
}
