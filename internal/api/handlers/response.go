package handlers

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/TheoHill/Piza-Motors/internal/listing"
	"github.com/TheoHill/Piza-Motors/internal/models"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders a whole-dollar price for display, e.g. $20,000.
func FormatPrice(price int) string {
	return usd.Sprintf("$%d", price)
}

// VehicleResponse is a catalog record dressed for the UI: the body type is
// normalized, the display price is pre-formatted and the derived transmission
// is attached.
type VehicleResponse struct {
	models.Vehicle
	BodyType     string `json:"body_type"`
	DisplayPrice string `json:"display_price"`
	Transmission string `json:"transmission"`
}

func vehicleResponse(v models.Vehicle) VehicleResponse {
	return VehicleResponse{
		Vehicle:      v,
		BodyType:     v.BodyType(),
		DisplayPrice: FormatPrice(v.Price),
		Transmission: listing.TransmissionOf(v.ID),
	}
}

func vehicleResponses(vehicles []models.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		out[i] = vehicleResponse(v)
	}
	return out
}
