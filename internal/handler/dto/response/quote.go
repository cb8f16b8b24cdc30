package response

import (
	"time"

	"staybooking/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteNightResponse struct {
	Date               string   `json:"date"`
	Price              int64    `json:"price"`
	AppliedAdjustments []string `json:"appliedAdjustments"`
}

type QuoteResponse struct {
	RoomID     uuid.UUID            `json:"roomId"`
	CheckIn    string               `json:"checkIn"`
	CheckOut   string               `json:"checkOut"`
	Nights     int                  `json:"nights"`
	Subtotal   int64                `json:"subtotal"`
	TaxPercent float64              `json:"taxPercent"`
	TaxAmount  int64                `json:"taxAmount"`
	GrandTotal int64                `json:"grandTotal"`
	Breakdown  []QuoteNightResponse `json:"breakdown"`
}

// Dates render as calendar days; the time of day a client sent is
// irrelevant once pricing has run.
func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	breakdown := make([]QuoteNightResponse, len(view.Breakdown))
	for i, night := range view.Breakdown {
		breakdown[i] = QuoteNightResponse{
			Date:               night.Date.Format(time.DateOnly),
			Price:              night.Price,
			AppliedAdjustments: night.AppliedAdjustments,
		}
	}

	return &QuoteResponse{
		RoomID:     view.RoomID,
		CheckIn:    view.CheckIn.Format(time.DateOnly),
		CheckOut:   view.CheckOut.Format(time.DateOnly),
		Nights:     view.Nights,
		Subtotal:   view.Subtotal,
		TaxPercent: view.TaxPercent,
		TaxAmount:  view.TaxAmount,
		GrandTotal: view.GrandTotal,
		Breakdown:  breakdown,
	}
}
