package queries

import (
	"context"
	"math"
	"time"

	"staybooking/internal/domain/pricing"
	"staybooking/internal/infra"
	"staybooking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoomNotFound = errs.New("room not found")

// RoomPricingSnapshot is everything the calculator needs about a room.
type RoomPricingSnapshot struct {
	RoomID      uuid.UUID
	NightlyRate float64
	Rules       []pricing.Rule
}

type RoomPricingReadStore interface {
	FindRoomPricing(ctx context.Context, roomID uuid.UUID) (*RoomPricingSnapshot, error)
}

type QuoteQueries interface {
	QuoteStay(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	rooms      RoomPricingReadStore
	calculator pricing.Calculator
	taxPercent float64
}

func NewQuoteQueries(rooms RoomPricingReadStore, calculator pricing.Calculator, taxPercent float64) QuoteQueries {
	return &quoteQueriesImpl{
		rooms:      rooms,
		calculator: calculator,
		taxPercent: taxPercent,
	}
}

// QuoteStay runs the shared nightly price calculator against a room's
// stored rate and rules. The same calculator prices the authoritative
// booking total at checkout, so a quote never drifts from the charge.
func (q *quoteQueriesImpl) QuoteStay(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (*QuoteView, error) {
	snapshot, err := q.rooms.FindRoomPricing(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	stay := pricing.NewStayRange(checkIn, checkOut)
	quote := q.calculator.Calculate(stay, snapshot.NightlyRate, snapshot.Rules)

	taxAmount := int64(math.Round(float64(quote.TotalPrice) * q.taxPercent / 100))

	view := &QuoteView{
		RoomID:     roomID,
		CheckIn:    stay.CheckIn(),
		CheckOut:   stay.CheckOut(),
		Nights:     stay.Nights(),
		Subtotal:   quote.TotalPrice,
		TaxPercent: q.taxPercent,
		TaxAmount:  taxAmount,
		GrandTotal: quote.TotalPrice + taxAmount,
		Breakdown:  make([]QuoteNight, 0, len(quote.Breakdown)),
	}

	for _, night := range quote.Breakdown {
		view.Breakdown = append(view.Breakdown, QuoteNight{
			Date:               night.Date,
			Price:              night.Price,
			AppliedAdjustments: night.AppliedAdjustments,
		})
	}

	return view, nil
}
