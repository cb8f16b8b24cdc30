package booking

import (
	"math"
	"time"

	"staybooking/internal/domain/lodging"
	"staybooking/internal/domain/pricing"

	"github.com/google/uuid"
)

// Factory builds confirmed bookings. The calculator is injected so the
// same pricing runs here and in live quotes; drift between the two was
// the failure mode this design exists to prevent.
type Factory struct {
	clock      Clock
	calculator pricing.Calculator
	taxPercent float64
}

type Clock interface {
	Now() time.Time
}

func NewFactory(clock Clock, calculator pricing.Calculator, taxPercent float64) *Factory {
	return &Factory{
		clock:      clock,
		calculator: calculator,
		taxPercent: taxPercent,
	}
}

func (f *Factory) CreateBooking(
	room *lodging.Room,
	guestID uuid.UUID,
	stay pricing.StayRange,
	guests int,
	note Note,
) (*Booking, error) {
	if stay.Nights() == 0 {
		return nil, ErrEmptyStay
	}
	if stay.CheckIn().Before(pricing.DateOf(f.clock.Now())) {
		return nil, ErrCheckInPast
	}
	if guests < 1 {
		return nil, ErrInvalidGuestCount
	}
	if !room.Fits(guests) {
		return nil, ErrTooManyGuests
	}

	quote := f.calculator.Calculate(stay, room.NightlyRate(), room.Rules())
	totals := f.totalsFor(quote.TotalPrice)

	return &Booking{
		id:      uuid.New(),
		roomID:  room.ID(),
		guestID: guestID,
		stay:    stay,
		guests:  guests,
		status:  StatusConfirmed,
		totals:  totals,
		note:    note,
	}, nil
}

// Tax is layered on top of the calculator's subtotal; the calculator
// itself stays tax-free.
func (f *Factory) totalsFor(subtotal int64) Totals {
	taxAmount := int64(math.Round(float64(subtotal) * f.taxPercent / 100))
	return Totals{
		Subtotal:   subtotal,
		TaxPercent: f.taxPercent,
		TaxAmount:  taxAmount,
		GrandTotal: subtotal + taxAmount,
	}
}

func (f *Factory) TaxPercent() float64 { return f.taxPercent }
