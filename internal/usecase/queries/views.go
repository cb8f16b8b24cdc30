package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type LodgingView struct {
	ID            uuid.UUID  `json:"id"`
	OwnerID       uuid.UUID  `json:"owner_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Location      string     `json:"location"`
	Status        string     `json:"status"`
	AverageRating *float64   `json:"average_rating,omitempty"`
	ReviewCount   int32      `json:"review_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type RoomView struct {
	ID          uuid.UUID `json:"id"`
	LodgingID   uuid.UUID `json:"lodging_id"`
	LodgingName string    `json:"lodging_name"`
	Name        string    `json:"name"`
	Capacity    int32     `json:"capacity"`
	NightlyRate float64   `json:"nightly_rate"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RuleView struct {
	ID               uuid.UUID  `json:"id"`
	RoomID           uuid.UUID  `json:"room_id"`
	Kind             string     `json:"kind"`
	Active           bool       `json:"active"`
	PercentIncrement *float64   `json:"percent_increment,omitempty"`
	FixedIncrement   *float64   `json:"fixed_increment,omitempty"`
	DateFrom         *time.Time `json:"date_from,omitempty"`
	DateTo           *time.Time `json:"date_to,omitempty"`
}

type BookingView struct {
	ID          uuid.UUID `json:"id"`
	RoomID      uuid.UUID `json:"room_id"`
	RoomName    string    `json:"room_name"`
	LodgingID   uuid.UUID `json:"lodging_id"`
	LodgingName string    `json:"lodging_name"`
	GuestID     uuid.UUID `json:"guest_id"`
	GuestEmail  string    `json:"guest_email"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	Guests      int32     `json:"guests"`
	Status      string    `json:"status"`
	Subtotal    int64     `json:"subtotal"`
	TaxPercent  float64   `json:"tax_percent"`
	TaxAmount   int64     `json:"tax_amount"`
	GrandTotal  int64     `json:"grand_total"`
	Note        *string   `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	RoomName    string    `json:"room_name"`
	LodgingName string    `json:"lodging_name"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	Status      string    `json:"status"`
	GrandTotal  int64     `json:"grand_total"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReviewView struct {
	ID         uuid.UUID `json:"id"`
	LodgingID  uuid.UUID `json:"lodging_id"`
	BookingID  uuid.UUID `json:"booking_id"`
	GuestEmail string    `json:"guest_email"`
	Rating     int32     `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// QuoteNight mirrors one priced night of the calculator's breakdown.
type QuoteNight struct {
	Date               time.Time `json:"date"`
	Price              int64     `json:"price"`
	AppliedAdjustments []string  `json:"applied_adjustments"`
}

// QuoteView is a live price quote for a prospective stay: the pre-tax
// calculator output plus the flat tax a booking would add on top.
type QuoteView struct {
	RoomID     uuid.UUID    `json:"room_id"`
	CheckIn    time.Time    `json:"check_in"`
	CheckOut   time.Time    `json:"check_out"`
	Nights     int          `json:"nights"`
	Subtotal   int64        `json:"subtotal"`
	TaxPercent float64      `json:"tax_percent"`
	TaxAmount  int64        `json:"tax_amount"`
	GrandTotal int64        `json:"grand_total"`
	Breakdown  []QuoteNight `json:"breakdown"`
}
