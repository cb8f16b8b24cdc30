//go:build unit || e2e

package builder

import (
	"time"

	reqdto "staybooking/internal/handler/dto/request"
	"staybooking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	RoomID      uuid.UUID
	RoomName    string
	LodgingID   uuid.UUID
	LodgingName string
	GuestID     uuid.UUID
	GuestEmail  string
	CheckIn     time.Time
	CheckOut    time.Time
	Guests      int
	Status      string
	Subtotal    int64
	TaxPercent  float64
	TaxAmount   int64
	GrandTotal  int64
	Note        *string
	CreatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	checkIn := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	return &BookingBuilder{
		RoomID:      uuid.New(),
		RoomName:    "Cabin Pinar",
		LodgingID:   uuid.New(),
		LodgingName: "Hosteria Alpina",
		GuestID:     uuid.New(),
		GuestEmail:  "guest@example.com",
		CheckIn:     checkIn,
		CheckOut:    checkIn.AddDate(0, 0, 3),
		Guests:      2,
		Status:      "confirmed",
		Subtotal:    30000,
		TaxPercent:  21,
		TaxAmount:   6300,
		GrandTotal:  36300,
		CreatedAt:   time.Now(),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:   b.RoomID,
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
		Guests:   b.Guests,
		Note:     b.Note,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          uuid.New(),
		RoomID:      b.RoomID,
		RoomName:    b.RoomName,
		LodgingID:   b.LodgingID,
		LodgingName: b.LodgingName,
		GuestID:     b.GuestID,
		GuestEmail:  b.GuestEmail,
		CheckIn:     b.CheckIn,
		CheckOut:    b.CheckOut,
		Guests:      int32(b.Guests),
		Status:      b.Status,
		Subtotal:    b.Subtotal,
		TaxPercent:  b.TaxPercent,
		TaxAmount:   b.TaxAmount,
		GrandTotal:  b.GrandTotal,
		Note:        b.Note,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:          uuid.New(),
		RoomName:    b.RoomName,
		LodgingName: b.LodgingName,
		CheckIn:     b.CheckIn,
		CheckOut:    b.CheckOut,
		Status:      b.Status,
		GrandTotal:  b.GrandTotal,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *BookingBuilder) WithRoomID(roomID uuid.UUID) *BookingBuilder {
	b.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithGuestID(guestID uuid.UUID) *BookingBuilder {
	b.GuestID = guestID
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithNote(note string) *BookingBuilder {
	b.Note = &note
	return b
}
