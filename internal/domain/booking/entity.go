package booking

import (
	"errors"
	"strings"
	"time"

	"staybooking/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrEmptyStay          = errors.New("stay must cover at least one night")
	ErrCheckInPast        = errors.New("check-in date is in the past")
	ErrTooManyGuests      = errors.New("guest count exceeds room capacity")
	ErrInvalidGuestCount  = errors.New("guest count must be at least 1")
	ErrBookingCanceled    = errors.New("booking is already canceled")
	ErrStayAlreadyStarted = errors.New("stay has already started")
	ErrInvalidStatus      = errors.New("invalid booking status")
	ErrNoteTooLong        = errors.New("note is too long (max 500 characters)")
)

const MaxNoteLength = 500

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	value = strings.TrimSpace(value)
	if len(value) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

func (n Note) String() string { return n.value }
func (n Note) IsEmpty() bool  { return n.value == "" }

// Totals carries the money side of a booking: the calculator's pre-tax
// subtotal, the flat tax charged on top, and their sum. All integral
// currency units.
type Totals struct {
	Subtotal   int64
	TaxPercent float64
	TaxAmount  int64
	GrandTotal int64
}

type Booking struct {
	id        uuid.UUID
	roomID    uuid.UUID
	guestID   uuid.UUID
	stay      pricing.StayRange
	guests    int
	status    Status
	totals    Totals
	note      Note
	createdAt time.Time
	updatedAt time.Time
}

func ReconstructBooking(
	id, roomID, guestID uuid.UUID,
	stay pricing.StayRange,
	guests int,
	status Status,
	totals Totals,
	note Note,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		roomID:    roomID,
		guestID:   guestID,
		stay:      stay,
		guests:    guests,
		status:    status,
		totals:    totals,
		note:      note,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

// Cancel succeeds only for confirmed bookings whose stay has not begun.
func (b *Booking) Cancel(now time.Time) error {
	if b.status == StatusCanceled {
		return ErrBookingCanceled
	}
	if !pricing.DateOf(now).Before(b.stay.CheckIn()) {
		return ErrStayAlreadyStarted
	}
	b.status = StatusCanceled
	return nil
}

// Complete marks a confirmed booking whose stay has ended. Completed
// stays are the only ones eligible for review.
func (b *Booking) Complete(now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrInvalidStatus
	}
	if pricing.DateOf(now).Before(b.stay.CheckOut()) {
		return ErrInvalidStatus
	}
	b.status = StatusCompleted
	return nil
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) RoomID() uuid.UUID       { return b.roomID }
func (b *Booking) GuestID() uuid.UUID      { return b.guestID }
func (b *Booking) Stay() pricing.StayRange { return b.stay }
func (b *Booking) Guests() int             { return b.guests }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) Totals() Totals          { return b.totals }
func (b *Booking) Note() Note              { return b.note }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
