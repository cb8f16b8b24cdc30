package repository

import (
	"context"

	"staybooking/internal/domain/booking"
	"staybooking/internal/domain/pricing"
	"staybooking/internal/infra"
	"staybooking/internal/infra/db"
	"staybooking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(pool db.DBTX) *BookingRepository {
	return &BookingRepository{db: pool}
}

const createBookingSQL = `
INSERT INTO bookings (id, room_id, guest_id, check_in, check_out, guests, status, subtotal, tax_percent, tax_amount, grand_total, note, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	var note *string
	if !b.Note().IsEmpty() {
		v := b.Note().String()
		note = &v
	}

	totals := b.Totals()
	_, err := tx.Exec(ctx, createBookingSQL,
		b.ID(), b.RoomID(), b.GuestID(),
		pgconv.DateToPgtype(b.Stay().CheckIn()), pgconv.DateToPgtype(b.Stay().CheckOut()),
		b.Guests(), b.Status().String(),
		totals.Subtotal, pgconv.Float64ToNumeric(totals.TaxPercent), totals.TaxAmount, totals.GrandTotal,
		pgconv.StringPtrToPgtype(note),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

const findBookingByIDSQL = `
SELECT id, room_id, guest_id, check_in, check_out, guests, status, subtotal, tax_percent, tax_amount, grand_total, note, created_at, updated_at
FROM bookings
WHERE id = $1`

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, findBookingByIDSQL, id)

	var (
		bookingID, roomID, guestID uuid.UUID
		checkIn, checkOut          pgtype.Date
		guests                     int
		status                     string
		subtotal, taxAmount, total int64
		taxPercent                 pgtype.Numeric
		note                       pgtype.Text
		createdAt, updatedAt       pgtype.Timestamptz
	)
	err := row.Scan(&bookingID, &roomID, &guestID, &checkIn, &checkOut, &guests, &status,
		&subtotal, &taxPercent, &taxAmount, &total, &note, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	taxPct, err := pgconv.Float64FromNumeric(taxPercent)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert tax percent", err)
	}

	noteStr := ""
	if v := pgconv.StringPtrFromPgtype(note); v != nil {
		noteStr = *v
	}
	bookingNote, err := booking.NewNote(noteStr)
	if err != nil {
		return nil, infra.WrapRepoErr("stored note is invalid", err)
	}

	return booking.ReconstructBooking(
		bookingID, roomID, guestID,
		pricing.NewStayRange(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut)),
		guests,
		booking.Status(status),
		booking.Totals{
			Subtotal:   subtotal,
			TaxPercent: taxPct,
			TaxAmount:  taxAmount,
			GrandTotal: total,
		},
		bookingNote,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

const updateBookingSQL = `
UPDATE bookings
SET status = $2, updated_at = now()
WHERE id = $1`

func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	tag, err := tx.Exec(ctx, updateBookingSQL, b.ID(), b.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// Nights are half-open [check_in, check_out), so back-to-back stays on
// the same room never collide.
const hasOverlappingSQL = `
SELECT EXISTS (
    SELECT 1 FROM bookings
    WHERE room_id = $1
      AND status = 'confirmed'
      AND check_in < $3
      AND check_out > $2
)`

func (r *BookingRepository) HasOverlapping(ctx context.Context, tx db.DBTX, roomID uuid.UUID, stay pricing.StayRange) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, hasOverlappingSQL, roomID,
		pgconv.DateToPgtype(stay.CheckIn()), pgconv.DateToPgtype(stay.CheckOut()),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping bookings", err)
	}
	return exists, nil
}
