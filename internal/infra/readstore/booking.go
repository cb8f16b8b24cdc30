package readstore

import (
	"context"
	"time"

	"staybooking/internal/infra"
	"staybooking/internal/infra/db"
	"staybooking/internal/pkg/pgconv"
	"staybooking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(pool db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: pool}
}

const findBookingViewSQL = `
SELECT b.id, b.room_id, r.name AS room_name, r.lodging_id, l.name AS lodging_name,
       b.guest_id, u.email AS guest_email,
       b.check_in, b.check_out, b.guests, b.status,
       b.subtotal, b.tax_percent, b.tax_amount, b.grand_total,
       b.note, b.created_at, b.updated_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN lodgings l ON l.id = r.lodging_id
JOIN users u ON u.id = b.guest_id
WHERE b.id = $1`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view       queries.BookingView
		checkIn    pgtype.Date
		checkOut   pgtype.Date
		taxPercent pgtype.Numeric
		note       pgtype.Text
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findBookingViewSQL, id).Scan(
		&view.ID, &view.RoomID, &view.RoomName, &view.LodgingID, &view.LodgingName,
		&view.GuestID, &view.GuestEmail,
		&checkIn, &checkOut, &view.Guests, &view.Status,
		&view.Subtotal, &taxPercent, &view.TaxAmount, &view.GrandTotal,
		&note, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	view.TaxPercent, err = pgconv.Float64FromNumeric(taxPercent)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert tax percent", err)
	}
	view.CheckIn = pgconv.DateFromPgtype(checkIn)
	view.CheckOut = pgconv.DateFromPgtype(checkOut)
	view.Note = pgconv.StringPtrFromPgtype(note)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

const findBookingsFirstPageSQL = `
SELECT b.id, r.name AS room_name, l.name AS lodging_name,
       b.check_in, b.check_out, b.status, b.grand_total, b.created_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN lodgings l ON l.id = r.lodging_id
WHERE b.guest_id = $1
ORDER BY b.created_at DESC, b.id DESC
LIMIT $2`

func (r *BookingReadStore) FindByGuestFirstPage(ctx context.Context, guestID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, findBookingsFirstPageSQL, guestID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings first page", err)
	}
	return scanBookingListItems(rows)
}

const findBookingsKeysetSQL = `
SELECT b.id, r.name AS room_name, l.name AS lodging_name,
       b.check_in, b.check_out, b.status, b.grand_total, b.created_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN lodgings l ON l.id = r.lodging_id
WHERE b.guest_id = $1 AND (b.created_at, b.id) < ($2, $3)
ORDER BY b.created_at DESC, b.id DESC
LIMIT $4`

func (r *BookingReadStore) FindByGuestKeyset(ctx context.Context, guestID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, findBookingsKeysetSQL, guestID, pgconv.TimeToPgtype(lastCreatedAt), lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings keyset", err)
	}
	return scanBookingListItems(rows)
}

func scanBookingListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var (
			item      queries.BookingListItem
			checkIn   pgtype.Date
			checkOut  pgtype.Date
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.RoomName, &item.LodgingName,
			&checkIn, &checkOut, &item.Status, &item.GrandTotal, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		item.CheckIn = pgconv.DateFromPgtype(checkIn)
		item.CheckOut = pgconv.DateFromPgtype(checkOut)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking list items", err)
	}
	return result, nil
}
