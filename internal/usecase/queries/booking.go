package queries

import (
	"context"
	"time"

	"staybooking/internal/domain/user"
	"staybooking/internal/infra"
	"staybooking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrAccessDenied    = errs.New("access denied")
	ErrInvalidCursor   = errs.New("invalid cursor")
)

// Actor identifies who is asking on the read side.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByGuestFirstPage(ctx context.Context, guestID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByGuestKeyset(ctx context.Context, guestID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem bypasses access control; used for idempotent replay.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if actor.Role != user.RoleAdmin && view.GuestID != actor.ID {
		return nil, ErrAccessDenied
	}

	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByGuest(ctx context.Context, guestID uuid.UUID, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	capped := ClampLimit(limit)

	var (
		items []*BookingListItem
		err   error
	)
	if after == nil || after.After == "" {
		items, err = q.store.FindByGuestFirstPage(ctx, guestID, capped+1)
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, errs.Mark(decodeErr, ErrInvalidCursor)
		}
		items, err = q.store.FindByGuestKeyset(ctx, guestID, lastCreatedAt, lastID, capped+1)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) > int(capped) {
		items = items[:capped]
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}

	return items, next, nil
}
