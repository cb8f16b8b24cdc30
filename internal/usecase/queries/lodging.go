package queries

import (
	"context"
	"time"

	"staybooking/internal/infra"
	"staybooking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrLodgingNotFound = errs.New("lodging not found")

type LodgingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LodgingView, error)
	FindFirstPage(ctx context.Context, limit int32) ([]*LodgingView, error)
	FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*LodgingView, error)
	FindRooms(ctx context.Context, lodgingID uuid.UUID) ([]*RoomView, error)
	FindRoom(ctx context.Context, roomID uuid.UUID) (*RoomView, error)
	FindRoomRules(ctx context.Context, roomID uuid.UUID) ([]*RuleView, error)
}

type LodgingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*LodgingView, error)
	List(ctx context.Context, after *Cursor, limit int) ([]*LodgingView, *Cursor, error)
	ListRooms(ctx context.Context, lodgingID uuid.UUID) ([]*RoomView, error)
	GetRoom(ctx context.Context, roomID uuid.UUID) (*RoomView, error)
	ListRoomRules(ctx context.Context, roomID uuid.UUID) ([]*RuleView, error)
}

type lodgingQueriesImpl struct {
	store LodgingReadStore
}

func NewLodgingQueries(store LodgingReadStore) LodgingQueries {
	return &lodgingQueriesImpl{store: store}
}

func (q *lodgingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*LodgingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLodgingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *lodgingQueriesImpl) List(ctx context.Context, after *Cursor, limit int) ([]*LodgingView, *Cursor, error) {
	capped := ClampLimit(limit)

	var (
		items []*LodgingView
		err   error
	)
	if after == nil || after.After == "" {
		items, err = q.store.FindFirstPage(ctx, capped+1)
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, errs.Mark(decodeErr, ErrInvalidCursor)
		}
		items, err = q.store.FindKeyset(ctx, lastCreatedAt, lastID, capped+1)
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

func (q *lodgingQueriesImpl) ListRooms(ctx context.Context, lodgingID uuid.UUID) ([]*RoomView, error) {
	return q.store.FindRooms(ctx, lodgingID)
}

func (q *lodgingQueriesImpl) GetRoom(ctx context.Context, roomID uuid.UUID) (*RoomView, error) {
	view, err := q.store.FindRoom(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *lodgingQueriesImpl) ListRoomRules(ctx context.Context, roomID uuid.UUID) ([]*RuleView, error) {
	return q.store.FindRoomRules(ctx, roomID)
}
