package queries

import (
	"context"

	"staybooking/internal/infra"
	"staybooking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errs.New("review not found")

type ReviewReadStore interface {
	FindByLodging(ctx context.Context, lodgingID uuid.UUID, limit int32) ([]*ReviewView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
}

type ReviewQueries interface {
	ListByLodging(ctx context.Context, lodgingID uuid.UUID, limit int) ([]*ReviewView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) ListByLodging(ctx context.Context, lodgingID uuid.UUID, limit int) ([]*ReviewView, error) {
	return q.store.FindByLodging(ctx, lodgingID, ClampLimit(limit))
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return view, nil
}
