package readstore

import (
	"context"

	"staybooking/internal/infra"
	"staybooking/internal/infra/db"
	"staybooking/internal/pkg/pgconv"
	"staybooking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(pool db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: pool}
}

const findReviewsByLodgingSQL = `
SELECT rv.id, rv.lodging_id, rv.booking_id, u.email AS guest_email,
       rv.rating, rv.comment, rv.created_at
FROM reviews rv
JOIN users u ON u.id = rv.guest_id
WHERE rv.lodging_id = $1
ORDER BY rv.created_at DESC, rv.id DESC
LIMIT $2`

func (r *ReviewReadStore) FindByLodging(ctx context.Context, lodgingID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	rows, err := r.db.Query(ctx, findReviewsByLodgingSQL, lodgingID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reviews by lodging", err)
	}
	defer rows.Close()

	var result []*queries.ReviewView
	for rows.Next() {
		var (
			view      queries.ReviewView
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.LodgingID, &view.BookingID, &view.GuestEmail,
			&view.Rating, &view.Comment, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review view", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review views", err)
	}
	return result, nil
}

const findReviewViewSQL = `
SELECT rv.id, rv.lodging_id, rv.booking_id, u.email AS guest_email,
       rv.rating, rv.comment, rv.created_at
FROM reviews rv
JOIN users u ON u.id = rv.guest_id
WHERE rv.id = $1`

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	var (
		view      queries.ReviewView
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findReviewViewSQL, id).Scan(
		&view.ID, &view.LodgingID, &view.BookingID, &view.GuestEmail,
		&view.Rating, &view.Comment, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review by ID", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
