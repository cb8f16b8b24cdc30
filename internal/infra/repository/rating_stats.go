package repository

import (
	"context"

	"staybooking/internal/infra"
	"staybooking/internal/infra/db"

	"github.com/google/uuid"
)

type RatingStatsRepository struct {
	db db.DBTX
}

func NewRatingStatsRepository(pool db.DBTX) *RatingStatsRepository {
	return &RatingStatsRepository{db: pool}
}

// Recalculating from the reviews table keeps the stats correct under
// concurrent writers without incremental bookkeeping.
const recalcRatingStatsSQL = `
INSERT INTO lodging_rating_stats (lodging_id, review_count, average_rating, updated_at)
SELECT $1, COUNT(*), AVG(rating)::numeric(3,2), now()
FROM reviews
WHERE lodging_id = $1
ON CONFLICT (lodging_id) DO UPDATE
SET review_count = EXCLUDED.review_count,
    average_rating = EXCLUDED.average_rating,
    updated_at = EXCLUDED.updated_at`

func (r *RatingStatsRepository) RecalcLodgingRatingStats(ctx context.Context, tx db.DBTX, lodgingID uuid.UUID) error {
	if _, err := tx.Exec(ctx, recalcRatingStatsSQL, lodgingID); err != nil {
		return infra.WrapRepoErr("failed to recalculate lodging rating stats", err)
	}
	return nil
}
