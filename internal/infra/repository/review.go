package repository

import (
	"context"

	"staybooking/internal/domain/review"
	"staybooking/internal/infra"
	"staybooking/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(pool db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: pool}
}

const createReviewSQL = `
INSERT INTO reviews (id, booking_id, guest_id, lodging_id, rating, comment, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) error {
	_, err := tx.Exec(ctx, createReviewSQL,
		rev.ID(), rev.BookingID(), rev.GuestID(), rev.LodgingID(),
		rev.Rating().Value(), rev.Comment().String(), rev.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}

const reviewExistsSQL = `SELECT EXISTS (SELECT 1 FROM reviews WHERE booking_id = $1)`

func (r *ReviewRepository) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, reviewExistsSQL, bookingID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return exists, nil
}
