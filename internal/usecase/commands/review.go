package commands

import (
	"context"
	"errors"

	"staybooking/internal/domain/booking"
	"staybooking/internal/domain/review"
	"staybooking/internal/infra"
	"staybooking/internal/infra/db"
	"staybooking/internal/pkg/clock"
	"staybooking/internal/pkg/errs"
	"staybooking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrReviewAlreadyExists = errs.New("review already exists for booking")
	ErrBookingNotEligible  = errs.New("booking not eligible for review")
)

type CreateReviewParams struct {
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, params CreateReviewParams, guestID uuid.UUID) (*CreateReviewResult, error)
}

type reviewCommandsImpl struct {
	reviewRepo  ReviewRepository
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	statsRepo   RatingStatsRepository
	pool        *pgxpool.Pool
	clock       clock.Clock
}

func NewReviewCommands(
	reviewRepo ReviewRepository,
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	statsRepo RatingStatsRepository,
	pool *pgxpool.Pool,
	clock clock.Clock,
) ReviewCommands {
	return &reviewCommandsImpl{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		statsRepo:   statsRepo,
		pool:        pool,
		clock:       clock,
	}
}

func (c *reviewCommandsImpl) CreateReview(ctx context.Context, params CreateReviewParams, guestID uuid.UUID) (*CreateReviewResult, error) {
	bookingEntity, err := c.bookingRepo.FindByID(ctx, params.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// A confirmed booking whose stay has ended is promoted to completed
	// here; eligibility is then checked by the review itself.
	completedNow := false
	if bookingEntity.Status() == booking.StatusConfirmed {
		if completeErr := bookingEntity.Complete(c.clock.Now()); completeErr == nil {
			completedNow = true
		}
	}

	snapshot, err := c.roomRepo.FindSnapshotByID(ctx, bookingEntity.RoomID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	reviewEntity, err := review.NewReview(bookingEntity, guestID, snapshot.LodgingID, params.Rating, params.Comment, c.clock.Now())
	if err != nil {
		if errors.Is(err, review.ErrBookingNotEligible) {
			return nil, ErrBookingNotEligible
		}
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	exists, err := c.reviewRepo.ExistsForBooking(ctx, params.BookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return nil, ErrReviewAlreadyExists
	}

	_, err = shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		if completedNow {
			if updateErr := c.bookingRepo.Update(ctx, tx, bookingEntity); updateErr != nil {
				return struct{}{}, errs.Mark(updateErr, ErrDatabaseOperationFailed)
			}
		}
		if createErr := c.reviewRepo.Create(ctx, tx, reviewEntity); createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return struct{}{}, ErrReviewAlreadyExists
			}
			return struct{}{}, errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		if statsErr := c.statsRepo.RecalcLodgingRatingStats(ctx, tx, snapshot.LodgingID); statsErr != nil {
			return struct{}{}, errs.Mark(statsErr, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateReviewResult{ReviewID: reviewEntity.ID()}, nil
}
