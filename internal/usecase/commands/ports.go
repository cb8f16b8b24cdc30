package commands

import (
	"context"
	"time"

	"staybooking/internal/domain/booking"
	"staybooking/internal/domain/lodging"
	"staybooking/internal/domain/pricing"
	"staybooking/internal/domain/review"
	"staybooking/internal/domain/user"
	"staybooking/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type RoomSnapshot struct {
	ID          uuid.UUID
	LodgingID   uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Capacity    int
	NightlyRate float64
	Rules       []pricing.Rule
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         user.Role
	IsActive     bool
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	// HasOverlapping reports whether a confirmed booking already covers
	// any night of the stay. Runs inside the booking transaction.
	HasOverlapping(ctx context.Context, tx db.DBTX, roomID uuid.UUID, stay pricing.StayRange) (bool, error)
}

type RoomRepository interface {
	Create(ctx context.Context, tx db.DBTX, room *lodging.Room) error
	FindSnapshotByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	ReplaceRules(ctx context.Context, tx db.DBTX, roomID uuid.UUID, rules []pricing.Rule) error
}

type LodgingRepository interface {
	Create(ctx context.Context, tx db.DBTX, l *lodging.Lodging) error
	FindByID(ctx context.Context, id uuid.UUID) (*lodging.Lodging, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *review.Review) error
	ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

type RatingStatsRepository interface {
	RecalcLodgingRatingStats(ctx context.Context, tx db.DBTX, lodgingID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID, at time.Time) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, key uuid.UUID, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key uuid.UUID, userID uuid.UUID) (*IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key uuid.UUID, userID uuid.UUID, resultBookingID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
