package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"staybooking/internal/domain/booking"
	"staybooking/internal/domain/lodging"
	"staybooking/internal/domain/pricing"
	"staybooking/internal/infra"
	"staybooking/internal/infra/db"
	"staybooking/internal/pkg/clock"
	"staybooking/internal/pkg/errs"
	"staybooking/internal/usecase/queries"
	"staybooking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrRoomUnavailable         = errs.New("room is unavailable for the requested stay")
	ErrDuplicateBooking        = errs.New("duplicate booking request")
	ErrIdempotencyInProgress   = errs.New("idempotency in progress")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrNotBookingGuest         = errs.New("booking belongs to another guest")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingParams struct {
	RoomID   uuid.UUID `json:"room_id"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
	Guests   int       `json:"guests"`
	Note     string    `json:"note"`
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams, guestID uuid.UUID, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, bookingID, guestID uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookingRepo     BookingRepository
	roomRepo        RoomRepository
	idempotencyRepo IdempotencyRepository
	notifyRepo      NotificationRepository
	bookingFactory  *booking.Factory
	bookingQueries  queries.BookingQueries
	pool            *pgxpool.Pool
	clock           clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	idempotencyRepo IdempotencyRepository,
	notifyRepo NotificationRepository,
	bookingFactory *booking.Factory,
	bookingQueries queries.BookingQueries,
	pool *pgxpool.Pool,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:     bookingRepo,
		roomRepo:        roomRepo,
		idempotencyRepo: idempotencyRepo,
		notifyRepo:      notifyRepo,
		bookingFactory:  bookingFactory,
		bookingQueries:  bookingQueries,
		pool:            pool,
		clock:           clock,
	}
}

func (c *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	params CreateBookingParams,
	guestID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateBookingResult, error) {
	requestHash := c.calculateRequestHash(params)
	expiresAt := c.clock.Now().Add(24 * time.Hour)

	replayed, err := c.handleIdempotency(ctx, idempotencyKey, guestID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateBookingResult{Booking: replayed, IsReplayed: true}, nil
	}

	view, err := c.createNewBooking(ctx, params, guestID, idempotencyKey)
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: view, IsReplayed: false}, nil
}

func (c *bookingCommandsImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, guestID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.BookingView, error) {
	inserted, err := c.idempotencyRepo.TryInsert(ctx, idempotencyKey, guestID, "POST /bookings", requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := c.idempotencyRepo.Get(ctx, idempotencyKey, guestID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		// A key may only ever replay the request it was bound to.
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateBooking
		}
		if existing.ResultBookingID != nil {
			// System-level read: replay must succeed regardless of actor.
			return c.bookingQueries.GetByIDSystem(ctx, *existing.ResultBookingID)
		}
		return nil, errs.New("completed request missing result booking ID")

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateBooking
		}
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (c *bookingCommandsImpl) createNewBooking(
	ctx context.Context,
	params CreateBookingParams,
	guestID, idempotencyKey uuid.UUID,
) (*queries.BookingView, error) {
	room, err := c.loadRoom(ctx, params.RoomID)
	if err != nil {
		return nil, err
	}

	note, err := booking.NewNote(params.Note)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	stay := pricing.NewStayRange(params.CheckIn, params.CheckOut)
	bookingEntity, err := c.bookingFactory.CreateBooking(room, guestID, stay, params.Guests, note)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	bookingID, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		taken, overlapErr := c.bookingRepo.HasOverlapping(ctx, tx, room.ID(), stay)
		if overlapErr != nil {
			return uuid.Nil, errs.Mark(overlapErr, ErrDatabaseOperationFailed)
		}
		if taken {
			return uuid.Nil, ErrRoomUnavailable
		}

		if createErr := c.bookingRepo.Create(ctx, tx, bookingEntity); createErr != nil {
			// A rival booking may commit between the overlap check and
			// this insert; the exclusion constraint rejects the loser.
			if infra.IsKind(createErr, infra.KindConflict) || infra.IsKind(createErr, infra.KindDuplicateKey) {
				return uuid.Nil, ErrRoomUnavailable
			}
			return uuid.Nil, errs.Mark(createErr, ErrDatabaseOperationFailed)
		}

		if notifyErr := c.createNotificationJob(ctx, tx, bookingEntity.ID(), "booking_confirmed"); notifyErr != nil {
			return uuid.Nil, errs.Mark(notifyErr, ErrDatabaseOperationFailed)
		}

		if idemErr := c.idempotencyRepo.UpdateStatusCompleted(ctx, tx, idempotencyKey, guestID, bookingEntity.ID()); idemErr != nil {
			return uuid.Nil, errs.Mark(idemErr, ErrDatabaseOperationFailed)
		}

		return bookingEntity.ID(), nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: serve the response from the read store.
	view, err := c.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID, guestID uuid.UUID) error {
	bookingEntity, err := c.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if bookingEntity.GuestID() != guestID {
		return ErrNotBookingGuest
	}

	if err := bookingEntity.Cancel(c.clock.Now()); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	_, err = shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		if updateErr := c.bookingRepo.Update(ctx, tx, bookingEntity); updateErr != nil {
			return struct{}{}, errs.Mark(updateErr, ErrDatabaseOperationFailed)
		}
		if notifyErr := c.createNotificationJob(ctx, tx, bookingEntity.ID(), "booking_canceled"); notifyErr != nil {
			return struct{}{}, errs.Mark(notifyErr, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func (c *bookingCommandsImpl) loadRoom(ctx context.Context, roomID uuid.UUID) (*lodging.Room, error) {
	snapshot, err := c.roomRepo.FindSnapshotByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrRoomNotFound)
	}

	room := lodging.ReconstructRoom(
		snapshot.ID,
		snapshot.LodgingID,
		snapshot.Name,
		snapshot.Capacity,
		snapshot.NightlyRate,
		snapshot.Rules,
		time.Time{}, time.Time{},
	)
	return room, nil
}

func (c *bookingCommandsImpl) createNotificationJob(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, topic string) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id": bookingID,
		"type":       topic,
	})
	if err != nil {
		return err
	}

	return c.notifyRepo.CreateJob(ctx, tx, "email", topic, payload, c.clock.Now())
}

func (c *bookingCommandsImpl) calculateRequestHash(params CreateBookingParams) string {
	data, _ := json.Marshal(params)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
