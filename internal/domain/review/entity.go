package review

import (
	"time"

	"staybooking/internal/domain/booking"

	"github.com/google/uuid"
)

type Review struct {
	id        uuid.UUID
	guestID   uuid.UUID
	lodgingID uuid.UUID
	bookingID uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

// NewReview builds a review for a completed stay. The eligibility check
// against the booking happens here so no use case can skip it.
func NewReview(b *booking.Booking, guestID, lodgingID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	if b.GuestID() != guestID || b.Status() != booking.StatusCompleted {
		return nil, ErrBookingNotEligible
	}

	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:        uuid.New(),
		guestID:   guestID,
		lodgingID: lodgingID,
		bookingID: b.ID(),
		rating:    rating,
		comment:   comment,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReview(
	id, guestID, lodgingID, bookingID uuid.UUID,
	rating Rating,
	comment Comment,
	createdAt, updatedAt time.Time,
) *Review {
	return &Review{
		id:        id,
		guestID:   guestID,
		lodgingID: lodgingID,
		bookingID: bookingID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) GuestID() uuid.UUID   { return r.guestID }
func (r *Review) LodgingID() uuid.UUID { return r.lodgingID }
func (r *Review) BookingID() uuid.UUID { return r.bookingID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
