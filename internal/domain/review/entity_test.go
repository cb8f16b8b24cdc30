//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"staybooking/internal/domain/booking"
	"staybooking/internal/domain/pricing"
	"staybooking/internal/domain/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func completedBooking(t *testing.T, guestID uuid.UUID) *booking.Booking {
	t.Helper()
	stay := pricing.NewStayRange(date(2024, 5, 10), date(2024, 5, 13))
	b := booking.ReconstructBooking(
		uuid.New(), uuid.New(), guestID,
		stay, 2, booking.StatusCompleted,
		booking.Totals{Subtotal: 3000, TaxPercent: 21, TaxAmount: 630, GrandTotal: 3630},
		booking.Note{}, date(2024, 5, 1), date(2024, 5, 13),
	)
	return b
}

func TestNewReview(t *testing.T) {
	guestID := uuid.New()
	lodgingID := uuid.New()
	now := date(2024, 5, 20)

	t.Run("basic success case", func(t *testing.T) {
		b := completedBooking(t, guestID)

		r, err := review.NewReview(b, guestID, lodgingID, 5, "Hermoso lugar, volveremos!", now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, b.ID(), r.BookingID())
		assert.Equal(t, 5, r.Rating().Value())
		assert.Equal(t, "Hermoso lugar, volveremos!", r.Comment().String())
		assert.Equal(t, now, r.CreatedAt())
	})

	t.Run("rating validation", func(t *testing.T) {
		cases := []struct {
			name   string
			rating int
			errIs  error
		}{
			{name: "below minimum", rating: 0, errIs: review.ErrInvalidRating},
			{name: "minimum valid", rating: 1},
			{name: "maximum valid", rating: 5},
			{name: "above maximum", rating: 6, errIs: review.ErrInvalidRating},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := review.NewReview(completedBooking(t, guestID), guestID, lodgingID, c.rating, "fine", now)
				if c.errIs != nil {
					require.ErrorIs(t, err, c.errIs)
				} else {
					require.NoError(t, err)
				}
			})
		}
	})

	t.Run("comment validation", func(t *testing.T) {
		_, err := review.NewReview(completedBooking(t, guestID), guestID, lodgingID, 4, "   ", now)
		require.ErrorIs(t, err, review.ErrEmptyComment)

		_, err = review.NewReview(completedBooking(t, guestID), guestID, lodgingID, 4, strings.Repeat("a", review.MaxCommentLength+1), now)
		require.ErrorIs(t, err, review.ErrCommentTooLong)
	})

	t.Run("only the guest of a completed stay may review", func(t *testing.T) {
		b := completedBooking(t, guestID)

		_, err := review.NewReview(b, uuid.New(), lodgingID, 5, "great", now)
		require.ErrorIs(t, err, review.ErrBookingNotEligible)

		confirmed := booking.ReconstructBooking(
			uuid.New(), uuid.New(), guestID,
			pricing.NewStayRange(date(2024, 6, 1), date(2024, 6, 3)), 2,
			booking.StatusConfirmed, booking.Totals{}, booking.Note{}, now, now,
		)
		_, err = review.NewReview(confirmed, guestID, lodgingID, 5, "great", now)
		require.ErrorIs(t, err, review.ErrBookingNotEligible)
	})
}
