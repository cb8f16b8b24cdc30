//go:build unit

package booking_test

import (
	"testing"
	"time"

	"staybooking/internal/domain/booking"
	"staybooking/internal/domain/lodging"
	"staybooking/internal/domain/pricing"
	"staybooking/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newRoom(t *testing.T, rate float64, rules ...pricing.Rule) *lodging.Room {
	t.Helper()
	room, err := lodging.NewRoom(uuid.New(), "Cabaña Norte", 4, rate)
	require.NoError(t, err)
	if len(rules) > 0 {
		require.NoError(t, room.ReplaceRules(rules))
	}
	return room
}

func newFactory(now time.Time, taxPercent float64) *booking.Factory {
	return booking.NewFactory(clock.NewMockClock(now), pricing.NewStandardCalculator(), taxPercent)
}

func TestCreateBooking(t *testing.T) {
	now := date(2024, 5, 1)
	guestID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		factory := newFactory(now, 21)
		room := newRoom(t, 1000)
		stay := pricing.NewStayRange(date(2024, 5, 10), date(2024, 5, 13))

		b, err := factory.CreateBooking(room, guestID, stay, 2, booking.Note{})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, room.ID(), b.RoomID())
		assert.Equal(t, guestID, b.GuestID())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, int64(3000), b.Totals().Subtotal)
		assert.Equal(t, int64(630), b.Totals().TaxAmount)
		assert.Equal(t, int64(3630), b.Totals().GrandTotal)
	})

	t.Run("booking totals match a live quote plus tax", func(t *testing.T) {
		from, to := date(2024, 5, 1), date(2024, 5, 31)
		season, err := pricing.NewRule(pricing.KindSeason, true, pricing.NewPercentAdjustment(20), &from, &to)
		require.NoError(t, err)
		weekend, err := pricing.NewRule(pricing.KindWeekend, true, pricing.NewPercentAdjustment(10), nil, nil)
		require.NoError(t, err)

		factory := newFactory(now, 21)
		room := newRoom(t, 1000, season, weekend)
		stay := pricing.NewStayRange(date(2024, 5, 3), date(2024, 5, 6))

		b, err := factory.CreateBooking(room, guestID, stay, 2, booking.Note{})
		require.NoError(t, err)

		quote := pricing.Calculate(stay, room.NightlyRate(), room.Rules())
		assert.Equal(t, quote.TotalPrice, b.Totals().Subtotal)
		assert.Equal(t, quote.TotalPrice+b.Totals().TaxAmount, b.Totals().GrandTotal)
	})

	cases := []struct {
		name    string
		stay    pricing.StayRange
		guests  int
		errIs   error
	}{
		{
			name:   "zero-night stay NG",
			stay:   pricing.NewStayRange(date(2024, 5, 10), date(2024, 5, 10)),
			guests: 2,
			errIs:  booking.ErrEmptyStay,
		},
		{
			name:   "inverted stay NG",
			stay:   pricing.NewStayRange(date(2024, 5, 13), date(2024, 5, 10)),
			guests: 2,
			errIs:  booking.ErrEmptyStay,
		},
		{
			name:   "past check-in NG",
			stay:   pricing.NewStayRange(date(2024, 4, 20), date(2024, 4, 22)),
			guests: 2,
			errIs:  booking.ErrCheckInPast,
		},
		{
			name:   "zero guests NG",
			stay:   pricing.NewStayRange(date(2024, 5, 10), date(2024, 5, 12)),
			guests: 0,
			errIs:  booking.ErrInvalidGuestCount,
		},
		{
			name:   "over capacity NG",
			stay:   pricing.NewStayRange(date(2024, 5, 10), date(2024, 5, 12)),
			guests: 5,
			errIs:  booking.ErrTooManyGuests,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			factory := newFactory(now, 21)
			_, err := factory.CreateBooking(newRoom(t, 1000), guestID, c.stay, c.guests, booking.Note{})
			require.ErrorIs(t, err, c.errIs)
		})
	}

	t.Run("same-day check-in is allowed", func(t *testing.T) {
		factory := newFactory(now, 21)
		stay := pricing.NewStayRange(now, now.AddDate(0, 0, 1))

		_, err := factory.CreateBooking(newRoom(t, 1000), guestID, stay, 1, booking.Note{})
		require.NoError(t, err)
	})
}

func TestBookingLifecycle(t *testing.T) {
	now := date(2024, 5, 1)
	factory := newFactory(now, 21)
	guestID := uuid.New()
	stay := pricing.NewStayRange(date(2024, 5, 10), date(2024, 5, 13))

	t.Run("cancel before check-in", func(t *testing.T) {
		b, err := factory.CreateBooking(newRoom(t, 1000), guestID, stay, 2, booking.Note{})
		require.NoError(t, err)

		require.NoError(t, b.Cancel(date(2024, 5, 9)))
		assert.Equal(t, booking.StatusCanceled, b.Status())

		require.ErrorIs(t, b.Cancel(date(2024, 5, 9)), booking.ErrBookingCanceled)
	})

	t.Run("cancel on or after check-in rejected", func(t *testing.T) {
		b, err := factory.CreateBooking(newRoom(t, 1000), guestID, stay, 2, booking.Note{})
		require.NoError(t, err)

		require.ErrorIs(t, b.Cancel(date(2024, 5, 10)), booking.ErrStayAlreadyStarted)
	})

	t.Run("complete after checkout", func(t *testing.T) {
		b, err := factory.CreateBooking(newRoom(t, 1000), guestID, stay, 2, booking.Note{})
		require.NoError(t, err)

		require.ErrorIs(t, b.Complete(date(2024, 5, 12)), booking.ErrInvalidStatus)
		require.NoError(t, b.Complete(date(2024, 5, 13)))
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})
}

func TestNewNote(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		n, err := booking.NewNote("  late arrival  ")
		require.NoError(t, err)
		assert.Equal(t, "late arrival", n.String())
	})

	t.Run("too long rejected", func(t *testing.T) {
		long := make([]byte, booking.MaxNoteLength+1)
		for i := range long {
			long[i] = 'a'
		}
		_, err := booking.NewNote(string(long))
		require.ErrorIs(t, err, booking.ErrNoteTooLong)
	})
}
