//go:build unit

package lodging_test

import (
	"strings"
	"testing"
	"time"

	"staybooking/internal/domain/lodging"
	"staybooking/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLodging(t *testing.T) {
	ownerID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		l, err := lodging.NewLodging(ownerID, "  Cabañas del Valle  ", "Mountain cabins", "La Cumbrecita")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, l.ID())
		assert.Equal(t, "Cabañas del Valle", l.Name())
		assert.True(t, l.IsActive())
		assert.True(t, l.IsOwnedBy(ownerID))
		assert.False(t, l.IsOwnedBy(uuid.New()))
	})

	cases := []struct {
		name     string
		lodName  string
		location string
		errIs    error
	}{
		{name: "empty name NG", lodName: "", location: "somewhere", errIs: lodging.ErrEmptyLodgingName},
		{name: "whitespace name NG", lodName: "   ", location: "somewhere", errIs: lodging.ErrEmptyLodgingName},
		{name: "overlong name NG", lodName: strings.Repeat("a", lodging.MaxLodgingNameLength+1), location: "somewhere", errIs: lodging.ErrLodgingNameTooLong},
		{name: "empty location NG", lodName: "Hotel", location: "  ", errIs: lodging.ErrEmptyLocation},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := lodging.NewLodging(ownerID, c.lodName, "", c.location)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestNewRoom(t *testing.T) {
	lodgingID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		room, err := lodging.NewRoom(lodgingID, "Suite Arroyo", 4, 12500.50)
		require.NoError(t, err)

		assert.Equal(t, lodgingID, room.LodgingID())
		assert.Equal(t, 4, room.Capacity())
		assert.InDelta(t, 12500.50, room.NightlyRate(), 0.001)
		assert.Empty(t, room.Rules())
	})

	cases := []struct {
		name     string
		roomName string
		capacity int
		rate     float64
		errIs    error
	}{
		{name: "empty name NG", roomName: "", capacity: 2, rate: 100, errIs: lodging.ErrEmptyRoomName},
		{name: "zero capacity NG", roomName: "Room", capacity: 0, rate: 100, errIs: lodging.ErrInvalidCapacity},
		{name: "negative rate NG", roomName: "Room", capacity: 2, rate: -1, errIs: lodging.ErrNegativeNightlyRate},
		{name: "zero rate OK", roomName: "Room", capacity: 2, rate: 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := lodging.NewRoom(lodgingID, c.roomName, c.capacity, c.rate)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
			} else {
				require.NoError(t, err)
			}
		})
	}

	t.Run("fits", func(t *testing.T) {
		room, err := lodging.NewRoom(lodgingID, "Doble", 2, 100)
		require.NoError(t, err)

		assert.True(t, room.Fits(1))
		assert.True(t, room.Fits(2))
		assert.False(t, room.Fits(3))
		assert.False(t, room.Fits(0))
	})
}

func TestReplaceRules(t *testing.T) {
	room, err := lodging.NewRoom(uuid.New(), "Cabaña", 4, 1000)
	require.NoError(t, err)

	day := func(d int) *time.Time {
		t := time.Date(2024, 7, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	season := func(from, to int, percent float64) pricing.Rule {
		rule, err := pricing.NewRule(pricing.KindSeason, true, pricing.NewPercentAdjustment(percent), day(from), day(to))
		require.NoError(t, err)
		return rule
	}

	t.Run("non-overlapping rules accepted", func(t *testing.T) {
		err := room.ReplaceRules([]pricing.Rule{season(1, 10, 20), season(11, 20, 30)})
		require.NoError(t, err)
		assert.Len(t, room.Rules(), 2)
	})

	t.Run("overlapping same-kind rules rejected", func(t *testing.T) {
		err := room.ReplaceRules([]pricing.Rule{season(1, 10, 20), season(10, 15, 30)})
		require.ErrorIs(t, err, lodging.ErrOverlappingRules)
	})

	t.Run("recurring rules never conflict", func(t *testing.T) {
		weekend, err := pricing.NewRule(pricing.KindWeekend, true, pricing.NewPercentAdjustment(10), nil, nil)
		require.NoError(t, err)
		weekday, err := pricing.NewRule(pricing.KindWeekday, true, pricing.NewPercentAdjustment(-5), nil, nil)
		require.NoError(t, err)

		require.NoError(t, room.ReplaceRules([]pricing.Rule{weekend, weekday, season(1, 10, 20)}))
	})
}
