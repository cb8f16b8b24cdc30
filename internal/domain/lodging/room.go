package lodging

import (
	"errors"
	"strings"
	"time"

	"staybooking/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomName       = errors.New("room name cannot be empty")
	ErrRoomNameTooLong     = errors.New("room name is too long (max 255 characters)")
	ErrInvalidCapacity     = errors.New("room capacity must be at least 1")
	ErrNegativeNightlyRate = errors.New("nightly rate cannot be negative")
	ErrOverlappingRules    = errors.New("rules of the same kind overlap")
)

const MaxRoomNameLength = 255

// Room belongs to a lodging and carries the base nightly rate the price
// calculator works from, plus its configured adjustment rules.
type Room struct {
	id          uuid.UUID
	lodgingID   uuid.UUID
	name        string
	capacity    int
	nightlyRate float64
	rules       []pricing.Rule
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRoom(lodgingID uuid.UUID, name string, capacity int, nightlyRate float64) (*Room, error) {
	if err := validateRoomName(name); err != nil {
		return nil, err
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if nightlyRate < 0 {
		return nil, ErrNegativeNightlyRate
	}

	return &Room{
		id:          uuid.New(),
		lodgingID:   lodgingID,
		name:        strings.TrimSpace(name),
		capacity:    capacity,
		nightlyRate: nightlyRate,
	}, nil
}

func ReconstructRoom(
	id, lodgingID uuid.UUID,
	name string,
	capacity int,
	nightlyRate float64,
	rules []pricing.Rule,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:          id,
		lodgingID:   lodgingID,
		name:        name,
		capacity:    capacity,
		nightlyRate: nightlyRate,
		rules:       rules,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ReplaceRules swaps out the room's rule set. Overlapping date ranges
// within one kind are rejected here, at configuration time; the
// calculator itself applies whatever it is handed.
func (r *Room) ReplaceRules(rules []pricing.Rule) error {
	if err := ValidateRuleSet(rules); err != nil {
		return err
	}
	r.rules = rules
	return nil
}

func ValidateRuleSet(rules []pricing.Rule) error {
	for i := range rules {
		for j := i + 1; j < len(rules); j++ {
			if rules[i].OverlapsDates(rules[j]) {
				return ErrOverlappingRules
			}
		}
	}
	return nil
}

func validateRoomName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return ErrRoomNameTooLong
	}
	return nil
}

func (r *Room) Fits(guests int) bool {
	return guests >= 1 && guests <= r.capacity
}

func (r *Room) ID() uuid.UUID         { return r.id }
func (r *Room) LodgingID() uuid.UUID  { return r.lodgingID }
func (r *Room) Name() string          { return r.name }
func (r *Room) Capacity() int         { return r.capacity }
func (r *Room) NightlyRate() float64  { return r.nightlyRate }
func (r *Room) Rules() []pricing.Rule { return r.rules }
func (r *Room) CreatedAt() time.Time  { return r.createdAt }
func (r *Room) UpdatedAt() time.Time  { return r.updatedAt }
