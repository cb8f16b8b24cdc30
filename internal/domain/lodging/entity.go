package lodging

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyLodgingName   = errors.New("lodging name cannot be empty")
	ErrLodgingNameTooLong = errors.New("lodging name is too long (max 255 characters)")
	ErrEmptyLocation      = errors.New("lodging location cannot be empty")
	ErrLodgingInactive    = errors.New("lodging is inactive")
)

const MaxLodgingNameLength = 255

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

// Lodging is a property listed by an owner. Rooms and their price rules
// hang off it.
type Lodging struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	description string
	location    string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewLodging(ownerID uuid.UUID, name, description, location string) (*Lodging, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}

	return &Lodging{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		location:    location,
		status:      StatusActive,
	}, nil
}

func ReconstructLodging(
	id, ownerID uuid.UUID,
	name, description, location string,
	status Status,
	createdAt, updatedAt time.Time,
) *Lodging {
	return &Lodging{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		location:    location,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (l *Lodging) IsActive() bool {
	return l.status == StatusActive
}

func (l *Lodging) IsOwnedBy(userID uuid.UUID) bool {
	return l.ownerID == userID
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyLodgingName
	}
	if len(name) > MaxLodgingNameLength {
		return ErrLodgingNameTooLong
	}
	return nil
}

func (l *Lodging) ID() uuid.UUID       { return l.id }
func (l *Lodging) OwnerID() uuid.UUID  { return l.ownerID }
func (l *Lodging) Name() string        { return l.name }
func (l *Lodging) Description() string { return l.description }
func (l *Lodging) Location() string    { return l.location }
func (l *Lodging) Status() Status      { return l.status }
func (l *Lodging) CreatedAt() time.Time { return l.createdAt }
func (l *Lodging) UpdatedAt() time.Time { return l.updatedAt }
