package commands

import (
	"context"
	"time"

	"staybooking/internal/domain/lodging"
	"staybooking/internal/domain/pricing"
	"staybooking/internal/domain/user"
	"staybooking/internal/infra"
	"staybooking/internal/infra/db"
	"staybooking/internal/pkg/errs"
	"staybooking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrLodgingNotFound = errs.New("lodging not found")
	ErrNotLodgingOwner = errs.New("lodging belongs to another owner")
	ErrInvalidRule     = errs.New("invalid pricing rule")
)

type CreateLodgingParams struct {
	Name        string
	Description string
	Location    string
}

type CreateRoomParams struct {
	LodgingID   uuid.UUID
	Name        string
	Capacity    int
	NightlyRate float64
}

// RuleParams is the wire-level shape of one pricing rule before
// domain validation. Percent and FixedAmount are mutually exclusive.
type RuleParams struct {
	Kind        string
	Active      bool
	Percent     *float64
	FixedAmount *float64
	DateFrom    *time.Time
	DateTo      *time.Time
}

type LodgingCommands interface {
	CreateLodging(ctx context.Context, params CreateLodgingParams, ownerID uuid.UUID) (uuid.UUID, error)
	CreateRoom(ctx context.Context, params CreateRoomParams, actorID uuid.UUID, actorRole user.Role) (uuid.UUID, error)
	ReplaceRoomRules(ctx context.Context, roomID uuid.UUID, rules []RuleParams, actorID uuid.UUID, actorRole user.Role) error
}

type lodgingCommandsImpl struct {
	lodgingRepo LodgingRepository
	roomRepo    RoomRepository
	pool        *pgxpool.Pool
}

func NewLodgingCommands(lodgingRepo LodgingRepository, roomRepo RoomRepository, pool *pgxpool.Pool) LodgingCommands {
	return &lodgingCommandsImpl{
		lodgingRepo: lodgingRepo,
		roomRepo:    roomRepo,
		pool:        pool,
	}
}

func (c *lodgingCommandsImpl) CreateLodging(ctx context.Context, params CreateLodgingParams, ownerID uuid.UUID) (uuid.UUID, error) {
	entity, err := lodging.NewLodging(ownerID, params.Name, params.Description, params.Location)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	return shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		if createErr := c.lodgingRepo.Create(ctx, tx, entity); createErr != nil {
			return uuid.Nil, errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		return entity.ID(), nil
	})
}

func (c *lodgingCommandsImpl) CreateRoom(ctx context.Context, params CreateRoomParams, actorID uuid.UUID, actorRole user.Role) (uuid.UUID, error) {
	parent, err := c.loadOwnedLodging(ctx, params.LodgingID, actorID, actorRole)
	if err != nil {
		return uuid.Nil, err
	}

	room, err := lodging.NewRoom(parent.ID(), params.Name, params.Capacity, params.NightlyRate)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	return shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		if createErr := c.roomRepo.Create(ctx, tx, room); createErr != nil {
			if infra.IsKind(createErr, infra.KindForeignKeyViolated) {
				return uuid.Nil, ErrLodgingNotFound
			}
			return uuid.Nil, errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		return room.ID(), nil
	})
}

func (c *lodgingCommandsImpl) ReplaceRoomRules(ctx context.Context, roomID uuid.UUID, rules []RuleParams, actorID uuid.UUID, actorRole user.Role) error {
	snapshot, err := c.roomRepo.FindSnapshotByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if actorRole != user.RoleAdmin && snapshot.OwnerID != actorID {
		return ErrNotLodgingOwner
	}

	parsed, err := ParseRules(rules)
	if err != nil {
		return err
	}
	if err := lodging.ValidateRuleSet(parsed); err != nil {
		return errs.Mark(err, ErrInvalidRule)
	}

	_, err = shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		if replaceErr := c.roomRepo.ReplaceRules(ctx, tx, roomID, parsed); replaceErr != nil {
			return struct{}{}, errs.Mark(replaceErr, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func (c *lodgingCommandsImpl) loadOwnedLodging(ctx context.Context, lodgingID, actorID uuid.UUID, actorRole user.Role) (*lodging.Lodging, error) {
	entity, err := c.lodgingRepo.FindByID(ctx, lodgingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLodgingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if actorRole != user.RoleAdmin && !entity.IsOwnedBy(actorID) {
		return nil, ErrNotLodgingOwner
	}

	return entity, nil
}

// ParseRules converts wire-level rule shapes into validated domain
// rules, preserving input order within each kind.
func ParseRules(params []RuleParams) ([]pricing.Rule, error) {
	rules := make([]pricing.Rule, 0, len(params))
	for _, p := range params {
		var adjustment pricing.Adjustment
		switch {
		case p.Percent != nil && p.FixedAmount != nil:
			return nil, errs.Mark(errs.New("rule must not carry both percent and fixed amount"), ErrInvalidRule)
		case p.Percent != nil:
			adjustment = pricing.NewPercentAdjustment(*p.Percent)
		case p.FixedAmount != nil:
			adjustment = pricing.NewFixedAdjustment(*p.FixedAmount)
		default:
			return nil, errs.Mark(pricing.ErrEmptyAdjustment, ErrInvalidRule)
		}

		rule, err := pricing.NewRule(pricing.RuleKind(p.Kind), p.Active, adjustment, p.DateFrom, p.DateTo)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidRule)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
