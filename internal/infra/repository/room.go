package repository

import (
	"context"

	"staybooking/internal/domain/lodging"
	"staybooking/internal/domain/pricing"
	"staybooking/internal/infra"
	"staybooking/internal/infra/db"
	"staybooking/internal/pkg/pgconv"
	"staybooking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(pool db.DBTX) *RoomRepository {
	return &RoomRepository{db: pool}
}

const createRoomSQL = `
INSERT INTO rooms (id, lodging_id, name, capacity, nightly_rate, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())`

func (r *RoomRepository) Create(ctx context.Context, tx db.DBTX, room *lodging.Room) error {
	_, err := tx.Exec(ctx, createRoomSQL,
		room.ID(), room.LodgingID(), room.Name(), room.Capacity(),
		pgconv.Float64ToNumeric(room.NightlyRate()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

const findRoomSnapshotSQL = `
SELECT r.id, r.lodging_id, l.owner_id, r.name, r.capacity, r.nightly_rate
FROM rooms r
JOIN lodgings l ON l.id = r.lodging_id
WHERE r.id = $1`

func (r *RoomRepository) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*commands.RoomSnapshot, error) {
	var (
		snapshot commands.RoomSnapshot
		rate     pgtype.Numeric
	)
	err := r.db.QueryRow(ctx, findRoomSnapshotSQL, id).Scan(
		&snapshot.ID, &snapshot.LodgingID, &snapshot.OwnerID,
		&snapshot.Name, &snapshot.Capacity, &rate,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	snapshot.NightlyRate, err = pgconv.Float64FromNumeric(rate)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert nightly rate", err)
	}

	snapshot.Rules, err = LoadRoomRules(ctx, r.db, id)
	if err != nil {
		return nil, err
	}

	return &snapshot, nil
}

const deleteRoomRulesSQL = `DELETE FROM pricing_rules WHERE room_id = $1`

const insertRoomRuleSQL = `
INSERT INTO pricing_rules (room_id, kind, active, percent_increment, fixed_increment, date_from, date_to, position)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *RoomRepository) ReplaceRules(ctx context.Context, tx db.DBTX, roomID uuid.UUID, rules []pricing.Rule) error {
	if _, err := tx.Exec(ctx, deleteRoomRulesSQL, roomID); err != nil {
		return infra.WrapRepoErr("failed to delete room rules", err)
	}

	for i, rule := range rules {
		var percent, fixed pgtype.Numeric
		if rule.Adjustment().IsPercent() {
			percent = pgconv.Float64ToNumeric(rule.Adjustment().Percent())
		} else {
			fixed = pgconv.Float64ToNumeric(rule.Adjustment().Fixed())
		}

		_, err := tx.Exec(ctx, insertRoomRuleSQL,
			roomID, rule.Kind().String(), rule.Active(),
			percent, fixed,
			pgconv.DatePtrToPgtype(rule.DateFrom()), pgconv.DatePtrToPgtype(rule.DateTo()),
			i,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert room rule", err)
		}
	}
	return nil
}

const selectRoomRulesSQL = `
SELECT kind, active, percent_increment, fixed_increment, date_from, date_to
FROM pricing_rules
WHERE room_id = $1
ORDER BY position`

// LoadRoomRules rebuilds domain rules from their stored shape. Rows
// were validated on write, so a constructor failure here means the
// table was modified out of band.
func LoadRoomRules(ctx context.Context, q db.DBTX, roomID uuid.UUID) ([]pricing.Rule, error) {
	rows, err := q.Query(ctx, selectRoomRulesSQL, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load room rules", err)
	}
	defer rows.Close()

	var rules []pricing.Rule
	for rows.Next() {
		var (
			kind           string
			active         bool
			percent, fixed pgtype.Numeric
			from, to       pgtype.Date
		)
		if err := rows.Scan(&kind, &active, &percent, &fixed, &from, &to); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room rule", err)
		}

		adjustment, err := ruleAdjustment(percent, fixed)
		if err != nil {
			return nil, err
		}

		rule, err := pricing.NewRule(pricing.RuleKind(kind), active, adjustment,
			pgconv.DatePtrFromPgtype(from), pgconv.DatePtrFromPgtype(to))
		if err != nil {
			return nil, infra.WrapRepoErr("stored rule is invalid", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rules", err)
	}

	return rules, nil
}

func ruleAdjustment(percent, fixed pgtype.Numeric) (pricing.Adjustment, error) {
	if p, err := pgconv.Float64PtrFromNumeric(percent); err != nil {
		return pricing.Adjustment{}, infra.WrapRepoErr("failed to convert percent increment", err)
	} else if p != nil {
		return pricing.NewPercentAdjustment(*p), nil
	}

	f, err := pgconv.Float64PtrFromNumeric(fixed)
	if err != nil {
		return pricing.Adjustment{}, infra.WrapRepoErr("failed to convert fixed increment", err)
	}
	if f != nil {
		return pricing.NewFixedAdjustment(*f), nil
	}
	return pricing.Adjustment{}, nil
}
