package readstore

import (
	"context"
	"time"

	"staybooking/internal/infra"
	"staybooking/internal/infra/db"
	"staybooking/internal/pkg/pgconv"
	"staybooking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type LodgingReadStore struct {
	db db.DBTX
}

func NewLodgingReadStore(pool db.DBTX) *LodgingReadStore {
	return &LodgingReadStore{db: pool}
}

const lodgingViewColumns = `
SELECT l.id, l.owner_id, l.name, l.description, l.location, l.status,
       s.average_rating, COALESCE(s.review_count, 0) AS review_count,
       l.created_at, l.updated_at
FROM lodgings l
LEFT JOIN lodging_rating_stats s ON s.lodging_id = l.id`

const findLodgingViewSQL = lodgingViewColumns + `
WHERE l.id = $1`

func (r *LodgingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LodgingView, error) {
	row := r.db.QueryRow(ctx, findLodgingViewSQL, id)
	view, err := scanLodgingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lodging not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lodging by ID", err)
	}
	return view, nil
}

const findLodgingsFirstPageSQL = lodgingViewColumns + `
ORDER BY l.created_at DESC, l.id DESC
LIMIT $1`

func (r *LodgingReadStore) FindFirstPage(ctx context.Context, limit int32) ([]*queries.LodgingView, error) {
	rows, err := r.db.Query(ctx, findLodgingsFirstPageSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find lodgings first page", err)
	}
	return scanLodgingViews(rows)
}

const findLodgingsKeysetSQL = lodgingViewColumns + `
WHERE (l.created_at, l.id) < ($1, $2)
ORDER BY l.created_at DESC, l.id DESC
LIMIT $3`

func (r *LodgingReadStore) FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.LodgingView, error) {
	rows, err := r.db.Query(ctx, findLodgingsKeysetSQL, pgconv.TimeToPgtype(lastCreatedAt), lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find lodgings keyset", err)
	}
	return scanLodgingViews(rows)
}

func scanLodgingView(row pgx.Row) (*queries.LodgingView, error) {
	var (
		view      queries.LodgingView
		rating    pgtype.Numeric
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.OwnerID, &view.Name, &view.Description, &view.Location, &view.Status,
		&rating, &view.ReviewCount, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.AverageRating, err = pgconv.Float64PtrFromNumeric(rating)
	if err != nil {
		return nil, err
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

func scanLodgingViews(rows pgx.Rows) ([]*queries.LodgingView, error) {
	defer rows.Close()

	var result []*queries.LodgingView
	for rows.Next() {
		view, err := scanLodgingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan lodging view", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate lodging views", err)
	}
	return result, nil
}

const roomViewColumns = `
SELECT r.id, r.lodging_id, l.name AS lodging_name, r.name, r.capacity, r.nightly_rate,
       r.created_at, r.updated_at
FROM rooms r
JOIN lodgings l ON l.id = r.lodging_id`

const findRoomsByLodgingSQL = roomViewColumns + `
WHERE r.lodging_id = $1
ORDER BY r.created_at, r.id`

func (r *LodgingReadStore) FindRooms(ctx context.Context, lodgingID uuid.UUID) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, findRoomsByLodgingSQL, lodgingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rooms by lodging", err)
	}
	defer rows.Close()

	var result []*queries.RoomView
	for rows.Next() {
		view, err := scanRoomView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room view", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room views", err)
	}
	return result, nil
}

const findRoomViewSQL = roomViewColumns + `
WHERE r.id = $1`

func (r *LodgingReadStore) FindRoom(ctx context.Context, roomID uuid.UUID) (*queries.RoomView, error) {
	view, err := scanRoomView(r.db.QueryRow(ctx, findRoomViewSQL, roomID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return view, nil
}

func scanRoomView(row pgx.Row) (*queries.RoomView, error) {
	var (
		view      queries.RoomView
		rate      pgtype.Numeric
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.LodgingID, &view.LodgingName, &view.Name, &view.Capacity, &rate,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.NightlyRate, err = pgconv.Float64FromNumeric(rate)
	if err != nil {
		return nil, err
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

const findRuleViewsSQL = `
SELECT id, room_id, kind, active, percent_increment, fixed_increment, date_from, date_to
FROM pricing_rules
WHERE room_id = $1
ORDER BY position`

func (r *LodgingReadStore) FindRoomRules(ctx context.Context, roomID uuid.UUID) ([]*queries.RuleView, error) {
	rows, err := r.db.Query(ctx, findRuleViewsSQL, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room rules", err)
	}
	defer rows.Close()

	var result []*queries.RuleView
	for rows.Next() {
		var (
			view           queries.RuleView
			percent, fixed pgtype.Numeric
			from, to       pgtype.Date
		)
		if err := rows.Scan(
			&view.ID, &view.RoomID, &view.Kind, &view.Active,
			&percent, &fixed, &from, &to,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rule view", err)
		}

		if view.PercentIncrement, err = pgconv.Float64PtrFromNumeric(percent); err != nil {
			return nil, infra.WrapRepoErr("failed to convert percent increment", err)
		}
		if view.FixedIncrement, err = pgconv.Float64PtrFromNumeric(fixed); err != nil {
			return nil, infra.WrapRepoErr("failed to convert fixed increment", err)
		}
		view.DateFrom = pgconv.DatePtrFromPgtype(from)
		view.DateTo = pgconv.DatePtrFromPgtype(to)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rule views", err)
	}
	return result, nil
}
