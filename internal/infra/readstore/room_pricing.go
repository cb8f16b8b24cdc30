package readstore

import (
	"context"

	"staybooking/internal/infra"
	"staybooking/internal/infra/db"
	"staybooking/internal/infra/repository"
	"staybooking/internal/pkg/pgconv"
	"staybooking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomPricingReadStore struct {
	db db.DBTX
}

func NewRoomPricingReadStore(pool db.DBTX) *RoomPricingReadStore {
	return &RoomPricingReadStore{db: pool}
}

const findRoomRateSQL = `SELECT nightly_rate FROM rooms WHERE id = $1`

func (r *RoomPricingReadStore) FindRoomPricing(ctx context.Context, roomID uuid.UUID) (*queries.RoomPricingSnapshot, error) {
	var rate pgtype.Numeric
	if err := r.db.QueryRow(ctx, findRoomRateSQL, roomID).Scan(&rate); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room rate", err)
	}

	nightlyRate, err := pgconv.Float64FromNumeric(rate)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert nightly rate", err)
	}

	rules, err := repository.LoadRoomRules(ctx, r.db, roomID)
	if err != nil {
		return nil, err
	}

	return &queries.RoomPricingSnapshot{
		RoomID:      roomID,
		NightlyRate: nightlyRate,
		Rules:       rules,
	}, nil
}
