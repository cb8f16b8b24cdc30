package repository

import (
	"context"
	"time"

	"staybooking/internal/infra"
	"staybooking/internal/infra/db"
	"staybooking/internal/pkg/pgconv"
	"staybooking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(pool db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: pool}
}

// ON CONFLICT DO NOTHING makes the insert a no-op when the key already
// exists; the caller reads the row back to decide replay vs conflict.
const tryInsertIdempotencySQL = `
INSERT INTO idempotency_keys (key, user_id, endpoint, status, request_hash, expires_at)
VALUES ($1, $2, $3, 'processing', $4, $5)
ON CONFLICT (key, user_id) DO NOTHING`

// TryInsert reports whether this call claimed the key. A false return
// means another request holds it and the caller must read the row back.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key uuid.UUID, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, tryInsertIdempotencySQL,
		key, userID, endpoint, requestHash, pgconv.TimeToPgtype(expiresAt),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return tag.RowsAffected() > 0, nil
}

const getIdempotencySQL = `
SELECT key, user_id, status, request_hash, result_booking_id, expires_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2`

func (r *IdempotencyRepository) Get(ctx context.Context, key uuid.UUID, userID uuid.UUID) (*commands.IdempotencyRecord, error) {
	var (
		record    commands.IdempotencyRecord
		resultID  pgtype.UUID
		expiresAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, getIdempotencySQL, key, userID).Scan(
		&record.Key, &record.UserID, &record.Status, &record.RequestHash, &resultID, &expiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	record.ResultBookingID = pgconv.UUIDPtrFromPgtype(resultID)
	record.ExpiresAt = pgconv.TimeFromPgtype(expiresAt)
	return &record, nil
}

const completeIdempotencySQL = `
UPDATE idempotency_keys
SET status = 'completed', result_booking_id = $3
WHERE key = $1 AND user_id = $2`

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key uuid.UUID, userID uuid.UUID, resultBookingID uuid.UUID) error {
	if _, err := tx.Exec(ctx, completeIdempotencySQL, key, userID, resultBookingID); err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}
	return nil
}

const deleteExpiredIdempotencySQL = `DELETE FROM idempotency_keys WHERE expires_at < now()`

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteExpiredIdempotencySQL)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
