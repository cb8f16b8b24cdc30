package repository

import (
	"context"

	"staybooking/internal/domain/lodging"
	"staybooking/internal/infra"
	"staybooking/internal/infra/db"
	"staybooking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type LodgingRepository struct {
	db db.DBTX
}

func NewLodgingRepository(pool db.DBTX) *LodgingRepository {
	return &LodgingRepository{db: pool}
}

const createLodgingSQL = `
INSERT INTO lodgings (id, owner_id, name, description, location, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())`

func (r *LodgingRepository) Create(ctx context.Context, tx db.DBTX, l *lodging.Lodging) error {
	_, err := tx.Exec(ctx, createLodgingSQL,
		l.ID(), l.OwnerID(), l.Name(), l.Description(), l.Location(), l.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create lodging", err)
	}
	return nil
}

const findLodgingByIDSQL = `
SELECT id, owner_id, name, description, location, status, created_at, updated_at
FROM lodgings
WHERE id = $1`

func (r *LodgingRepository) FindByID(ctx context.Context, id uuid.UUID) (*lodging.Lodging, error) {
	var (
		lodgingID, ownerID          uuid.UUID
		name, description, location string
		status                      string
		createdAt, updatedAt        pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findLodgingByIDSQL, id).Scan(
		&lodgingID, &ownerID, &name, &description, &location, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lodging not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lodging by ID", err)
	}

	return lodging.ReconstructLodging(
		lodgingID, ownerID, name, description, location,
		lodging.Status(status),
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}
