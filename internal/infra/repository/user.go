package repository

import (
	"context"
	"time"

	"staybooking/internal/domain/user"
	"staybooking/internal/infra"
	"staybooking/internal/infra/db"
	"staybooking/internal/pkg/pgconv"
	"staybooking/internal/usecase/commands"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(pool db.DBTX) *UserRepository {
	return &UserRepository{db: pool}
}

const createUserSQL = `
INSERT INTO users (id, email, password_hash, role, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())`

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	_, err := tx.Exec(ctx, createUserSQL,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

const findUserByEmailSQL = `
SELECT id, email, password_hash, role, is_active
FROM users
WHERE email = $1`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*commands.UserSnapshot, error) {
	var (
		snapshot commands.UserSnapshot
		role     string
	)
	err := r.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(
		&snapshot.ID, &snapshot.Email, &snapshot.PasswordHash, &role, &snapshot.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	snapshot.Role = user.Role(role)
	return &snapshot, nil
}

const updateLastLoginSQL = `
UPDATE users
SET last_login = $2, updated_at = now()
WHERE id = $1`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID, at time.Time) error {
	if _, err := tx.Exec(ctx, updateLastLoginSQL, userID, pgconv.TimeToPgtype(at)); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
