//go:build unit

package infra

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr_Classification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected RepositoryErrorKind
	}{
		{
			name:     "unique violation maps to duplicate key",
			err:      &pgconn.PgError{Code: "23505"},
			expected: KindDuplicateKey,
		},
		{
			name:     "foreign key violation",
			err:      &pgconn.PgError{Code: "23503"},
			expected: KindForeignKeyViolated,
		},
		{
			name:     "exclusion violation maps to conflict",
			err:      &pgconn.PgError{Code: "23P01"},
			expected: KindConflict,
		},
		{
			name:     "unknown pg code falls back to db failure",
			err:      &pgconn.PgError{Code: "57014"},
			expected: KindDBFailure,
		},
		{
			name:     "non-pg error falls back to db failure",
			err:      errors.New("connection reset"),
			expected: KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := WrapRepoErr("op failed", tt.err)

			assert.True(t, IsKind(wrapped, tt.expected))
		})
	}
}

func TestWrapRepoErr_ExplicitKindWins(t *testing.T) {
	wrapped := WrapRepoErr("row missing", errors.New("no rows"), KindNotFound)

	assert.True(t, IsKind(wrapped, KindNotFound))
	assert.False(t, IsKind(wrapped, KindDBFailure))
}

func TestIsKind_UnrelatedError(t *testing.T) {
	assert.False(t, IsKind(errors.New("plain"), KindConflict))
}
