package queries

import (
	"context"

	"staybooking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserViewNotFound = errs.New("user not found")

type UserReadStore interface {
	// FindByEmail returns the view together with the stored password
	// hash so credential checks stay out of the read model.
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{readStore: readStore}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrUserViewNotFound)
	}
	if view == nil {
		return nil, ErrUserViewNotFound
	}
	return view, nil
}
