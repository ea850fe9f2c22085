package queries

import (
	"context"
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID int64) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID int64) (*AuthorizedUserView, error) {
	return q.store.FindByID(ctx, userID)
}
