package queries

import (
	"context"
)

type OfferQueries interface {
	List(ctx context.Context, limit, offset int32) ([]*OfferView, error)
	GetByID(ctx context.Context, id int64) (*OfferView, error)
}

type OfferReadStore interface {
	FindAll(ctx context.Context, limit, offset int32) ([]*OfferView, error)
	FindByID(ctx context.Context, id int64) (*OfferView, error)
}

type offerQueriesImpl struct {
	store OfferReadStore
}

func NewOfferQueries(store OfferReadStore) OfferQueries {
	return &offerQueriesImpl{store: store}
}

func (q *offerQueriesImpl) List(ctx context.Context, limit, offset int32) ([]*OfferView, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return q.store.FindAll(ctx, limit, offset)
}

func (q *offerQueriesImpl) GetByID(ctx context.Context, id int64) (*OfferView, error) {
	return q.store.FindByID(ctx, id)
}
