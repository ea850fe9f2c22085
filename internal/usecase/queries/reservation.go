package queries

import (
	"context"

	"marketplace-api/internal/domain/reservation"
	"marketplace-api/internal/pkg/errs"
)

var ErrUnknownStatus = errs.New("unknown reservation status")

type ReservationQueries interface {
	ListByClient(ctx context.Context, clientID int64) ([]*ReservationView, error)
	// ListByProvider filters on statut after the fetch, the way the
	// provider screen filtered its rows.
	ListByProvider(ctx context.Context, providerID int64, statut string) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByClientID(ctx context.Context, clientID int64) ([]*ReservationView, error)
	FindByProviderID(ctx context.Context, providerID int64) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) ListByClient(ctx context.Context, clientID int64) ([]*ReservationView, error) {
	return q.store.FindByClientID(ctx, clientID)
}

func (q *reservationQueriesImpl) ListByProvider(ctx context.Context, providerID int64, statut string) ([]*ReservationView, error) {
	if statut != "" && !reservation.Status(statut).IsValid() {
		return nil, ErrUnknownStatus
	}

	rows, err := q.store.FindByProviderID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if statut == "" {
		return rows, nil
	}

	filtered := make([]*ReservationView, 0, len(rows))
	for _, row := range rows {
		if row.Statut == statut {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}
