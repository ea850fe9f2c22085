package queries

import (
	"context"
	"time"

	"marketplace-api/internal/domain/cancellation"
	"marketplace-api/internal/domain/reservation"
)

type CancellationQueries interface {
	// PendingGroups returns the pending cancellation requests grouped by
	// payment reference, rebuilt from the authoritative rows on every call.
	PendingGroups(ctx context.Context) ([]*CancellationGroupView, error)
}

type CancellationReadStore interface {
	// FindPendingRecords returns one record per reservation line item with a
	// pending cancellation request.
	FindPendingRecords(ctx context.Context) ([]*PendingCancellationRecord, error)
}

// PendingCancellationRecord is the raw pending-request row before grouping.
type PendingCancellationRecord struct {
	Record      reservation.Record
	ClientEmail string
	RequestedAt time.Time
}

type cancellationQueriesImpl struct {
	store CancellationReadStore
}

func NewCancellationQueries(store CancellationReadStore) CancellationQueries {
	return &cancellationQueriesImpl{store: store}
}

func (q *cancellationQueriesImpl) PendingGroups(ctx context.Context) ([]*CancellationGroupView, error) {
	rows, err := q.store.FindPendingRecords(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]reservation.Record, len(rows))
	for i, row := range rows {
		records[i] = row.Record
	}

	groups := cancellation.GroupRecords(records)

	views := make([]*CancellationGroupView, len(groups))
	for i, g := range groups {
		view := &CancellationGroupView{
			PaymentReference: g.PaymentReference,
			PaymentIDs:       g.PaymentIDs,
			OfferTitles:      g.OfferTitles,
		}
		for _, row := range rows {
			if row.Record.PaymentReference != g.PaymentReference {
				continue
			}
			view.ClientEmail = row.ClientEmail
			if view.RequestedAt.IsZero() || row.RequestedAt.Before(view.RequestedAt) {
				view.RequestedAt = row.RequestedAt
			}
		}
		views[i] = view
	}
	return views, nil
}
