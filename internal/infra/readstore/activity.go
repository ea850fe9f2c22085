package readstore

import (
	"context"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"
	"marketplace-api/internal/usecase/queries"
)

type ActivityReadStore struct {
	pool db.DBTX
}

func NewActivityReadStore(pool db.DBTX) *ActivityReadStore {
	return &ActivityReadStore{pool: pool}
}

func (r *ActivityReadStore) CurrentActivity(ctx context.Context) (queries.ActivitySnapshot, error) {
	var snap queries.ActivitySnapshot
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FILTER (WHERE status = 'en attente'), COALESCE(MAX(id), 0) FROM cancellation_requests`,
	).Scan(&snap.PendingCount, &snap.LastRequestID)
	if err != nil {
		return queries.ActivitySnapshot{}, infra.WrapRepoErr("failed to read cancellation activity", err)
	}
	return snap, nil
}
