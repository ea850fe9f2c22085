package readstore

import (
	"context"
	"errors"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"
	"marketplace-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const offerColumns = `id, provider_id, title, details, start_date, end_date, stock, price_cents, created_at`

type OfferReadStore struct {
	pool db.DBTX
}

func NewOfferReadStore(pool db.DBTX) *OfferReadStore {
	return &OfferReadStore{pool: pool}
}

func (r *OfferReadStore) FindAll(ctx context.Context, limit, offset int32) ([]*queries.OfferView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+offerColumns+` FROM offers ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}
	defer rows.Close()

	var views []*queries.OfferView
	for rows.Next() {
		view, err := scanOffer(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offers", err)
	}
	return views, nil
}

func (r *OfferReadStore) FindByID(ctx context.Context, id int64) (*queries.OfferView, error) {
	view, err := scanOffer(r.pool.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer", err)
	}
	return view, nil
}

func scanOffer(row pgx.Row) (*queries.OfferView, error) {
	view := &queries.OfferView{}
	err := row.Scan(
		&view.ID, &view.ProviderID, &view.Title, &view.Details,
		&view.StartDate, &view.EndDate, &view.Stock, &view.PriceCents, &view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return view, nil
}
