package readstore

import (
	"context"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"
	"marketplace-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const reservationViewColumns = `
	r.id, r.offer_id, o.title, r.client_id, u.email, r.quantity, r.status,
	o.start_date, r.payment_id, p.status, p.payment_reference,
	r.created_at, r.updated_at
`

const reservationViewFrom = `
	FROM reservations r
	JOIN offers o ON o.id = r.offer_id
	JOIN users u ON u.id = r.client_id
	LEFT JOIN payments p ON p.id = r.payment_id
`

type ReservationReadStore struct {
	pool db.DBTX
}

func NewReservationReadStore(pool db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

func (r *ReservationReadStore) FindByClientID(ctx context.Context, clientID int64) ([]*queries.ReservationView, error) {
	query := `SELECT` + reservationViewColumns + reservationViewFrom + `WHERE r.client_id = $1 ORDER BY r.created_at DESC, r.id DESC`
	return r.list(ctx, query, clientID)
}

func (r *ReservationReadStore) FindByProviderID(ctx context.Context, providerID int64) ([]*queries.ReservationView, error) {
	query := `SELECT` + reservationViewColumns + reservationViewFrom + `WHERE o.provider_id = $1 ORDER BY r.created_at DESC, r.id DESC`
	return r.list(ctx, query, providerID)
}

func (r *ReservationReadStore) list(ctx context.Context, query string, arg any) ([]*queries.ReservationView, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservations", err)
	}
	return views, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	view := &queries.ReservationView{}
	err := row.Scan(
		&view.ID, &view.OfferID, &view.OfferTitle, &view.ClientID, &view.ClientEmail,
		&view.Quantity, &view.Statut, &view.OfferStartDate,
		&view.PaymentID, &view.PaymentStatus, &view.PaymentReference,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return view, nil
}
