package repository

import (
	"context"
	"time"

	"marketplace-api/internal/domain/reservation"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

type OfferRepository struct {
	pool *pgxpool.Pool
}

func NewOfferRepository(pool *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{pool: pool}
}

func (r *OfferRepository) FindForCheckout(ctx context.Context, ids []int64) ([]commands.OfferSnapshot, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, provider_id, title, start_date, stock, price_cents FROM offers WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load offers for checkout", err)
	}
	defer rows.Close()

	var snapshots []commands.OfferSnapshot
	for rows.Next() {
		var snap commands.OfferSnapshot
		if err := rows.Scan(&snap.ID, &snap.ProviderID, &snap.Title, &snap.StartDate, &snap.Stock, &snap.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer", err)
		}
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offers", err)
	}
	return snapshots, nil
}

// CreateOrder persists the payment, its reservation line items and the stock
// decrements in one transaction.
func (r *OfferRepository) CreateOrder(ctx context.Context, order commands.Order) (*commands.OrderCreated, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for _, line := range order.Lines {
		tag, err := tx.Exec(ctx,
			`UPDATE offers SET stock = stock - $1 WHERE id = $2 AND stock >= $1`,
			line.Quantity, line.OfferID)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decrement stock", err)
		}
		if tag.RowsAffected() == 0 {
			return nil, infra.WrapRepoErr("stock insuffisant", nil, infra.KindConflict)
		}
	}

	var paymentID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO payments (client_id, payment_reference, amount_cents, status, created_at)
		 VALUES ($1, $2, $3, $4, now()) RETURNING id`,
		order.ClientID, order.PaymentReference, order.AmountCents, string(reservation.PaymentSucceeded),
	).Scan(&paymentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create payment", err)
	}

	reservationIDs := make([]int64, 0, len(order.Lines))
	for _, line := range order.Lines {
		var reservationID int64
		err = tx.QueryRow(ctx,
			`INSERT INTO reservations (offer_id, client_id, payment_id, quantity, status, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, now(), now()) RETURNING id`,
			line.OfferID, order.ClientID, paymentID, line.Quantity, reservation.StatusConfirmed.String(),
		).Scan(&reservationID)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to create reservation", err)
		}
		reservationIDs = append(reservationIDs, reservationID)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit order", err)
	}

	return &commands.OrderCreated{
		PaymentID:        paymentID,
		PaymentReference: order.PaymentReference,
		ReservationIDs:   reservationIDs,
	}, nil
}

func (r *OfferRepository) Create(ctx context.Context, providerID int64, title, details string, startDate, endDate *time.Time, stock int32, priceCents int64) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO offers (provider_id, title, details, start_date, end_date, stock, price_cents, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, now()) RETURNING id`,
		providerID, title, details, startDate, endDate, stock, priceCents,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create offer", err)
	}
	return id, nil
}
