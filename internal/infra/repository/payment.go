package repository

import (
	"context"

	"marketplace-api/internal/domain/reservation"
	"marketplace-api/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const requestPending = "en attente"

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

func (r *PaymentRepository) FindRecordsByPaymentID(ctx context.Context, paymentID int64) ([]reservation.Record, error) {
	query := `SELECT` + recordColumns + recordFrom + `WHERE r.payment_id = $1 ORDER BY r.id`

	rows, err := r.pool.Query(ctx, query, paymentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by payment", err)
	}

	records, err := collectRecords(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservations", err)
	}
	return records, nil
}

// RequestCancellation opens a pending cancellation request on the payment.
func (r *PaymentRepository) RequestCancellation(ctx context.Context, paymentID, requestedBy int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM payments WHERE id = $1 FOR UPDATE)`, paymentID).Scan(&exists)
	if err != nil {
		return infra.WrapRepoErr("failed to lock payment", err)
	}
	if !exists {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}

	var pending bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM cancellation_requests WHERE payment_id = $1 AND status = $2)`,
		paymentID, requestPending).Scan(&pending)
	if err != nil {
		return infra.WrapRepoErr("failed to check pending requests", err)
	}
	if pending {
		return infra.WrapRepoErr("une demande d'annulation est déjà en cours", nil, infra.KindConflict)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO cancellation_requests (payment_id, requested_by, status, requested_at) VALUES ($1, $2, $3, now())`,
		paymentID, requestedBy, requestPending)
	if err != nil {
		return infra.WrapRepoErr("failed to create cancellation request", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit cancellation request", err)
	}
	return nil
}

// AcceptCancellation settles the pending request in one transaction: the
// request becomes acceptée, the reservations annulées, the payment remboursé.
func (r *PaymentRepository) AcceptCancellation(ctx context.Context, paymentID int64) error {
	return r.settle(ctx, paymentID, "acceptée", true)
}

// RefuseCancellation marks the pending request refusée and leaves the
// reservations untouched.
func (r *PaymentRepository) RefuseCancellation(ctx context.Context, paymentID int64) error {
	return r.settle(ctx, paymentID, "refusée", false)
}

func (r *PaymentRepository) settle(ctx context.Context, paymentID int64, decision string, cancelReservations bool) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	tag, err := tx.Exec(ctx,
		`UPDATE cancellation_requests SET status = $1, decided_at = now() WHERE payment_id = $2 AND status = $3`,
		decision, paymentID, requestPending)
	if err != nil {
		return infra.WrapRepoErr("failed to settle cancellation request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no pending cancellation request for payment", pgx.ErrNoRows, infra.KindNotFound)
	}

	if cancelReservations {
		_, err = tx.Exec(ctx, `UPDATE reservations SET status = $1, updated_at = now() WHERE payment_id = $2`,
			reservation.StatusCancelled.String(), paymentID)
		if err != nil {
			return infra.WrapRepoErr("failed to cancel reservations", err)
		}

		_, err = tx.Exec(ctx, `UPDATE payments SET status = $1 WHERE id = $2`,
			string(reservation.PaymentRefunded), paymentID)
		if err != nil {
			return infra.WrapRepoErr("failed to refund payment", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit decision", err)
	}
	return nil
}
