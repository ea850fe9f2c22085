package repository

import (
	"context"
	"errors"

	"marketplace-api/internal/domain/reservation"
	"marketplace-api/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

func (r *ReservationRepository) FindRecordByID(ctx context.Context, id int64) (*reservation.Record, error) {
	query := `SELECT` + recordColumns + recordFrom + `WHERE r.id = $1`

	rec, err := scanRecord(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return rec, nil
}

func (r *ReservationRepository) FindRecordsByPaymentReference(ctx context.Context, paymentReference string) ([]reservation.Record, error) {
	query := `SELECT` + recordColumns + recordFrom + `WHERE p.payment_reference = $1 ORDER BY r.id`

	rows, err := r.pool.Query(ctx, query, paymentReference)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by payment reference", err)
	}

	records, err := collectRecords(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservations", err)
	}
	return records, nil
}

// Cancel marks one reservation annulée in its own transaction.
func (r *ReservationRepository) Cancel(ctx context.Context, reservationID int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var status string
	err = tx.QueryRow(ctx, `SELECT status FROM reservations WHERE id = $1 FOR UPDATE`, reservationID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock reservation", err)
	}
	if reservation.Status(status) == reservation.StatusCancelled {
		return infra.WrapRepoErr("réservation déjà annulée", nil, infra.KindConflict)
	}

	_, err = tx.Exec(ctx, `UPDATE reservations SET status = $1, updated_at = now() WHERE id = $2`,
		reservation.StatusCancelled.String(), reservationID)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel reservation", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit cancellation", err)
	}
	return nil
}
