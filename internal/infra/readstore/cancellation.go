package readstore

import (
	"context"
	"time"

	"marketplace-api/internal/domain/reservation"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"
	"marketplace-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const pendingRecordColumns = `
	r.id, r.offer_id, o.title, r.client_id, o.provider_id, r.quantity,
	r.status, r.created_at, o.start_date,
	r.payment_id, p.status, p.payment_reference,
	u.email, cr.requested_at
`

const pendingRecordFrom = `
	FROM cancellation_requests cr
	JOIN payments p ON p.id = cr.payment_id
	JOIN reservations r ON r.payment_id = p.id
	JOIN offers o ON o.id = r.offer_id
	JOIN users u ON u.id = r.client_id
	WHERE cr.status = 'en attente'
`

// CancellationReadStore serves both the admin pending list and the batch
// decision lookups from the same authoritative rows.
type CancellationReadStore struct {
	pool db.DBTX
}

func NewCancellationReadStore(pool db.DBTX) *CancellationReadStore {
	return &CancellationReadStore{pool: pool}
}

func (r *CancellationReadStore) FindPendingRecords(ctx context.Context) ([]*queries.PendingCancellationRecord, error) {
	query := `SELECT` + pendingRecordColumns + pendingRecordFrom + `ORDER BY cr.requested_at, r.id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending cancellation requests", err)
	}
	return collectPendingRecords(rows)
}

// PendingRecordsByReference resolves one group for an admin decision.
func (r *CancellationReadStore) PendingRecordsByReference(ctx context.Context, paymentReference string) ([]reservation.Record, error) {
	query := `SELECT` + pendingRecordColumns + pendingRecordFrom + `AND p.payment_reference = $1 ORDER BY r.id`

	rows, err := r.pool.Query(ctx, query, paymentReference)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pending cancellation requests", err)
	}

	pending, err := collectPendingRecords(rows)
	if err != nil {
		return nil, err
	}

	records := make([]reservation.Record, len(pending))
	for i, row := range pending {
		records[i] = row.Record
	}
	return records, nil
}

func collectPendingRecords(rows pgx.Rows) ([]*queries.PendingCancellationRecord, error) {
	defer rows.Close()

	var pending []*queries.PendingCancellationRecord
	for rows.Next() {
		var (
			rec           reservation.Record
			status        string
			paymentStatus string
			startDate     *time.Time
			paymentID     *int64
			clientEmail   string
			requestedAt   time.Time
		)
		err := rows.Scan(
			&rec.ID, &rec.OfferID, &rec.OfferTitle, &rec.ClientID, &rec.ProviderID,
			&rec.Quantity, &status, &rec.CreatedAt, &startDate,
			&paymentID, &paymentStatus, &rec.PaymentReference,
			&clientEmail, &requestedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pending cancellation request", err)
		}
		rec.Status = reservation.Status(status)
		rec.OfferStartDate = startDate
		rec.PaymentID = paymentID
		rec.PaymentStatus = reservation.PaymentStatus(paymentStatus)

		pending = append(pending, &queries.PendingCancellationRecord{
			Record:      rec,
			ClientEmail: clientEmail,
			RequestedAt: requestedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pending cancellation requests", err)
	}
	return pending, nil
}
