package repository

import (
	"time"

	"marketplace-api/internal/domain/reservation"

	"github.com/jackc/pgx/v5"
)

// recordColumns is the projection shared by every query that loads
// reservation rows for the cancellation workflow.
const recordColumns = `
	r.id, r.offer_id, o.title, r.client_id, o.provider_id, r.quantity,
	r.status, r.created_at, o.start_date,
	r.payment_id, COALESCE(p.status, ''), COALESCE(p.payment_reference, '')
`

const recordFrom = `
	FROM reservations r
	JOIN offers o ON o.id = r.offer_id
	LEFT JOIN payments p ON p.id = r.payment_id
`

func scanRecord(row pgx.Row) (*reservation.Record, error) {
	var (
		rec           reservation.Record
		status        string
		paymentStatus string
		startDate     *time.Time
		paymentID     *int64
	)
	err := row.Scan(
		&rec.ID, &rec.OfferID, &rec.OfferTitle, &rec.ClientID, &rec.ProviderID,
		&rec.Quantity, &status, &rec.CreatedAt, &startDate,
		&paymentID, &paymentStatus, &rec.PaymentReference,
	)
	if err != nil {
		return nil, err
	}
	rec.Status = reservation.Status(status)
	rec.OfferStartDate = startDate
	rec.PaymentID = paymentID
	rec.PaymentStatus = reservation.PaymentStatus(paymentStatus)
	return &rec, nil
}

func collectRecords(rows pgx.Rows) ([]reservation.Record, error) {
	defer rows.Close()

	var records []reservation.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}
