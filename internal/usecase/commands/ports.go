package commands

import (
	"context"
	"time"

	"marketplace-api/internal/domain/reservation"
)

// Write-side ports. Every mutating method is atomic on its own so the
// sequential batch loops can record one outcome per unit and keep going.

type ReservationRepository interface {
	FindRecordByID(ctx context.Context, id int64) (*reservation.Record, error)
	FindRecordsByPaymentReference(ctx context.Context, paymentReference string) ([]reservation.Record, error)
	// Cancel marks the reservation annulée; cancelling an already cancelled
	// reservation is a per-unit conflict.
	Cancel(ctx context.Context, reservationID int64) error
}

type PaymentRepository interface {
	FindRecordsByPaymentID(ctx context.Context, paymentID int64) ([]reservation.Record, error)
	// RequestCancellation opens a pending cancellation request on the
	// payment; a second pending request is a per-unit conflict.
	RequestCancellation(ctx context.Context, paymentID, requestedBy int64) error
	// AcceptCancellation settles the pending request: request acceptée,
	// reservations annulées, payment remboursé. One transaction per payment.
	AcceptCancellation(ctx context.Context, paymentID int64) error
	// RefuseCancellation marks the pending request refusée and leaves the
	// reservations untouched.
	RefuseCancellation(ctx context.Context, paymentID int64) error
}

// CancellationReads resolves the pending groups the admin decides on.
type CancellationReads interface {
	PendingRecordsByReference(ctx context.Context, paymentReference string) ([]reservation.Record, error)
}

type OfferRepository interface {
	FindForCheckout(ctx context.Context, ids []int64) ([]OfferSnapshot, error)
	// CreateOrder persists the payment, its reservation line items and the
	// stock decrements in one transaction.
	CreateOrder(ctx context.Context, order Order) (*OrderCreated, error)
	Create(ctx context.Context, providerID int64, title, details string, startDate, endDate *time.Time, stock int32, priceCents int64) (int64, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID int64) error
}

// Write-side snapshots prevent dependency on read-side query types
type OfferSnapshot struct {
	ID         int64
	ProviderID int64
	Title      string
	StartDate  *time.Time
	Stock      int32
	PriceCents int64
}

type OrderLine struct {
	OfferID  int64
	Quantity int32
}

type Order struct {
	ClientID         int64
	PaymentReference string
	AmountCents      int64
	Lines            []OrderLine
}

type OrderCreated struct {
	PaymentID        int64
	PaymentReference string
	ReservationIDs   []int64
}
