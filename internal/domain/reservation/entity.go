package reservation

import (
	"time"
)

// Record is the reservation line item as the cancellation workflow sees it:
// one row per offer item claimed in a checkout, sharing a payment reference
// with the other items paid together.
type Record struct {
	ID               int64
	OfferID          int64
	OfferTitle       string
	ClientID         int64
	ProviderID       int64
	Quantity         int32
	Status           Status
	CreatedAt        time.Time
	OfferStartDate   *time.Time
	PaymentID        *int64
	PaymentStatus    PaymentStatus
	PaymentReference string
}

func (r Record) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// Paid reports whether the cancellation must be routed through the payment.
func (r Record) Paid() bool {
	return r.PaymentID != nil && r.PaymentStatus.Succeeded()
}
