package queries

import (
	"time"
)

// Read models (DTO for read side)
type OfferView struct {
	ID         int64      `json:"id"`
	ProviderID int64      `json:"provider_id"`
	Title      string     `json:"title"`
	Details    string     `json:"details"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	Stock      int32      `json:"stock"`
	PriceCents int64      `json:"price_cents"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ReservationView struct {
	ID               int64      `json:"id"`
	OfferID          int64      `json:"offer_id"`
	OfferTitle       string     `json:"offer_title"`
	ClientID         int64      `json:"client_id"`
	ClientEmail      string     `json:"client_email"`
	Quantity         int32      `json:"quantity"`
	Statut           string     `json:"statut"`
	OfferStartDate   *time.Time `json:"offer_start_date,omitempty"`
	PaymentID        *int64     `json:"payment_id,omitempty"`
	PaymentStatus    *string    `json:"payment_status,omitempty"`
	PaymentReference *string    `json:"payment_reference,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// CancellationGroupView is one pending cancellation request group as the
// admin list shows it: every payment sharing one payment reference.
type CancellationGroupView struct {
	PaymentReference string    `json:"payment_reference"`
	PaymentIDs       []int64   `json:"payment_ids"`
	OfferTitles      []string  `json:"offer_titles"`
	ClientEmail      string    `json:"client_email"`
	RequestedAt      time.Time `json:"requested_at"`
}

type AuthorizedUserView struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}
