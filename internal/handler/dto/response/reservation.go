package response

import (
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"
)

type CheckoutResponse struct {
	PaymentID        int64   `json:"payment_id"`
	PaymentReference string  `json:"payment_reference"`
	ReservationIDs   []int64 `json:"reservation_ids"`
}

func FromCheckoutResult(result *commands.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		PaymentID:        result.PaymentID,
		PaymentReference: result.PaymentReference,
		ReservationIDs:   result.ReservationIDs,
	}
}

type ReservationListResponse struct {
	Reservations []*queries.ReservationView `json:"reservations"`
}
