package reservation

type Status string

const (
	StatusPending   Status = "en attente"
	StatusConfirmed Status = "confirmée"
	StatusCancelled Status = "annulée"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// PaymentStatus routes cancellations: a reservation whose payment succeeded
// goes through a cancellation request on the payment, anything else is
// cancelled directly.
type PaymentStatus string

const (
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentPending   PaymentStatus = "pending"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "remboursé"
)

func (s PaymentStatus) Succeeded() bool {
	return s == PaymentSucceeded
}
