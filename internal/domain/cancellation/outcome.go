package cancellation

import "strings"

// GenericFailureMessage replaces an empty per-item error message.
const GenericFailureMessage = "une erreur est survenue"

// UnitKind says what a batch item acted on: a payment (cancellation request
// routed through the payment) or a bare reservation.
type UnitKind string

const (
	UnitPayment     UnitKind = "paiement"
	UnitReservation UnitKind = "reservation"
)

// ItemResult is the outcome of one cancellation unit inside a batch.
type ItemResult struct {
	Kind      UnitKind
	ID        int64
	Message   string
	Succeeded bool
}

func Succeeded(kind UnitKind, id int64) ItemResult {
	return ItemResult{Kind: kind, ID: id, Succeeded: true}
}

func Failed(kind UnitKind, id int64, err error) ItemResult {
	msg := GenericFailureMessage
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		msg = err.Error()
	}
	return ItemResult{Kind: kind, ID: id, Message: msg}
}

// BatchOutcome folds the per-item results of a sequential batch. Whether the
// batch succeeded, and the aggregate failure message, are pure functions of
// the collected items.
type BatchOutcome struct {
	Items []ItemResult
}

func (o BatchOutcome) AllSucceeded() bool {
	if len(o.Items) == 0 {
		return false
	}
	for _, item := range o.Items {
		if !item.Succeeded {
			return false
		}
	}
	return true
}

func (o BatchOutcome) Failures() []ItemResult {
	var failed []ItemResult
	for _, item := range o.Items {
		if !item.Succeeded {
			failed = append(failed, item)
		}
	}
	return failed
}

// FailureMessage joins every failed item's message with a comma, matching
// the single aggregated message surfaced to the user.
func (o BatchOutcome) FailureMessage() string {
	msgs := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		if !item.Succeeded {
			msgs = append(msgs, item.Message)
		}
	}
	return strings.Join(msgs, ", ")
}
