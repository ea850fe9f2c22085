package commands

import (
	"context"
	"log/slog"

	"marketplace-api/internal/domain/cancellation"
	"marketplace-api/internal/domain/reservation"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/errs"
)

var (
	ErrReservationNotFound          = errs.New("reservation not found")
	ErrPaymentNotFound              = errs.New("payment not found")
	ErrGroupNotFound                = errs.New("cancellation group not found")
	ErrNotOwned                     = errs.New("reservation not owned by user")
	ErrAlreadyCancelled             = errs.New("reservation already cancelled")
	ErrCancellationAlreadyRequested = errs.New("cancellation already requested")
	ErrTooCloseToStart              = errs.New("offer starts too soon to cancel")
	ErrCancelWindowExpired          = errs.New("cancellation window after purchase has expired")
	ErrUnpaidPayment                = errs.New("payment has not succeeded")
	ErrPaidReservation              = errs.New("paid reservation must go through a cancellation request")
	ErrDatabaseOperationFailed      = errs.New("database operation failed")
)

type CancellationCommands interface {
	// RequestCancellation opens a cancellation request on a succeeded
	// payment, for the admin to accept or refuse later.
	RequestCancellation(ctx context.Context, clientID, paymentID int64) error
	// CancelReservation cancels one unpaid reservation directly.
	CancelReservation(ctx context.Context, clientID, reservationID int64) error
	// CancelOrder cancels every line item sharing a payment reference,
	// sequentially, and folds the per-unit results into one outcome.
	CancelOrder(ctx context.Context, clientID int64, paymentReference string) (*cancellation.BatchOutcome, error)
}

type cancellationCommandsImpl struct {
	reservationRepo ReservationRepository
	paymentRepo     PaymentRepository
	policy          reservation.CancelPolicy
	clock           clock.Clock
}

func NewCancellationCommands(
	reservationRepo ReservationRepository,
	paymentRepo PaymentRepository,
	policy reservation.CancelPolicy,
	clk clock.Clock,
) CancellationCommands {
	return &cancellationCommandsImpl{
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		policy:          policy,
		clock:           clk,
	}
}

func (c *cancellationCommandsImpl) RequestCancellation(ctx context.Context, clientID, paymentID int64) error {
	records, err := c.paymentRepo.FindRecordsByPaymentID(ctx, paymentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPaymentNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(records) == 0 {
		return ErrPaymentNotFound
	}

	for _, rec := range records {
		if rec.ClientID != clientID {
			return ErrNotOwned
		}
		if !rec.PaymentStatus.Succeeded() {
			return ErrUnpaidPayment
		}
	}
	if allCancelled(records) {
		return ErrAlreadyCancelled
	}
	if err := c.checkEligibility(records); err != nil {
		return err
	}

	if err := c.paymentRepo.RequestCancellation(ctx, paymentID, clientID); err != nil {
		if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrCancellationAlreadyRequested
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *cancellationCommandsImpl) CancelReservation(ctx context.Context, clientID, reservationID int64) error {
	rec, err := c.reservationRepo.FindRecordByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if rec.ClientID != clientID {
		return ErrNotOwned
	}
	if rec.IsCancelled() {
		return ErrAlreadyCancelled
	}
	if rec.Paid() {
		return ErrPaidReservation
	}
	if err := c.checkEligibility([]reservation.Record{*rec}); err != nil {
		return err
	}

	if err := c.reservationRepo.Cancel(ctx, reservationID); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return ErrAlreadyCancelled
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *cancellationCommandsImpl) CancelOrder(ctx context.Context, clientID int64, paymentReference string) (*cancellation.BatchOutcome, error) {
	records, err := c.reservationRepo.FindRecordsByPaymentReference(ctx, paymentReference)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(records) == 0 {
		return nil, ErrGroupNotFound
	}

	for _, rec := range records {
		if rec.ClientID != clientID {
			return nil, ErrNotOwned
		}
	}
	if allCancelled(records) {
		return nil, ErrAlreadyCancelled
	}
	if err := c.checkEligibility(records); err != nil {
		return nil, err
	}

	// One unit at a time, never concurrently: a unit failure is recorded
	// and the loop moves on.
	outcome := &cancellation.BatchOutcome{}
	requested := make(map[int64]bool)
	for _, rec := range records {
		if rec.IsCancelled() {
			continue
		}
		if rec.Paid() {
			paymentID := *rec.PaymentID
			if requested[paymentID] {
				continue
			}
			requested[paymentID] = true
			if reqErr := c.paymentRepo.RequestCancellation(ctx, paymentID, clientID); reqErr != nil {
				outcome.Items = append(outcome.Items, cancellation.Failed(cancellation.UnitPayment, paymentID, reqErr))
				continue
			}
			outcome.Items = append(outcome.Items, cancellation.Succeeded(cancellation.UnitPayment, paymentID))
			continue
		}

		if cancelErr := c.reservationRepo.Cancel(ctx, rec.ID); cancelErr != nil {
			outcome.Items = append(outcome.Items, cancellation.Failed(cancellation.UnitReservation, rec.ID, cancelErr))
			continue
		}
		outcome.Items = append(outcome.Items, cancellation.Succeeded(cancellation.UnitReservation, rec.ID))
	}

	if !outcome.AllSucceeded() {
		slog.Warn("order cancellation partially failed",
			"payment_reference", paymentReference,
			"failures", len(outcome.Failures()))
	}
	return outcome, nil
}

// checkEligibility rejects the whole action before any unit is touched when
// one record falls outside a cancellation window.
func (c *cancellationCommandsImpl) checkEligibility(records []reservation.Record) error {
	now := c.clock.Now()
	for _, rec := range records {
		if rec.IsCancelled() {
			continue
		}
		elig := c.policy.CancelEligibility(rec, now)
		if elig.Allowed {
			continue
		}
		switch elig.Reason {
		case reservation.RefusalTooCloseToStart:
			return ErrTooCloseToStart
		case reservation.RefusalWindowExpired:
			return ErrCancelWindowExpired
		}
	}
	return nil
}

func allCancelled(records []reservation.Record) bool {
	for _, rec := range records {
		if !rec.IsCancelled() {
			return false
		}
	}
	return true
}
