package commands

import (
	"context"
	"log/slog"

	"marketplace-api/internal/domain/cancellation"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/errs"
)

var ErrCancellationRequestNotFound = errs.New("cancellation request not found")

type AdminCancellationCommands interface {
	// Accept settles one pending cancellation request by payment id.
	Accept(ctx context.Context, paymentID int64) error
	// Refuse rejects one pending cancellation request by payment id.
	Refuse(ctx context.Context, paymentID int64) error
	// Decide accepts or refuses a whole pending group, one payment at a
	// time, and folds the per-payment results into one outcome.
	Decide(ctx context.Context, paymentReference string, accept bool) (*cancellation.BatchOutcome, error)
}

type adminCancellationCommandsImpl struct {
	paymentRepo  PaymentRepository
	pendingReads CancellationReads
}

func NewAdminCancellationCommands(paymentRepo PaymentRepository, pendingReads CancellationReads) AdminCancellationCommands {
	return &adminCancellationCommandsImpl{
		paymentRepo:  paymentRepo,
		pendingReads: pendingReads,
	}
}

func (a *adminCancellationCommandsImpl) Accept(ctx context.Context, paymentID int64) error {
	return a.settleOne(ctx, paymentID, true)
}

func (a *adminCancellationCommandsImpl) Refuse(ctx context.Context, paymentID int64) error {
	return a.settleOne(ctx, paymentID, false)
}

func (a *adminCancellationCommandsImpl) settleOne(ctx context.Context, paymentID int64, accept bool) error {
	var err error
	if accept {
		err = a.paymentRepo.AcceptCancellation(ctx, paymentID)
	} else {
		err = a.paymentRepo.RefuseCancellation(ctx, paymentID)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCancellationRequestNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (a *adminCancellationCommandsImpl) Decide(ctx context.Context, paymentReference string, accept bool) (*cancellation.BatchOutcome, error) {
	records, err := a.pendingReads.PendingRecordsByReference(ctx, paymentReference)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(records) == 0 {
		return nil, ErrGroupNotFound
	}

	groups := cancellation.GroupRecords(records)
	if len(groups) == 0 {
		return nil, ErrGroupNotFound
	}
	group := groups[0]
	if err := group.Validate(); err != nil {
		return nil, ErrGroupNotFound
	}

	// Payments settle sequentially; a failed payment stays pending and is
	// reported in the aggregated message while the loop continues.
	outcome := &cancellation.BatchOutcome{}
	for _, paymentID := range group.PaymentIDs {
		if settleErr := a.settleOne(ctx, paymentID, accept); settleErr != nil {
			outcome.Items = append(outcome.Items, cancellation.Failed(cancellation.UnitPayment, paymentID, settleErr))
			continue
		}
		outcome.Items = append(outcome.Items, cancellation.Succeeded(cancellation.UnitPayment, paymentID))
	}

	if !outcome.AllSucceeded() {
		slog.Warn("cancellation decision partially failed",
			"payment_reference", paymentReference,
			"accept", accept,
			"failures", len(outcome.Failures()))
	}
	return outcome, nil
}
