//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"marketplace-api/internal/domain/cancellation"
	"marketplace-api/internal/domain/reservation"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/usecase/commands"
	commandsmock "marketplace-api/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	testClientID  int64 = 7
	otherClientID int64 = 8
)

type CancellationCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	reservationRepo *commandsmock.MockReservationRepository
	paymentRepo     *commandsmock.MockPaymentRepository
	clock           *clock.MockClock
	commands        commands.CancellationCommands
}

func (s *CancellationCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.reservationRepo = commandsmock.NewMockReservationRepository(s.mockCtrl)
	s.paymentRepo = commandsmock.NewMockPaymentRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.commands = commands.NewCancellationCommands(
		s.reservationRepo,
		s.paymentRepo,
		reservation.DefaultCancelPolicy(),
		s.clock,
	)
}

func (s *CancellationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCancellationCommandsSuite(t *testing.T) {
	suite.Run(t, new(CancellationCommandsTestSuite))
}

// record builds an eligible confirmed record: placed one hour ago, offer far
// in the future.
func (s *CancellationCommandsTestSuite) record(id int64, mutate ...func(*reservation.Record)) reservation.Record {
	now := s.clock.Now()
	start := now.Add(30 * 24 * time.Hour)
	rec := reservation.Record{
		ID:               id,
		OfferID:          100,
		OfferTitle:       "Atelier poterie",
		ClientID:         testClientID,
		Quantity:         1,
		Status:           reservation.StatusConfirmed,
		CreatedAt:        now.Add(-time.Hour),
		OfferStartDate:   &start,
		PaymentReference: "PR1",
	}
	for _, m := range mutate {
		m(&rec)
	}
	return rec
}

func paid(paymentID int64) func(*reservation.Record) {
	return func(r *reservation.Record) {
		r.PaymentID = &paymentID
		r.PaymentStatus = reservation.PaymentSucceeded
	}
}

func cancelled(r *reservation.Record) {
	r.Status = reservation.StatusCancelled
}

func (s *CancellationCommandsTestSuite) TestCancelOrder() {
	ctx := context.Background()
	const ref = "PR1"

	s.Run("success: every unit cancelled", func() {
		records := []reservation.Record{s.record(1), s.record(2)}
		s.reservationRepo.EXPECT().FindRecordsByPaymentReference(ctx, ref).Return(records, nil)
		s.reservationRepo.EXPECT().Cancel(ctx, int64(1)).Return(nil)
		s.reservationRepo.EXPECT().Cancel(ctx, int64(2)).Return(nil)

		outcome, err := s.commands.CancelOrder(ctx, testClientID, ref)

		s.Require().NoError(err)
		s.True(outcome.AllSucceeded())
		s.Len(outcome.Items, 2)
	})

	s.Run("success: paid units go through a cancellation request", func() {
		records := []reservation.Record{s.record(1, paid(10)), s.record(2)}
		s.reservationRepo.EXPECT().FindRecordsByPaymentReference(ctx, ref).Return(records, nil)
		s.paymentRepo.EXPECT().RequestCancellation(ctx, int64(10), testClientID).Return(nil)
		s.reservationRepo.EXPECT().Cancel(ctx, int64(2)).Return(nil)

		outcome, err := s.commands.CancelOrder(ctx, testClientID, ref)

		s.Require().NoError(err)
		s.True(outcome.AllSucceeded())
		s.Equal(cancellation.UnitPayment, outcome.Items[0].Kind)
		s.Equal(cancellation.UnitReservation, outcome.Items[1].Kind)
	})

	s.Run("one cancellation request per payment even with several lines", func() {
		records := []reservation.Record{s.record(1, paid(10)), s.record(2, paid(10)), s.record(3, paid(11))}
		s.reservationRepo.EXPECT().FindRecordsByPaymentReference(ctx, ref).Return(records, nil)
		s.paymentRepo.EXPECT().RequestCancellation(ctx, int64(10), testClientID).Return(nil).Times(1)
		s.paymentRepo.EXPECT().RequestCancellation(ctx, int64(11), testClientID).Return(nil).Times(1)

		outcome, err := s.commands.CancelOrder(ctx, testClientID, ref)

		s.Require().NoError(err)
		s.True(outcome.AllSucceeded())
		s.Len(outcome.Items, 2)
	})

	s.Run("a unit failure is recorded and the loop keeps going", func() {
		records := []reservation.Record{s.record(1), s.record(2), s.record(3)}
		s.reservationRepo.EXPECT().FindRecordsByPaymentReference(ctx, ref).Return(records, nil)
		s.reservationRepo.EXPECT().Cancel(ctx, int64(1)).Return(nil)
		s.reservationRepo.EXPECT().Cancel(ctx, int64(2)).
			Return(infra.WrapRepoErr("réservation déjà annulée", nil, infra.KindConflict))
		s.reservationRepo.EXPECT().Cancel(ctx, int64(3)).Return(nil)

		outcome, err := s.commands.CancelOrder(ctx, testClientID, ref)

		s.Require().NoError(err)
		s.False(outcome.AllSucceeded())
		s.Len(outcome.Failures(), 1)
		s.Contains(outcome.FailureMessage(), "réservation déjà annulée")
	})

	s.Run("already cancelled units are skipped", func() {
		records := []reservation.Record{s.record(1, cancelled), s.record(2)}
		s.reservationRepo.EXPECT().FindRecordsByPaymentReference(ctx, ref).Return(records, nil)
		s.reservationRepo.EXPECT().Cancel(ctx, int64(2)).Return(nil)

		outcome, err := s.commands.CancelOrder(ctx, testClientID, ref)

		s.Require().NoError(err)
		s.Len(outcome.Items, 1)
	})

	s.Run("error: unknown reference touches nothing", func() {
		s.reservationRepo.EXPECT().FindRecordsByPaymentReference(ctx, "PR-missing").
			Return(nil, nil)

		outcome, err := s.commands.CancelOrder(ctx, testClientID, "PR-missing")

		s.ErrorIs(err, commands.ErrGroupNotFound)
		s.Nil(outcome)
	})

	s.Run("error: reservation owned by someone else", func() {
		records := []reservation.Record{s.record(1), s.record(2, func(r *reservation.Record) { r.ClientID = otherClientID })}
		s.reservationRepo.EXPECT().FindRecordsByPaymentReference(ctx, ref).Return(records, nil)

		_, err := s.commands.CancelOrder(ctx, testClientID, ref)

		s.ErrorIs(err, commands.ErrNotOwned)
	})

	s.Run("error: everything already cancelled", func() {
		records := []reservation.Record{s.record(1, cancelled), s.record(2, cancelled)}
		s.reservationRepo.EXPECT().FindRecordsByPaymentReference(ctx, ref).Return(records, nil)

		_, err := s.commands.CancelOrder(ctx, testClientID, ref)

		s.ErrorIs(err, commands.ErrAlreadyCancelled)
	})

	s.Run("error: one ineligible record rejects the whole batch before any unit runs", func() {
		soon := s.clock.Now().Add(time.Hour)
		records := []reservation.Record{
			s.record(1),
			s.record(2, func(r *reservation.Record) { r.OfferStartDate = &soon }),
		}
		s.reservationRepo.EXPECT().FindRecordsByPaymentReference(ctx, ref).Return(records, nil)

		_, err := s.commands.CancelOrder(ctx, testClientID, ref)

		s.ErrorIs(err, commands.ErrTooCloseToStart)
	})

	s.Run("error: purchase too old rejects the whole batch", func() {
		records := []reservation.Record{
			s.record(1, func(r *reservation.Record) { r.CreatedAt = s.clock.Now().Add(-72 * time.Hour) }),
		}
		s.reservationRepo.EXPECT().FindRecordsByPaymentReference(ctx, ref).Return(records, nil)

		_, err := s.commands.CancelOrder(ctx, testClientID, ref)

		s.ErrorIs(err, commands.ErrCancelWindowExpired)
	})
}

func (s *CancellationCommandsTestSuite) TestCancelReservation() {
	ctx := context.Background()

	s.Run("success: unpaid reservation cancelled directly", func() {
		rec := s.record(1)
		s.reservationRepo.EXPECT().FindRecordByID(ctx, int64(1)).Return(&rec, nil)
		s.reservationRepo.EXPECT().Cancel(ctx, int64(1)).Return(nil)

		s.NoError(s.commands.CancelReservation(ctx, testClientID, 1))
	})

	s.Run("error: unknown reservation", func() {
		s.reservationRepo.EXPECT().FindRecordByID(ctx, int64(99)).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		err := s.commands.CancelReservation(ctx, testClientID, 99)

		s.ErrorIs(err, commands.ErrReservationNotFound)
	})

	s.Run("error: not the owner", func() {
		rec := s.record(1, func(r *reservation.Record) { r.ClientID = otherClientID })
		s.reservationRepo.EXPECT().FindRecordByID(ctx, int64(1)).Return(&rec, nil)

		s.ErrorIs(s.commands.CancelReservation(ctx, testClientID, 1), commands.ErrNotOwned)
	})

	s.Run("error: already cancelled", func() {
		rec := s.record(1, cancelled)
		s.reservationRepo.EXPECT().FindRecordByID(ctx, int64(1)).Return(&rec, nil)

		s.ErrorIs(s.commands.CancelReservation(ctx, testClientID, 1), commands.ErrAlreadyCancelled)
	})

	s.Run("error: paid reservation must go through a request", func() {
		rec := s.record(1, paid(10))
		s.reservationRepo.EXPECT().FindRecordByID(ctx, int64(1)).Return(&rec, nil)

		s.ErrorIs(s.commands.CancelReservation(ctx, testClientID, 1), commands.ErrPaidReservation)
	})

	s.Run("error: concurrent cancel surfaces as already cancelled", func() {
		rec := s.record(1)
		s.reservationRepo.EXPECT().FindRecordByID(ctx, int64(1)).Return(&rec, nil)
		s.reservationRepo.EXPECT().Cancel(ctx, int64(1)).
			Return(infra.WrapRepoErr("réservation déjà annulée", nil, infra.KindConflict))

		s.ErrorIs(s.commands.CancelReservation(ctx, testClientID, 1), commands.ErrAlreadyCancelled)
	})
}

func (s *CancellationCommandsTestSuite) TestRequestCancellation() {
	ctx := context.Background()
	const paymentID int64 = 10

	s.Run("success: pending request opened on a paid order", func() {
		records := []reservation.Record{s.record(1, paid(paymentID)), s.record(2, paid(paymentID))}
		s.paymentRepo.EXPECT().FindRecordsByPaymentID(ctx, paymentID).Return(records, nil)
		s.paymentRepo.EXPECT().RequestCancellation(ctx, paymentID, testClientID).Return(nil)

		s.NoError(s.commands.RequestCancellation(ctx, testClientID, paymentID))
	})

	s.Run("error: unknown payment", func() {
		s.paymentRepo.EXPECT().FindRecordsByPaymentID(ctx, paymentID).Return(nil, nil)

		s.ErrorIs(s.commands.RequestCancellation(ctx, testClientID, paymentID), commands.ErrPaymentNotFound)
	})

	s.Run("error: payment did not succeed", func() {
		records := []reservation.Record{s.record(1, func(r *reservation.Record) {
			id := paymentID
			r.PaymentID = &id
			r.PaymentStatus = reservation.PaymentPending
		})}
		s.paymentRepo.EXPECT().FindRecordsByPaymentID(ctx, paymentID).Return(records, nil)

		s.ErrorIs(s.commands.RequestCancellation(ctx, testClientID, paymentID), commands.ErrUnpaidPayment)
	})

	s.Run("error: a pending request already exists", func() {
		records := []reservation.Record{s.record(1, paid(paymentID))}
		s.paymentRepo.EXPECT().FindRecordsByPaymentID(ctx, paymentID).Return(records, nil)
		s.paymentRepo.EXPECT().RequestCancellation(ctx, paymentID, testClientID).
			Return(infra.WrapRepoErr("une demande d'annulation est déjà en cours", nil, infra.KindConflict))

		s.ErrorIs(s.commands.RequestCancellation(ctx, testClientID, paymentID), commands.ErrCancellationAlreadyRequested)
	})

	s.Run("error: outside the cancellation windows", func() {
		soon := s.clock.Now().Add(24 * time.Hour)
		records := []reservation.Record{s.record(1, paid(paymentID), func(r *reservation.Record) { r.OfferStartDate = &soon })}
		s.paymentRepo.EXPECT().FindRecordsByPaymentID(ctx, paymentID).Return(records, nil)

		s.ErrorIs(s.commands.RequestCancellation(ctx, testClientID, paymentID), commands.ErrTooCloseToStart)
	})
}
