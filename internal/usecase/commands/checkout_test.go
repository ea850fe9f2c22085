//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/usecase/commands"
	commandsmock "marketplace-api/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutCommandsTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	offerRepo *commandsmock.MockOfferRepository
	commands  commands.CheckoutCommands
	offerCmds commands.OfferCommands
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.offerRepo = commandsmock.NewMockOfferRepository(s.mockCtrl)
	s.commands = commands.NewCheckoutCommands(s.offerRepo)
	s.offerCmds = commands.NewOfferCommands(s.offerRepo)
}

func (s *CheckoutCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

func (s *CheckoutCommandsTestSuite) snapshot(id int64, stock int32, priceCents int64) commands.OfferSnapshot {
	start := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	return commands.OfferSnapshot{
		ID:         id,
		ProviderID: 2,
		Title:      "Atelier poterie",
		StartDate:  &start,
		Stock:      stock,
		PriceCents: priceCents,
	}
}

func (s *CheckoutCommandsTestSuite) TestCreateReservations() {
	ctx := context.Background()

	s.Run("success: one payment for several line items", func() {
		items := []commands.CheckoutItem{
			{OfferID: 100, Quantity: 2},
			{OfferID: 101, Quantity: 1},
		}
		s.offerRepo.EXPECT().FindForCheckout(ctx, []int64{100, 101}).
			Return([]commands.OfferSnapshot{s.snapshot(100, 5, 4500), s.snapshot(101, 3, 2000)}, nil)
		s.offerRepo.EXPECT().CreateOrder(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, order commands.Order) (*commands.OrderCreated, error) {
				s.Equal(testClientID, order.ClientID)
				s.NotEmpty(order.PaymentReference)
				s.Equal(int64(2*4500+2000), order.AmountCents)
				s.Len(order.Lines, 2)
				return &commands.OrderCreated{
					PaymentID:        10,
					PaymentReference: order.PaymentReference,
					ReservationIDs:   []int64{1, 2},
				}, nil
			})

		result, err := s.commands.CreateReservations(ctx, testClientID, items)

		s.Require().NoError(err)
		s.Equal(int64(10), result.PaymentID)
		s.Len(result.ReservationIDs, 2)
	})

	s.Run("error: empty order", func() {
		_, err := s.commands.CreateReservations(ctx, testClientID, nil)

		s.ErrorIs(err, commands.ErrEmptyOrder)
	})

	s.Run("error: unknown offer", func() {
		items := []commands.CheckoutItem{{OfferID: 999, Quantity: 1}}
		s.offerRepo.EXPECT().FindForCheckout(ctx, []int64{999}).Return(nil, nil)

		_, err := s.commands.CreateReservations(ctx, testClientID, items)

		s.ErrorIs(err, commands.ErrOfferNotFound)
	})

	s.Run("error: quantity above the remaining stock", func() {
		items := []commands.CheckoutItem{{OfferID: 100, Quantity: 6}}
		s.offerRepo.EXPECT().FindForCheckout(ctx, []int64{100}).
			Return([]commands.OfferSnapshot{s.snapshot(100, 5, 4500)}, nil)

		_, err := s.commands.CreateReservations(ctx, testClientID, items)

		s.ErrorIs(err, commands.ErrInsufficientStock)
	})

	s.Run("error: stock conflict inside the transaction", func() {
		items := []commands.CheckoutItem{{OfferID: 100, Quantity: 2}}
		s.offerRepo.EXPECT().FindForCheckout(ctx, []int64{100}).
			Return([]commands.OfferSnapshot{s.snapshot(100, 5, 4500)}, nil)
		s.offerRepo.EXPECT().CreateOrder(ctx, gomock.Any()).
			Return(nil, infra.WrapRepoErr("stock insuffisant", nil, infra.KindConflict))

		_, err := s.commands.CreateReservations(ctx, testClientID, items)

		s.ErrorIs(err, commands.ErrInsufficientStock)
	})
}

func (s *CheckoutCommandsTestSuite) TestCreateOffer() {
	ctx := context.Background()
	providerID := int64(2)

	s.Run("success: persists the validated offer", func() {
		in := commands.CreateOfferInput{
			Title:      "  Atelier poterie  ",
			Details:    "Deux heures avec un céramiste",
			Stock:      5,
			PriceCents: 4500,
		}
		s.offerRepo.EXPECT().
			Create(ctx, providerID, "Atelier poterie", "Deux heures avec un céramiste", (*time.Time)(nil), (*time.Time)(nil), int32(5), int64(4500)).
			Return(int64(42), nil)

		id, err := s.offerCmds.CreateOffer(ctx, providerID, in)

		s.Require().NoError(err)
		s.Equal(int64(42), id)
	})

	s.Run("error: invalid offer is rejected before any write", func() {
		in := commands.CreateOfferInput{Title: "   ", Stock: 5, PriceCents: 4500}

		_, err := s.offerCmds.CreateOffer(ctx, providerID, in)

		s.ErrorIs(err, commands.ErrInvalidOffer)
	})

	s.Run("error: persistence failure", func() {
		in := commands.CreateOfferInput{Title: "Atelier poterie", Stock: 5, PriceCents: 4500}
		s.offerRepo.EXPECT().
			Create(ctx, providerID, "Atelier poterie", "", (*time.Time)(nil), (*time.Time)(nil), int32(5), int64(4500)).
			Return(int64(0), infra.WrapRepoErr("insert offers", nil))

		_, err := s.offerCmds.CreateOffer(ctx, providerID, in)

		s.Error(err)
		s.NotErrorIs(err, commands.ErrInvalidOffer)
	})
}
