//go:build unit

package queries_test

import (
	"context"
	"testing"

	"marketplace-api/internal/usecase/queries"
	queriesmock "marketplace-api/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	store    *queriesmock.MockReservationReadStore
	queries  queries.ReservationQueries
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockReservationReadStore(s.mockCtrl)
	s.queries = queries.NewReservationQueries(s.store)
}

func (s *ReservationQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func providerRow(id int64, statut string) *queries.ReservationView {
	return &queries.ReservationView{
		ID:         id,
		OfferID:    100,
		OfferTitle: "Atelier poterie",
		ClientID:   7,
		Quantity:   1,
		Statut:     statut,
	}
}

func (s *ReservationQueriesTestSuite) TestListByProvider() {
	ctx := context.Background()
	providerID := int64(2)

	s.Run("statut filter keeps only matching rows", func() {
		s.store.EXPECT().FindByProviderID(ctx, providerID).
			Return([]*queries.ReservationView{
				providerRow(1, "annulée"),
				providerRow(2, "confirmée"),
				providerRow(3, "annulée"),
			}, nil)

		views, err := s.queries.ListByProvider(ctx, providerID, "annulée")

		s.Require().NoError(err)
		s.Require().Len(views, 2)
		s.Equal(int64(1), views[0].ID)
		s.Equal(int64(3), views[1].ID)
	})

	s.Run("empty statut returns every row", func() {
		s.store.EXPECT().FindByProviderID(ctx, providerID).
			Return([]*queries.ReservationView{
				providerRow(1, "annulée"),
				providerRow(2, "confirmée"),
			}, nil)

		views, err := s.queries.ListByProvider(ctx, providerID, "")

		s.Require().NoError(err)
		s.Len(views, 2)
	})

	s.Run("unknown statut is rejected before the fetch", func() {
		views, err := s.queries.ListByProvider(ctx, providerID, "expédiée")

		s.ErrorIs(err, queries.ErrUnknownStatus)
		s.Nil(views)
	})

	s.Run("store failure bubbles up", func() {
		s.store.EXPECT().FindByProviderID(ctx, providerID).
			Return(nil, context.DeadlineExceeded)

		_, err := s.queries.ListByProvider(ctx, providerID, "annulée")

		s.Error(err)
	})
}

func (s *ReservationQueriesTestSuite) TestListByClient() {
	ctx := context.Background()

	s.store.EXPECT().FindByClientID(ctx, int64(7)).
		Return([]*queries.ReservationView{providerRow(1, "en attente")}, nil)

	views, err := s.queries.ListByClient(ctx, int64(7))

	s.Require().NoError(err)
	s.Len(views, 1)
}
