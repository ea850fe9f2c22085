//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace-api/internal/domain/reservation"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase/queries"
	queriesmock "marketplace-api/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CancellationQueriesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	store    *queriesmock.MockCancellationReadStore
	queries  queries.CancellationQueries
}

func (s *CancellationQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockCancellationReadStore(s.mockCtrl)
	s.queries = queries.NewCancellationQueries(s.store)
}

func (s *CancellationQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCancellationQueriesSuite(t *testing.T) {
	suite.Run(t, new(CancellationQueriesTestSuite))
}

func pendingRow(id, paymentID int64, ref, title, email string, requestedAt time.Time) *queries.PendingCancellationRecord {
	return &queries.PendingCancellationRecord{
		Record: reservation.Record{
			ID:               id,
			OfferTitle:       title,
			Status:           reservation.StatusConfirmed,
			PaymentID:        &paymentID,
			PaymentStatus:    reservation.PaymentSucceeded,
			PaymentReference: ref,
		},
		ClientEmail: email,
		RequestedAt: requestedAt,
	}
}

func (s *CancellationQueriesTestSuite) TestPendingGroups() {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	s.Run("rows sharing a reference collapse into one group", func() {
		rows := []*queries.PendingCancellationRecord{
			pendingRow(1, 10, "PR1", "Atelier poterie", "client@example.com", base.Add(time.Hour)),
			pendingRow(2, 10, "PR1", "Atelier poterie", "client@example.com", base),
			pendingRow(3, 20, "PR2", "Cours de cuisine", "autre@example.com", base.Add(2*time.Hour)),
		}
		s.store.EXPECT().FindPendingRecords(ctx).Return(rows, nil)

		views, err := s.queries.PendingGroups(ctx)

		s.Require().NoError(err)
		s.Require().Len(views, 2)

		s.Equal("PR1", views[0].PaymentReference)
		s.Equal([]int64{10}, views[0].PaymentIDs)
		s.Equal([]string{"Atelier poterie"}, views[0].OfferTitles)
		s.Equal("client@example.com", views[0].ClientEmail)
		s.Equal(base, views[0].RequestedAt, "the earliest request timestamp wins")

		s.Equal("PR2", views[1].PaymentReference)
		s.Equal("autre@example.com", views[1].ClientEmail)
	})

	s.Run("no pending request yields an empty list", func() {
		s.store.EXPECT().FindPendingRecords(ctx).Return(nil, nil)

		views, err := s.queries.PendingGroups(ctx)

		s.Require().NoError(err)
		s.Empty(views)
	})

	s.Run("error: read store failure bubbles up", func() {
		s.store.EXPECT().FindPendingRecords(ctx).Return(nil, errs.New("db down"))

		_, err := s.queries.PendingGroups(ctx)

		s.Error(err)
	})
}
