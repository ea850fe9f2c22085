//go:build unit

package cancellation_test

import (
	"testing"
	"time"

	"marketplace-api/internal/domain/cancellation"
	"marketplace-api/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func rec(id int64, ref string, paymentID int64, title string) reservation.Record {
	r := reservation.Record{
		ID:               id,
		OfferTitle:       title,
		Status:           reservation.StatusConfirmed,
		CreatedAt:        time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		PaymentReference: ref,
	}
	if paymentID != 0 {
		r.PaymentID = &paymentID
	}
	return r
}

func TestGroupRecords(t *testing.T) {
	t.Run("one group per payment reference", func(t *testing.T) {
		records := []reservation.Record{
			rec(1, "PR1", 10, "Atelier poterie"),
			rec(2, "PR1", 10, "Atelier poterie"),
			rec(3, "PR2", 20, "Cours de cuisine"),
		}

		groups := cancellation.GroupRecords(records)

		want := []cancellation.Group{
			{PaymentReference: "PR1", PaymentIDs: []int64{10}, OfferTitles: []string{"Atelier poterie"}},
			{PaymentReference: "PR2", PaymentIDs: []int64{20}, OfferTitles: []string{"Cours de cuisine"}},
		}
		if diff := cmp.Diff(want, groups); diff != "" {
			t.Errorf("groups mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("same groups regardless of input order", func(t *testing.T) {
		records := []reservation.Record{
			rec(1, "PR1", 10, "Atelier poterie"),
			rec(2, "PR2", 20, "Cours de cuisine"),
			rec(3, "PR1", 11, "Balade en mer"),
		}
		reversed := []reservation.Record{records[2], records[1], records[0]}

		if diff := cmp.Diff(cancellation.GroupRecords(records), cancellation.GroupRecords(reversed)); diff != "" {
			t.Errorf("grouping depends on input order:\n%s", diff)
		}
	})

	t.Run("payment ids and titles are deduplicated and sorted", func(t *testing.T) {
		records := []reservation.Record{
			rec(1, "PR1", 11, "Balade en mer"),
			rec(2, "PR1", 10, "Atelier poterie"),
			rec(3, "PR1", 11, "Balade en mer"),
			rec(4, "PR1", 10, "Atelier poterie"),
		}

		groups := cancellation.GroupRecords(records)

		assert.Len(t, groups, 1)
		assert.Equal(t, []int64{10, 11}, groups[0].PaymentIDs)
		assert.Equal(t, []string{"Atelier poterie", "Balade en mer"}, groups[0].OfferTitles)
	})

	t.Run("records without a payment reference are skipped", func(t *testing.T) {
		records := []reservation.Record{
			rec(1, "", 0, "Atelier poterie"),
			rec(2, "PR1", 10, "Cours de cuisine"),
		}

		groups := cancellation.GroupRecords(records)

		assert.Len(t, groups, 1)
		assert.Equal(t, "PR1", groups[0].PaymentReference)
	})

	t.Run("nil payment id yields a group without payments", func(t *testing.T) {
		groups := cancellation.GroupRecords([]reservation.Record{rec(1, "PR1", 0, "Atelier poterie")})

		assert.Len(t, groups, 1)
		assert.Empty(t, groups[0].PaymentIDs)
		assert.ErrorIs(t, groups[0].Validate(), cancellation.ErrEmptyGroup)
	})
}

func TestGroupValidate(t *testing.T) {
	assert.ErrorIs(t, cancellation.Group{PaymentReference: "PR1"}.Validate(), cancellation.ErrEmptyGroup)
	assert.NoError(t, cancellation.Group{PaymentReference: "PR1", PaymentIDs: []int64{10}}.Validate())
}
