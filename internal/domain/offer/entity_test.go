//go:build unit

package offer_test

import (
	"testing"
	"time"

	"marketplace-api/internal/domain/offer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffer(t *testing.T) {
	start := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	t.Run("valid offer", func(t *testing.T) {
		o, err := offer.NewOffer(1, "  Atelier poterie  ", " Deux heures d'initiation ", &start, &end, 10, 4500)

		require.NoError(t, err)
		assert.Equal(t, "Atelier poterie", o.Title(), "title is trimmed")
		assert.Equal(t, "Deux heures d'initiation", o.Details())
		assert.Equal(t, int32(10), o.Stock())
	})

	t.Run("dates are optional", func(t *testing.T) {
		_, err := offer.NewOffer(1, "Atelier poterie", "", nil, nil, 1, 0)
		assert.NoError(t, err)
	})

	cases := []struct {
		name    string
		title   string
		start   *time.Time
		end     *time.Time
		stock   int32
		price   int64
		wantErr error
	}{
		{"blank title", "   ", &start, &end, 10, 4500, offer.ErrEmptyTitle},
		{"start after end", "Atelier poterie", &end, &start, 10, 4500, offer.ErrInvalidWindow},
		{"start equals end", "Atelier poterie", &start, &start, 10, 4500, offer.ErrInvalidWindow},
		{"negative price", "Atelier poterie", &start, &end, 10, -1, offer.ErrNegativePrice},
		{"zero stock", "Atelier poterie", &start, &end, 0, 4500, offer.ErrInvalidStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := offer.NewOffer(1, tc.title, "", tc.start, tc.end, tc.stock, tc.price)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestOfferReserve(t *testing.T) {
	newOffer := func(stock int32) *offer.Offer {
		return offer.ReconstructOffer(1, 1, "Atelier poterie", "", nil, nil, stock, 4500)
	}

	t.Run("decrements remaining stock", func(t *testing.T) {
		o := newOffer(5)
		require.NoError(t, o.Reserve(3))
		assert.Equal(t, int32(2), o.Stock())
	})

	t.Run("whole stock can be reserved at once", func(t *testing.T) {
		o := newOffer(5)
		require.NoError(t, o.Reserve(5))
		assert.Equal(t, int32(0), o.Stock())
	})

	t.Run("over-reservation is refused and stock untouched", func(t *testing.T) {
		o := newOffer(5)
		assert.ErrorIs(t, o.Reserve(6), offer.ErrInsufficientStock)
		assert.Equal(t, int32(5), o.Stock())
	})

	t.Run("non-positive quantity is refused", func(t *testing.T) {
		o := newOffer(5)
		assert.ErrorIs(t, o.Reserve(0), offer.ErrInvalidStock)
		assert.ErrorIs(t, o.Reserve(-1), offer.ErrInvalidStock)
	})
}
