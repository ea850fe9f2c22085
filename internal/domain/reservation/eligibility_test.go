//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"marketplace-api/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestCancelEligibility(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	policy := reservation.DefaultCancelPolicy()

	record := func(start *time.Time, createdAt time.Time) reservation.Record {
		return reservation.Record{
			ID:             1,
			Status:         reservation.StatusConfirmed,
			CreatedAt:      createdAt,
			OfferStartDate: start,
		}
	}
	at := func(t time.Time) *time.Time { return &t }

	t.Run("service start window", func(t *testing.T) {
		cases := []struct {
			name    string
			start   time.Time
			allowed bool
		}{
			{"exactly 72h before start is allowed", now.Add(72 * time.Hour), true},
			{"one second past the 72h mark is refused", now.Add(72*time.Hour - time.Second), false},
			{"one second before the 72h mark is allowed", now.Add(72*time.Hour + time.Second), true},
			{"offer already started is refused", now.Add(-time.Hour), false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				elig := policy.CancelEligibility(record(at(tc.start), now.Add(-time.Hour)), now)
				assert.Equal(t, tc.allowed, elig.Allowed)
				if !tc.allowed {
					assert.Equal(t, reservation.RefusalTooCloseToStart, elig.Reason)
				}
			})
		}
	})

	t.Run("post-purchase window", func(t *testing.T) {
		cases := []struct {
			name      string
			createdAt time.Time
			allowed   bool
		}{
			{"exactly 48h after purchase is allowed", now.Add(-48 * time.Hour), true},
			{"one second past the 48h mark is refused", now.Add(-48*time.Hour - time.Second), false},
			{"one second before the 48h mark is allowed", now.Add(-48*time.Hour + time.Second), true},
			{"just purchased is allowed", now, true},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				elig := policy.CancelEligibility(record(nil, tc.createdAt), now)
				assert.Equal(t, tc.allowed, elig.Allowed)
				if !tc.allowed {
					assert.Equal(t, reservation.RefusalWindowExpired, elig.Reason)
				}
			})
		}
	})

	t.Run("service start rule wins when both windows are violated", func(t *testing.T) {
		rec := record(at(now.Add(time.Hour)), now.Add(-100*time.Hour))
		elig := policy.CancelEligibility(rec, now)
		assert.False(t, elig.Allowed)
		assert.Equal(t, reservation.RefusalTooCloseToStart, elig.Reason)
	})

	t.Run("missing start date skips the service start rule", func(t *testing.T) {
		elig := policy.CancelEligibility(record(nil, now.Add(-time.Hour)), now)
		assert.True(t, elig.Allowed)
	})

	t.Run("custom windows are honored", func(t *testing.T) {
		tight := reservation.CancelPolicy{MinLeadTime: 24 * time.Hour, MaxAge: time.Hour}
		rec := record(at(now.Add(48*time.Hour)), now.Add(-30*time.Minute))
		assert.True(t, tight.CancelEligibility(rec, now).Allowed)

		rec.CreatedAt = now.Add(-2 * time.Hour)
		elig := tight.CancelEligibility(rec, now)
		assert.False(t, elig.Allowed)
		assert.Equal(t, reservation.RefusalWindowExpired, elig.Reason)
	})
}
