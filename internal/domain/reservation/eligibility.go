package reservation

import "time"

const (
	DefaultMinLeadTime = 72 * time.Hour
	DefaultMaxAge      = 48 * time.Hour
)

type RefusalReason string

const (
	RefusalTooCloseToStart RefusalReason = "too_close_to_start"
	RefusalWindowExpired   RefusalReason = "window_expired"
)

type Eligibility struct {
	Allowed bool
	Reason  RefusalReason
}

// CancelPolicy holds the two cancellation windows: a reservation cannot be
// cancelled less than MinLeadTime before the offer starts, nor more than
// MaxAge after it was placed.
type CancelPolicy struct {
	MinLeadTime time.Duration
	MaxAge      time.Duration
}

func DefaultCancelPolicy() CancelPolicy {
	return CancelPolicy{
		MinLeadTime: DefaultMinLeadTime,
		MaxAge:      DefaultMaxAge,
	}
}

// CancelEligibility decides whether the record may still be cancelled at
// instant now. The service-start rule is evaluated first and short-circuits
// the post-purchase rule.
func (p CancelPolicy) CancelEligibility(rec Record, now time.Time) Eligibility {
	if rec.OfferStartDate != nil && rec.OfferStartDate.Sub(now) < p.MinLeadTime {
		return Eligibility{Allowed: false, Reason: RefusalTooCloseToStart}
	}
	if now.Sub(rec.CreatedAt) > p.MaxAge {
		return Eligibility{Allowed: false, Reason: RefusalWindowExpired}
	}
	return Eligibility{Allowed: true}
}
