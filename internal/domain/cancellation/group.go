package cancellation

import (
	"errors"
	"sort"

	"marketplace-api/internal/domain/reservation"
)

var ErrEmptyGroup = errors.New("cancellation group has no payment")

// Group aggregates the reservation line items paid together under one
// payment reference. It is derived from the current records on every read
// and never persisted.
type Group struct {
	PaymentReference string
	PaymentIDs       []int64
	OfferTitles      []string
}

// Validate enforces the invariant that no action is permitted on a group
// without at least one payment.
func (g Group) Validate() error {
	if len(g.PaymentIDs) == 0 {
		return ErrEmptyGroup
	}
	return nil
}

// GroupRecords builds one Group per payment reference. Payment ids and offer
// titles are de-duplicated within a group, and the result is sorted so the
// same records always produce the same groups regardless of input order.
func GroupRecords(records []reservation.Record) []Group {
	type bucket struct {
		ids    map[int64]struct{}
		titles map[string]struct{}
	}

	buckets := make(map[string]*bucket)
	for _, rec := range records {
		if rec.PaymentReference == "" {
			continue
		}
		b, ok := buckets[rec.PaymentReference]
		if !ok {
			b = &bucket{ids: make(map[int64]struct{}), titles: make(map[string]struct{})}
			buckets[rec.PaymentReference] = b
		}
		if rec.PaymentID != nil {
			b.ids[*rec.PaymentID] = struct{}{}
		}
		if rec.OfferTitle != "" {
			b.titles[rec.OfferTitle] = struct{}{}
		}
	}

	groups := make([]Group, 0, len(buckets))
	for ref, b := range buckets {
		g := Group{PaymentReference: ref}
		for id := range b.ids {
			g.PaymentIDs = append(g.PaymentIDs, id)
		}
		for title := range b.titles {
			g.OfferTitles = append(g.OfferTitles, title)
		}
		sort.Slice(g.PaymentIDs, func(i, j int) bool { return g.PaymentIDs[i] < g.PaymentIDs[j] })
		sort.Strings(g.OfferTitles)
		groups = append(groups, g)
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].PaymentReference < groups[j].PaymentReference })
	return groups
}
