package queries

import (
	"context"
	"log/slog"
)

// ActivitySnapshot is the cancellation activity visible to an admin at one
// instant: how many requests are pending and the newest request id.
type ActivitySnapshot struct {
	PendingCount  int64 `json:"pending_count"`
	LastRequestID int64 `json:"last_request_id"`
}

// NewSince computes the notification badge delta between two snapshots.
// The count is best effort: it never goes negative, and requests resolved
// between the two snapshots make it drift low rather than high.
func NewSince(prev, curr ActivitySnapshot) int64 {
	if curr.LastRequestID <= prev.LastRequestID {
		return 0
	}
	delta := curr.PendingCount - prev.PendingCount
	if delta < 0 {
		return 0
	}
	return delta
}

type BadgeView struct {
	NewCount     int64 `json:"new_count"`
	PendingCount int64 `json:"pending_count"`
}

type NotificationQueries interface {
	Activity(ctx context.Context) (ActivitySnapshot, error)
	// Badge returns the delta since the admin last looked and advances the
	// last-seen marker.
	Badge(ctx context.Context, adminID int64) (BadgeView, error)
}

type ActivityReadStore interface {
	CurrentActivity(ctx context.Context) (ActivitySnapshot, error)
}

// LastSeenStore remembers, per admin, the snapshot taken on the previous
// badge read. Losing it only resets the delta, so failures are tolerated.
type LastSeenStore interface {
	LastSeen(ctx context.Context, adminID int64) (ActivitySnapshot, error)
	SetLastSeen(ctx context.Context, adminID int64, snap ActivitySnapshot) error
}

type notificationQueriesImpl struct {
	store    ActivityReadStore
	lastSeen LastSeenStore
}

func NewNotificationQueries(store ActivityReadStore, lastSeen LastSeenStore) NotificationQueries {
	return &notificationQueriesImpl{store: store, lastSeen: lastSeen}
}

func (q *notificationQueriesImpl) Activity(ctx context.Context) (ActivitySnapshot, error) {
	return q.store.CurrentActivity(ctx)
}

func (q *notificationQueriesImpl) Badge(ctx context.Context, adminID int64) (BadgeView, error) {
	curr, err := q.store.CurrentActivity(ctx)
	if err != nil {
		return BadgeView{}, err
	}

	prev, err := q.lastSeen.LastSeen(ctx, adminID)
	if err != nil {
		slog.Warn("failed to load last-seen snapshot", "admin_id", adminID, "error", err.Error())
		prev = ActivitySnapshot{}
	}

	if err := q.lastSeen.SetLastSeen(ctx, adminID, curr); err != nil {
		slog.Warn("failed to store last-seen snapshot", "admin_id", adminID, "error", err.Error())
	}

	return BadgeView{
		NewCount:     NewSince(prev, curr),
		PendingCount: curr.PendingCount,
	}, nil
}
