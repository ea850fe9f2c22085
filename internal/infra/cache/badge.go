package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const lastSeenTTL = 30 * 24 * time.Hour

// BadgeStore keeps each admin's last-seen activity snapshot in redis.
// A missing key reads as the zero snapshot.
type BadgeStore struct {
	client *redis.Client
}

func NewBadgeStore(client *redis.Client) *BadgeStore {
	return &BadgeStore{client: client}
}

func lastSeenKey(adminID int64) string {
	return "annulations:last_seen:" + strconv.FormatInt(adminID, 10)
}

func (s *BadgeStore) LastSeen(ctx context.Context, adminID int64) (queries.ActivitySnapshot, error) {
	raw, err := s.client.Get(ctx, lastSeenKey(adminID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return queries.ActivitySnapshot{}, nil
		}
		return queries.ActivitySnapshot{}, errs.Wrap(err, "failed to load last-seen snapshot")
	}

	var snap queries.ActivitySnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return queries.ActivitySnapshot{}, errs.Wrap(err, "failed to decode last-seen snapshot")
	}
	return snap, nil
}

func (s *BadgeStore) SetLastSeen(ctx context.Context, adminID int64, snap queries.ActivitySnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return errs.Wrap(err, "failed to encode last-seen snapshot")
	}
	if err := s.client.Set(ctx, lastSeenKey(adminID), raw, lastSeenTTL).Err(); err != nil {
		return errs.Wrap(err, "failed to store last-seen snapshot")
	}
	return nil
}
