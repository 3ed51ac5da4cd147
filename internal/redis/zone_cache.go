package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"safesignal/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ZoneCache holds the active-zone snapshot so the hot assess/SOS path
// does not hit postgres for every request. A miss returns (nil, false)
// and the caller falls through to the store.
type ZoneCache struct {
	client *goredis.Client
	key    string
}

func NewZoneCache(r *Redis) *ZoneCache {
	return &ZoneCache{
		client: r.Client,
		key:    "zones:active",
	}
}

func (c *ZoneCache) Get(ctx context.Context) ([]domain.RiskZone, bool, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var zones []domain.RiskZone
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, false, err
	}

	return zones, true, nil
}

func (c *ZoneCache) Set(ctx context.Context, zones []domain.RiskZone, ttl time.Duration) error {
	b, err := json.Marshal(zones)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

func (c *ZoneCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
