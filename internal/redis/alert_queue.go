package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"safesignal/internal/domain"
	"safesignal/pkg/e"

	"github.com/redis/go-redis/v9"
)

// AlertQueue carries contact-alert payloads from the request pipeline
// to the background sender. LPUSH on the request side, BRPOP on the
// worker side.
type AlertQueue struct {
	client *redis.Client
	key    string
}

func NewAlertQueue(client *redis.Client, key string) *AlertQueue {
	return &AlertQueue{client: client, key: key}
}

func (q *AlertQueue) Enqueue(ctx context.Context, payload domain.ContactAlertPayload) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *AlertQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.ContactAlertPayload, error) {
	var p domain.ContactAlertPayload

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return p, e.ErrQueueEmpty
		}
		return p, err
	}
	if len(res) < 2 {
		return p, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &p); err != nil {
		return p, err
	}
	return p, nil
}
