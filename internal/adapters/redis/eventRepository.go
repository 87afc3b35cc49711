package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Provider webhooks are at-least-once; processed event IDs are remembered
// long enough to outlive any plausible redelivery window.
const processedEventTTL = 24 * time.Hour

type EventRepositoryRedis struct {
	Client *redis.Client
}

func NewEventRepositoryRedis(client *redis.Client) *EventRepositoryRedis {
	return &EventRepositoryRedis{
		Client: client,
	}
}

func (r *EventRepositoryRedis) Seen(ctx context.Context, eventID string) (bool, error) {
	n, err := r.Client.Exists(ctx, eventKey(eventID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *EventRepositoryRedis) MarkProcessed(ctx context.Context, eventID string) error {
	return r.Client.Set(ctx, eventKey(eventID), 1, processedEventTTL).Err()
}

func eventKey(eventID string) string { return "webhook:event:" + eventID }
