// Package realtime broadcasts order events over Redis pub/sub. Tracking
// screens subscribe to per-order channels; a broadcast with no subscribers
// is not an error.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisBroadcaster publishes events to Redis channels.
type RedisBroadcaster struct {
	client *redis.Client
}

// NewRedisBroadcaster creates a broadcaster on an established Redis client.
func NewRedisBroadcaster(client *redis.Client) *RedisBroadcaster {
	return &RedisBroadcaster{client: client}
}

// Publish sends the JSON-encoded event to every subscriber of the channel.
func (b *RedisBroadcaster) Publish(ctx context.Context, channel string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event for %s: %w", channel, err)
	}

	if err := b.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}

	return nil
}
