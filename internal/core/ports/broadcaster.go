package ports

import "context"

// Broadcaster publishes order events to realtime subscribers such as the
// customer's tracking screen. Like notifications, broadcasts are best-effort
// and never fail the triggering operation.
type Broadcaster interface {
	// Publish sends the event payload to every subscriber of the channel.
	Publish(ctx context.Context, channel string, event any) error
}
