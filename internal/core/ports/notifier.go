package ports

import "context"

// Notifier delivers push notifications to a single device. Notification
// failures never fail the business operation that triggered them; callers
// log and move on.
type Notifier interface {
	// Notify sends a notification to the device identified by token.
	// An empty token is a no-op.
	Notify(ctx context.Context, token, title, body string, data map[string]string) error
}
