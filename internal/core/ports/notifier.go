package ports

import "context"

// Notifier delivers a fire-and-forget message about a domain event.
// Implementations must never block the business operation that triggered
// the notification; failures are logged and swallowed.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}
