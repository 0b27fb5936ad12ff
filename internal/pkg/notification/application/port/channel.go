package port

import (
	"context"

	notification "github.com/TrixIts/pickup/internal/pkg/notification/application/domain"
)

// Channel delivers one message to one recipient over a single medium.
// Implementations are best-effort: partial success (some devices reached,
// some not) is reported through the sent count, with failures in the error.
// Channels must not depend on each other.
type Channel interface {
	// Name is a stable identifier used for summary counters ("push", "email").
	Name() string

	// Deliver attempts delivery and returns how many notifications went out.
	// A non-nil error never invalidates the sent count.
	Deliver(ctx context.Context, msg notification.Message, rcpt notification.Recipient) (sent int, err error)
}
