package notification

import "time"

// PushSubscription is one browser push endpoint belonging to a user.
// A user may hold several (one per device); rows are keyed by endpoint.
type PushSubscription struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Endpoint  string    `db:"endpoint"`
	P256dh    string    `db:"p256dh"`
	Auth      string    `db:"auth"`
	CreatedAt time.Time `db:"created_at"`
}
