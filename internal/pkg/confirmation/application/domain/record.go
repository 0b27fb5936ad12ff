package confirmation

import (
	"errors"
	"strings"
	"time"
)

// Status is a participant's attendance answer for one session.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDeclined  Status = "declined"
	StatusMaybe     Status = "maybe"
)

// ErrInvalidStatus rejects attendance values outside the four known states.
var ErrInvalidStatus = errors.New("confirmation: status must be pending, confirmed, declined, or maybe")

// ParseStatus validates and normalizes a user-supplied status string.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusConfirmed, StatusDeclined, StatusMaybe:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Record is the per-(session, participant) attendance and reminder state.
// A pair with no persisted record reads as pending with both timestamps unset.
//
// ReminderSentAt is monotonic: set at most once by the reminder job and never
// cleared or overwritten. It is the sole dedup token against double reminders.
type Record struct {
	ID             string     `db:"id"`
	SessionID      string     `db:"session_id"`
	ProfileID      string     `db:"profile_id"`
	Status         Status     `db:"status"`
	ConfirmedAt    *time.Time `db:"confirmed_at"`
	ReminderSentAt *time.Time `db:"reminder_sent_at"`
}

// ApplyStatus transitions the record to status. Participants may flip between
// states freely; there is no ordering constraint. ConfirmedAt is stamped only
// on a transition to confirmed and cleared by any other write.
func (r *Record) ApplyStatus(status Status, now time.Time) {
	r.Status = status
	if status == StatusConfirmed {
		t := now.UTC()
		r.ConfirmedAt = &t
	} else {
		r.ConfirmedAt = nil
	}
}

// ReminderSent reports whether the dedup marker is set.
func (r *Record) ReminderSent() bool {
	return r != nil && r.ReminderSentAt != nil
}
