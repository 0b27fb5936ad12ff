package repository

import (
	"context"
	"errors"
	"time"

	confirmation "github.com/TrixIts/pickup/internal/pkg/confirmation/application/domain"
)

// ErrNotFound reports that no confirmation record exists for the pair.
var ErrNotFound = errors.New("confirmation repository: record not found")

// ConfirmationRepository defines persistence operations for confirmation records.
type ConfirmationRepository interface {
	// Get returns the record for (sessionID, profileID) or ErrNotFound.
	Get(ctx context.Context, sessionID string, profileID string) (*confirmation.Record, error)

	// SetStatus upserts the attendance status for the pair. confirmedAt is
	// written as given (nil clears it); the reminder marker is never touched.
	SetStatus(ctx context.Context, sessionID string, profileID string, status confirmation.Status, confirmedAt *time.Time) error

	// MarkReminderSent stamps the reminder marker for the pair, creating a
	// pending record when none exists. An already-set marker is left as is.
	// Returns true when a new record was created by this call.
	MarkReminderSent(ctx context.Context, sessionID string, profileID string, at time.Time) (created bool, err error)
}
