package reminder

import (
	"context"
	"errors"

	confirmrepo "github.com/TrixIts/pickup/internal/pkg/confirmation/persistence/repository/port"
)

// Filter decides whether a (session, participant) pair is due for a reminder.
// The persisted reminder marker is the sole dedup mechanism: a pair with no
// record, or a record whose marker is unset, is eligible; a set marker skips
// the pair with no secondary check against channel state.
type Filter struct {
	Store ConfirmationStore
}

func NewFilter(store ConfirmationStore) *Filter {
	return &Filter{Store: store}
}

// Eligible reports whether the pair should receive a reminder.
func (f *Filter) Eligible(ctx context.Context, sessionID string, profileID string) (bool, error) {
	rec, err := f.Store.Get(ctx, sessionID, profileID)
	if errors.Is(err, confirmrepo.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return !rec.ReminderSent(), nil
}
