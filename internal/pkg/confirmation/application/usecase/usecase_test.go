package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	confirmation "github.com/TrixIts/pickup/internal/pkg/confirmation/application/domain"
	repository "github.com/TrixIts/pickup/internal/pkg/confirmation/persistence/repository/port"
)

type statusWrite struct {
	sessionID   string
	profileID   string
	status      confirmation.Status
	confirmedAt *time.Time
}

type fakeConfirmationRepo struct {
	records map[string]*confirmation.Record // sessionID+"/"+profileID
	writes  []statusWrite
	getErr  error
	setErr  error
}

func newFakeConfirmationRepo() *fakeConfirmationRepo {
	return &fakeConfirmationRepo{records: make(map[string]*confirmation.Record)}
}

func (f *fakeConfirmationRepo) Get(ctx context.Context, sessionID, profileID string) (*confirmation.Record, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	rec, ok := f.records[sessionID+"/"+profileID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return rec, nil
}

func (f *fakeConfirmationRepo) SetStatus(ctx context.Context, sessionID, profileID string, status confirmation.Status, confirmedAt *time.Time) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.writes = append(f.writes, statusWrite{sessionID, profileID, status, confirmedAt})
	return nil
}

func (f *fakeConfirmationRepo) MarkReminderSent(ctx context.Context, sessionID, profileID string, at time.Time) (bool, error) {
	return false, nil
}

type fakeRoster struct {
	members map[string]bool // sessionID+"/"+profileID
	err     error
}

func (f *fakeRoster) IsOnRoster(ctx context.Context, sessionID, profileID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.members[sessionID+"/"+profileID], nil
}

func TestUpdateStatusConfirmedStampsTimestamp(t *testing.T) {
	repo := newFakeConfirmationRepo()
	roster := &fakeRoster{members: map[string]bool{"s1/p1": true}}
	uc := NewUpdateStatusUseCase(repo, roster)

	status, err := uc.Execute(context.Background(), UpdateStatusInput{
		SessionID: "s1", ProfileID: "p1", Status: "confirmed",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if status != confirmation.StatusConfirmed {
		t.Errorf("status = %q", status)
	}
	if len(repo.writes) != 1 {
		t.Fatalf("writes = %d, want 1", len(repo.writes))
	}
	if repo.writes[0].confirmedAt == nil {
		t.Error("confirmed transition must stamp ConfirmedAt")
	}
}

func TestUpdateStatusOtherStatesClearTimestamp(t *testing.T) {
	for _, status := range []string{"declined", "maybe", "pending"} {
		repo := newFakeConfirmationRepo()
		roster := &fakeRoster{members: map[string]bool{"s1/p1": true}}
		uc := NewUpdateStatusUseCase(repo, roster)

		if _, err := uc.Execute(context.Background(), UpdateStatusInput{
			SessionID: "s1", ProfileID: "p1", Status: status,
		}); err != nil {
			t.Fatalf("Execute(%s): %v", status, err)
		}
		if repo.writes[0].confirmedAt != nil {
			t.Errorf("transition to %s must clear ConfirmedAt", status)
		}
	}
}

func TestUpdateStatusRejectsInvalidStatus(t *testing.T) {
	uc := NewUpdateStatusUseCase(newFakeConfirmationRepo(), &fakeRoster{})
	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		SessionID: "s1", ProfileID: "p1", Status: "definitely",
	})
	if !errors.Is(err, confirmation.ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestUpdateStatusRejectsNonParticipants(t *testing.T) {
	repo := newFakeConfirmationRepo()
	uc := NewUpdateStatusUseCase(repo, &fakeRoster{members: map[string]bool{}})

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		SessionID: "s1", ProfileID: "stranger", Status: "confirmed",
	})
	if !errors.Is(err, ErrNotOnRoster) {
		t.Errorf("err = %v, want ErrNotOnRoster", err)
	}
	if len(repo.writes) != 0 {
		t.Error("no write may happen for non-participants")
	}
}

func TestGetStatusMissingRecordReadsPending(t *testing.T) {
	uc := NewGetStatusUseCase(newFakeConfirmationRepo())

	rec, err := uc.Execute(context.Background(), GetStatusInput{SessionID: "s1", ProfileID: "p1"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if rec.Status != confirmation.StatusPending {
		t.Errorf("status = %q, want pending", rec.Status)
	}
	if rec.ConfirmedAt != nil || rec.ReminderSentAt != nil {
		t.Error("missing record must read with both timestamps unset")
	}
}

func TestGetStatusPersistenceFailure(t *testing.T) {
	repo := newFakeConfirmationRepo()
	repo.getErr = errors.New("db down")
	uc := NewGetStatusUseCase(repo)

	if _, err := uc.Execute(context.Background(), GetStatusInput{SessionID: "s1", ProfileID: "p1"}); !errors.Is(err, ErrPersistence) {
		t.Errorf("err = %v, want ErrPersistence", err)
	}
}
