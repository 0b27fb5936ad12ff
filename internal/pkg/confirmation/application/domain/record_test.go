package confirmation

import (
	"testing"
	"time"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"confirmed", StatusConfirmed, false},
		{"declined", StatusDeclined, false},
		{"maybe", StatusMaybe, false},
		{"pending", StatusPending, false},
		{" Confirmed ", StatusConfirmed, false},
		{"yes", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseStatus(%q): want error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseStatus(%q) = (%q, %v), want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestApplyStatusStampsConfirmedAt(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	var rec Record

	rec.ApplyStatus(StatusConfirmed, now)
	if rec.Status != StatusConfirmed {
		t.Errorf("Status = %q", rec.Status)
	}
	if rec.ConfirmedAt == nil || !rec.ConfirmedAt.Equal(now) {
		t.Errorf("ConfirmedAt = %v, want %v", rec.ConfirmedAt, now)
	}

	// Any other transition clears the stamp.
	rec.ApplyStatus(StatusMaybe, now.Add(time.Hour))
	if rec.Status != StatusMaybe {
		t.Errorf("Status = %q", rec.Status)
	}
	if rec.ConfirmedAt != nil {
		t.Errorf("ConfirmedAt = %v, want nil after leaving confirmed", rec.ConfirmedAt)
	}
}

func TestApplyStatusLeavesReminderMarkerAlone(t *testing.T) {
	sentAt := time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)
	rec := Record{ReminderSentAt: &sentAt}

	for _, st := range []Status{StatusConfirmed, StatusDeclined, StatusMaybe, StatusPending} {
		rec.ApplyStatus(st, time.Now())
		if rec.ReminderSentAt == nil || !rec.ReminderSentAt.Equal(sentAt) {
			t.Fatalf("ReminderSentAt changed on transition to %q", st)
		}
	}
}

func TestReminderSent(t *testing.T) {
	var nilRec *Record
	if nilRec.ReminderSent() {
		t.Error("nil record must read as not reminded")
	}
	if (&Record{}).ReminderSent() {
		t.Error("unset marker must read as not reminded")
	}
	now := time.Now()
	if !(&Record{ReminderSentAt: &now}).ReminderSent() {
		t.Error("set marker must read as reminded")
	}
}
