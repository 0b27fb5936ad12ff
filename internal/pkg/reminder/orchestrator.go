package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	confirmation "github.com/TrixIts/pickup/internal/pkg/confirmation/application/domain"
	notification "github.com/TrixIts/pickup/internal/pkg/notification/application/domain"
	channelport "github.com/TrixIts/pickup/internal/pkg/notification/application/port"
	session "github.com/TrixIts/pickup/internal/pkg/session/application/domain"
)

// Store supplies the sessions due for a reminder, with each session's roster
// already resolved to deliverable recipients.
type Store interface {
	// ListDueSessions returns sessions whose start time falls inside [from, to],
	// both bounds inclusive, soonest first.
	ListDueSessions(ctx context.Context, from, to time.Time) ([]DueSession, error)
}

// ConfirmationStore is the slice of the confirmation repository the job needs.
// Satisfied by the confirmation repository adapter.
type ConfirmationStore interface {
	Get(ctx context.Context, sessionID string, profileID string) (*confirmation.Record, error)
	MarkReminderSent(ctx context.Context, sessionID string, profileID string, at time.Time) (created bool, err error)
}

// DueSession pairs one session with its roster recipients.
type DueSession struct {
	Session      session.Session
	Participants []notification.Recipient
}

// Summary is the structured result of one orchestrator run. It feeds
// operational logging and the trigger endpoint's response, nothing else.
type Summary struct {
	SessionsProcessed    int      `json:"sessions_processed"`
	PushSent             int      `json:"push_notifications_sent"`
	EmailsSent           int      `json:"emails_sent"`
	ConfirmationsUpdated int      `json:"confirmations_updated"`
	Skipped              int      `json:"skipped_already_sent"`
	Errors               []string `json:"errors"`
}

// Orchestrator is the scheduled entry point of the reminder job. One run
// selects sessions inside the lead-time window, filters each roster pair
// through the dedup check, hands eligible pairs to every configured channel,
// and stamps the reminder marker whether or not delivery succeeded.
//
// Delivery is at-most-once: a pair whose delivery failed is still marked and
// will not be retried by later runs.
type Orchestrator struct {
	store    Store
	confirms ConfirmationStore
	filter   *Filter
	channels []channelport.Channel
	cfg      Config
	log      *slog.Logger

	// now is swapped in tests to pin the window.
	now func() time.Time
}

func NewOrchestrator(store Store, confirms ConfirmationStore, channels []channelport.Channel, cfg Config, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	if cfg.DeliveryTimeout <= 0 {
		cfg.DeliveryTimeout = DefaultConfig().DeliveryTimeout
	}
	return &Orchestrator{
		store:    store,
		confirms: confirms,
		filter:   NewFilter(confirms),
		channels: channels,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// Execute runs one reminder pass. Only the initial session query is fatal;
// every later failure is collected into the summary and processing continues.
func (o *Orchestrator) Execute(ctx context.Context) (*Summary, error) {
	now := o.now().UTC()
	from := now.Add(o.cfg.Window.Min)
	to := now.Add(o.cfg.Window.Max)

	due, err := o.store.ListDueSessions(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("reminder: query due sessions: %w", err)
	}
	o.log.Info("reminder run started", "sessions", len(due), "window_from", from, "window_to", to)

	sum := &Summary{Errors: []string{}}
	for _, d := range due {
		sum.SessionsProcessed++
		msg := buildMessage(d.Session)

		for _, p := range d.Participants {
			eligible, err := o.filter.Eligible(ctx, d.Session.ID, p.ProfileID)
			if err != nil {
				// Without a trustworthy dedup read we neither send nor mark;
				// the next run picks the pair up again.
				sum.Errors = append(sum.Errors, fmt.Sprintf("eligibility check for %s: %v", p.ProfileID, err))
				continue
			}
			if !eligible {
				sum.Skipped++
				continue
			}

			for _, ch := range o.channels {
				cctx, cancel := context.WithTimeout(ctx, o.cfg.DeliveryTimeout)
				sent, err := ch.Deliver(cctx, msg, p)
				cancel()

				switch ch.Name() {
				case "push":
					sum.PushSent += sent
				case "email":
					sum.EmailsSent += sent
				}
				if err != nil {
					sum.Errors = append(sum.Errors, fmt.Sprintf("%s error for %s: %v", ch.Name(), p.ProfileID, err))
				}
			}

			// Stamp the marker regardless of delivery outcome.
			if _, err := o.confirms.MarkReminderSent(ctx, d.Session.ID, p.ProfileID, o.now().UTC()); err != nil {
				sum.Errors = append(sum.Errors, fmt.Sprintf("mark reminder for %s: %v", p.ProfileID, err))
				continue
			}
			sum.ConfirmationsUpdated++
		}
	}

	o.log.Info("reminder run finished",
		"sessions_processed", sum.SessionsProcessed,
		"push_sent", sum.PushSent,
		"emails_sent", sum.EmailsSent,
		"confirmations_updated", sum.ConfirmationsUpdated,
		"skipped", sum.Skipped,
		"errors", len(sum.Errors),
	)
	return sum, nil
}

// buildMessage renders the channel-agnostic reminder content for one session.
// The deep link is site-relative; the email channel resolves it against its
// configured base URL.
func buildMessage(s session.Session) notification.Message {
	date := s.StartTime.Format("Monday, Jan 2")
	clock := s.StartTime.Format("03:04 PM")
	return notification.Message{
		SessionID:    s.ID,
		SessionTitle: s.Title,
		SportName:    s.SportName,
		Location:     s.Location,
		StartTime:    s.StartTime,
		Title:        fmt.Sprintf("Game Reminder: %s", s.Title),
		Body:         fmt.Sprintf("Are you playing %s at %s? Tap to confirm.", date, clock),
		Link:         fmt.Sprintf("/pickup/%s", s.ID),
	}
}
