package adapter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/resend/resend-go/v2"

	notification "github.com/TrixIts/pickup/internal/pkg/notification/application/domain"
)

type fakeEmailSender struct {
	requests []*resend.SendEmailRequest
	err      error
}

func (f *fakeEmailSender) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.requests = append(f.requests, params)
	if f.err != nil {
		return nil, f.err
	}
	return &resend.SendEmailResponse{Id: "re_123"}, nil
}

func newTestEmailChannel(sender emailSender) *EmailChannel {
	ch := NewEmailChannel(EmailConfig{
		APIKey:  "re_test",
		From:    "Pickup <noreply@pickup.app>",
		BaseURL: "https://pickup.app",
	})
	ch.sender = sender
	return ch
}

func TestEmailDeliverRendersReminder(t *testing.T) {
	sender := &fakeEmailSender{}
	ch := newTestEmailChannel(sender)

	msg := notification.Message{
		SessionID:    "s1",
		SessionTitle: "Sunday Footy",
		SportName:    "Football",
		Location:     "Central Park",
		StartTime:    time.Date(2025, 6, 14, 18, 30, 0, 0, time.UTC),
	}
	rcpt := notification.Recipient{ProfileID: "p1", FirstName: "Alex", Email: "alex@example.com"}

	sent, err := ch.Deliver(context.Background(), msg, rcpt)
	if err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	if sent != 1 {
		t.Errorf("sent = %d, want 1", sent)
	}
	if len(sender.requests) != 1 {
		t.Fatalf("requests = %d, want 1", len(sender.requests))
	}

	req := sender.requests[0]
	if req.To[0] != "alex@example.com" {
		t.Errorf("To = %v", req.To)
	}
	if want := "🏆 Game Reminder: Sunday Footy on Saturday, Jun 14"; req.Subject != want {
		t.Errorf("Subject = %q, want %q", req.Subject, want)
	}
	for _, fragment := range []string{
		"Hey Alex!",
		"Sunday Footy",
		"Saturday, Jun 14 at 06:30 PM",
		"Central Park",
		"https://pickup.app/pickup/s1?confirm=yes",
		"https://pickup.app/pickup/s1?confirm=no",
	} {
		if !strings.Contains(req.Html, fragment) {
			t.Errorf("rendered HTML missing %q", fragment)
		}
	}
}

func TestEmailDeliverSkipsMissingAddress(t *testing.T) {
	sender := &fakeEmailSender{}
	ch := newTestEmailChannel(sender)

	sent, err := ch.Deliver(context.Background(), notification.Message{SessionID: "s1"}, notification.Recipient{ProfileID: "p1"})
	if err != nil || sent != 0 {
		t.Errorf("Deliver = (%d, %v), want (0, nil)", sent, err)
	}
	if len(sender.requests) != 0 {
		t.Errorf("requests = %d, want none without an address", len(sender.requests))
	}
}

func TestEmailDeliverPropagatesSendFailure(t *testing.T) {
	sender := &fakeEmailSender{err: errors.New("rate limited")}
	ch := newTestEmailChannel(sender)

	rcpt := notification.Recipient{ProfileID: "p1", Email: "alex@example.com"}
	sent, err := ch.Deliver(context.Background(), notification.Message{SessionID: "s1"}, rcpt)
	if err == nil {
		t.Fatal("Deliver: want error")
	}
	if sent != 0 {
		t.Errorf("sent = %d, want 0", sent)
	}
}

func TestEmailDeliverDefaultsGreetingName(t *testing.T) {
	sender := &fakeEmailSender{}
	ch := newTestEmailChannel(sender)

	rcpt := notification.Recipient{ProfileID: "p1", Email: "alex@example.com"}
	if _, err := ch.Deliver(context.Background(), notification.Message{SessionID: "s1"}, rcpt); err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	if !strings.Contains(sender.requests[0].Html, "Hey there!") {
		t.Error("rendered HTML should greet with the fallback name")
	}
}

func TestEmailConfigEnabled(t *testing.T) {
	if (EmailConfig{}).Enabled() {
		t.Error("missing API key must disable the channel")
	}
	if !(EmailConfig{APIKey: "re_test"}).Enabled() {
		t.Error("API key must enable the channel")
	}
}
