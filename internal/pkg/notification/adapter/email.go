package adapter

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"

	notification "github.com/TrixIts/pickup/internal/pkg/notification/application/domain"
	channelport "github.com/TrixIts/pickup/internal/pkg/notification/application/port"
)

// EmailConfig holds Resend credentials and sender identity.
// An empty APIKey disables the channel entirely.
type EmailConfig struct {
	APIKey  string
	From    string // e.g. "Pickup <noreply@pickup.app>"
	BaseURL string // public site root for confirm/decline links
}

// Enabled reports whether the channel may run.
func (c EmailConfig) Enabled() bool { return c.APIKey != "" }

// emailSender is the slice of the Resend client this channel uses; swapped in tests.
type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// EmailChannel delivers a templated HTML reminder with confirm/decline links.
type EmailChannel struct {
	sender  emailSender
	from    string
	baseURL string
	tmpl    *template.Template
}

func NewEmailChannel(cfg EmailConfig) *EmailChannel {
	client := resend.NewClient(cfg.APIKey)
	return &EmailChannel{
		sender:  client.Emails,
		from:    cfg.From,
		baseURL: cfg.BaseURL,
		tmpl:    reminderTemplate,
	}
}

// Ensure interface compliance at compile time
var _ channelport.Channel = (*EmailChannel)(nil)

func (e *EmailChannel) Name() string { return "email" }

type reminderEmailData struct {
	FirstName  string
	Title      string
	Date       string
	Time       string
	Location   string
	Sport      string
	ConfirmURL string
	DeclineURL string
}

func (e *EmailChannel) Deliver(ctx context.Context, msg notification.Message, rcpt notification.Recipient) (int, error) {
	if rcpt.Email == "" {
		return 0, nil
	}

	name := rcpt.FirstName
	if name == "" {
		name = "there"
	}
	sport := msg.SportName
	if sport == "" {
		sport = "Sport"
	}
	data := reminderEmailData{
		FirstName:  name,
		Title:      msg.SessionTitle,
		Date:       msg.StartTime.Format("Monday, Jan 2"),
		Time:       msg.StartTime.Format("03:04 PM"),
		Location:   msg.Location,
		Sport:      sport,
		ConfirmURL: fmt.Sprintf("%s/pickup/%s?confirm=yes", e.baseURL, msg.SessionID),
		DeclineURL: fmt.Sprintf("%s/pickup/%s?confirm=no", e.baseURL, msg.SessionID),
	}

	var body bytes.Buffer
	if err := e.tmpl.Execute(&body, data); err != nil {
		return 0, fmt.Errorf("email: render template: %w", err)
	}

	_, err := e.sender.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    e.from,
		To:      []string{rcpt.Email},
		Subject: fmt.Sprintf("🏆 Game Reminder: %s on %s", msg.SessionTitle, data.Date),
		Html:    body.String(),
	})
	if err != nil {
		return 0, fmt.Errorf("email: send to %s: %w", rcpt.ProfileID, err)
	}
	return 1, nil
}

var reminderTemplate = template.Must(template.New("reminder").Parse(`
<div style="font-family: system-ui, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #10b981;">Hey {{.FirstName}}! 👋</h1>
  <p style="font-size: 18px; color: #333;">
    You have a game coming up:
  </p>
  <div style="background: #f4f4f5; border-left: 4px solid #10b981; padding: 16px; margin: 16px 0; border-radius: 4px;">
    <h2 style="margin: 0 0 8px 0; color: #18181b;">{{.Title}}</h2>
    <p style="margin: 4px 0; color: #52525b;">📅 {{.Date}} at {{.Time}}</p>
    <p style="margin: 4px 0; color: #52525b;">📍 {{.Location}}</p>
    <p style="margin: 4px 0; color: #52525b;">⚽ {{.Sport}}</p>
  </div>
  <p style="font-size: 16px; color: #333;">
    <strong>Can you make it?</strong> Please confirm your attendance so the host knows who to expect.
  </p>
  <div style="margin: 24px 0;">
    <a href="{{.ConfirmURL}}"
       style="background: #10b981; color: white; text-decoration: none; padding: 12px 24px; border-radius: 8px; font-weight: bold; margin-right: 8px;">
      ✓ I'm Coming
    </a>
    <a href="{{.DeclineURL}}"
       style="background: #ef4444; color: white; text-decoration: none; padding: 12px 24px; border-radius: 8px; font-weight: bold;">
      ✗ Can't Make It
    </a>
  </div>
  <p style="color: #71717a; font-size: 14px;">See you on the field! 🏃‍♂️</p>
</div>
`))
