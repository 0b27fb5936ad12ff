package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"

	notification "github.com/TrixIts/pickup/internal/pkg/notification/application/domain"
	channelport "github.com/TrixIts/pickup/internal/pkg/notification/application/port"
	repository "github.com/TrixIts/pickup/internal/pkg/notification/persistence/repository/port"
)

// PushConfig holds the VAPID key pair used to sign web push requests.
type PushConfig struct {
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	Subject         string // mailto: contact required by the push services
	TTL             int    // seconds the push service may hold the message
}

// Enabled reports whether both VAPID keys are present.
func (c PushConfig) Enabled() bool {
	return c.VAPIDPublicKey != "" && c.VAPIDPrivateKey != ""
}

// sendFunc matches webpush.SendNotificationWithContext; swapped in tests.
type sendFunc func(ctx context.Context, message []byte, s *webpush.Subscription, options *webpush.Options) (*http.Response, error)

// PushChannel delivers reminders to every push subscription a user holds.
// Each device is attempted independently; an endpoint reported permanently
// gone (404/410) is deleted on the spot, any other failure keeps the row.
type PushChannel struct {
	subs repository.SubscriptionRepository
	cfg  PushConfig
	send sendFunc
}

func NewPushChannel(subs repository.SubscriptionRepository, cfg PushConfig) *PushChannel {
	return &PushChannel{
		subs: subs,
		cfg:  cfg,
		send: webpush.SendNotificationWithContext,
	}
}

// Ensure interface compliance at compile time
var _ channelport.Channel = (*PushChannel)(nil)

func (p *PushChannel) Name() string { return "push" }

// pushPayload is the JSON shape the service worker expects.
type pushPayload struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Icon  string   `json:"icon"`
	Badge string   `json:"badge"`
	Data  pushData `json:"data"`
}

type pushData struct {
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
	Action    string `json:"action"`
}

func (p *PushChannel) Deliver(ctx context.Context, msg notification.Message, rcpt notification.Recipient) (int, error) {
	subs, err := p.subs.ListByUser(ctx, rcpt.ProfileID)
	if err != nil {
		return 0, fmt.Errorf("push: list subscriptions for %s: %w", rcpt.ProfileID, err)
	}
	if len(subs) == 0 {
		return 0, nil
	}

	payload, err := json.Marshal(pushPayload{
		Title: msg.Title,
		Body:  msg.Body,
		Icon:  "/icon-192x192.png",
		Badge: "/badge-72x72.png",
		Data: pushData{
			URL:       msg.Link,
			SessionID: msg.SessionID,
			Action:    "confirm_attendance",
		},
	})
	if err != nil {
		return 0, fmt.Errorf("push: marshal payload: %w", err)
	}

	opts := &webpush.Options{
		Subscriber:      p.cfg.Subject,
		VAPIDPublicKey:  p.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: p.cfg.VAPIDPrivateKey,
		TTL:             p.cfg.TTL,
	}

	sent := 0
	var errs []error
	for _, sub := range subs {
		target := &webpush.Subscription{
			Endpoint: sub.Endpoint,
			Keys:     webpush.Keys{P256dh: sub.P256dh, Auth: sub.Auth},
		}
		resp, err := p.send(ctx, payload, target, opts)
		if resp != nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("push: endpoint %s: %w", sub.Endpoint, err))
			continue
		}

		switch {
		case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
			// Endpoint is permanently dead; clean up and move on. The cleanup
			// itself is a side effect, not a delivery error.
			_ = p.subs.DeleteByEndpoint(ctx, sub.Endpoint)
		case resp.StatusCode >= 400:
			errs = append(errs, fmt.Errorf("push: endpoint %s: status %d", sub.Endpoint, resp.StatusCode))
		default:
			sent++
		}
	}
	return sent, errors.Join(errs...)
}
