package notification

import "time"

// Message is the channel-agnostic content of one session reminder.
// Each channel renders the fields it needs: push uses Title/Body/Link,
// email renders the full session card.
type Message struct {
	SessionID    string
	SessionTitle string
	SportName    string
	Location     string
	StartTime    time.Time

	Title string // notification headline
	Body  string // short text, push body
	Link  string // deep link back into the session detail
}

// Recipient identifies where a message may be delivered.
// Email may be empty; the push channel resolves subscriptions by ProfileID.
type Recipient struct {
	ProfileID string
	FirstName string
	Email     string
}
