package reminder

import "time"

// Window is the lead-time range in which a session becomes reminder-eligible,
// expressed as offsets from "now". Both bounds are inclusive.
type Window struct {
	Min time.Duration
	Max time.Duration
}

// Config is the explicit configuration handed to the orchestrator and the
// trigger endpoint at construction. Channel credentials live with their
// channel adapters; this struct only carries what the job itself needs.
type Config struct {
	Window          Window
	ServiceKey      string        // privileged bearer credential for the trigger endpoint
	CronSecret      string        // shared secret accepted via X-Cron-Secret
	BaseURL         string        // public site root, used for email deep links
	DeliveryTimeout time.Duration // per-delivery budget so one hung call cannot stall the batch
}

// DefaultConfig returns the production defaults: remind for sessions starting
// between 24 and 48 hours from now.
func DefaultConfig() Config {
	return Config{
		Window:          Window{Min: 24 * time.Hour, Max: 48 * time.Hour},
		DeliveryTimeout: 10 * time.Second,
	}
}
