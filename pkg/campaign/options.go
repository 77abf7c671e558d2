package campaign

import (
	"log/slog"
	"time"
)

// Option configures the campaign driver.
type Option func(*Campaign)

// WithLogger sets the logger for campaign progress output.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(c *Campaign) {
		if l != nil {
			c.log = l
		}
	}
}

// WithSleepFunc replaces the pacing sleep between sends.
// Defaults to time.Sleep. Intended for tests.
func WithSleepFunc(fn func(time.Duration)) Option {
	return func(c *Campaign) {
		if fn != nil {
			c.sleep = fn
		}
	}
}
