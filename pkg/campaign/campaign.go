package campaign

import (
	"context"
	"io/fs"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Klavis-AI/email-automation/pkg/mailer"
	"github.com/Klavis-AI/email-automation/pkg/templates"
)

// Config describes one campaign run.
type Config struct {
	From        string              // Sender address, may include a display name
	Subject     string              // Subject shared by every message
	ReplyTo     string              // Optional reply-to address
	Recipients  []string            // Destination addresses, in send order
	Attachments []mailer.Attachment // Attached to every outgoing message
	Delay       time.Duration       // Pause between consecutive sends
	Templates   fs.FS               // Directory of HTML template files
}

// Campaign sends templated emails to a recipient list, rotating through
// the available templates in round-robin order.
type Campaign struct {
	sender mailer.Sender
	log    *slog.Logger
	sleep  func(time.Duration)
}

// New creates a campaign driver on top of the given sender.
func New(sender mailer.Sender, opts ...Option) *Campaign {
	c := &Campaign{
		sender: sender,
		log:    slog.New(slog.DiscardHandler),
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes the campaign: it loads the templates, assigns recipient i
// (0-based) the template at position i mod template count, and sends
// sequentially with the configured delay between sends. A failed send is
// recorded in that recipient's outcome and the run continues; the delay
// applies after every send except the last, success or failure alike.
//
// Run fails before any send is attempted when the recipient list is empty
// or when no templates can be loaded.
func (c *Campaign) Run(ctx context.Context, cfg Config) (*Summary, error) {
	if len(cfg.Recipients) == 0 {
		return nil, ErrNoRecipients
	}

	tmpls, err := templates.Load(cfg.Templates)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		RunID:      uuid.NewString(),
		Total:      len(cfg.Recipients),
		ByTemplate: make(map[int]int),
	}

	log := c.log.With(slog.String("run_id", summary.RunID))
	log.Info("starting campaign",
		slog.Int("recipients", len(cfg.Recipients)),
		slog.Int("templates", len(tmpls)),
		slog.Duration("delay", cfg.Delay))

	for i, recipient := range cfg.Recipients {
		tmplIdx := i % len(tmpls) // 0-based; outcomes report 1-based

		log.Info("sending email",
			slog.Int("position", i+1),
			slog.Int("total", len(cfg.Recipients)),
			slog.String("to", recipient),
			slog.Int("template", tmplIdx+1))

		id, err := c.sender.Send(ctx, &mailer.Email{
			From:        cfg.From,
			To:          []string{recipient},
			Subject:     cfg.Subject,
			Body:        tmpls[tmplIdx],
			ReplyTo:     cfg.ReplyTo,
			Attachments: cfg.Attachments,
		})

		outcome := Outcome{
			Recipient: recipient,
			Template:  tmplIdx + 1,
			ID:        id,
			Err:       err,
		}
		summary.record(outcome)

		if err != nil {
			log.Warn("send failed",
				slog.String("to", recipient),
				slog.Int("template", tmplIdx+1),
				slog.String("error", err.Error()))
		}

		// Fixed pacing for the provider rate limit, not adaptive backoff.
		// Applies even after a failed send, but never after the last one.
		if i < len(cfg.Recipients)-1 {
			c.sleep(cfg.Delay)
		}
	}

	log.Info("campaign completed",
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed))

	return summary, nil
}
