package resend

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/Klavis-AI/email-automation/pkg/mailer"
)

// Sender implements mailer.Sender and mailer.BatchSender using the
// Resend API.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a new Resend sender.
func New(cfg Config) *Sender {
	return &Sender{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}
}

// Send implements mailer.Sender. It fails with mailer.ErrMissingAPIKey
// before any network call when no API key is configured, and returns the
// provider-assigned message ID on success.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	if s.config.APIKey == "" {
		return "", mailer.ErrMissingAPIKey
	}
	if len(email.To) == 0 {
		return "", mailer.ErrNoRecipient
	}

	req := buildRequest(email.From, email.To, email.Subject, email.Body, email.ReplyTo)

	if len(email.Attachments) > 0 {
		req.Attachments = convertAttachments(email.Attachments)
	}

	sent, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", errors.Join(mailer.ErrSendFailed, fmt.Errorf("resend: %w", err))
	}

	return sent.Id, nil
}

// SendBatch implements mailer.BatchSender. Every recipient gets its own
// message with the shared subject and body, submitted as one array to the
// batch endpoint. The batch endpoint does not accept attachments.
func (s *Sender) SendBatch(ctx context.Context, b mailer.Broadcast) ([]mailer.Result, error) {
	if s.config.APIKey == "" {
		return nil, mailer.ErrMissingAPIKey
	}
	if len(b.To) == 0 {
		return nil, mailer.ErrNoRecipient
	}

	batch := make([]*resend.SendEmailRequest, len(b.To))
	for i, to := range b.To {
		batch[i] = buildRequest(b.From, []string{to}, b.Subject, b.Body, b.ReplyTo)
	}

	sent, err := s.client.Batch.SendWithContext(ctx, batch)
	if err != nil {
		return nil, errors.Join(mailer.ErrSendFailed, fmt.Errorf("resend: batch: %w", err))
	}

	results := make([]mailer.Result, len(sent.Data))
	for i, item := range sent.Data {
		results[i] = mailer.Result{ID: item.Id}
	}
	return results, nil
}

// buildRequest constructs a provider request, filling Html or Text based
// on the body classification rule.
func buildRequest(from string, to []string, subject, body, replyTo string) *resend.SendEmailRequest {
	req := &resend.SendEmailRequest{
		From:    from,
		To:      to,
		Subject: subject,
	}

	if mailer.IsHTML(body) {
		req.Html = body
	} else {
		req.Text = body
	}

	if replyTo != "" {
		req.ReplyTo = replyTo
	}

	return req
}

func convertAttachments(attachments []mailer.Attachment) []*resend.Attachment {
	result := make([]*resend.Attachment, len(attachments))
	for i, a := range attachments {
		result[i] = &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
		}
	}
	return result
}
