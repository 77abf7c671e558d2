package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

// DevSender implements Sender for local development. It saves each message
// as an HTML file plus a JSON metadata file in a directory instead of
// calling the email provider, so a full campaign can be dry-run offline.
type DevSender struct {
	dir string
	seq atomic.Int64
}

// NewDevSender creates a development sender that writes emails to dir.
// The directory is created on the first send if it doesn't exist.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

// devMetadata is the sidecar JSON written next to each message body.
type devMetadata struct {
	Timestamp   string   `json:"timestamp"`
	From        string   `json:"from"`
	To          []string `json:"to"`
	Subject     string   `json:"subject"`
	ReplyTo     string   `json:"reply_to,omitempty"`
	HTML        bool     `json:"html"`
	Attachments []string `json:"attachments,omitempty"`
}

// Send writes the email to disk and returns the generated file name as the
// message ID.
func (d *DevSender) Send(ctx context.Context, email *Email) (string, error) {
	if len(email.To) == 0 {
		return "", ErrNoRecipient
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: failed to create directory: %v", ErrSendFailed, err)
	}

	now := time.Now()
	base := fmt.Sprintf("%s_%04d", now.Format("2006_01_02_150405"), d.seq.Add(1))

	bodyPath := filepath.Join(d.dir, base+".html")
	if err := os.WriteFile(bodyPath, []byte(email.Body), 0o644); err != nil {
		return "", fmt.Errorf("%w: failed to write body file: %v", ErrSendFailed, err)
	}

	meta := devMetadata{
		Timestamp: now.Format(time.RFC3339),
		From:      email.From,
		To:        email.To,
		Subject:   email.Subject,
		ReplyTo:   email.ReplyTo,
		HTML:      IsHTML(email.Body),
	}
	for _, a := range email.Attachments {
		meta.Attachments = append(meta.Attachments, a.Filename)
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal metadata: %v", ErrSendFailed, err)
	}

	metaPath := filepath.Join(d.dir, base+".json")
	if err := os.WriteFile(metaPath, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: failed to write metadata file: %v", ErrSendFailed, err)
	}

	return base, nil
}
