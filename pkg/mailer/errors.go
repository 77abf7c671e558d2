package mailer

import "errors"

var (
	// ErrMissingAPIKey indicates no provider API key is configured.
	ErrMissingAPIKey = errors.New("resend api key is required")

	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrAttachmentNotFound indicates the attachment source file was not found.
	ErrAttachmentNotFound = errors.New("attachment file not found")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")
)
