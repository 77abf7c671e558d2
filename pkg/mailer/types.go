package mailer

import (
	"fmt"
	"strings"
)

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// IsHTML reports whether a message body should be sent as HTML.
// The rule is a boundary check on the trimmed body: starts with '<' and
// ends with '>'. Anything else is plain text.
func IsHTML(body string) bool {
	trimmed := strings.TrimSpace(body)
	return strings.HasPrefix(trimmed, "<") && strings.HasSuffix(trimmed, ">")
}

// Email represents a fully-prepared email message ready for sending.
// Body carries either HTML or plain text; the provider adapter classifies
// it with IsHTML and fills the matching request field.
type Email struct {
	From        string       // Sender address, may include a display name
	Subject     string       // Email subject
	Body        string       // Message content, HTML or plain text
	ReplyTo     string       // Optional reply-to address
	To          []string     // Recipients (at least one required)
	Attachments []Attachment // File attachments
}

// Broadcast is the payload for a batch send: one provider message per
// recipient, all sharing the same subject and body. The provider's batch
// endpoint does not accept attachments.
type Broadcast struct {
	From    string
	Subject string
	Body    string
	ReplyTo string
	To      []string
}

// Attachment represents an email attachment. Content holds the raw file
// bytes; the transport layer base64-encodes them on the wire.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	Content     []byte // Raw file content
}

// Result is the provider's acknowledgement for one accepted message.
type Result struct {
	ID string // Provider-assigned message identifier
}
