// Package mailer defines the email model and the sending contracts used by
// the campaign driver.
//
// The package separates message preparation from delivery: Email and
// Broadcast describe what to send, while the Sender and BatchSender
// interfaces are implemented by providers (see the resend subpackage) or by
// the disk-backed DevSender for local dry runs.
//
// A message body is a single string. Whether it goes out as HTML or plain
// text is decided by IsHTML at delivery time: a trimmed body that starts
// with '<' and ends with '>' is HTML, everything else is text.
//
// Basic usage:
//
//	sender := resend.New(resend.Config{APIKey: os.Getenv("RESEND_API_KEY")})
//
//	id, err := sender.Send(ctx, &mailer.Email{
//		From:    mailer.Recipient("Team", "team@example.com"),
//		To:      []string{"user@example.com"},
//		Subject: "Hello",
//		Body:    "<p>Hi there</p>",
//	})
package mailer
