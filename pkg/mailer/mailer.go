package mailer

import (
	"context"
	"fmt"
)

// Message is a fully-prepared notification email ready for sending.
type Message struct {
	From    string   // Header sender, "Name <email>"; provider default when empty
	ReplyTo string   // Reply-to address (optional)
	To      []string // Recipients (at least one required)
	Subject string   // Subject line
	HTML    string   // Rendered HTML body
}

// Sender is the minimal interface a mail provider must implement. It accepts
// a fully-prepared Message and handles the actual delivery.
type Sender interface {
	// Send delivers a message. Returns an error if the provider rejects it
	// or the underlying transport fails.
	Send(ctx context.Context, msg *Message) error
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
