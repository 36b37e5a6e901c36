package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"
)

// ResendSender delivers messages through the Resend API.
type ResendSender struct {
	client    *resend.Client
	apiKey    string
	fromEmail string
	fromName  string
}

// NewResendSender creates a Resend-backed sender.
func NewResendSender(apiKey, fromEmail, fromName string) *ResendSender {
	return &ResendSender{
		client:    resend.NewClient(apiKey),
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// Send implements Sender.
func (s *ResendSender) Send(ctx context.Context, msg *Message) error {
	from := msg.From
	if from == "" {
		from = Recipient(s.fromName, s.fromEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}
	return nil
}

// Configured reports whether an API key is present.
func (s *ResendSender) Configured() bool {
	return s.apiKey != ""
}
