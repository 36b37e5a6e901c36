package mailer

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// SMTPSender delivers messages over authenticated SMTP (Brevo, Gmail app
// passwords and the like).
type SMTPSender struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	fromName  string
}

// NewSMTPSender creates an SMTP-backed sender. fromEmail is used as the
// envelope sender and as the default header From.
func NewSMTPSender(host, port, username, password, fromEmail, fromName string) *SMTPSender {
	return &SMTPSender{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// Send implements Sender.
func (s *SMTPSender) Send(_ context.Context, msg *Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("smtp: message has no recipients")
	}

	from := msg.From
	if from == "" {
		from = Recipient(s.fromName, s.fromEmail)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	if err := smtp.SendMail(addr, auth, s.fromEmail, msg.To, []byte(b.String())); err != nil {
		return fmt.Errorf("smtp: failed to send email: %w", err)
	}
	return nil
}

// Configured reports whether the sender has complete credentials. A sender
// without credentials still accepts Send calls; they fail at the transport.
func (s *SMTPSender) Configured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// Verify dials the SMTP server and performs a handshake without sending
// anything. Used at startup to surface misconfiguration early; a failure is
// a warning, never fatal.
func (s *SMTPSender) Verify(ctx context.Context) error {
	d := net.Dialer{Timeout: 5 * time.Second}
	conn, err := d.DialContext(ctx, "tcp", fmt.Sprintf("%s:%s", s.host, s.port))
	if err != nil {
		return fmt.Errorf("smtp: dial: %w", err)
	}

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp: handshake: %w", err)
	}
	defer c.Close()

	if err := c.Noop(); err != nil {
		return fmt.Errorf("smtp: noop: %w", err)
	}
	return c.Quit()
}
