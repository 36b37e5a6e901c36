package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecipient(t *testing.T) {
	assert.Equal(t, "Soa Bango <contact@soabango.com>", Recipient("Soa Bango", "contact@soabango.com"))
	assert.Equal(t, "contact@soabango.com", Recipient("", "contact@soabango.com"))
}

func TestSMTPSenderConfigured(t *testing.T) {
	s := NewSMTPSender("smtp.gmail.com", "587", "user", "pass", "from@x.com", "X")
	assert.True(t, s.Configured())

	s = NewSMTPSender("smtp.gmail.com", "587", "", "", "from@x.com", "X")
	assert.False(t, s.Configured())
}

func TestSMTPSenderRejectsEmptyRecipients(t *testing.T) {
	s := NewSMTPSender("smtp.gmail.com", "587", "user", "pass", "from@x.com", "X")
	err := s.Send(context.Background(), &Message{Subject: "hi", HTML: "<p>hi</p>"})
	assert.Error(t, err)
}

func TestResendSenderConfigured(t *testing.T) {
	assert.True(t, NewResendSender("re_123", "from@x.com", "X").Configured())
	assert.False(t, NewResendSender("", "from@x.com", "X").Configured())
}
