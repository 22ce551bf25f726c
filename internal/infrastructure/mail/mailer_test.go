package mail

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"portfolio/internal/domain/entity"
	"portfolio/internal/infrastructure/logger"
)

type echoTranslator struct{}

func (echoTranslator) Get(namespace, key string, params map[string]string) string {
	return namespace + "." + key
}

func newTestMailer(send func(...*gomail.Message) error) *SMTPMailer {
	m := NewSMTPMailer(Config{
		Host:  "localhost",
		Port:  1025,
		From:  "noreply@example.com",
		Owner: "owner@example.com",
	}, echoTranslator{}, logger.NewNop())
	m.send = send
	return m
}

func TestSMTPMailer_SendsNotificationAndConfirmation(t *testing.T) {
	var sent []*gomail.Message
	m := newTestMailer(func(messages ...*gomail.Message) error {
		sent = messages
		return nil
	})

	form := entity.ContactForm{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "I would like to talk about a project.",
	}
	require.NoError(t, m.Send(context.Background(), form))
	require.Len(t, sent, 2)

	notification, confirmation := sent[0], sent[1]
	assert.Equal(t, []string{"owner@example.com"}, notification.GetHeader("To"))
	assert.Equal(t, []string{"jane@example.com"}, notification.GetHeader("Reply-To"))
	assert.Equal(t, []string{"jane@example.com"}, confirmation.GetHeader("To"))
	assert.Equal(t, []string{"contact.notification_subject"}, notification.GetHeader("Subject"))
	assert.Equal(t, []string{"contact.confirmation_subject"}, confirmation.GetHeader("Subject"))
}

func TestSMTPMailer_SendFailure(t *testing.T) {
	m := newTestMailer(func(...*gomail.Message) error {
		return errors.New("dial tcp: connection refused")
	})

	err := m.Send(context.Background(), entity.ContactForm{Email: "jane@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send contact emails")
}
