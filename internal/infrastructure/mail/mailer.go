package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"portfolio/internal/application/port/output"
	"portfolio/internal/domain/entity"
)

var _ output.Mailer = (*SMTPMailer)(nil)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Owner    string
}

// SMTPMailer sends the two contact emails over one SMTP session: a
// notification to the site owner and a confirmation back to the sender.
// Templates come from the translator so the copy lives with the rest of
// the site content.
type SMTPMailer struct {
	cfg        Config
	translator output.Translator
	log        output.LoggerPort

	// send is swappable in tests; defaults to a gomail dialer.
	send func(messages ...*gomail.Message) error
}

func NewSMTPMailer(cfg Config, translator output.Translator, log output.LoggerPort) *SMTPMailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &SMTPMailer{
		cfg:        cfg,
		translator: translator,
		log:        log,
		send:       func(messages ...*gomail.Message) error { return d.DialAndSend(messages...) },
	}
}

func (m *SMTPMailer) Send(ctx context.Context, form entity.ContactForm) error {
	notification, confirmation := m.compose(form)

	if err := m.send(notification, confirmation); err != nil {
		return fmt.Errorf("send contact emails: %w", err)
	}

	m.log.Info("contact emails sent", "from", form.Email)
	return nil
}

func (m *SMTPMailer) compose(form entity.ContactForm) (*gomail.Message, *gomail.Message) {
	message := StripHTML(form.Message)
	params := map[string]string{
		"name":    form.Name,
		"email":   form.Email,
		"subject": form.Subject,
		"message": message,
	}

	notification := gomail.NewMessage()
	notification.SetHeader("From", m.cfg.From)
	notification.SetHeader("To", m.cfg.Owner)
	notification.SetHeader("Reply-To", form.Email)
	notification.SetHeader("Subject", m.translator.Get("contact", "notification_subject", params))
	notification.SetBody("text/plain", m.translator.Get("contact", "notification_body", params))

	confirmation := gomail.NewMessage()
	confirmation.SetHeader("From", m.cfg.From)
	confirmation.SetHeader("To", form.Email)
	confirmation.SetHeader("Subject", m.translator.Get("contact", "confirmation_subject", params))
	confirmation.SetBody("text/plain", m.translator.Get("contact", "confirmation_body", params))

	return notification, confirmation
}
