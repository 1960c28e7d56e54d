package mailer

import (
	"fmt"
	"funneld/internal/providers"
	"funneld/internal/structures"

	"gopkg.in/gomail.v2"
)

// Mailer is the narrow delivery interface injected into the intake
// service so its logic stays testable without a live relay.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type SMTPMailer struct {
	dialer    *gomail.Dialer
	fromEmail string
	fromName  string
}

// NewMailer returns the SMTP mailer, or a logging stand-in when mail
// delivery is disabled by config (local runs, CI).
func NewMailer(conf *structures.Config, logger providers.Logger) Mailer {
	if !conf.Mail.Enabled {
		logger.Infof(providers.TypeApp, "Mail delivery disabled, using log mailer")
		return &LogMailer{logger: logger}
	}

	return &SMTPMailer{
		dialer:    gomail.NewDialer(conf.Mail.Host, conf.Mail.Port, conf.Mail.Username, conf.Mail.Password),
		fromEmail: conf.Mail.FromEmail,
		fromName:  conf.Mail.FromName,
	}
}

// Send submits one HTML message over authenticated SMTP. The dialer
// negotiates STARTTLS on the standard submission port.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.fromEmail, m.fromName))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mailer error: %w", err)
	}
	return nil
}

// LogMailer records would-be deliveries instead of sending them.
type LogMailer struct {
	logger providers.Logger
}

func (m *LogMailer) Send(to, subject, _ string) error {
	m.logger.Infof(providers.TypeApp, "Mail disabled, would send %q to %s", subject, to)
	return nil
}
