package mailer

import (
	"gopkg.in/gomail.v2"
)

// Message is one outbound transactional email.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Mailer delivers transactional email. The SMTP implementation is constructed
// once at process start and injected wherever mail is sent.
type Mailer interface {
	Send(msg Message) error
}

// SMTPMailer sends mail through a gomail dialer.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates an SMTP-backed mailer.
func NewSMTPMailer(host string, port int, user, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

// Send composes and delivers a single HTML message.
func (m *SMTPMailer) Send(msg Message) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		mail.SetHeader("Reply-To", msg.ReplyTo)
	}
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/html", msg.HTML)

	return m.dialer.DialAndSend(mail)
}
