package mail

import (
	"gopkg.in/gomail.v2"
)

// Sender delivers transactional email (subject, recipient, HTML body).
type Sender interface {
	Send(subject, to, htmlBody string) error
}

type Mailer struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func (m Mailer) Send(subject, to, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.Host, m.Port, m.User, m.Pass)
	return dialer.DialAndSend(msg)
}
