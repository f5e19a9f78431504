package utils

import (
	"fmt"

	"coursecatalog/config"

	gomail "gopkg.in/gomail.v2"
)

// Mailer sends transactional mail over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.EmailFrom,
	}
}

// SendPasswordReset emails the reset link. Callers log failures; the HTTP
// response never depends on delivery.
func (m *Mailer) SendPasswordReset(to, resetURL string) error {
	body := fmt.Sprintf(`
		<h2>Password Reset Request</h2>
		<p>You are receiving this because you (or someone else) have requested the reset of the password for your account.</p>
		<p>Please click on the following link, or paste this into your browser to complete the process:</p>
		<a href="%s">Reset Password</a>
	`, resetURL)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Password Reset Request")
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}
