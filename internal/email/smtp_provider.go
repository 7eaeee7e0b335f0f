package email

import (
	"fmt"

	"chefbazaar_backend/internal/config"
	"chefbazaar_backend/internal/models"

	"gopkg.in/gomail.v2"
)

// SMTPProvider sends mail through the configured SMTP relay.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) SendRequestDecision(to, name string, requestType models.RequestType, approved bool) error {
	decision := "rejected"
	if approved {
		decision = "approved"
	}

	subject := fmt.Sprintf("Your %s request was %s", requestType, decision)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your request to become a <b>%s</b> on LocalChefBazaar was <b>%s</b>.</p>",
		name, requestType, decision,
	)

	return p.send(to, subject, body)
}

func (p *SMTPProvider) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.cfg.Email.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}
