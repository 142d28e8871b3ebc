package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// SMTPProvider implements Provider over SMTP.
type SMTPProvider struct {
	config *Config
	dialer *gomail.Dialer
}

func NewSMTPProvider(config *Config) *SMTPProvider {
	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	from := email.From
	if from == "" {
		from = fmt.Sprintf("%s <%s>", p.config.FromName, p.config.FromEmail)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/plain", email.Body)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("smtp host is not configured")
	}
	if p.config.Port == 0 {
		return fmt.Errorf("smtp port is not configured")
	}
	if p.config.FromEmail == "" {
		return fmt.Errorf("from address is not configured")
	}
	return nil
}
