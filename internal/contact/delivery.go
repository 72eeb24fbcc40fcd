package contact

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Deliverer sends an accepted submission somewhere a human will read it.
type Deliverer interface {
	Deliver(ctx context.Context, sub Submission) error
}

// SMTPConfig holds mail server settings for SMTPDeliverer.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// Enabled reports whether credentials are present.
func (c SMTPConfig) Enabled() bool {
	return c.User != "" && c.Pass != ""
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPDeliverer mails submissions to the site owner with Reply-To set to
// the submitter.
type SMTPDeliverer struct {
	cfg      SMTPConfig
	sendMail sendMailFunc
}

// NewSMTPDeliverer returns a deliverer for cfg. It fails when credentials
// are missing.
func NewSMTPDeliverer(cfg SMTPConfig) (*SMTPDeliverer, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("SMTP credentials not configured")
	}
	if cfg.Host == "" || cfg.Port == "" || cfg.To == "" {
		return nil, fmt.Errorf("SMTP host, port and recipient are required")
	}
	return &SMTPDeliverer{cfg: cfg, sendMail: smtp.SendMail}, nil
}

// Deliver sends sub as a plain-text email.
func (d *SMTPDeliverer) Deliver(ctx context.Context, sub Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", d.cfg.User, d.cfg.Pass, d.cfg.Host)
	msg := composeMessage(d.cfg.User, d.cfg.To, sub)
	if err := d.sendMail(d.cfg.Host+":"+d.cfg.Port, auth, d.cfg.User, []string{d.cfg.To}, msg); err != nil {
		return fmt.Errorf("send mail via %s: %w", d.cfg.Host, err)
	}
	return nil
}

func composeMessage(from, to string, sub Submission) []byte {
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, sub.Name, sub.Email, sub.Subject, sub.Message)

	var b strings.Builder
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + headerSafe(fmt.Sprintf("Portfolio Contact: %s - %s", sub.Subject, sub.Name)) + "\r\n")
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("Reply-To: " + headerSafe(sub.Email) + "\r\n")
	b.WriteString("\r\n")
	b.WriteString(body + "\r\n")
	return []byte(b.String())
}

// headerSafe drops line breaks so user input cannot inject headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}
