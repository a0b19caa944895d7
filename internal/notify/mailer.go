package notify

import (
	"fmt"

	"github.com/swiftsites/swiftsites-api/internal/config"
	"github.com/swiftsites/swiftsites-api/internal/domain"
	"gopkg.in/gomail.v2"
)

// Notifier delivers best-effort reviewer notifications. Failures are the
// caller's to log; they never affect the durability of the record.
type Notifier interface {
	NewLeadSubmitted(user domain.User, pref domain.Preference) error
}

// Mailer sends reviewer notifications over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewMailer creates a mailer from notification config.
func NewMailer(cfg config.NotifyConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.AdminEmail,
		to:     cfg.AdminEmail,
	}
}

// NewLeadSubmitted mails the reviewer inbox about a fresh handoff record.
func (m *Mailer) NewLeadSubmitted(user domain.User, pref domain.Preference) error {
	phone := pref.Phone
	if phone == "" {
		phone = "Not provided"
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("New Website Preference from %s", user.Name))
	msg.SetBody("text/plain", fmt.Sprintf(
		"User: %s\nEmail: %s\nPhone: %s\n\nTitle: %s\nDescription: %s",
		user.Name, user.Email, phone, pref.Title, pref.Description,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}
