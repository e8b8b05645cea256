package notify

import (
	"github.com/exiat/backend/internal/config"
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// Sender delivers a notification to the given recipients. Delivery is best
// effort, a failed send never rolls back the operation that triggered it.
type Sender interface {
	Send(recipients []string, subject, body string) error
}

type MailSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailSender(cfg *config.Config) *MailSender {
	return &MailSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}
}

func (s *MailSender) Send(recipients []string, subject, body string) error {
	if len(recipients) == 0 {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		zap.L().Error("can't send mail", zap.Error(err))
		return err
	}
	return nil
}

// NopSender is used when SMTP is not configured.
type NopSender struct{}

func (NopSender) Send(recipients []string, subject, body string) error {
	zap.L().Debug("mail sending disabled, dropping notification", zap.String("subject", subject))
	return nil
}
