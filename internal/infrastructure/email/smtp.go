// Package email sends transactional mail over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/resumelift/resumelift/internal/shared/config"
	"github.com/resumelift/resumelift/internal/shared/logger"
)

// SMTPNotifier delivers subscription lifecycle emails. All sends are invoked
// fire-and-forget by the application layer; a failure is logged, never
// propagated into a state transition.
type SMTPNotifier struct {
	dialer      *gomail.Dialer
	fromAddress string
	fromName    string
	logger      logger.Interface
}

func NewSMTPNotifier(cfg *config.EmailConfig, logger logger.Interface) *SMTPNotifier {
	return &SMTPNotifier{
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		logger:      logger,
	}
}

func (n *SMTPNotifier) SendSubscriptionActivated(email string, tier string) error {
	subject := "Your ResumeLift subscription is active"
	body := fmt.Sprintf(
		"Hi,\n\nYour %s plan is now active. You can start converting your CV right away.\n\nThe ResumeLift team",
		tier,
	)
	return n.send(email, subject, body)
}

func (n *SMTPNotifier) SendSubscriptionCanceled(email string, tier string) error {
	subject := "Your ResumeLift subscription was canceled"
	body := fmt.Sprintf(
		"Hi,\n\nYour %s plan has been canceled. You can resubscribe at any time to keep converting your CV.\n\nThe ResumeLift team",
		tier,
	)
	return n.send(email, subject, body)
}

func (n *SMTPNotifier) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.fromAddress, n.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		n.logger.Errorw("failed to send email", "subject", subject, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	n.logger.Debugw("email sent", "subject", subject)
	return nil
}
