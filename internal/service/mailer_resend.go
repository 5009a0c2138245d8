package service

import (
	"context"
	"errors"
	"strings"

	"github.com/resendlabs/resend-go"
)

// ResendMailer sends through the Resend API. A zero value is "not
// configured" and always errors, which the service treats as a logged no-op.
type ResendMailer struct {
	Client *resend.Client
	From   string
}

func NewResendMailer(apiKey string, from string) *ResendMailer {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(from) == "" {
		return &ResendMailer{}
	}
	return &ResendMailer{
		Client: resend.NewClient(apiKey),
		From:   from,
	}
}

func (m *ResendMailer) Send(ctx context.Context, to string, subject string, html string) error {
	if m.Client == nil {
		return errors.New("mailer not configured")
	}
	_, err := m.Client.Emails.Send(&resend.SendEmailRequest{
		From:    m.From,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	return err
}
