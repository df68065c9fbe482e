// Package mail provides the SMTP-backed implementation of the Mailer service.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"

	"atelier/config"
	"atelier/internal/domain/entity"
	"atelier/internal/domain/service"
	"atelier/internal/util"
)

const resetSubject = "Reset your password"

const resetBodyTemplate = `Hello,

A password reset was requested for your account. Open the link below to
choose a new password. The link expires in %s.

%s

If you did not request this, you can ignore this mail; your password has
not been changed.
`

const inquiryBodyTemplate = `New inquiry received.

From:    %s <%s>
Subject: %s

%s
`

// smtpMailer delivers transactional mail through a single SMTP account.
type smtpMailer struct {
	client        *gomail.Client
	from          string
	inbox         string
	resetValidity string
	logger        *slog.Logger
}

// NewSMTPMailer builds a Mailer over the configured SMTP server.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	smtpCfg := cfg.SMTP
	if smtpCfg == nil {
		return nil, errors.New("smtp config must be provided")
	}

	resetValidity := 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.RecoveryTokenTTL > 0 {
		resetValidity = cfg.Auth.RecoveryTokenTTL
	}

	opts := []gomail.Option{gomail.WithPort(smtpCfg.Port)}
	if smtpCfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(smtpCfg.Username),
			gomail.WithPassword(smtpCfg.Password),
		)
	}

	client, err := gomail.NewClient(smtpCfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create smtp client")
	}

	return &smtpMailer{
		client:        client,
		from:          smtpCfg.From,
		inbox:         smtpCfg.InquiryInbox,
		resetValidity: util.FormatDuration(resetValidity),
		logger:        logger,
	}, nil
}

// SendPasswordReset mails the reset link to the account owner.
func (m *smtpMailer) SendPasswordReset(ctx context.Context, to string, resetURL string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}

	msg.Subject(resetSubject)
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(resetBodyTemplate, m.resetValidity, resetURL))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send password reset mail")
	}

	return nil
}

// SendInquiryNotification forwards a submitted inquiry to the configured inbox.
func (m *smtpMailer) SendInquiryNotification(ctx context.Context, inquiry *entity.Inquiry) error {
	if m.inbox == "" {
		m.logger.Debug("no inquiry inbox configured, skipping notification")

		return nil
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(m.inbox); err != nil {
		return errors.Wrap(err, "invalid inbox address")
	}

	msg.Subject("Inquiry: " + inquiry.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(
		inquiryBodyTemplate,
		inquiry.Name,
		inquiry.Email,
		inquiry.Subject,
		inquiry.Body,
	))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send inquiry notification")
	}

	return nil
}

// discardMailer is used when no SMTP server is configured. It logs what would
// have been sent and reports success, so mail-optional flows keep working in
// local development.
type discardMailer struct {
	logger *slog.Logger
}

// NewDiscardMailer builds a Mailer that drops all mail.
func NewDiscardMailer(logger *slog.Logger) service.Mailer {
	return &discardMailer{logger: logger}
}

// SendPasswordReset logs the reset link instead of mailing it.
func (m *discardMailer) SendPasswordReset(_ context.Context, to string, resetURL string) error {
	m.logger.Warn("mail disabled, dropping password reset",
		slog.String("to", to),
		slog.String("reset_url", resetURL))

	return nil
}

// SendInquiryNotification logs the inquiry instead of mailing it.
func (m *discardMailer) SendInquiryNotification(_ context.Context, inquiry *entity.Inquiry) error {
	m.logger.Warn("mail disabled, dropping inquiry notification",
		slog.String("from", inquiry.Email),
		slog.String("subject", inquiry.Subject))

	return nil
}
