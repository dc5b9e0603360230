// Package mail delivers outbound email over SMTP with wneessen/go-mail.
package mail

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"time"

	"harvest/config"
	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"
	"harvest/internal/errors"

	gomail "github.com/wneessen/go-mail"
)

const defaultTimeout = 15 * time.Second

// sender is the subset of *gomail.Client used to deliver messages.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

type smtpMailer struct {
	client sender
	from   string
	logger *slog.Logger
}

// NewSMTPMailer builds the SMTP client from configuration. Connections are opened per send.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	mc := cfg.Mail
	if mc == nil || mc.Host == "" {
		return nil, errors.New("mail host is not configured")
	}
	if mc.From == "" {
		return nil, errors.New("mail sender address is not configured")
	}

	timeout := mc.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := []gomail.Option{
		gomail.WithTLSPolicy(tlsPolicy(mc.TLSPolicy)),
		gomail.WithTimeout(timeout),
	}
	if mc.Port > 0 {
		opts = append(opts, gomail.WithPort(mc.Port))
	}
	if mc.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(mc.Username),
			gomail.WithPassword(mc.Password),
		)
	}

	client, err := gomail.NewClient(mc.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return &smtpMailer{client: client, from: mc.From, logger: logger}, nil
}

// Send delivers msg in one SMTP session.
func (m *smtpMailer) Send(ctx context.Context, msg *entity.MailMessage) error {
	built, err := m.buildMessage(msg)
	if err != nil {
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, built); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	m.logger.InfoContext(ctx, "Mail sent",
		slog.String("subject", msg.Subject),
		slog.Int("recipients", len(msg.To)),
		slog.Int("attachments", len(msg.Attachments)),
	)

	return nil
}

func (m *smtpMailer) buildMessage(msg *entity.MailMessage) (*gomail.Msg, error) {
	if msg == nil || len(msg.To) == 0 {
		return nil, errors.New("mail has no recipients")
	}

	built := gomail.NewMsg()
	if err := built.From(m.from); err != nil {
		return nil, errors.Wrap(err, "invalid sender address")
	}
	if err := built.To(msg.To...); err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}
	built.Subject(msg.Subject)
	built.SetDate()
	built.SetMessageID()
	built.SetBodyString(gomail.TypeTextHTML, msg.HTMLBody)

	for _, attachment := range msg.Attachments {
		contentType := attachment.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		err := built.AttachReader(attachment.Filename, bytes.NewReader(attachment.Content),
			gomail.WithFileContentType(gomail.ContentType(contentType)),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to attach %s", attachment.Filename)
		}
	}

	return built, nil
}

func tlsPolicy(name string) gomail.TLSPolicy {
	switch strings.ToLower(name) {
	case "none":
		return gomail.NoTLS
	case "opportunistic":
		return gomail.TLSOpportunistic
	default:
		return gomail.TLSMandatory
	}
}
