package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"harvest/config"
	"harvest/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

type recordingSender struct {
	sent []*gomail.Msg
	err  error
}

func (r *recordingSender) DialAndSendWithContext(_ context.Context, messages ...*gomail.Msg) error {
	r.sent = append(r.sent, messages...)

	return r.err
}

func newTestMailer(client sender) *smtpMailer {
	return &smtpMailer{
		client: client,
		from:   "billing@harvest.example",
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestSMTPMailer_Send(t *testing.T) {
	client := &recordingSender{}
	mailer := newTestMailer(client)

	err := mailer.Send(context.Background(), &entity.MailMessage{
		To:       []string{"buyer@example.com"},
		Subject:  "Invoice INV-1",
		HTMLBody: "<p>Thank you</p>",
		Attachments: []entity.MailAttachment{
			{Filename: "INV-1.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.3")},
		},
	})
	require.NoError(t, err)
	require.Len(t, client.sent, 1)

	msg := client.sent[0]
	recipients, err := msg.GetRecipients()
	require.NoError(t, err)
	// Recipients come back in angle-addr form.
	assert.Equal(t, []string{"<buyer@example.com>"}, recipients)
	assert.Equal(t, []string{"Invoice INV-1"}, msg.GetGenHeader(gomail.HeaderSubject))

	attachments := msg.GetAttachments()
	require.Len(t, attachments, 1)
	assert.Equal(t, "INV-1.pdf", attachments[0].Name)
	assert.Equal(t, gomail.ContentType("application/pdf"), attachments[0].ContentType)
}

func TestSMTPMailer_SendWithoutRecipients(t *testing.T) {
	client := &recordingSender{}
	mailer := newTestMailer(client)

	err := mailer.Send(context.Background(), &entity.MailMessage{Subject: "x"})
	assert.Error(t, err)
	assert.Empty(t, client.sent)
}

func TestSMTPMailer_SendFailure(t *testing.T) {
	mailer := newTestMailer(&recordingSender{err: assert.AnError})

	err := mailer.Send(context.Background(), &entity.MailMessage{To: []string{"buyer@example.com"}})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNewSMTPMailer_RequiresConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewSMTPMailer(&config.Config{}, logger)
	assert.Error(t, err)

	_, err = NewSMTPMailer(&config.Config{Mail: &config.MailConfig{Host: "smtp.example.com"}}, logger)
	assert.Error(t, err)

	mailer, err := NewSMTPMailer(&config.Config{Mail: &config.MailConfig{
		Host:      "smtp.example.com",
		Port:      587,
		From:      "billing@harvest.example",
		Username:  "user",
		Password:  "pass",
		TLSPolicy: "opportunistic",
	}}, logger)
	require.NoError(t, err)
	assert.NotNil(t, mailer)
}

func TestTLSPolicy(t *testing.T) {
	assert.Equal(t, gomail.NoTLS, tlsPolicy("none"))
	assert.Equal(t, gomail.TLSOpportunistic, tlsPolicy("Opportunistic"))
	assert.Equal(t, gomail.TLSMandatory, tlsPolicy(""))
}
