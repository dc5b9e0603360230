package service

import (
	"context"

	"harvest/internal/domain/entity"
)

// Mailer delivers outbound email.
type Mailer interface {
	Send(ctx context.Context, msg *entity.MailMessage) error
}
