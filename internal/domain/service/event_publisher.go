package service

import (
	"context"

	"harvest/internal/domain/entity"
	"harvest/internal/errors"
)

// ErrPublishingDisabled is returned when no transport is configured.
var ErrPublishingDisabled = errors.New("event publishing is disabled")

// EventPublisher defines the interface for publishing invoice jobs to a message transport
type EventPublisher interface {
	// PublishInvoiceJob hands an invoice job to the worker transport
	PublishInvoiceJob(ctx context.Context, event *entity.InvoiceJobEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
