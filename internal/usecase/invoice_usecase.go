package usecase

import (
	"context"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// InvoiceUsecase defines asynchronous invoice emission.
type InvoiceUsecase interface {
	// DispatchPendingJobs hands due outbox jobs to the transport and returns how many were sent.
	DispatchPendingJobs(ctx context.Context) (int, error)

	// ProcessInvoiceJob runs one delivered job. A *RetryableError asks for redelivery.
	ProcessInvoiceJob(ctx context.Context, jobID uuid.UUID) error

	// EmitInvoice creates or refreshes the invoice of an order, stores its PDF and mails it once.
	EmitInvoice(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error)

	// RetryInvoice resets the order's job so the relay sends it again.
	RetryInvoice(ctx context.Context, orderID uuid.UUID) (*entity.InvoiceJob, error)

	GetInvoice(ctx context.Context, actor Actor, orderID uuid.UUID) (*entity.Invoice, error)
}
