package repository

import (
	"context"
	"time"

	"harvest/internal/domain/entity"
	"harvest/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for invoice persistence.
var (
	// ErrInvoiceNotFound is returned when an order has no invoice yet.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrInvoiceJobNotFound is returned when an outbox entry does not exist.
	ErrInvoiceJobNotFound = errors.New("invoice job not found")
)

// InvoiceRepository stores at most one invoice per order.
type InvoiceRepository interface {
	// FindByOrderID retrieves the invoice of an order.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error)

	// Upsert inserts the invoice or, when one exists for the order, updates it in place.
	// The stored number is never replaced once assigned.
	Upsert(ctx context.Context, invoice *entity.Invoice) error
}

// InvoiceJobRepository is the invoice outbox.
type InvoiceJobRepository interface {
	// Enqueue inserts a job unless one already exists for the order. It reports whether a
	// row was inserted.
	Enqueue(ctx context.Context, job *entity.InvoiceJob) (bool, error)

	// FindByID retrieves a job.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceJob, error)

	// FindByOrderID retrieves the job of an order.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.InvoiceJob, error)

	// ClaimDue locks and returns up to limit jobs that are due at now: pending or retry jobs
	// whose next attempt has come, and dispatched jobs older than staleBefore. Rows locked by
	// another relay are skipped.
	ClaimDue(ctx context.Context, now time.Time, staleBefore time.Time, limit int) ([]*entity.InvoiceJob, error)

	// Save writes the job's status, attempts, timestamps and last error.
	Save(ctx context.Context, job *entity.InvoiceJob) error
}
