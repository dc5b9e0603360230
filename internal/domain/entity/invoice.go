package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// InvoicePaymentStatus tracks whether the invoiced order has been paid.
type InvoicePaymentStatus string

const (
	InvoicePaymentStatusUnpaid InvoicePaymentStatus = "UNPAID"
	InvoicePaymentStatusPaid   InvoicePaymentStatus = "PAID"
)

// Invoice is the billing record of an order. There is at most one per order.
type Invoice struct {
	ID            uuid.UUID
	Number        string // Human-facing number, INV-<ULID>; kept once assigned.
	OrderID       uuid.UUID
	UserID        string
	InvoiceDate   time.Time
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Tax           decimal.Decimal
	ShippingFee   decimal.Decimal
	TotalPrice    decimal.Decimal
	PaymentMethod PaymentMethod
	PaymentStatus InvoicePaymentStatus
	DocumentURL   string     // Rendered PDF location.
	SentAt        *time.Time // Set once the document was mailed to the buyer.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewInvoiceNumber returns a sortable human-facing number, INV-<ULID>.
func NewInvoiceNumber(now time.Time) string {
	return "INV-" + ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String()
}

// PaymentStatusFor reports PAID once the order has accepted a payment proof.
func PaymentStatusFor(order *Order) InvoicePaymentStatus {
	switch order.Status {
	case OrderStatusProcessing, OrderStatusInDelivery, OrderStatusCompleted:
		return InvoicePaymentStatusPaid
	default:
		return InvoicePaymentStatusUnpaid
	}
}

// InvoiceJobStatus is the state of an invoice outbox entry.
type InvoiceJobStatus string

const (
	InvoiceJobStatusPending    InvoiceJobStatus = "PENDING"
	InvoiceJobStatusDispatched InvoiceJobStatus = "DISPATCHED"
	InvoiceJobStatusRetry      InvoiceJobStatus = "RETRY"
	InvoiceJobStatusCompleted  InvoiceJobStatus = "COMPLETED"
	InvoiceJobStatusDead       InvoiceJobStatus = "DEAD"
)

// maxInvoiceRetryDelay caps the exponential backoff between attempts.
const maxInvoiceRetryDelay = time.Hour

// InvoiceJob is the outbox row written in the same transaction as the payment transition.
type InvoiceJob struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	Status        InvoiceJobStatus
	Attempts      int
	NextAttemptAt time.Time
	DispatchedAt  *time.Time
	CompletedAt   *time.Time
	LastError     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewInvoiceJob returns a pending job for orderID due immediately.
func NewInvoiceJob(orderID uuid.UUID, now time.Time) *InvoiceJob {
	return &InvoiceJob{
		ID:            uuid.New(),
		OrderID:       orderID,
		Status:        InvoiceJobStatusPending,
		NextAttemptAt: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// RecordFailure counts a failed attempt and schedules the next one, or marks the job
// dead once maxAttempts is reached.
func (j *InvoiceJob) RecordFailure(cause error, now time.Time, base time.Duration, maxAttempts int) {
	j.Attempts++
	j.UpdatedAt = now
	if cause != nil {
		j.LastError = cause.Error()
	}

	if maxAttempts > 0 && j.Attempts >= maxAttempts {
		j.Status = InvoiceJobStatusDead

		return
	}

	j.Status = InvoiceJobStatusRetry
	j.NextAttemptAt = now.Add(InvoiceRetryDelay(base, j.Attempts))
}

// MarkDispatched records that the job was handed to the transport.
func (j *InvoiceJob) MarkDispatched(now time.Time) {
	j.Status = InvoiceJobStatusDispatched
	j.DispatchedAt = &now
	j.UpdatedAt = now
}

// MarkCompleted records a successful emission.
func (j *InvoiceJob) MarkCompleted(now time.Time) {
	j.Status = InvoiceJobStatusCompleted
	j.CompletedAt = &now
	j.LastError = ""
	j.UpdatedAt = now
}

// Reset makes the job due again with a fresh attempt budget.
func (j *InvoiceJob) Reset(now time.Time) {
	j.Status = InvoiceJobStatusPending
	j.Attempts = 0
	j.NextAttemptAt = now
	j.DispatchedAt = nil
	j.CompletedAt = nil
	j.LastError = ""
	j.UpdatedAt = now
}

// IsFinished reports whether the job needs no further processing.
func (j *InvoiceJob) IsFinished() bool {
	return j.Status == InvoiceJobStatusCompleted || j.Status == InvoiceJobStatusDead
}

// InvoiceRetryDelay doubles base for every attempt after the first, capped at one hour.
func InvoiceRetryDelay(base time.Duration, attempts int) time.Duration {
	if base <= 0 || attempts <= 0 {
		return 0
	}

	delay := base
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= maxInvoiceRetryDelay {
			return maxInvoiceRetryDelay
		}
	}

	return delay
}

// InvoiceJobEvent is the message carried by the job transport.
type InvoiceJobEvent struct {
	JobID      uuid.UUID `json:"job_id"`
	OrderID    uuid.UUID `json:"order_id"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// InvoiceDocument is everything the renderer needs for one invoice.
type InvoiceDocument struct {
	Invoice  *Invoice
	Order    *Order
	Customer *User
}
