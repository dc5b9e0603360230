package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestInvoiceRetryDelay(t *testing.T) {
	base := 30 * time.Second

	assert.Equal(t, time.Duration(0), InvoiceRetryDelay(base, 0))
	assert.Equal(t, 30*time.Second, InvoiceRetryDelay(base, 1))
	assert.Equal(t, time.Minute, InvoiceRetryDelay(base, 2))
	assert.Equal(t, 4*time.Minute, InvoiceRetryDelay(base, 4))
	assert.Equal(t, time.Hour, InvoiceRetryDelay(base, 20))
}

func TestInvoiceJob_RecordFailure(t *testing.T) {
	now := time.Now()
	job := NewInvoiceJob(uuid.New(), now)

	job.RecordFailure(errors.New("smtp down"), now, time.Minute, 3)
	assert.Equal(t, InvoiceJobStatusRetry, job.Status)
	assert.Equal(t, 1, job.Attempts)
	assert.Equal(t, now.Add(time.Minute), job.NextAttemptAt)
	assert.Equal(t, "smtp down", job.LastError)

	job.RecordFailure(errors.New("smtp down"), now, time.Minute, 3)
	assert.Equal(t, InvoiceJobStatusRetry, job.Status)
	assert.Equal(t, now.Add(2*time.Minute), job.NextAttemptAt)

	job.RecordFailure(errors.New("still down"), now, time.Minute, 3)
	assert.Equal(t, InvoiceJobStatusDead, job.Status)
	assert.Equal(t, 3, job.Attempts)
	assert.Equal(t, "still down", job.LastError)
}

func TestInvoiceJob_Lifecycle(t *testing.T) {
	start := time.Date(2025, time.January, 2, 8, 0, 0, 0, time.UTC)
	job := NewInvoiceJob(uuid.New(), start)
	assert.False(t, job.IsFinished())

	job.MarkDispatched(start.Add(time.Second))
	assert.Equal(t, InvoiceJobStatusDispatched, job.Status)
	assert.Equal(t, start.Add(time.Second), *job.DispatchedAt)

	job.RecordFailure(errors.New("render failed"), start.Add(2*time.Second), time.Minute, 1)
	assert.True(t, job.IsFinished())

	job.Reset(start.Add(time.Hour))
	assert.Equal(t, InvoiceJobStatusPending, job.Status)
	assert.Zero(t, job.Attempts)
	assert.Nil(t, job.DispatchedAt)
	assert.Empty(t, job.LastError)
	assert.Equal(t, start.Add(time.Hour), job.NextAttemptAt)

	job.MarkCompleted(start.Add(2 * time.Hour))
	assert.True(t, job.IsFinished())
	assert.NotNil(t, job.CompletedAt)
}

func TestNewInvoiceNumber(t *testing.T) {
	now := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	first := NewInvoiceNumber(now)
	second := NewInvoiceNumber(now.Add(time.Millisecond))

	assert.Regexp(t, `^INV-[0-9A-HJKMNP-TV-Z]{26}$`, first)
	assert.Less(t, first, second)
}

func TestPaymentStatusFor(t *testing.T) {
	assert.Equal(t, InvoicePaymentStatusUnpaid, PaymentStatusFor(&Order{Status: OrderStatusAwaitingPayment}))
	assert.Equal(t, InvoicePaymentStatusPaid, PaymentStatusFor(&Order{Status: OrderStatusProcessing}))
	assert.Equal(t, InvoicePaymentStatusPaid, PaymentStatusFor(&Order{Status: OrderStatusCompleted}))
	assert.Equal(t, InvoicePaymentStatusUnpaid, PaymentStatusFor(&Order{Status: OrderStatusCancelled}))
}
