package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"harvest/config"
	mockUsecase "harvest/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOutboxRelay_DispatchesUntilStopped(t *testing.T) {
	invoiceUC := mockUsecase.NewMockInvoiceUsecase(t)
	relay := newOutboxRelay(time.Millisecond, invoiceUC, discardLogger())

	calls := 0
	invoiceUC.EXPECT().
		DispatchPendingJobs(mock.Anything).
		RunAndReturn(func(context.Context) (int, error) {
			calls++
			switch calls {
			case 1:
				return 2, nil
			case 2:
				return 0, errors.New("claim failed")
			default:
				relay.cancel()

				return 0, nil
			}
		})

	require.NoError(t, relay.Serve(context.Background()))
	assert.GreaterOrEqual(t, calls, 3)

	require.NoError(t, relay.stop(context.Background()))
}

func TestNewOutboxRelay_Disabled(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	tests := []struct {
		name   string
		outbox *config.OutboxConfig
	}{
		{name: "no outbox section"},
		{name: "switched off", outbox: &config.OutboxConfig{Enabled: false, PollInterval: time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewOutboxRelay(OutboxRelayParams{
				Lc:        lc,
				Cfg:       &config.Config{Outbox: tt.outbox},
				Logger:    discardLogger(),
				InvoiceUC: mockUsecase.NewMockInvoiceUsecase(t),
			})

			_, disabled := d.(disabledDelivery)
			assert.True(t, disabled)
			assert.NoError(t, d.Serve(context.Background()))
		})
	}
}

func TestNewOutboxRelay_DefaultInterval(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	d := NewOutboxRelay(OutboxRelayParams{
		Lc:        lc,
		Cfg:       &config.Config{Outbox: &config.OutboxConfig{Enabled: true}},
		Logger:    discardLogger(),
		InvoiceUC: mockUsecase.NewMockInvoiceUsecase(t),
	})

	relay, ok := d.(*outboxRelay)
	require.True(t, ok)
	assert.Equal(t, defaultPollInterval, relay.interval)
}

func TestNewKafkaConsumer_DisabledForOtherProviders(t *testing.T) {
	d, err := NewKafkaConsumer(KafkaConsumerParams{
		Lc:        fxtest.NewLifecycle(t),
		Cfg:       &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}},
		Logger:    discardLogger(),
		InvoiceUC: mockUsecase.NewMockInvoiceUsecase(t),
	})
	require.NoError(t, err)

	_, disabled := d.(disabledDelivery)
	assert.True(t, disabled)
}
