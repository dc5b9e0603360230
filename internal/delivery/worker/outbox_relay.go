package worker

import (
	"context"
	"log/slog"
	"time"

	"harvest/config"
	"harvest/internal/delivery"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultPollInterval = 5 * time.Second

// OutboxRelayParams holds dependencies for the outbox relay delivery
type OutboxRelayParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	InvoiceUC usecase.InvoiceUsecase
}

type outboxRelay struct {
	interval  time.Duration
	invoiceUC usecase.InvoiceUsecase
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewOutboxRelay periodically hands due invoice jobs to the configured transport.
func NewOutboxRelay(params OutboxRelayParams) delivery.Delivery {
	if params.Cfg.Outbox == nil || !params.Cfg.Outbox.Enabled {
		return disabledDelivery{name: "outbox relay", logger: params.Logger}
	}

	interval := params.Cfg.Outbox.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	relay := newOutboxRelay(interval, params.InvoiceUC, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: relay.stop,
	})

	return relay
}

func newOutboxRelay(interval time.Duration, invoiceUC usecase.InvoiceUsecase, logger *slog.Logger) *outboxRelay {
	ctx, cancel := context.WithCancel(context.Background())

	return &outboxRelay{
		interval:  interval,
		invoiceUC: invoiceUC,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
}

// Serve runs one dispatch immediately and then once per interval until stopped.
func (r *outboxRelay) Serve(_ context.Context) error {
	defer close(r.done)

	r.logger.Info("Starting invoice outbox relay", slog.Duration("interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		r.tick()

		select {
		case <-r.ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (r *outboxRelay) tick() {
	runID := uuid.New().String()
	logger := r.logger.With(slog.String("request_id", runID))
	ctx := deliverycontext.WithScope(r.ctx, runID, logger)

	sent, err := r.invoiceUC.DispatchPendingJobs(ctx)
	if err != nil {
		if r.ctx.Err() == nil {
			logger.Error("[Outbox] Dispatch failed", slog.Any("error", err))
		}

		return
	}
	if sent > 0 {
		logger.Info("[Outbox] Dispatched invoice jobs", slog.Int("count", sent))
	}
}

func (r *outboxRelay) stop(ctx context.Context) error {
	r.logger.Info("Stopping invoice outbox relay")
	r.cancel()

	select {
	case <-r.done:
	case <-ctx.Done():
	}

	return nil
}

// disabledDelivery stands in for a delivery whose feature is switched off in config.
type disabledDelivery struct {
	name   string
	logger *slog.Logger
}

func (d disabledDelivery) Serve(context.Context) error {
	d.logger.Info("Delivery disabled by configuration", slog.String("delivery", d.name))

	return nil
}
