package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"harvest/config"
	"harvest/internal/delivery"
	apihandler "harvest/internal/delivery/api/router/handler"
	"harvest/internal/delivery/worker"
	"harvest/internal/delivery/worker/handler"
	"harvest/internal/infra/invoice"
	logs "harvest/internal/infra/log"
	"harvest/internal/infra/mail"
	"harvest/internal/infra/persistence/postgres"
	"harvest/internal/infra/pubsub"
	"harvest/internal/infra/storage"
	"harvest/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			func(cfg *config.Config) (*time.Location, error) {
				return cfg.Order.Location()
			},
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewOrderRepository,
			postgres.NewInvoiceRepository,
			postgres.NewInvoiceJobRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			invoice.NewRenderer,
			mail.NewSMTPMailer,
			storage.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewInvoiceService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			apihandler.NewHealthHandler,
		),
	)
}

// injectDelivery starts the push endpoint, the Kafka consumer and the outbox relay; the
// latter two stay idle unless enabled in config.
func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewKafkaConsumer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewOutboxRelay,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
