package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"harvest/config"
	"harvest/internal/delivery"
	"harvest/internal/delivery/api"
	"harvest/internal/delivery/api/middleware"
	"harvest/internal/delivery/api/router/handler"
	"harvest/internal/domain/service"
	"harvest/internal/infra/auth"
	"harvest/internal/infra/identity"
	"harvest/internal/infra/invoice"
	logs "harvest/internal/infra/log"
	"harvest/internal/infra/mail"
	"harvest/internal/infra/persistence/postgres"
	"harvest/internal/infra/pubsub"
	"harvest/internal/infra/qrcode"
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
		injectMiddleware(),
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
			orderLocation,
		),
		pubsub.Module,
	)
}

// orderLocation is the business timezone used for delivery stamps and invoice dates.
func orderLocation(cfg *config.Config) (*time.Location, error) {
	return cfg.Order.Location()
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewAddressRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewInvoiceRepository,
			postgres.NewInvoiceJobRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			identity.NewFirebaseProvider,
			mail.NewSMTPMailer,
			storage.New,
			invoice.NewRenderer,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates the QRIS code service, falling back to defaults when unconfigured
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewPaymentService,
			impl.NewInvoiceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewPaymentHandler,
			handler.NewInvoiceHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
