package main

import (
	"context"
	"log/slog"

	"harvest/config"
	"harvest/internal/domain/lifecycle"
	logs "harvest/internal/infra/log"
	"harvest/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

// Applies the schema once and exits.
func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(runMigration),
	).Run()
}

func runMigration(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(startCtx), 5*lifecycle.DefaultTimeout)
			defer cancel()

			if err := postgres.Migrate(ctx, params.DB); err != nil {
				return err
			}
			params.Logger.Info("Schema migrated")

			return params.Shutdown(fx.ExitCode(0))
		},
	})
}
