package postgres

import (
	"context"

	"harvest/internal/errors"
	"harvest/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// uuid_generate_v7() is the default of every uuid primary key.
const uuidExtension = `CREATE EXTENSION IF NOT EXISTS pg_uuidv7`

// Models lists every persistence model in dependency order.
func Models() []any {
	return []any{
		&model.UserModel{},
		&model.AddressModel{},
		&model.ProductModel{},
		&model.OrderModel{},
		&model.OrderLineModel{},
		&model.InvoiceModel{},
		&model.InvoiceJobModel{},
	}
}

// Migrate creates or updates the schema on the primary, including the stock and total check
// constraints declared on the models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	primary := db.WithContext(ctx).Clauses(dbresolver.Write)

	if err := primary.Exec(uuidExtension).Error; err != nil {
		return errors.Wrap(err, "failed to enable pg_uuidv7")
	}

	if err := primary.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
