// Package postgres implements the repositories on gorm and PostgreSQL.
package postgres

import (
	"context"

	"harvest/internal/domain/repository"
	"harvest/internal/errors"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) AddressRepo() repository.AddressRepository {
	return NewAddressRepository(f.tx)
}

func (f *gormRepositoryFactory) ProductRepo() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

func (f *gormRepositoryFactory) OrderRepo() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f *gormRepositoryFactory) InvoiceRepo() repository.InvoiceRepository {
	return NewInvoiceRepository(f.tx)
}

func (f *gormRepositoryFactory) InvoiceJobRepo() repository.InvoiceJobRepository {
	return NewInvoiceJobRepository(f.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one transaction on the primary. An error from fn, or a panic, rolls back
// every write fn made, including stock reservations for lines that already succeeded.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Clauses(dbresolver.Write).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&gormRepositoryFactory{tx: tx})

		return fnErr
	})
	if err != nil && fnErr == nil {
		return errors.Wrap(err, "transaction failed")
	}

	return err
}
