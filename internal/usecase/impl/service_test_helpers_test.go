package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"harvest/internal/domain/repository"
	mockRepo "harvest/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time {
	return testNow
}

// txRepos are the transaction-bound repositories handed to a TransactionManager callback.
type txRepos struct {
	factory   *mockRepo.MockRepositoryFactory
	users     *mockRepo.MockUserRepository
	addresses *mockRepo.MockAddressRepository
	products  *mockRepo.MockProductRepository
	orders    *mockRepo.MockOrderRepository
	invoices  *mockRepo.MockInvoiceRepository
	jobs      *mockRepo.MockInvoiceJobRepository
}

func newTxRepos(t *testing.T) *txRepos {
	repos := &txRepos{
		factory:   mockRepo.NewMockRepositoryFactory(t),
		users:     mockRepo.NewMockUserRepository(t),
		addresses: mockRepo.NewMockAddressRepository(t),
		products:  mockRepo.NewMockProductRepository(t),
		orders:    mockRepo.NewMockOrderRepository(t),
		invoices:  mockRepo.NewMockInvoiceRepository(t),
		jobs:      mockRepo.NewMockInvoiceJobRepository(t),
	}

	repos.factory.EXPECT().UserRepo().Return(repos.users).Maybe()
	repos.factory.EXPECT().AddressRepo().Return(repos.addresses).Maybe()
	repos.factory.EXPECT().ProductRepo().Return(repos.products).Maybe()
	repos.factory.EXPECT().OrderRepo().Return(repos.orders).Maybe()
	repos.factory.EXPECT().InvoiceRepo().Return(repos.invoices).Maybe()
	repos.factory.EXPECT().InvoiceJobRepo().Return(repos.jobs).Maybe()

	return repos
}

// expectTx makes txManager run its callback once against repos and return the callback's error.
func expectTx(txManager *mockRepo.MockTransactionManager, repos *txRepos) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		}).
		Once()
}
