package postgres

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/repository"
	"harvest/internal/errors"
	"harvest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newDryRunDB renders statements without a server; the pool is never dialled.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=harvest dbname=harvest sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db
}

// renderSQL returns the statement built by fn with its arguments inlined and whitespace
// collapsed.
func renderSQL(db *gorm.DB, fn func(tx *gorm.DB) *gorm.DB) string {
	return strings.Join(strings.Fields(db.ToSQL(fn)), " ")
}

func TestReserveStockStatement(t *testing.T) {
	db := newDryRunDB(t)
	id := uuid.New()

	sql := renderSQL(db, func(tx *gorm.DB) *gorm.DB {
		return reserveStock(tx, &model.ProductModel{}, id, 3)
	})

	assert.Contains(t, sql, `UPDATE "products" SET`)
	assert.Contains(t, sql, `"stock"=stock - 3`)
	assert.Contains(t, sql, "id = '"+id.String()+"' AND deactivated = false AND stock >= 3")
	assert.Contains(t, sql, "WHEN deactivated THEN 'DEACTIVATED'")
	assert.Contains(t, sql, "WHEN stock - 3 <= 0 THEN 'OUT_OF_STOCK'")
	assert.Contains(t, sql, "WHEN stock - 3 <= 10 THEN 'LOW_STOCK'")
	assert.Contains(t, sql, "ELSE 'AVAILABLE' END")
	assert.Contains(t, sql, `"updated_at"=NOW()`)
	assert.True(t, strings.HasSuffix(sql, "RETURNING *"), sql)
}

func TestRestoreStockStatement(t *testing.T) {
	db := newDryRunDB(t)
	id := uuid.New()

	sql := renderSQL(db, func(tx *gorm.DB) *gorm.DB {
		return restoreStock(tx, &model.ProductModel{}, id, 4)
	})

	assert.Contains(t, sql, `"stock"=stock + 4`)
	assert.Contains(t, sql, "WHERE id = '"+id.String()+"' RETURNING *")
	assert.Contains(t, sql, "WHEN deactivated THEN 'DEACTIVATED'")
	assert.Contains(t, sql, "WHEN stock + 4 <= 0 THEN 'OUT_OF_STOCK'")
	assert.Contains(t, sql, "WHEN stock + 4 <= 10 THEN 'LOW_STOCK'")
	assert.NotContains(t, sql, "stock >=")
}

func TestSetStockStatement(t *testing.T) {
	db := newDryRunDB(t)
	id := uuid.New()

	sql := renderSQL(db, func(tx *gorm.DB) *gorm.DB {
		return setStock(tx, &model.ProductModel{}, id, 7)
	})

	assert.Contains(t, sql, `"stock"=7`)
	assert.Contains(t, sql, "WHEN deactivated THEN 'DEACTIVATED' WHEN 7 <= 0 THEN 'OUT_OF_STOCK' WHEN 7 <= 10 THEN 'LOW_STOCK'")
	assert.True(t, strings.HasSuffix(sql, "RETURNING *"), sql)
}

func TestUpdateCatalogFieldsStatement(t *testing.T) {
	db := newDryRunDB(t)
	product := &entity.Product{
		ID:          uuid.New(),
		Name:        "Mango",
		Category:    entity.ProductCategoryFruit,
		Price:       decimal.NewFromInt(12000),
		Unit:        "kg",
		Stock:       50,
		Deactivated: true,
		ImageURLs:   []string{"https://cdn.example.com/a.png"},
	}

	sql := renderSQL(db, func(tx *gorm.DB) *gorm.DB {
		return updateCatalogFields(tx, &model.ProductModel{}, product)
	})

	assert.NotContains(t, sql, `"stock"=`)
	assert.Contains(t, sql, `"deactivated"=true`)
	assert.Contains(t, sql, "WHEN true THEN 'DEACTIVATED' WHEN stock <= 0 THEN 'OUT_OF_STOCK' WHEN stock <= 10 THEN 'LOW_STOCK'")
	assert.Contains(t, sql, "WHERE id = '"+product.ID.String()+"'")
	assert.True(t, strings.HasSuffix(sql, "RETURNING *"), sql)
}

// TestProductRepository_ConcurrentReservations needs a migrated database, for example
// HARVEST_TEST_POSTGRES_DSN="host=localhost user=harvest password=harvest dbname=harvest_test sslmode=disable".
func TestProductRepository_ConcurrentReservations(t *testing.T) {
	dsn := os.Getenv("HARVEST_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("HARVEST_TEST_POSTGRES_DSN is not set")
	}

	ctx := context.Background()
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{SkipDefaultTransaction: true, Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, Migrate(ctx, db))

	repo := NewProductRepository(db)
	product := &entity.Product{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      "Concurrent mango " + uuid.NewString(),
		Category:  entity.ProductCategoryFruit,
		Price:     decimal.NewFromInt(10000),
		Unit:      "kg",
		Stock:     12,
		ImageURLs: []string{"https://cdn.example.com/mango.png"},
	}
	require.NoError(t, repo.Create(ctx, product))
	t.Cleanup(func() { _ = repo.Delete(context.Background(), product.ID) })

	const buyers = 30
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		reserved int
		short    int
	)
	for range buyers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := repo.ReserveStock(ctx, product.ID, 1)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				reserved++

				return
			}
			if _, ok := errors.AsType[*repository.InsufficientStockError](err); ok {
				short++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 12, reserved)
	assert.Equal(t, buyers-12, short)

	stored, err := repo.FindByIDForUpdate(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Stock)
	assert.Equal(t, entity.ProductStatusOutOfStock, stored.Status)

	restored, err := repo.RestoreStock(ctx, product.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, restored.Stock)
	assert.Equal(t, entity.ProductStatusLowStock, restored.Status)

	deactivated := *restored
	deactivated.Deactivated = true
	require.NoError(t, repo.Update(ctx, &deactivated))
	assert.Equal(t, 5, deactivated.Stock)
	assert.Equal(t, entity.ProductStatusDeactivated, deactivated.Status)

	_, err = repo.ReserveStock(ctx, product.ID, 1)
	assert.ErrorIs(t, err, repository.ErrProductDeactivated)
}
