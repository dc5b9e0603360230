package postgres

import (
	"context"
	"strings"

	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// derivedStatusExpr renders entity.DeriveProductStatus in SQL. The operands are the
// deactivation flag and the stock the row ends up with. Inside SET, column references
// still read the pre-update values.
const derivedStatusExpr = `CASE
	WHEN ? THEN ?
	WHEN ? <= 0 THEN ?
	WHEN ? <= ? THEN ?
	ELSE ? END`

// statusPriorityOrder sorts orderable products first.
const statusPriorityOrder = `CASE status
	WHEN 'AVAILABLE' THEN 0
	WHEN 'LOW_STOCK' THEN 1
	WHEN 'OUT_OF_STOCK' THEN 2
	ELSE 3 END`

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	product.RefreshStatus()
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrProductNameTaken
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("stock must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByIDForUpdate takes a row lock on the primary.
func (repo *productRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to lock product")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by name")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	page := filter.Pagination.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("name ILIKE ?", "%"+escapeLike(search)+"%")
	}
	if !filter.IncludeInactive {
		query = query.Where("deactivated = ? AND stock > 0", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productMs []model.ProductModel
	err := query.
		Order(productOrder(filter.Sort)).
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&productMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, total, nil
}

// Update leaves stock alone so that it never overwrites reservations committed after
// product was read.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	var productM model.ProductModel
	result := updateCatalogFields(repo.db.WithContext(ctx), &productM, product)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrProductNameTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	product.Stock = productM.Stock
	product.Status = entity.ProductStatus(productM.Status)
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) SetStock(ctx context.Context, id uuid.UUID, stock int) (*entity.Product, error) {
	if stock < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock must not be negative")
	}

	var productM model.ProductModel
	result := setStock(repo.db.WithContext(ctx), &productM, id, stock)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("stock must not be negative")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to set stock")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WithDetails("product is referenced by existing orders")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// ReserveStock decrements stock only when enough is left, deriving the new status in the
// same statement.
func (repo *productRepository) ReserveStock(ctx context.Context, id uuid.UUID, quantity int) (*entity.Product, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be greater than zero")
	}

	var productM model.ProductModel
	result := reserveStock(repo.db.WithContext(ctx), &productM, id, quantity)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to reserve stock")
	}
	if result.RowsAffected == 1 {
		return toProductDomain(&productM), nil
	}

	current, err := repo.findForWrite(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Deactivated {
		return nil, repository.ErrProductDeactivated
	}

	return nil, &repository.InsufficientStockError{StockShortage: repository.StockShortage{
		ProductName: current.Name,
		Requested:   quantity,
		Available:   current.Stock,
	}}
}

// RestoreStock returns quantity units to stock, keeping a deactivated product deactivated.
func (repo *productRepository) RestoreStock(ctx context.Context, id uuid.UUID, quantity int) (*entity.Product, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be greater than zero")
	}

	var productM model.ProductModel
	result := restoreStock(repo.db.WithContext(ctx), &productM, id, quantity)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to restore stock")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) findForWrite(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to re-read product")
	}

	return toProductDomain(&productM), nil
}

// --- Stock Statements ---
// Each statement runs on the primary and returns the updated row into dest.

func updateCatalogFields(db *gorm.DB, dest *model.ProductModel, product *entity.Product) *gorm.DB {
	return db.
		Clauses(dbresolver.Write, clause.Returning{}).
		Model(dest).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"category":    string(product.Category),
			"description": product.Description,
			"price":       product.Price,
			"unit":        product.Unit,
			"deactivated": product.Deactivated,
			"status":      derivedStatus(product.Deactivated, gorm.Expr("stock")),
			"image_urls":  datatypes.JSONSlice[string](product.ImageURLs),
			"updated_at":  gorm.Expr("NOW()"),
		})
}

func setStock(db *gorm.DB, dest *model.ProductModel, id uuid.UUID, stock int) *gorm.DB {
	return db.
		Clauses(dbresolver.Write, clause.Returning{}).
		Model(dest).
		Where("id = ?", id).
		Updates(map[string]any{
			"stock":      stock,
			"status":     derivedStatus(gorm.Expr("deactivated"), stock),
			"updated_at": gorm.Expr("NOW()"),
		})
}

// reserveStock only matches while enough stock is left. Concurrent reservations serialise
// on the row lock taken by the UPDATE and re-check the predicate against the new row.
func reserveStock(db *gorm.DB, dest *model.ProductModel, id uuid.UUID, quantity int) *gorm.DB {
	return db.
		Clauses(dbresolver.Write, clause.Returning{}).
		Model(dest).
		Where("id = ? AND deactivated = ? AND stock >= ?", id, false, quantity).
		Updates(map[string]any{
			"stock":      gorm.Expr("stock - ?", quantity),
			"status":     derivedStatus(gorm.Expr("deactivated"), gorm.Expr("stock - ?", quantity)),
			"updated_at": gorm.Expr("NOW()"),
		})
}

func restoreStock(db *gorm.DB, dest *model.ProductModel, id uuid.UUID, quantity int) *gorm.DB {
	return db.
		Clauses(dbresolver.Write, clause.Returning{}).
		Model(dest).
		Where("id = ?", id).
		Updates(map[string]any{
			"stock":      gorm.Expr("stock + ?", quantity),
			"status":     derivedStatus(gorm.Expr("deactivated"), gorm.Expr("stock + ?", quantity)),
			"updated_at": gorm.Expr("NOW()"),
		})
}

func derivedStatus(deactivated, stock any) clause.Expr {
	return gorm.Expr(derivedStatusExpr,
		deactivated, string(entity.ProductStatusDeactivated),
		stock, string(entity.ProductStatusOutOfStock),
		stock, constants.LowStockThreshold, string(entity.ProductStatusLowStock),
		string(entity.ProductStatusAvailable),
	)
}

func productOrder(sort repository.ProductSort) string {
	switch sort {
	case repository.ProductSortPriceAsc:
		return "price ASC, name ASC"
	case repository.ProductSortPriceDesc:
		return "price DESC, name ASC"
	case repository.ProductSortNewest:
		return "created_at DESC"
	case repository.ProductSortStatusPriority:
		return statusPriorityOrder + ", name ASC"
	default:
		return "name ASC"
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Category:    entity.ProductCategory(data.Category),
		Description: data.Description,
		Price:       data.Price,
		Unit:        data.Unit,
		Stock:       data.Stock,
		Deactivated: data.Deactivated,
		Status:      entity.ProductStatus(data.Status),
		ImageURLs:   []string(data.ImageURLs),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Category:    string(data.Category),
		Description: data.Description,
		Price:       data.Price,
		Unit:        data.Unit,
		Stock:       data.Stock,
		Deactivated: data.Deactivated,
		Status:      string(data.Status),
		ImageURLs:   datatypes.JSONSlice[string](data.ImageURLs),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
