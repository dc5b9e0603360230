package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	"harvest/internal/errors"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	storage     service.ObjectStorage
	now         func() time.Time
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Storage     service.ObjectStorage
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		storage:     params.Storage,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct validates a new product, uploads its images and stores it.
func (srv *catalogService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	now := srv.now()
	product := &entity.Product{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        strings.TrimSpace(input.Name),
		Category:    input.Category,
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price.Round(2),
		Unit:        strings.TrimSpace(input.Unit),
		Stock:       input.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if len(input.Images) == 0 {
		return nil, validationError("at least one product image is required")
	}
	if err := srv.ensureNameAvailable(ctx, product.Name, uuid.Nil); err != nil {
		return nil, err
	}

	urls, err := srv.uploadImages(ctx, product.ID, input.Images)
	if err != nil {
		return nil, err
	}
	product.ImageURLs = urls
	product.RefreshStatus()

	if err := srv.productRepo.Create(ctx, product); err != nil {
		removeObjects(ctx, srv.storage, srv.log(ctx), constants.BucketProductImages, urls)

		return nil, mapProductError(err, product.ID, "create product")
	}

	srv.log(ctx).Info("Product created", slog.String("productID", product.ID.String()), slog.String("name", product.Name))

	return product, nil
}

// UpdateProduct applies a partial update. The catalog fields are written against a locked
// copy of the row, so concurrent reservations are never overwritten; stock is only written
// when the update sets it. Images dropped from the product are removed from storage once
// the update is stored.
func (srv *catalogService) UpdateProduct(ctx context.Context, productID uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	current, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, mapProductError(err, productID, "find product")
	}
	if err := validateProductUpdate(current, input); err != nil {
		return nil, err
	}
	if input.Name != nil {
		if err := srv.ensureNameAvailable(ctx, strings.TrimSpace(*input.Name), productID); err != nil {
			return nil, err
		}
	}

	uploaded, err := srv.uploadImages(ctx, productID, input.NewImages)
	if err != nil {
		return nil, err
	}

	var (
		product *entity.Product
		dropped []string
	)
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		productRepo := repos.ProductRepo()

		locked, err := productRepo.FindByIDForUpdate(ctx, productID)
		if err != nil {
			return err
		}

		applyProductUpdate(locked, input)
		if err := validateProduct(locked); err != nil {
			return err
		}

		var kept []string
		kept, dropped = partitionImages(locked.ImageURLs, input.KeepImageURLs)
		if len(kept) == 0 && len(uploaded) == 0 {
			return validationError("a product needs at least one image")
		}
		locked.ImageURLs = append(kept, uploaded...)

		if err := productRepo.Update(ctx, locked); err != nil {
			return err
		}
		product = locked

		if input.Stock != nil {
			restocked, err := productRepo.SetStock(ctx, productID, *input.Stock)
			if err != nil {
				return err
			}
			product.Stock = restocked.Stock
			product.Status = restocked.Status
			product.UpdatedAt = restocked.UpdatedAt
		}

		return nil
	})
	if err != nil {
		removeObjects(ctx, srv.storage, srv.log(ctx), constants.BucketProductImages, uploaded)

		return nil, mapProductError(err, productID, "update product")
	}
	removeObjects(ctx, srv.storage, srv.log(ctx), constants.BucketProductImages, dropped)

	return product, nil
}

// validateProductUpdate rejects an update before any image is uploaded. The same checks
// run again against the locked row.
func validateProductUpdate(current *entity.Product, input usecase.UpdateProductInput) error {
	preview := *current
	applyProductUpdate(&preview, input)
	if err := validateProduct(&preview); err != nil {
		return err
	}

	kept, _ := partitionImages(current.ImageURLs, input.KeepImageURLs)
	if len(kept) == 0 && len(input.NewImages) == 0 {
		return validationError("a product needs at least one image")
	}

	return nil
}

func applyProductUpdate(product *entity.Product, input usecase.UpdateProductInput) {
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Description != nil {
		product.Description = strings.TrimSpace(*input.Description)
	}
	if input.Price != nil {
		product.Price = input.Price.Round(2)
	}
	if input.Unit != nil {
		product.Unit = strings.TrimSpace(*input.Unit)
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
}

// partitionImages splits current into the URLs to keep and the URLs to drop. A nil keep
// list keeps everything; URLs not on the product are ignored.
func partitionImages(current, keep []string) (kept, dropped []string) {
	if keep == nil {
		return slices.Clone(current), nil
	}

	for _, url := range current {
		if slices.Contains(keep, url) {
			kept = append(kept, url)
		} else {
			dropped = append(dropped, url)
		}
	}

	return kept, dropped
}

// SetProductStock overwrites the stock count and re-derives the status in one statement.
func (srv *catalogService) SetProductStock(ctx context.Context, productID uuid.UUID, stock int) (*entity.Product, error) {
	if stock < 0 {
		return nil, validationError("stock must not be negative")
	}

	product, err := srv.productRepo.SetStock(ctx, productID, stock)
	if err != nil {
		return nil, mapProductError(err, productID, "set product stock")
	}

	srv.logProductUpdated(ctx, product)

	return product, nil
}

// SetProductActive toggles the deactivation flag. Stock is left as stored.
func (srv *catalogService) SetProductActive(ctx context.Context, productID uuid.UUID, active bool) (*entity.Product, error) {
	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		productRepo := repos.ProductRepo()

		locked, err := productRepo.FindByIDForUpdate(ctx, productID)
		if err != nil {
			return err
		}

		locked.Deactivated = !active
		if err := productRepo.Update(ctx, locked); err != nil {
			return err
		}
		product = locked

		return nil
	})
	if err != nil {
		return nil, mapProductError(err, productID, "update product")
	}

	srv.logProductUpdated(ctx, product)

	return product, nil
}

func (srv *catalogService) logProductUpdated(ctx context.Context, product *entity.Product) {
	srv.log(ctx).Info("Product updated",
		slog.String("productID", product.ID.String()),
		slog.Int("stock", product.Stock),
		slog.String("status", product.Status.String()),
	)
}

// DeleteProduct removes the product and then its images.
func (srv *catalogService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return mapProductError(err, productID, "find product")
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		return mapProductError(err, productID, "delete product")
	}
	removeObjects(ctx, srv.storage, srv.log(ctx), constants.BucketProductImages, product.ImageURLs)

	srv.log(ctx).Info("Product deleted", slog.String("productID", productID.String()))

	return nil
}

// GetProduct returns a product. Buyers only see products they can order.
func (srv *catalogService) GetProduct(ctx context.Context, actor usecase.Actor, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, mapProductError(err, productID, "find product")
	}
	if !actor.IsAdmin() && !product.IsOrderable() {
		return nil, domainerrors.ErrProductNotFound.WithDetails("product " + productID.String())
	}

	return product, nil
}

var productSorts = []repository.ProductSort{
	repository.ProductSortName,
	repository.ProductSortPriceAsc,
	repository.ProductSortPriceDesc,
	repository.ProductSortNewest,
	repository.ProductSortStatusPriority,
}

// ListProducts returns one page of the catalog.
func (srv *catalogService) ListProducts(ctx context.Context, actor usecase.Actor, input usecase.ListProductsInput) (*usecase.ProductPage, error) {
	if input.Category != "" && !input.Category.IsValid() {
		return nil, validationError("unknown category " + string(input.Category))
	}

	sort := repository.ProductSort(strings.ToLower(strings.TrimSpace(input.Sort)))
	if sort == "" {
		sort = repository.ProductSortName
	}
	if !slices.Contains(productSorts, sort) {
		return nil, validationError("unknown sort " + input.Sort)
	}

	page := entity.Pagination{Page: input.Page, Limit: input.Limit}.Normalize()
	products, total, err := srv.productRepo.List(ctx, repository.ProductFilter{
		Category:        input.Category,
		Search:          strings.TrimSpace(input.Search),
		Sort:            sort,
		IncludeInactive: actor.IsAdmin(),
		Pagination:      page,
	})
	if err != nil {
		return nil, databaseError(err, "list products")
	}

	return &usecase.ProductPage{
		Data:    products,
		Page:    page.Page,
		MaxPage: page.MaxPage(total),
		Total:   total,
	}, nil
}

// Column widths of products.name and products.unit.
const (
	maxProductNameLength = 150
	maxProductUnitLength = 20
)

func validateProduct(p *entity.Product) error {
	switch {
	case p.Name == "":
		return validationError("name is required")
	case utf8.RuneCountInString(p.Name) > maxProductNameLength:
		return validationError(fmt.Sprintf("name must be at most %d characters", maxProductNameLength))
	case !p.Category.IsValid():
		return validationError("category must be FRUIT, VEGETABLE or OTHER")
	case !p.Price.IsPositive():
		return validationError("price must be greater than zero")
	case p.Unit == "":
		return validationError("unit is required")
	case utf8.RuneCountInString(p.Unit) > maxProductUnitLength:
		return validationError(fmt.Sprintf("unit must be at most %d characters", maxProductUnitLength))
	case p.Stock < 0:
		return validationError("stock must not be negative")
	}

	return nil
}

func (srv *catalogService) ensureNameAvailable(ctx context.Context, name string, self uuid.UUID) error {
	existing, err := srv.productRepo.FindByName(ctx, name)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil
	}
	if err != nil {
		return databaseError(err, "find product by name")
	}
	if existing.ID != self {
		return domainerrors.ErrProductNameTaken.WithDetails(name)
	}

	return nil
}

// uploadImages stores images under products/<id>/ and returns their URLs. On failure the
// images uploaded so far are removed.
func (srv *catalogService) uploadImages(ctx context.Context, productID uuid.UUID, images []usecase.FileUpload) ([]string, error) {
	urls := make([]string, 0, len(images))
	for i, image := range images {
		contentType, err := validateUpload(image, imageContentTypes)
		if err != nil {
			removeObjects(ctx, srv.storage, srv.log(ctx), constants.BucketProductImages, urls)

			return nil, err
		}

		key := fmt.Sprintf("products/%s/%d-%d-%s", productID, srv.now().UnixMilli(), i, sanitizeObjectName(image.Filename))
		url, err := srv.storage.Upload(ctx, constants.BucketProductImages, key, image.Data, contentType)
		if err != nil {
			srv.log(ctx).Error("Product image upload failed", slog.String("key", key), slog.Any("error", err))
			removeObjects(ctx, srv.storage, srv.log(ctx), constants.BucketProductImages, urls)

			return nil, storageError(err)
		}
		urls = append(urls, url)
	}

	return urls, nil
}
