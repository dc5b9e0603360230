package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"harvest/internal/delivery/api/middleware"
	"harvest/internal/delivery/api/response"
	"harvest/internal/domain/entity"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the catalog
type ProductHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest is the multipart form of a new product; images are sent as "images".
type CreateProductRequest struct {
	Name        string `form:"name" validate:"required,max=150"`
	Category    string `form:"category" validate:"required,category"`
	Description string `form:"description" validate:"max=5000"`
	Price       string `form:"price" validate:"required"`
	Unit        string `form:"unit" validate:"required,max=20"`
	Stock       int    `form:"stock" validate:"min=0"`
}

// SetStockRequest overwrites the stock count
type SetStockRequest struct {
	Stock *int `json:"stock" validate:"required,min=0"`
}

// SetActiveRequest toggles whether buyers can order the product
type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// ListProducts handles the paginated catalog listing
func (h *ProductHandler) ListProducts(c echo.Context) error {
	page, err := h.catalogUC.ListProducts(c.Request().Context(), middleware.ActorOrAnonymous(c), usecase.ListProductsInput{
		Category: entity.ProductCategory(strings.ToUpper(c.QueryParam("category"))),
		Search:   c.QueryParam("search"),
		Sort:     c.QueryParam("sort"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, toProductResponses(page.Data), page.Page, page.MaxPage, page.Total)
}

// GetProduct handles retrieving one product
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, ok, err := uuidParam(c, "productId")
	if !ok {
		return err
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), middleware.ActorOrAnonymous(c), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// CreateProduct handles the multipart product creation
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", map[string]string{"price": "decimal"})
	}

	images, err := readFiles(c, "images")
	if err != nil {
		return response.BindingError(c, "Malformed multipart form")
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:        req.Name,
		Category:    entity.ProductCategory(req.Category),
		Description: req.Description,
		Price:       price,
		Unit:        req.Unit,
		Stock:       req.Stock,
		Images:      images,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product))
}

// UpdateProduct handles a partial multipart update. Only the form fields present are
// changed. "keep_image_urls" lists the images to keep; when absent every image is kept.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID, ok, err := uuidParam(c, "productId")
	if !ok {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "Malformed multipart form")
	}

	input, details := parseProductUpdate(form.Value)
	if len(details) > 0 {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", details)
	}

	input.NewImages, err = readFiles(c, "images")
	if err != nil {
		return response.BindingError(c, "Malformed multipart form")
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), productID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

func parseProductUpdate(values map[string][]string) (usecase.UpdateProductInput, map[string]string) {
	var input usecase.UpdateProductInput
	details := map[string]string{}

	field := func(name string) (string, bool) {
		v, ok := values[name]
		if !ok || len(v) == 0 {
			return "", false
		}

		return v[0], true
	}

	if v, ok := field("name"); ok {
		input.Name = &v
	}
	if v, ok := field("category"); ok {
		category := entity.ProductCategory(strings.ToUpper(v))
		input.Category = &category
	}
	if v, ok := field("description"); ok {
		input.Description = &v
	}
	if v, ok := field("unit"); ok {
		input.Unit = &v
	}
	if v, ok := field("price"); ok {
		price, err := decimal.NewFromString(v)
		if err != nil {
			details["price"] = "decimal"
		} else {
			input.Price = &price
		}
	}
	if v, ok := field("stock"); ok {
		stock, err := strconv.Atoi(v)
		if err != nil {
			details["stock"] = "integer"
		} else {
			input.Stock = &stock
		}
	}
	if urls, ok := values["keep_image_urls"]; ok {
		input.KeepImageURLs = make([]string, 0, len(urls))
		for _, url := range urls {
			if url = strings.TrimSpace(url); url != "" {
				input.KeepImageURLs = append(input.KeepImageURLs, url)
			}
		}
	}

	return input, details
}

// SetProductStock handles the stock overwrite
func (h *ProductHandler) SetProductStock(c echo.Context) error {
	productID, ok, err := uuidParam(c, "productId")
	if !ok {
		return err
	}

	var req SetStockRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.catalogUC.SetProductStock(c.Request().Context(), productID, *req.Stock)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// SetProductActive handles activating and deactivating a product
func (h *ProductHandler) SetProductActive(c echo.Context) error {
	productID, ok, err := uuidParam(c, "productId")
	if !ok {
		return err
	}

	var req SetActiveRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.catalogUC.SetProductActive(c.Request().Context(), productID, *req.Active)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// DeleteProduct handles removing a product
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID, ok, err := uuidParam(c, "productId")
	if !ok {
		return err
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
