package handler

import (
	"net/http"
	"testing"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	mockUsecase "harvest/internal/mocks/usecase"
	"harvest/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProductHandler(t *testing.T) (*ProductHandler, *mockUsecase.MockCatalogUsecase) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)

	return NewProductHandler(ProductHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()}), catalogUC
}

func TestProductHandler_ListProducts(t *testing.T) {
	t.Run("anonymous listing with filters", func(t *testing.T) {
		handler, catalogUC := createTestProductHandler(t)
		c, rec := newJSONContext(http.MethodGet, "/api/v1/products?category=fruit&search=mango&sort=price_asc&page=1&limit=20", "", nil)

		catalogUC.EXPECT().
			ListProducts(mock.Anything, usecase.Actor{}, usecase.ListProductsInput{
				Category: entity.ProductCategoryFruit,
				Search:   "mango",
				Sort:     "price_asc",
				Page:     1,
				Limit:    20,
			}).
			Return(&usecase.ProductPage{Data: []*entity.Product{testProduct()}, Page: 1, MaxPage: 1, Total: 1}, nil).
			Once()

		require.NoError(t, handler.ListProducts(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got []ProductResponse
		decodeData(t, rec, &got)
		require.Len(t, got, 1)
		assert.Equal(t, "Mango Harum Manis", got[0].Name)
		assert.NotNil(t, got[0].ImageURLs)
	})

	t.Run("admin listing carries the actor", func(t *testing.T) {
		handler, catalogUC := createTestProductHandler(t)
		c, rec := newJSONContext(http.MethodGet, "/api/v1/products", "", &admin)

		catalogUC.EXPECT().
			ListProducts(mock.Anything, admin, usecase.ListProductsInput{}).
			Return(&usecase.ProductPage{Data: []*entity.Product{}, Page: 1, MaxPage: 1}, nil).
			Once()

		require.NoError(t, handler.ListProducts(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestProductHandler_GetProduct(t *testing.T) {
	product := testProduct()

	t.Run("found", func(t *testing.T) {
		handler, catalogUC := createTestProductHandler(t)
		c, rec := newJSONContext(http.MethodGet, "/api/v1/products/"+product.ID.String(), "", nil, "productId", product.ID.String())

		catalogUC.EXPECT().GetProduct(mock.Anything, usecase.Actor{}, product.ID).Return(product, nil).Once()

		require.NoError(t, handler.GetProduct(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		handler, catalogUC := createTestProductHandler(t)
		c, rec := newJSONContext(http.MethodGet, "/api/v1/products/"+product.ID.String(), "", nil, "productId", product.ID.String())

		catalogUC.EXPECT().
			GetProduct(mock.Anything, usecase.Actor{}, product.ID).
			Return(nil, domainerrors.ErrProductNotFound.WithDetails(product.ID.String())).
			Once()

		require.NoError(t, handler.GetProduct(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PRODUCT_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestProductHandler_CreateProduct(t *testing.T) {
	image := []byte("\x89PNG\r\n\x1a\nimage")

	t.Run("creates the product with its images", func(t *testing.T) {
		handler, catalogUC := createTestProductHandler(t)
		body, contentType := multipartBody(t, map[string][]string{
			"name":     {"Mango Harum Manis"},
			"category": {"FRUIT"},
			"price":    {"25000.50"},
			"unit":     {"kg"},
			"stock":    {"40"},
		}, formFile{field: "images", filename: "mango.png", contentType: "image/png", data: image})
		c, rec := newContext(http.MethodPost, "/api/v1/products", body, contentType, &admin)

		catalogUC.EXPECT().
			CreateProduct(mock.Anything, mock.MatchedBy(func(in usecase.CreateProductInput) bool {
				return in.Name == "Mango Harum Manis" &&
					in.Category == entity.ProductCategoryFruit &&
					in.Price.Equal(decimal.RequireFromString("25000.50")) &&
					in.Stock == 40 &&
					len(in.Images) == 1 &&
					in.Images[0].Filename == "mango.png" &&
					string(in.Images[0].Data) == string(image)
			})).
			Return(testProduct(), nil).
			Once()

		require.NoError(t, handler.CreateProduct(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("rejects a non-decimal price", func(t *testing.T) {
		handler, _ := createTestProductHandler(t)
		body, contentType := multipartBody(t, map[string][]string{
			"name":     {"Mango"},
			"category": {"FRUIT"},
			"price":    {"cheap"},
			"unit":     {"kg"},
		})
		c, rec := newContext(http.MethodPost, "/api/v1/products", body, contentType, &admin)

		require.NoError(t, handler.CreateProduct(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"price": "decimal"}, decodeEnvelope(t, rec).Error.Details)
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		handler, _ := createTestProductHandler(t)
		body, contentType := multipartBody(t, map[string][]string{
			"name":     {"Mango"},
			"category": {"MEAT"},
			"price":    {"1000"},
			"unit":     {"kg"},
		})
		c, rec := newContext(http.MethodPost, "/api/v1/products", body, contentType, &admin)

		require.NoError(t, handler.CreateProduct(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"category": "category"}, decodeEnvelope(t, rec).Error.Details)
	})

	t.Run("renders a duplicate name", func(t *testing.T) {
		handler, catalogUC := createTestProductHandler(t)
		body, contentType := multipartBody(t, map[string][]string{
			"name":     {"Mango"},
			"category": {"FRUIT"},
			"price":    {"1000"},
			"unit":     {"kg"},
		})
		c, rec := newContext(http.MethodPost, "/api/v1/products", body, contentType, &admin)

		catalogUC.EXPECT().CreateProduct(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrProductNameTaken).Once()

		require.NoError(t, handler.CreateProduct(c))
		assert.Equal(t, domainerrors.ErrProductNameTaken.HTTPCode(), rec.Code)
	})
}

func TestParseProductUpdate(t *testing.T) {
	t.Run("only present fields are set", func(t *testing.T) {
		input, details := parseProductUpdate(map[string][]string{
			"price":    {"30000"},
			"category": {"vegetable"},
		})

		assert.Empty(t, details)
		assert.Nil(t, input.Name)
		assert.Nil(t, input.Stock)
		assert.Nil(t, input.KeepImageURLs)
		require.NotNil(t, input.Price)
		assert.True(t, decimal.NewFromInt(30000).Equal(*input.Price))
		require.NotNil(t, input.Category)
		assert.Equal(t, entity.ProductCategoryVegetable, *input.Category)
	})

	t.Run("an empty keep list drops every image", func(t *testing.T) {
		input, details := parseProductUpdate(map[string][]string{
			"keep_image_urls": {" "},
		})

		assert.Empty(t, details)
		assert.NotNil(t, input.KeepImageURLs)
		assert.Empty(t, input.KeepImageURLs)
	})

	t.Run("bad numbers are reported", func(t *testing.T) {
		_, details := parseProductUpdate(map[string][]string{
			"price": {"1,5"},
			"stock": {"many"},
		})

		assert.Equal(t, map[string]string{"price": "decimal", "stock": "integer"}, details)
	})
}

func TestProductHandler_UpdateProduct(t *testing.T) {
	handler, catalogUC := createTestProductHandler(t)
	product := testProduct()
	body, contentType := multipartBody(t, map[string][]string{
		"name":            {"Mango Gedong"},
		"keep_image_urls": {"https://cdn.example.com/products/a.png"},
	})
	c, rec := newContext(http.MethodPatch, "/api/v1/products/"+product.ID.String(), body, contentType, &admin, "productId", product.ID.String())

	catalogUC.EXPECT().
		UpdateProduct(mock.Anything, product.ID, mock.MatchedBy(func(in usecase.UpdateProductInput) bool {
			return in.Name != nil && *in.Name == "Mango Gedong" &&
				len(in.KeepImageURLs) == 1 &&
				len(in.NewImages) == 0
		})).
		Return(product, nil).
		Once()

	require.NoError(t, handler.UpdateProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_SetProductStock(t *testing.T) {
	product := testProduct()

	t.Run("zero is a valid stock", func(t *testing.T) {
		handler, catalogUC := createTestProductHandler(t)
		c, rec := newJSONContext(http.MethodPatch, "/api/v1/products/"+product.ID.String()+"/stock", `{"stock": 0}`, &admin, "productId", product.ID.String())

		catalogUC.EXPECT().SetProductStock(mock.Anything, product.ID, 0).Return(product, nil).Once()

		require.NoError(t, handler.SetProductStock(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("negative stock is rejected", func(t *testing.T) {
		handler, _ := createTestProductHandler(t)
		c, rec := newJSONContext(http.MethodPatch, "/api/v1/products/"+product.ID.String()+"/stock", `{"stock": -1}`, &admin, "productId", product.ID.String())

		require.NoError(t, handler.SetProductStock(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProductHandler_SetProductActive(t *testing.T) {
	handler, catalogUC := createTestProductHandler(t)
	product := testProduct()
	c, rec := newJSONContext(http.MethodPatch, "/api/v1/products/"+product.ID.String()+"/active", `{"active": false}`, &admin, "productId", product.ID.String())

	catalogUC.EXPECT().SetProductActive(mock.Anything, product.ID, false).Return(product, nil).Once()

	require.NoError(t, handler.SetProductActive(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	handler, catalogUC := createTestProductHandler(t)
	product := testProduct()
	c, rec := newJSONContext(http.MethodDelete, "/api/v1/products/"+product.ID.String(), "", &admin, "productId", product.ID.String())

	catalogUC.EXPECT().DeleteProduct(mock.Anything, product.ID).Return(nil).Once()

	require.NoError(t, handler.DeleteProduct(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
