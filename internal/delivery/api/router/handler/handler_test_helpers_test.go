package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"harvest/internal/delivery/api/middleware"
	"harvest/internal/delivery/api/validator"
	"harvest/internal/domain/entity"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	buyer = usecase.Actor{UserID: "buyer-1", Role: entity.RoleCustomer}
	admin = usecase.Actor{UserID: "admin-1", Role: entity.RoleAdmin}
)

// envelope mirrors the JSON shape written by the response package.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
		Page      int    `json:"page"`
		MaxPage   int    `json:"max_page"`
		Total     *int64 `json:"total"`
	} `json:"meta"`
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

// newContext builds a request context; names and values pair up as path parameters.
func newContext(method, target string, body io.Reader, contentType string, actor *usecase.Actor, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	c := newTestEcho().NewContext(req, rec)

	names := make([]string, 0, len(params)/2)
	values := make([]string, 0, len(params)/2)
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	if actor != nil {
		middleware.SetActor(c, *actor)
	}

	return c, rec
}

func newJSONContext(method, target, body string, actor *usecase.Actor, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	return newContext(method, target, reader, echo.MIMEApplicationJSON, actor, params...)
}

type formFile struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

func multipartBody(t *testing.T, values map[string][]string, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, vs := range values {
		for _, v := range vs {
			require.NoError(t, w.WriteField(name, v))
		}
	}
	for _, f := range files {
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{`form-data; name="` + f.field + `"; filename="` + f.filename + `"`}
		header["Content-Type"] = []string{f.contentType}
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func testProduct() *entity.Product {
	return &entity.Product{
		ID:        uuid.MustParse("0195a3b0-0000-7000-8000-000000000001"),
		Name:      "Mango Harum Manis",
		Category:  entity.ProductCategoryFruit,
		Price:     decimal.NewFromInt(25000),
		Unit:      "kg",
		Stock:     40,
		Status:    entity.ProductStatusAvailable,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}

func testOrder(status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		ID:            uuid.MustParse("0195a3b0-0000-7000-8000-0000000000aa"),
		UserID:        buyer.UserID,
		PONumber:      "PO-2025-001",
		Status:        status,
		PaymentMethod: entity.PaymentMethodBankTransfer,
		OrderDate:     testNow,
		Discount:      decimal.Zero,
		Tax:           decimal.Zero,
		ShippingFee:   decimal.Zero,
		TotalPrice:    decimal.NewFromInt(50000),
		Lines: []*entity.OrderLine{{
			ID:           uuid.MustParse("0195a3b0-0000-7000-8000-0000000000b1"),
			ProductID:    uuid.MustParse("0195a3b0-0000-7000-8000-000000000001"),
			ProductName:  "Mango Harum Manis",
			Quantity:     2,
			PricePerUnit: decimal.NewFromInt(25000),
		}},
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}
