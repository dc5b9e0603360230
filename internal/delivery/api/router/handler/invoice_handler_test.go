package handler

import (
	"net/http"
	"testing"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	mockUsecase "harvest/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestInvoiceHandler(t *testing.T) (*InvoiceHandler, *mockUsecase.MockInvoiceUsecase) {
	invoiceUC := mockUsecase.NewMockInvoiceUsecase(t)

	return NewInvoiceHandler(InvoiceHandlerParams{InvoiceUC: invoiceUC, Logger: newDiscardLogger()}), invoiceUC
}

func TestInvoiceHandler_GetInvoice(t *testing.T) {
	orderID := uuid.MustParse("0195a3b0-0000-7000-8000-0000000000aa")

	t.Run("returns the invoice", func(t *testing.T) {
		handler, invoiceUC := createTestInvoiceHandler(t)
		c, rec := newJSONContext(http.MethodGet, "/api/v1/invoices/"+orderID.String(), "", &buyer, "orderId", orderID.String())

		sentAt := testNow
		invoiceUC.EXPECT().
			GetInvoice(mock.Anything, buyer, orderID).
			Return(&entity.Invoice{
				ID:            uuid.MustParse("0195a3b0-0000-7000-8000-0000000000c1"),
				Number:        "INV-01JPAXQ0000000000000000000",
				OrderID:       orderID,
				UserID:        buyer.UserID,
				InvoiceDate:   testNow,
				Subtotal:      decimal.NewFromInt(50000),
				TotalPrice:    decimal.NewFromInt(50000),
				PaymentMethod: entity.PaymentMethodQRIS,
				PaymentStatus: entity.InvoicePaymentStatusPaid,
				DocumentURL:   "https://storage.example.com/invoices/" + orderID.String() + ".pdf",
				SentAt:        &sentAt,
			}, nil).
			Once()

		require.NoError(t, handler.GetInvoice(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got InvoiceResponse
		decodeData(t, rec, &got)
		assert.Equal(t, "INV-01JPAXQ0000000000000000000", got.Number)
		assert.Equal(t, entity.InvoicePaymentStatusPaid, got.PaymentStatus)
		require.NotNil(t, got.SentAt)
	})

	t.Run("not emitted yet", func(t *testing.T) {
		handler, invoiceUC := createTestInvoiceHandler(t)
		c, rec := newJSONContext(http.MethodGet, "/api/v1/invoices/"+orderID.String(), "", &buyer, "orderId", orderID.String())

		invoiceUC.EXPECT().GetInvoice(mock.Anything, buyer, orderID).Return(nil, domainerrors.ErrInvoiceNotFound).Once()

		require.NoError(t, handler.GetInvoice(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestInvoiceHandler_RetryInvoice(t *testing.T) {
	handler, invoiceUC := createTestInvoiceHandler(t)
	orderID := uuid.MustParse("0195a3b0-0000-7000-8000-0000000000aa")
	c, rec := newJSONContext(http.MethodPost, "/api/v1/invoices/"+orderID.String()+"/retry", "", &admin, "orderId", orderID.String())

	invoiceUC.EXPECT().
		RetryInvoice(mock.Anything, orderID).
		Return(&entity.InvoiceJob{
			ID:            uuid.MustParse("0195a3b0-0000-7000-8000-0000000000d1"),
			OrderID:       orderID,
			Status:        entity.InvoiceJobStatusPending,
			NextAttemptAt: testNow,
		}, nil).
		Once()

	require.NoError(t, handler.RetryInvoice(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	var got InvoiceJobResponse
	decodeData(t, rec, &got)
	assert.Equal(t, entity.InvoiceJobStatusPending, got.Status)
	assert.Equal(t, 0, got.Attempts)
}
