package handler

import (
	"net/http"
	"testing"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	mockUsecase "harvest/internal/mocks/usecase"
	"harvest/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPaymentHandler(t *testing.T) (*PaymentHandler, *mockUsecase.MockPaymentUsecase) {
	paymentUC := mockUsecase.NewMockPaymentUsecase(t)

	return NewPaymentHandler(PaymentHandlerParams{PaymentUC: paymentUC, Logger: newDiscardLogger()}), paymentUC
}

func TestPaymentHandler_SubmitProof(t *testing.T) {
	order := testOrder(entity.OrderStatusProcessing)
	proof := []byte("%PDF-1.4 transfer receipt")

	t.Run("accepts the proof", func(t *testing.T) {
		handler, paymentUC := createTestPaymentHandler(t)
		body, contentType := multipartBody(t, nil, formFile{field: "file", filename: "receipt.pdf", contentType: "application/pdf", data: proof})
		c, rec := newContext(http.MethodPost, "/api/v1/payments/"+order.ID.String()+"/proof", body, contentType, &buyer, "orderId", order.ID.String())

		paymentUC.EXPECT().
			SubmitProof(mock.Anything, buyer, order.ID, mock.MatchedBy(func(f usecase.FileUpload) bool {
				return f.Filename == "receipt.pdf" && f.ContentType == "application/pdf" && string(f.Data) == string(proof)
			})).
			Return(&usecase.SubmitProofOutput{
				Message: "Payment proof received",
				FileURL: "https://storage.example.com/payment-proofs/receipt.pdf",
				Order:   order,
			}, nil).
			Once()

		require.NoError(t, handler.SubmitProof(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got SubmitProofResponse
		decodeData(t, rec, &got)
		assert.Equal(t, "https://storage.example.com/payment-proofs/receipt.pdf", got.FileURL)
		require.NotNil(t, got.Order)
		assert.Equal(t, entity.OrderStatusProcessing, got.Order.Status)
	})

	t.Run("requires a file", func(t *testing.T) {
		handler, _ := createTestPaymentHandler(t)
		body, contentType := multipartBody(t, map[string][]string{"note": {"paid"}})
		c, rec := newContext(http.MethodPost, "/api/v1/payments/"+order.ID.String()+"/proof", body, contentType, &buyer, "orderId", order.ID.String())

		require.NoError(t, handler.SubmitProof(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "FILE_REQUIRED", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("refuses an order not awaiting payment", func(t *testing.T) {
		handler, paymentUC := createTestPaymentHandler(t)
		body, contentType := multipartBody(t, nil, formFile{field: "file", filename: "receipt.pdf", contentType: "application/pdf", data: proof})
		c, rec := newContext(http.MethodPost, "/api/v1/payments/"+order.ID.String()+"/proof", body, contentType, &buyer, "orderId", order.ID.String())

		paymentUC.EXPECT().
			SubmitProof(mock.Anything, buyer, order.ID, mock.Anything).
			Return(nil, domainerrors.ErrInvalidStatusTransition).
			Once()

		require.NoError(t, handler.SubmitProof(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestPaymentHandler_PaymentQR(t *testing.T) {
	order := testOrder(entity.OrderStatusAwaitingPayment)

	t.Run("streams the PNG", func(t *testing.T) {
		handler, paymentUC := createTestPaymentHandler(t)
		c, rec := newJSONContext(http.MethodGet, "/api/v1/payments/"+order.ID.String()+"/qr", "", &buyer, "orderId", order.ID.String())

		png := []byte("\x89PNG\r\n\x1a\nqr")
		paymentUC.EXPECT().PaymentQR(mock.Anything, buyer, order.ID).Return(png, nil).Once()

		require.NoError(t, handler.PaymentQR(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("refuses an order not awaiting payment", func(t *testing.T) {
		handler, paymentUC := createTestPaymentHandler(t)
		c, rec := newJSONContext(http.MethodGet, "/api/v1/payments/"+order.ID.String()+"/qr", "", &buyer, "orderId", order.ID.String())

		paymentUC.EXPECT().PaymentQR(mock.Anything, buyer, order.ID).Return(nil, domainerrors.ErrPaymentQRUnavailable).Once()

		require.NoError(t, handler.PaymentQR(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "PAYMENT_QR_UNAVAILABLE", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("leaves unclassified failures to the error handler", func(t *testing.T) {
		handler, paymentUC := createTestPaymentHandler(t)
		c, rec := newJSONContext(http.MethodGet, "/api/v1/payments/"+order.ID.String()+"/qr", "", &buyer, "orderId", order.ID.String())

		paymentUC.EXPECT().PaymentQR(mock.Anything, buyer, order.ID).Return(nil, errors.New("png encoder failed")).Once()

		err := handler.PaymentQR(c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "png encoder failed")
		assert.Equal(t, 0, rec.Body.Len())
	})
}
