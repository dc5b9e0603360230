package handler

import (
	"log/slog"
	"net/http"

	"harvest/internal/delivery/api/middleware"
	"harvest/internal/delivery/api/response"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves payment proof uploads and QRIS codes
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// SubmitProofResponse acknowledges an accepted payment proof
type SubmitProofResponse struct {
	Message string         `json:"message"`
	FileURL string         `json:"file_url"`
	Order   *OrderResponse `json:"order"`
}

// SubmitProof handles the multipart upload of a payment proof sent as "file"
func (h *PaymentHandler) SubmitProof(c echo.Context) error {
	orderID, ok, err := uuidParam(c, "orderId")
	if !ok {
		return err
	}
	actor, _ := middleware.GetActor(c)

	header, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "FILE_REQUIRED", "A payment proof file is required")
	}
	file, err := readFile(header)
	if err != nil {
		return response.BindingError(c, "Unreadable payment proof file")
	}

	out, err := h.paymentUC.SubmitProof(c.Request().Context(), actor, orderID, file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &SubmitProofResponse{
		Message: out.Message,
		FileURL: out.FileURL,
		Order:   toOrderResponse(out.Order),
	})
}

// PaymentQR handles rendering the QRIS code of an order as a PNG image
func (h *PaymentHandler) PaymentQR(c echo.Context) error {
	orderID, ok, err := uuidParam(c, "orderId")
	if !ok {
		return err
	}
	actor, _ := middleware.GetActor(c)

	png, err := h.paymentUC.PaymentQR(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}
