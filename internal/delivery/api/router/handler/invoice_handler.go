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

// InvoiceHandlerParams holds dependencies for InvoiceHandler, injected by Fx.
type InvoiceHandlerParams struct {
	fx.In

	InvoiceUC usecase.InvoiceUsecase
	Logger    *slog.Logger
}

// InvoiceHandler serves invoice lookups and admin retries
type InvoiceHandler struct {
	invoiceUC usecase.InvoiceUsecase
	logger    *slog.Logger
}

// NewInvoiceHandler is the constructor for InvoiceHandler
func NewInvoiceHandler(params InvoiceHandlerParams) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceUC: params.InvoiceUC,
		logger:    params.Logger,
	}
}

// GetInvoice handles retrieving the invoice of an order
func (h *InvoiceHandler) GetInvoice(c echo.Context) error {
	orderID, ok, err := uuidParam(c, "orderId")
	if !ok {
		return err
	}
	actor, _ := middleware.GetActor(c)

	invoice, err := h.invoiceUC.GetInvoice(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toInvoiceResponse(invoice))
}

// RetryInvoice handles requeueing the invoice job of an order
func (h *InvoiceHandler) RetryInvoice(c echo.Context) error {
	orderID, ok, err := uuidParam(c, "orderId")
	if !ok {
		return err
	}

	job, err := h.invoiceUC.RetryInvoice(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, toInvoiceJobResponse(job))
}
