package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"harvest/internal/delivery/api/middleware"
	"harvest/internal/delivery/api/response"
	"harvest/internal/domain/entity"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the order lifecycle
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemRequest is one requested product
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// AddressRequest is an address supplied with an order
type AddressRequest struct {
	Street     string `json:"street" validate:"required,max=255"`
	Ward       string `json:"ward" validate:"max=100"`
	City       string `json:"city" validate:"required,max=100"`
	Province   string `json:"province" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=10"`
	PICName    string `json:"pic_name" validate:"max=100"`
}

func (r *AddressRequest) toFields() *entity.AddressFields {
	if r == nil {
		return nil
	}

	return &entity.AddressFields{
		Street:     r.Street,
		Ward:       r.Ward,
		City:       r.City,
		Province:   r.Province,
		PostalCode: r.PostalCode,
		PICName:    r.PICName,
	}
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	PONumber        string             `json:"po_number" validate:"max=32"`
	PaymentMethod   string             `json:"payment_method" validate:"required,payment_method"`
	Notes           string             `json:"notes" validate:"max=2000"`
	PICName         string             `json:"pic_name" validate:"max=100"`
	CompanyName     string             `json:"company_name" validate:"max=200"`
	TaxID           string             `json:"tax_id" validate:"max=32"`
	PhoneNumber     string             `json:"phone_number" validate:"max=30"`
	DeliveryAddress *AddressRequest    `json:"delivery_address"`
	BillingAddress  *AddressRequest    `json:"billing_address"`
}

// UpdateStatusRequest carries the target status of an admin transition
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,order_status"`
}

// AdjustChargesRequest sets the order-level charges
type AdjustChargesRequest struct {
	Discount    decimal.Decimal `json:"discount"`
	Tax         decimal.Decimal `json:"tax"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
}

// RateOrderRequest carries the buyer's rating
type RateOrderRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// GetOrderForm handles pre-filling the order form
func (h *OrderHandler) GetOrderForm(c echo.Context) error {
	actor, _ := middleware.GetActor(c)

	form, err := h.orderUC.GetOrderForm(c.Request().Context(), actor, c.Param("userId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderFormResponse(form))
}

// CreateOrder handles placing an order
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	actor, _ := middleware.GetActor(c)

	var req CreateOrderRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), actor, c.Param("userId"), usecase.CreateOrderInput{
		Items:           items,
		PONumber:        req.PONumber,
		PaymentMethod:   entity.PaymentMethod(req.PaymentMethod),
		Notes:           req.Notes,
		PICName:         req.PICName,
		CompanyName:     req.CompanyName,
		TaxID:           req.TaxID,
		PhoneNumber:     req.PhoneNumber,
		DeliveryAddress: req.DeliveryAddress.toFields(),
		BillingAddress:  req.BillingAddress.toFields(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order))
}

// GetOrder handles retrieving one order
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, ok, err := uuidParam(c, "orderId")
	if !ok {
		return err
	}
	actor, _ := middleware.GetActor(c)

	order, err := h.orderUC.GetOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// GetOrderTotal handles the amount breakdown of an order
func (h *OrderHandler) GetOrderTotal(c echo.Context) error {
	orderID, ok, err := uuidParam(c, "orderId")
	if !ok {
		return err
	}
	actor, _ := middleware.GetActor(c)

	total, err := h.orderUC.GetOrderTotal(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &OrderTotalResponse{
		OrderID:     total.OrderID,
		Subtotal:    total.Subtotal,
		Discount:    total.Discount,
		Tax:         total.Tax,
		ShippingFee: total.ShippingFee,
		TotalPrice:  total.TotalPrice,
	})
}

// ListUserOrders handles a buyer's order history
func (h *OrderHandler) ListUserOrders(c echo.Context) error {
	actor, _ := middleware.GetActor(c)

	page, err := h.orderUC.ListUserOrders(c.Request().Context(), actor, c.Param("userId"), entity.Pagination{
		Page:  queryInt(c, "page"),
		Limit: queryInt(c, "limit"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, toOrderResponses(page.Data), page.Page, page.MaxPage, page.Total)
}

// ListOrders handles the admin order listing
func (h *OrderHandler) ListOrders(c echo.Context) error {
	page, err := h.orderUC.ListOrders(c.Request().Context(), usecase.ListOrdersInput{
		Status: entity.OrderStatus(strings.ToUpper(c.QueryParam("status"))),
		UserID: c.QueryParam("user_id"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, toOrderResponses(page.Data), page.Page, page.MaxPage, page.Total)
}

// ApproveOrder handles the admin approval of a verified order
func (h *OrderHandler) ApproveOrder(c echo.Context) error {
	orderID, ok, err := uuidParam(c, "orderId")
	if !ok {
		return err
	}

	order, err := h.orderUC.ApproveOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// UpdateOrderStatus handles an admin status transition
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, ok, err := uuidParam(c, "orderId")
	if !ok {
		return err
	}

	var req UpdateStatusRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// AdjustCharges handles setting discount, tax and shipping fee
func (h *OrderHandler) AdjustCharges(c echo.Context) error {
	orderID, ok, err := uuidParam(c, "orderId")
	if !ok {
		return err
	}

	var req AdjustChargesRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.orderUC.AdjustCharges(c.Request().Context(), orderID, usecase.AdjustChargesInput{
		Discount:    req.Discount,
		Tax:         req.Tax,
		ShippingFee: req.ShippingFee,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// CancelOrder handles a cancellation by the buyer or an admin
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	orderID, ok, err := uuidParam(c, "orderId")
	if !ok {
		return err
	}
	actor, _ := middleware.GetActor(c)

	order, err := h.orderUC.CancelOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// RateOrder handles the buyer's rating of a completed order
func (h *OrderHandler) RateOrder(c echo.Context) error {
	orderID, ok, err := uuidParam(c, "orderId")
	if !ok {
		return err
	}
	actor, _ := middleware.GetActor(c)

	var req RateOrderRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.orderUC.RateOrder(c.Request().Context(), actor, orderID, req.Rating)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}
