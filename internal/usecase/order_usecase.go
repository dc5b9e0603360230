package usecase

import (
	"context"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// OrderItemInput is one requested product and quantity.
type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// CreateOrderInput carries the line items and delivery details of a new order.
type CreateOrderInput struct {
	Items         []OrderItemInput
	PONumber      string
	PaymentMethod entity.PaymentMethod
	Notes         string
	PICName       string

	// Billing metadata; empty fields leave the profile unchanged.
	CompanyName string
	TaxID       string
	PhoneNumber string

	// DeliveryAddress replaces the current delivery address; nil reuses it.
	DeliveryAddress *entity.AddressFields
	// BillingAddress replaces the current billing address; nil leaves it.
	BillingAddress *entity.AddressFields
}

// ListOrdersInput filters the admin order listing.
type ListOrdersInput struct {
	Status entity.OrderStatus
	UserID string
	Page   int
	Limit  int
}

// AdjustChargesInput sets the order-level charges.
type AdjustChargesInput struct {
	Discount    decimal.Decimal
	Tax         decimal.Decimal
	ShippingFee decimal.Decimal
}

// --- Output DTOs ---

// OrderForm pre-fills the order form of a buyer.
type OrderForm struct {
	Email           string
	CompanyName     string
	TaxID           string
	PhoneNumber     string
	PICFirstName    string
	PICLastName     string
	DeliveryAddress *entity.Address
	BillingAddress  *entity.Address
}

// OrderTotal breaks down the amount due of an order.
type OrderTotal struct {
	OrderID     uuid.UUID
	Subtotal    decimal.Decimal
	Discount    decimal.Decimal
	Tax         decimal.Decimal
	ShippingFee decimal.Decimal
	TotalPrice  decimal.Decimal
}

// OrderPage is one page of orders.
type OrderPage struct {
	Data    []*entity.Order
	Page    int
	MaxPage int
	Total   int64
}

// OrderUsecase defines the order lifecycle.
type OrderUsecase interface {
	GetOrderForm(ctx context.Context, actor Actor, userID string) (*OrderForm, error)

	// CreateOrder reserves stock for every line and records the order in one transaction.
	CreateOrder(ctx context.Context, actor Actor, userID string, input CreateOrderInput) (*entity.Order, error)

	GetOrder(ctx context.Context, actor Actor, orderID uuid.UUID) (*entity.Order, error)
	GetOrderTotal(ctx context.Context, actor Actor, orderID uuid.UUID) (*OrderTotal, error)
	ListUserOrders(ctx context.Context, actor Actor, userID string, page entity.Pagination) (*OrderPage, error)
	ListOrders(ctx context.Context, input ListOrdersInput) (*OrderPage, error)

	// ApproveOrder moves a verified order to AWAITING_PAYMENT.
	ApproveOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// UpdateOrderStatus applies an admin transition; cancellation restores stock.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	AdjustCharges(ctx context.Context, orderID uuid.UUID, input AdjustChargesInput) (*entity.Order, error)
	CancelOrder(ctx context.Context, actor Actor, orderID uuid.UUID) (*entity.Order, error)
	RateOrder(ctx context.Context, actor Actor, orderID uuid.UUID, rating int) (*entity.Order, error)
}
