package entity

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the canonical order state.
type OrderStatus string

const (
	OrderStatusAwaitingVerification OrderStatus = "AWAITING_VERIFICATION"
	OrderStatusAwaitingPayment      OrderStatus = "AWAITING_PAYMENT"
	OrderStatusProcessing           OrderStatus = "PROCESSING"
	OrderStatusInDelivery           OrderStatus = "IN_DELIVERY"
	OrderStatusCompleted            OrderStatus = "COMPLETED"
	OrderStatusCancelled            OrderStatus = "CANCELLED"
)

// orderTransitions is the single transition table. Terminal states have no entry.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusAwaitingVerification: {OrderStatusAwaitingPayment, OrderStatusCancelled},
	OrderStatusAwaitingPayment:      {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing:           {OrderStatusInDelivery, OrderStatusCancelled},
	OrderStatusInDelivery:           {OrderStatusCompleted, OrderStatusCancelled},
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusAwaitingVerification, OrderStatusAwaitingPayment, OrderStatusProcessing,
		OrderStatusInDelivery, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether next directly follows s in the transition table.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(orderTransitions[s], next)
}

// NextStatuses returns the statuses reachable from s in one step.
func (s OrderStatus) NextStatuses() []OrderStatus {
	return slices.Clone(orderTransitions[s])
}

// PaymentMethod is how the buyer pays for an order.
type PaymentMethod string

const (
	PaymentMethodQRIS         PaymentMethod = "QRIS"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodQRIS || m == PaymentMethodBankTransfer
}

// Order is a buyer's purchase with its line items and snapshotted delivery and billing data.
type Order struct {
	ID                uuid.UUID
	UserID            string
	DeliveryAddressID uuid.UUID
	PONumber          string
	OrderDate         time.Time
	DeliveryDate      *time.Time // Date part only, stamped when the order goes out for delivery.
	DeliveryTime      string     // "HH:mm", stamped together with DeliveryDate.
	Discount          decimal.Decimal
	Tax               decimal.Decimal
	ShippingFee       decimal.Decimal
	TotalPrice        decimal.Decimal
	Notes             string
	AttachmentURL     string // Payment proof URL.
	Status            OrderStatus
	Rating            *int
	PaymentMethod     PaymentMethod

	// Snapshot fields captured at creation.
	DeliveryPICName    string
	DeliveryStreet     string
	DeliveryWard       string
	DeliveryCity       string
	DeliveryProvince   string
	DeliveryPostalCode string
	BillingCompanyName string
	BillingPhoneNumber string
	BillingTaxID       string

	Lines       []*OrderLine
	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderLine is one product of an order at the price captured when stock was reserved.
type OrderLine struct {
	ID           uuid.UUID
	OrderID      uuid.UUID
	ProductID    uuid.UUID
	ProductName  string
	Quantity     int
	PricePerUnit decimal.Decimal
}

// Subtotal returns quantity times unit price.
func (l *OrderLine) Subtotal() decimal.Decimal {
	return l.PricePerUnit.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// LinesSubtotal returns the sum of all line subtotals.
func (o *Order) LinesSubtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range o.Lines {
		sum = sum.Add(line.Subtotal())
	}

	return sum
}

// ComputeTotal applies the one total formula: lines - discount + tax + shipping.
func (o *Order) ComputeTotal() decimal.Decimal {
	return o.LinesSubtotal().Sub(o.Discount).Add(o.Tax).Add(o.ShippingFee)
}

// RecalculateTotal stores ComputeTotal in TotalPrice.
func (o *Order) RecalculateTotal() {
	o.TotalPrice = o.ComputeTotal().Round(2)
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID string) bool {
	return o.UserID == userID
}

// ApplyStatus moves the order to next and stamps the fields tied to that state.
// Callers validate the move with CanTransitionTo first.
func (o *Order) ApplyStatus(next OrderStatus, now time.Time) {
	o.Status = next

	switch next {
	case OrderStatusInDelivery:
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		o.DeliveryDate = &day
		o.DeliveryTime = now.Format("15:04")
	case OrderStatusCancelled:
		at := now
		o.CancelledAt = &at
	}
}

// SnapshotDelivery copies the delivery address onto the order.
func (o *Order) SnapshotDelivery(addr *Address) {
	o.DeliveryAddressID = addr.ID
	o.DeliveryPICName = addr.PICName
	o.DeliveryStreet = addr.Street
	o.DeliveryWard = addr.Ward
	o.DeliveryCity = addr.City
	o.DeliveryProvince = addr.Province
	o.DeliveryPostalCode = addr.PostalCode
}

// SnapshotBilling copies the buyer's billing metadata onto the order.
func (o *Order) SnapshotBilling(user *User) {
	o.BillingCompanyName = user.CompanyName
	o.BillingPhoneNumber = user.PhoneNumber
	o.BillingTaxID = user.TaxID
}

// NewPONumber formats a purchase-order number from the first four characters of the
// user id and the last six digits of the millisecond clock, e.g. PO-AB12-345678.
func NewPONumber(userID string, now time.Time) string {
	prefix := userID
	if utf8.RuneCountInString(prefix) > 4 {
		prefix = string([]rune(prefix)[:4])
	}

	return fmt.Sprintf("PO-%s-%06d", strings.ToUpper(prefix), now.UnixMilli()%1_000_000)
}
