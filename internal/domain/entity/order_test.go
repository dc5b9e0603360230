package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusAwaitingVerification, OrderStatusAwaitingPayment, true},
		{OrderStatusAwaitingVerification, OrderStatusProcessing, false},
		{OrderStatusAwaitingVerification, OrderStatusCancelled, true},
		{OrderStatusAwaitingPayment, OrderStatusProcessing, true},
		{OrderStatusAwaitingPayment, OrderStatusAwaitingVerification, false},
		{OrderStatusProcessing, OrderStatusInDelivery, true},
		{OrderStatusProcessing, OrderStatusCompleted, false},
		{OrderStatusInDelivery, OrderStatusCompleted, true},
		{OrderStatusInDelivery, OrderStatusCancelled, true},
		{OrderStatusInDelivery, OrderStatusProcessing, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusAwaitingVerification, false},
		{OrderStatusProcessing, OrderStatusProcessing, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_TerminalStatesHaveNoSuccessors(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusCompleted, OrderStatusCancelled} {
		assert.True(t, s.IsTerminal())
		assert.Empty(t, s.NextStatuses())
	}

	for _, s := range []OrderStatus{OrderStatusAwaitingVerification, OrderStatusAwaitingPayment, OrderStatusProcessing, OrderStatusInDelivery} {
		assert.False(t, s.IsTerminal())
		assert.Contains(t, s.NextStatuses(), OrderStatusCancelled)
	}
}

func TestOrder_RecalculateTotal(t *testing.T) {
	order := &Order{
		Lines: []*OrderLine{
			{Quantity: 3, PricePerUnit: decimal.NewFromInt(1000)},
			{Quantity: 2, PricePerUnit: decimal.RequireFromString("2500.50")},
		},
	}

	order.RecalculateTotal()
	assert.True(t, decimal.RequireFromString("8001").Equal(order.TotalPrice), order.TotalPrice.String())
	assert.True(t, order.TotalPrice.Equal(order.LinesSubtotal()))

	order.Discount = decimal.NewFromInt(1)
	order.Tax = decimal.NewFromInt(100)
	order.ShippingFee = decimal.NewFromInt(50)
	order.RecalculateTotal()
	assert.True(t, decimal.RequireFromString("8150").Equal(order.TotalPrice), order.TotalPrice.String())
}

func TestOrder_ApplyStatus_StampsDelivery(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	now := time.Date(2026, 3, 14, 9, 5, 30, 0, loc)
	order := &Order{Status: OrderStatusProcessing}

	order.ApplyStatus(OrderStatusInDelivery, now)

	require.NotNil(t, order.DeliveryDate)
	assert.Equal(t, OrderStatusInDelivery, order.Status)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, loc), *order.DeliveryDate)
	assert.Equal(t, "09:05", order.DeliveryTime)
	assert.Nil(t, order.CancelledAt)
}

func TestOrder_ApplyStatus_StampsCancellation(t *testing.T) {
	now := time.Now()
	order := &Order{Status: OrderStatusAwaitingPayment}

	order.ApplyStatus(OrderStatusCancelled, now)

	require.NotNil(t, order.CancelledAt)
	assert.Equal(t, now, *order.CancelledAt)
	assert.Nil(t, order.DeliveryDate)
}

func TestOrder_Snapshots(t *testing.T) {
	addr := &Address{
		ID: uuid.New(), PICName: "Sari", Street: "Jl. Melati 3", Ward: "Menteng",
		City: "Jakarta", Province: "DKI Jakarta", PostalCode: "10310",
	}
	user := &User{CompanyName: "PT Segar", PhoneNumber: "0812", TaxID: "01.234"}
	order := &Order{}

	order.SnapshotDelivery(addr)
	order.SnapshotBilling(user)

	assert.Equal(t, addr.ID, order.DeliveryAddressID)
	assert.Equal(t, "Sari", order.DeliveryPICName)
	assert.Equal(t, "10310", order.DeliveryPostalCode)
	assert.Equal(t, "PT Segar", order.BillingCompanyName)
	assert.Equal(t, "01.234", order.BillingTaxID)

	addr.Street = "changed later"
	assert.Equal(t, "Jl. Melati 3", order.DeliveryStreet)
}

func TestNewPONumber(t *testing.T) {
	now := time.UnixMilli(1_700_000_123_456)

	tests := []struct {
		name   string
		userID string
		want   string
	}{
		{name: "long uid", userID: "abCdEf123", want: "PO-ABCD-123456"},
		{name: "short uid", userID: "x9", want: "PO-X9-123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPONumber(tt.userID, now))
		})
	}

	assert.Equal(t, "PO-ABCD-000042", NewPONumber("abcd", time.UnixMilli(5_000_000_042)))
}

func TestPaymentMethod_IsValid(t *testing.T) {
	assert.True(t, PaymentMethodQRIS.IsValid())
	assert.True(t, PaymentMethodBankTransfer.IsValid())
	assert.False(t, PaymentMethod("CASH").IsValid())
}
