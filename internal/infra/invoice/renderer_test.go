package invoice

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocument() *entity.InvoiceDocument {
	orderID := uuid.New()
	order := &entity.Order{
		ID:                 orderID,
		PONumber:           "PO-UID1-123456",
		OrderDate:          time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		DeliveryPICName:    "Sari",
		DeliveryStreet:     "Jl. Melati 5",
		DeliveryCity:       "Bandung",
		DeliveryProvince:   "Jawa Barat",
		DeliveryPostalCode: "40111",
		BillingCompanyName: "PT Segar *Jaya*",
		Lines: []*entity.OrderLine{
			{ProductName: "Mango", Quantity: 3, PricePerUnit: decimal.RequireFromString("25000")},
			{ProductName: "Spinach", Quantity: 2, PricePerUnit: decimal.RequireFromString("8000")},
		},
	}
	order.RecalculateTotal()

	return &entity.InvoiceDocument{
		Order:    order,
		Customer: &entity.User{Email: "buyer@example.com", Username: "Sari"},
		Invoice: &entity.Invoice{
			Number:        "INV-01J0000000000000000000000",
			OrderID:       orderID,
			InvoiceDate:   time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
			Subtotal:      order.LinesSubtotal(),
			TotalPrice:    order.TotalPrice,
			PaymentMethod: entity.PaymentMethodQRIS,
			PaymentStatus: entity.InvoicePaymentStatusPaid,
		},
	}
}

func TestRenderer_RenderPDF(t *testing.T) {
	r := NewRenderer(nil)

	pdf, err := r.RenderPDF(context.Background(), newTestDocument())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
}

func TestRenderer_RenderEmailHTML(t *testing.T) {
	r := NewRenderer(nil)
	doc := newTestDocument()

	html, err := r.RenderEmailHTML(context.Background(), doc)
	require.NoError(t, err)

	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, doc.Invoice.Number)
	assert.Contains(t, html, "PO-UID1-123456")
	assert.Contains(t, html, "Mango")
	assert.NotContains(t, html, "<script")
}

func TestRenderer_EmailEscapesUserText(t *testing.T) {
	r := NewRenderer(nil)
	doc := newTestDocument()
	doc.Customer.Username = "<script>alert(1)</script>"
	doc.Order.Lines[0].ProductName = "Mango | Grade A"

	html, err := r.RenderEmailHTML(context.Background(), doc)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "Mango | Grade A")
}

func TestRenderer_Amount(t *testing.T) {
	r := NewRenderer(nil).(*renderer)

	got := r.Amount(decimal.RequireFromString("1250000.5"))
	assert.True(t, strings.HasPrefix(got, "Rp "))
	assert.Contains(t, got, "1.250.000")
}

func TestRenderer_IncompleteDocument(t *testing.T) {
	r := NewRenderer(nil)

	_, err := r.RenderPDF(context.Background(), &entity.InvoiceDocument{})
	assert.Error(t, err)

	_, err = r.RenderEmailHTML(context.Background(), nil)
	assert.Error(t, err)
}
