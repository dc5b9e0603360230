package service

import (
	"harvest/internal/domain/entity"
)

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GeneratePaymentQR renders the QRIS payment code of an order as PNG
	GeneratePaymentQR(order *entity.Order) ([]byte, error)

	// PaymentPayload returns the text encoded in the payment QR code
	PaymentPayload(order *entity.Order) string
}
