package qrcode

import (
	"fmt"
	"net/url"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance. baseURL is the payment page the
// code points to; the order reference is appended as query parameters.
func NewQRCodeService(size int, errorCorrectionLevel string, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// PaymentPayload encodes the order id, PO number and amount due.
func (s *qrcodeService) PaymentPayload(order *entity.Order) string {
	query := url.Values{}
	query.Set("order", order.ID.String())
	query.Set("po", order.PONumber)
	query.Set("amount", order.TotalPrice.StringFixed(2))

	return s.baseURL + "?" + query.Encode()
}

// GeneratePaymentQR renders PaymentPayload as a PNG image.
func (s *qrcodeService) GeneratePaymentQR(order *entity.Order) ([]byte, error) {
	if order == nil {
		return nil, fmt.Errorf("order is required")
	}

	qrCode, err := qrcode.New(s.PaymentPayload(order), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
