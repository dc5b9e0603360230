package service

import (
	"context"

	"harvest/internal/domain/entity"
)

// InvoiceRenderer produces the billing document of an invoice.
type InvoiceRenderer interface {
	// RenderPDF returns the invoice as a PDF document.
	RenderPDF(ctx context.Context, doc *entity.InvoiceDocument) ([]byte, error)

	// RenderEmailHTML returns the HTML body of the invoice email.
	RenderEmailHTML(ctx context.Context, doc *entity.InvoiceDocument) (string, error)
}
