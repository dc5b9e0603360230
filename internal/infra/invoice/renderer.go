// Package invoice renders invoice documents: a PDF for the record and an HTML email body.
package invoice

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"
	"harvest/internal/errors"

	"github.com/go-pdf/fpdf"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	companyName = "Harvest Produce Trading"
	dateLayout  = "02 Jan 2006"
)

type renderer struct {
	printer  *message.Printer
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
	location *time.Location
}

// NewRenderer returns the invoice renderer. Dates are printed in loc; nil means UTC.
func NewRenderer(loc *time.Location) service.InvoiceRenderer {
	if loc == nil {
		loc = time.UTC
	}

	return &renderer{
		printer:  message.NewPrinter(language.Indonesian),
		markdown: goldmark.New(goldmark.WithExtensions(extension.Table)),
		policy:   bluemonday.UGCPolicy(),
		location: loc,
	}
}

// RenderPDF draws a one-page A4 invoice with header, parties, line table and totals.
func (r *renderer) RenderPDF(_ context.Context, doc *entity.InvoiceDocument) ([]byte, error) {
	if err := validateDocument(doc); err != nil {
		return nil, err
	}
	inv, order := doc.Invoice, doc.Order

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Invoice "+inv.Number, true)
	pdf.SetCreator(companyName, true)
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "INVOICE", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr(companyName), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, row := range [][2]string{
		{"Invoice number", inv.Number},
		{"Invoice date", r.date(inv.InvoiceDate)},
		{"PO number", order.PONumber},
		{"Order date", r.date(order.OrderDate)},
		{"Payment method", string(inv.PaymentMethod)},
		{"Payment status", string(inv.PaymentStatus)},
	} {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, tr(row[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Bill to", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range billToLines(doc) {
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Deliver to", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range deliverToLines(order) {
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	widths := []float64{80, 20, 40, 40}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 236, 228)
	for i, header := range []string{"Product", "Qty", "Unit price", "Subtotal"} {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 7, header, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range order.Lines {
		pdf.CellFormat(widths[0], 7, tr(line.ProductName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, fmt.Sprintf("%d", line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, r.Amount(line.PricePerUnit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, r.Amount(line.Subtotal()), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(2)

	for _, row := range r.totals(inv) {
		pdf.SetFont("Helvetica", "", 10)
		if row[0] == "Total" {
			pdf.SetFont("Helvetica", "B", 11)
		}
		pdf.CellFormat(widths[0]+widths[1]+widths[2], 7, row[0], "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, row[1], "", 1, "R", false, 0, "")
	}

	if pdf.Err() {
		return nil, errors.Wrap(pdf.Error(), "failed to lay out invoice pdf")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write invoice pdf")
	}

	return buf.Bytes(), nil
}

// RenderEmailHTML renders the email body from markdown and sanitises the result.
func (r *renderer) RenderEmailHTML(_ context.Context, doc *entity.InvoiceDocument) (string, error) {
	if err := validateDocument(doc); err != nil {
		return "", err
	}
	inv, order := doc.Invoice, doc.Order

	var md strings.Builder
	greeting := "customer"
	if doc.Customer != nil && doc.Customer.Username != "" {
		greeting = doc.Customer.Username
	}
	fmt.Fprintf(&md, "Hello %s,\n\n", escapeMarkdown(greeting))
	fmt.Fprintf(&md, "Thank you for your payment. Invoice **%s** for purchase order **%s** is attached.\n\n",
		escapeMarkdown(inv.Number), escapeMarkdown(order.PONumber))
	md.WriteString("| Product | Qty | Unit price | Subtotal |\n")
	md.WriteString("|---|---:|---:|---:|\n")
	for _, line := range order.Lines {
		fmt.Fprintf(&md, "| %s | %d | %s | %s |\n",
			escapeMarkdown(line.ProductName), line.Quantity, r.Amount(line.PricePerUnit), r.Amount(line.Subtotal()))
	}
	md.WriteString("\n")
	for _, row := range r.totals(inv) {
		fmt.Fprintf(&md, "- %s: %s\n", row[0], row[1])
	}
	fmt.Fprintf(&md, "\nInvoice date: %s\n\n%s\n", r.date(inv.InvoiceDate), companyName)

	var html bytes.Buffer
	if err := r.markdown.Convert([]byte(md.String()), &html); err != nil {
		return "", errors.Wrap(err, "failed to render invoice email")
	}

	return r.policy.Sanitize(html.String()), nil
}

// Amount formats money with Indonesian grouping, e.g. "Rp 1.250.000,50".
func (r *renderer) Amount(amount decimal.Decimal) string {
	return r.printer.Sprintf("Rp %v", number.Decimal(amount.InexactFloat64(), number.Scale(2)))
}

func (r *renderer) totals(inv *entity.Invoice) [][2]string {
	rows := [][2]string{{"Subtotal", r.Amount(inv.Subtotal)}}
	if !inv.Discount.IsZero() {
		rows = append(rows, [2]string{"Discount", "-" + r.Amount(inv.Discount)})
	}
	if !inv.Tax.IsZero() {
		rows = append(rows, [2]string{"Tax", r.Amount(inv.Tax)})
	}
	if !inv.ShippingFee.IsZero() {
		rows = append(rows, [2]string{"Shipping", r.Amount(inv.ShippingFee)})
	}

	return append(rows, [2]string{"Total", r.Amount(inv.TotalPrice)})
}

func (r *renderer) date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.In(r.location).Format(dateLayout)
}

func billToLines(doc *entity.InvoiceDocument) []string {
	order := doc.Order
	var lines []string
	if order.BillingCompanyName != "" {
		lines = append(lines, order.BillingCompanyName)
	}
	if doc.Customer != nil {
		lines = append(lines, doc.Customer.Email)
	}
	if order.BillingTaxID != "" {
		lines = append(lines, "NPWP "+order.BillingTaxID)
	}
	if order.BillingPhoneNumber != "" {
		lines = append(lines, order.BillingPhoneNumber)
	}

	return lines
}

func deliverToLines(order *entity.Order) []string {
	lines := []string{order.DeliveryPICName, order.DeliveryStreet}
	locality := strings.Join(nonEmpty(order.DeliveryWard, order.DeliveryCity), ", ")
	if locality != "" {
		lines = append(lines, locality)
	}

	return append(lines, strings.Join(nonEmpty(order.DeliveryProvince, order.DeliveryPostalCode), " "))
}

func nonEmpty(values ...string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}

	return out
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, `*`, `\*`, `_`, `\_`, "`", "\\`", `|`, `\|`, `[`, `\[`, `]`, `\]`, `<`, `&lt;`, `>`, `&gt;`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func validateDocument(doc *entity.InvoiceDocument) error {
	if doc == nil || doc.Invoice == nil || doc.Order == nil {
		return errors.New("invoice document is incomplete")
	}

	return nil
}
