package handler

import (
	"time"

	"harvest/internal/domain/entity"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserResponse is the public view of a user.
type UserResponse struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	Username    string      `json:"username"`
	Role        entity.Role `json:"role"`
	CompanyName string      `json:"company_name,omitempty"`
	TaxID       string      `json:"tax_id,omitempty"`
	PhoneNumber string      `json:"phone_number,omitempty"`
	IsVerified  bool        `json:"is_verified"`
}

func toUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		Role:        u.Role,
		CompanyName: u.CompanyName,
		TaxID:       u.TaxID,
		PhoneNumber: u.PhoneNumber,
		IsVerified:  u.IsVerified,
	}
}

func toUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}

	return out
}

// ProductResponse is the public view of a catalog product.
type ProductResponse struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Category    entity.ProductCategory `json:"category"`
	Description string                 `json:"description"`
	Price       decimal.Decimal        `json:"price"`
	Unit        string                 `json:"unit"`
	Stock       int                    `json:"stock"`
	Status      entity.ProductStatus   `json:"status"`
	Deactivated bool                   `json:"deactivated"`
	ImageURLs   []string               `json:"image_urls"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

func toProductResponse(p *entity.Product) *ProductResponse {
	images := p.ImageURLs
	if images == nil {
		images = []string{}
	}

	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Price:       p.Price,
		Unit:        p.Unit,
		Stock:       p.Stock,
		Status:      p.Status,
		Deactivated: p.Deactivated,
		ImageURLs:   images,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}

	return out
}

// OrderLineResponse is one line of an order.
type OrderLineResponse struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// DeliverySnapshot is the delivery data captured when the order was placed.
type DeliverySnapshot struct {
	PICName    string     `json:"pic_name"`
	Street     string     `json:"street"`
	Ward       string     `json:"ward,omitempty"`
	City       string     `json:"city"`
	Province   string     `json:"province"`
	PostalCode string     `json:"postal_code"`
	Date       *time.Time `json:"date,omitempty"`
	Time       string     `json:"time,omitempty"`
}

// BillingSnapshot is the billing data captured when the order was placed.
type BillingSnapshot struct {
	CompanyName string `json:"company_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	TaxID       string `json:"tax_id,omitempty"`
}

// OrderResponse is the full view of an order.
type OrderResponse struct {
	ID            uuid.UUID            `json:"id"`
	UserID        string               `json:"user_id"`
	PONumber      string               `json:"po_number"`
	Status        entity.OrderStatus   `json:"status"`
	PaymentMethod entity.PaymentMethod `json:"payment_method"`
	OrderDate     time.Time            `json:"order_date"`
	Notes         string               `json:"notes,omitempty"`
	AttachmentURL string               `json:"attachment_url,omitempty"`
	Rating        *int                 `json:"rating,omitempty"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	Discount      decimal.Decimal      `json:"discount"`
	Tax           decimal.Decimal      `json:"tax"`
	ShippingFee   decimal.Decimal      `json:"shipping_fee"`
	TotalPrice    decimal.Decimal      `json:"total_price"`
	Delivery      DeliverySnapshot     `json:"delivery"`
	Billing       BillingSnapshot      `json:"billing"`
	Lines         []*OrderLineResponse `json:"lines"`
	CancelledAt   *time.Time           `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func toOrderResponse(o *entity.Order) *OrderResponse {
	lines := make([]*OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, &OrderLineResponse{
			ID:           l.ID,
			ProductID:    l.ProductID,
			ProductName:  l.ProductName,
			Quantity:     l.Quantity,
			PricePerUnit: l.PricePerUnit,
			Subtotal:     l.Subtotal(),
		})
	}

	return &OrderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		PONumber:      o.PONumber,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		OrderDate:     o.OrderDate,
		Notes:         o.Notes,
		AttachmentURL: o.AttachmentURL,
		Rating:        o.Rating,
		Subtotal:      o.LinesSubtotal(),
		Discount:      o.Discount,
		Tax:           o.Tax,
		ShippingFee:   o.ShippingFee,
		TotalPrice:    o.TotalPrice,
		Delivery: DeliverySnapshot{
			PICName:    o.DeliveryPICName,
			Street:     o.DeliveryStreet,
			Ward:       o.DeliveryWard,
			City:       o.DeliveryCity,
			Province:   o.DeliveryProvince,
			PostalCode: o.DeliveryPostalCode,
			Date:       o.DeliveryDate,
			Time:       o.DeliveryTime,
		},
		Billing: BillingSnapshot{
			CompanyName: o.BillingCompanyName,
			PhoneNumber: o.BillingPhoneNumber,
			TaxID:       o.BillingTaxID,
		},
		Lines:       lines,
		CancelledAt: o.CancelledAt,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func toOrderResponses(orders []*entity.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}

	return out
}

// AddressResponse is a stored address.
type AddressResponse struct {
	ID         uuid.UUID          `json:"id"`
	Type       entity.AddressType `json:"type"`
	Street     string             `json:"street"`
	Ward       string             `json:"ward,omitempty"`
	City       string             `json:"city"`
	Province   string             `json:"province"`
	PostalCode string             `json:"postal_code"`
	PICName    string             `json:"pic_name"`
}

func toAddressResponse(a *entity.Address) *AddressResponse {
	if a == nil {
		return nil
	}

	return &AddressResponse{
		ID:         a.ID,
		Type:       a.Type,
		Street:     a.Street,
		Ward:       a.Ward,
		City:       a.City,
		Province:   a.Province,
		PostalCode: a.PostalCode,
		PICName:    a.PICName,
	}
}

// OrderFormResponse pre-fills the order form.
type OrderFormResponse struct {
	Email           string           `json:"email"`
	CompanyName     string           `json:"company_name"`
	TaxID           string           `json:"tax_id"`
	PhoneNumber     string           `json:"phone_number"`
	PICFirstName    string           `json:"pic_first_name"`
	PICLastName     string           `json:"pic_last_name"`
	DeliveryAddress *AddressResponse `json:"delivery_address"`
	BillingAddress  *AddressResponse `json:"billing_address"`
}

func toOrderFormResponse(f *usecase.OrderForm) *OrderFormResponse {
	return &OrderFormResponse{
		Email:           f.Email,
		CompanyName:     f.CompanyName,
		TaxID:           f.TaxID,
		PhoneNumber:     f.PhoneNumber,
		PICFirstName:    f.PICFirstName,
		PICLastName:     f.PICLastName,
		DeliveryAddress: toAddressResponse(f.DeliveryAddress),
		BillingAddress:  toAddressResponse(f.BillingAddress),
	}
}

// OrderTotalResponse breaks down the amount due.
type OrderTotalResponse struct {
	OrderID     uuid.UUID       `json:"order_id"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	Tax         decimal.Decimal `json:"tax"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// InvoiceResponse is the invoice record of an order.
type InvoiceResponse struct {
	ID            uuid.UUID                   `json:"id"`
	Number        string                      `json:"number"`
	OrderID       uuid.UUID                   `json:"order_id"`
	InvoiceDate   time.Time                   `json:"invoice_date"`
	Subtotal      decimal.Decimal             `json:"subtotal"`
	Discount      decimal.Decimal             `json:"discount"`
	Tax           decimal.Decimal             `json:"tax"`
	ShippingFee   decimal.Decimal             `json:"shipping_fee"`
	TotalPrice    decimal.Decimal             `json:"total_price"`
	PaymentMethod entity.PaymentMethod        `json:"payment_method"`
	PaymentStatus entity.InvoicePaymentStatus `json:"payment_status"`
	DocumentURL   string                      `json:"document_url"`
	SentAt        *time.Time                  `json:"sent_at,omitempty"`
}

func toInvoiceResponse(inv *entity.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:            inv.ID,
		Number:        inv.Number,
		OrderID:       inv.OrderID,
		InvoiceDate:   inv.InvoiceDate,
		Subtotal:      inv.Subtotal,
		Discount:      inv.Discount,
		Tax:           inv.Tax,
		ShippingFee:   inv.ShippingFee,
		TotalPrice:    inv.TotalPrice,
		PaymentMethod: inv.PaymentMethod,
		PaymentStatus: inv.PaymentStatus,
		DocumentURL:   inv.DocumentURL,
		SentAt:        inv.SentAt,
	}
}

// InvoiceJobResponse is the state of an invoice job.
type InvoiceJobResponse struct {
	ID            uuid.UUID               `json:"id"`
	OrderID       uuid.UUID               `json:"order_id"`
	Status        entity.InvoiceJobStatus `json:"status"`
	Attempts      int                     `json:"attempts"`
	NextAttemptAt time.Time               `json:"next_attempt_at"`
	LastError     string                  `json:"last_error,omitempty"`
}

func toInvoiceJobResponse(j *entity.InvoiceJob) *InvoiceJobResponse {
	return &InvoiceJobResponse{
		ID:            j.ID,
		OrderID:       j.OrderID,
		Status:        j.Status,
		Attempts:      j.Attempts,
		NextAttemptAt: j.NextAttemptAt,
		LastError:     j.LastError,
	}
}
