// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"html"
	"log/slog"
	"strings"
	"time"

	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/errors"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const defaultPICName = "Default"

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	addressRepo repository.AddressRepository
	orderRepo   repository.OrderRepository
	notes       *bluemonday.Policy
	location    *time.Location
	now         func() time.Time
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	AddressRepo repository.AddressRepository
	OrderRepo   repository.OrderRepository
	Location    *time.Location
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	loc := params.Location
	if loc == nil {
		loc = time.UTC
	}

	return &orderService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		addressRepo: params.AddressRepo,
		orderRepo:   params.OrderRepo,
		notes:       bluemonday.StrictPolicy(),
		location:    loc,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Order creation ---

type reservationRequest struct {
	productID uuid.UUID
	quantity  int
}

// mergeOrderItems validates the requested items and folds duplicate products into one
// reservation, keeping the order in which products first appear.
func mergeOrderItems(items []usecase.OrderItemInput) ([]reservationRequest, error) {
	if len(items) == 0 {
		return nil, validationError("at least one item is required")
	}

	merged := make([]reservationRequest, 0, len(items))
	index := make(map[uuid.UUID]int, len(items))
	for _, item := range items {
		productID, err := uuid.Parse(strings.TrimSpace(item.ProductID))
		if err != nil {
			return nil, validationError("invalid product id: " + item.ProductID)
		}
		if item.Quantity <= 0 {
			return nil, validationError("quantity must be greater than zero for product " + productID.String())
		}

		if i, ok := index[productID]; ok {
			merged[i].quantity += item.Quantity

			continue
		}
		index[productID] = len(merged)
		merged = append(merged, reservationRequest{productID: productID, quantity: item.Quantity})
	}

	return merged, nil
}

func validateAddressFields(kind string, fields *entity.AddressFields) error {
	if fields == nil {
		return nil
	}
	if missing := fields.MissingRequired(); len(missing) > 0 {
		return validationError(kind + " address requires " + strings.Join(missing, ", "))
	}

	return nil
}

// CreateOrder reserves stock and records the order, its lines and the address changes in
// one transaction.
func (srv *orderService) CreateOrder(ctx context.Context, actor usecase.Actor, userID string, input usecase.CreateOrderInput) (*entity.Order, error) {
	if !actor.CanAccess(userID) {
		return nil, domainerrors.ErrForbidden
	}

	requests, err := mergeOrderItems(input.Items)
	if err != nil {
		return nil, err
	}
	if !input.PaymentMethod.IsValid() {
		return nil, validationError("payment method must be QRIS or BANK_TRANSFER")
	}
	if err := validateAddressFields("delivery", input.DeliveryAddress); err != nil {
		return nil, err
	}
	if err := validateAddressFields("billing", input.BillingAddress); err != nil {
		return nil, err
	}

	now := srv.now()
	var created *entity.Order
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		user, err := repos.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return mapUserError(err, "find order owner")
		}

		profile := entity.BillingProfile{
			CompanyName: strings.TrimSpace(input.CompanyName),
			TaxID:       strings.TrimSpace(input.TaxID),
			PhoneNumber: strings.TrimSpace(input.PhoneNumber),
		}
		if !profile.IsEmpty() {
			if err := repos.UserRepo().UpdateBillingProfile(ctx, user.ID, profile); err != nil {
				return databaseError(err, "update billing profile")
			}
			applyBillingProfile(user, profile)
		}

		contact := newAddressContact(input.PICName, user)
		delivery, err := srv.upsertAddress(ctx, repos.AddressRepo(), user.ID, entity.AddressTypeDelivery, input.DeliveryAddress, contact, now)
		if err != nil {
			return err
		}
		if input.BillingAddress != nil {
			if _, err := srv.upsertAddress(ctx, repos.AddressRepo(), user.ID, entity.AddressTypeBilling, input.BillingAddress, contact, now); err != nil {
				return err
			}
		}

		order := srv.newOrder(user, input, now)
		order.SnapshotDelivery(delivery)
		order.SnapshotBilling(user)

		for _, req := range requests {
			product, err := repos.ProductRepo().ReserveStock(ctx, req.productID, req.quantity)
			if err != nil {
				return mapReservationError(err, req.productID)
			}

			order.Lines = append(order.Lines, &entity.OrderLine{
				ID:           uuid.Must(uuid.NewV7()),
				OrderID:      order.ID,
				ProductID:    product.ID,
				ProductName:  product.Name,
				Quantity:     req.quantity,
				PricePerUnit: product.Price,
			})
		}
		order.RecalculateTotal()

		if err := repos.OrderRepo().Create(ctx, order); err != nil {
			return databaseError(err, "create order")
		}
		created = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order creation rolled back", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order created",
		slog.String("orderID", created.ID.String()),
		slog.String("userID", userID),
		slog.Int("lines", len(created.Lines)),
		slog.String("total", created.TotalPrice.StringFixed(2)),
	)

	return created, nil
}

func (srv *orderService) newOrder(user *entity.User, input usecase.CreateOrderInput, now time.Time) *entity.Order {
	poNumber := strings.TrimSpace(input.PONumber)
	if poNumber == "" {
		poNumber = entity.NewPONumber(user.ID, now)
	}

	return &entity.Order{
		ID:            uuid.Must(uuid.NewV7()),
		UserID:        user.ID,
		PONumber:      poNumber,
		OrderDate:     now,
		Discount:      decimal.Zero,
		Tax:           decimal.Zero,
		ShippingFee:   decimal.Zero,
		Notes:         srv.plainText(input.Notes),
		Status:        entity.OrderStatusAwaitingVerification,
		PaymentMethod: input.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// plainText strips markup from buyer-supplied text. The result is stored unescaped;
// renderers escape it for their own output format.
func (srv *orderService) plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(srv.notes.Sanitize(s)))
}

// upsertAddress updates the user's current address of addrType in place, creates it when
// none exists, or reuses it when fields is nil. An explicit contact name always wins; the
// fallback only fills an empty one.
func (srv *orderService) upsertAddress(
	ctx context.Context,
	repo repository.AddressRepository,
	userID string,
	addrType entity.AddressType,
	fields *entity.AddressFields,
	contact addressContact,
	now time.Time,
) (*entity.Address, error) {
	current, err := repo.FindLatest(ctx, userID, addrType)
	if err != nil && !errors.Is(err, repository.ErrAddressNotFound) {
		return nil, databaseError(err, "find "+strings.ToLower(addrType.String())+" address")
	}

	if current == nil {
		if fields == nil {
			return nil, validationError(strings.ToLower(addrType.String()) + " address required")
		}

		addr := &entity.Address{
			ID:        uuid.Must(uuid.NewV7()),
			UserID:    userID,
			Type:      addrType,
			CreatedAt: now,
			UpdatedAt: now,
		}
		addr.Apply(*fields)
		contact.applyTo(addr)
		if err := repo.Create(ctx, addr); err != nil {
			return nil, databaseError(err, "create address")
		}

		return addr, nil
	}

	before := *current
	if fields != nil {
		current.Apply(*fields)
	}
	contact.applyTo(current)
	if fields == nil && current.PICName == before.PICName {
		return current, nil
	}

	current.UpdatedAt = now
	if err := repo.Update(ctx, current); err != nil {
		return nil, databaseError(err, "update address")
	}

	return current, nil
}

// addressContact is the point-of-contact name requested by the buyer and the name used
// when neither the request nor the address supplies one.
type addressContact struct {
	requested string
	fallback  string
}

func newAddressContact(requested string, user *entity.User) addressContact {
	return addressContact{requested: strings.TrimSpace(requested), fallback: resolvePICName("", user)}
}

func (c addressContact) applyTo(addr *entity.Address) {
	switch {
	case c.requested != "":
		addr.PICName = c.requested
	case addr.PICName == "":
		addr.PICName = c.fallback
	}
}

func resolvePICName(requested string, user *entity.User) string {
	if name := strings.TrimSpace(requested); name != "" {
		return name
	}
	if name := strings.TrimSpace(user.Username); name != "" {
		return name
	}

	return defaultPICName
}

func applyBillingProfile(user *entity.User, profile entity.BillingProfile) {
	if profile.CompanyName != "" {
		user.CompanyName = profile.CompanyName
	}
	if profile.TaxID != "" {
		user.TaxID = profile.TaxID
	}
	if profile.PhoneNumber != "" {
		user.PhoneNumber = profile.PhoneNumber
	}
}

// --- Queries ---

// GetOrderForm returns the data that pre-fills the order form of userID.
func (srv *orderService) GetOrderForm(ctx context.Context, actor usecase.Actor, userID string) (*usecase.OrderForm, error) {
	if !actor.CanAccess(userID) {
		return nil, domainerrors.ErrForbidden
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserError(err, "find user")
	}

	form := &usecase.OrderForm{
		Email:       user.Email,
		CompanyName: user.CompanyName,
		TaxID:       user.TaxID,
		PhoneNumber: user.PhoneNumber,
	}

	if form.DeliveryAddress, err = srv.optionalAddress(ctx, userID, entity.AddressTypeDelivery); err != nil {
		return nil, err
	}
	if form.BillingAddress, err = srv.optionalAddress(ctx, userID, entity.AddressTypeBilling); err != nil {
		return nil, err
	}

	picName := user.Username
	if form.DeliveryAddress != nil && form.DeliveryAddress.PICName != "" {
		picName = form.DeliveryAddress.PICName
	}
	form.PICFirstName, form.PICLastName = splitName(picName)

	return form, nil
}

func (srv *orderService) optionalAddress(ctx context.Context, userID string, addrType entity.AddressType) (*entity.Address, error) {
	addr, err := srv.addressRepo.FindLatest(ctx, userID, addrType)
	if errors.Is(err, repository.ErrAddressNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, databaseError(err, "find address")
	}

	return addr, nil
}

// splitName splits a contact name at the first space.
func splitName(name string) (first, last string) {
	first, last, _ = strings.Cut(strings.TrimSpace(name), " ")

	return first, strings.TrimSpace(last)
}

// GetOrder returns an order the actor may see.
func (srv *orderService) GetOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, mapOrderError(err, orderID, "find order")
	}
	if !actor.CanAccess(order.UserID) {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

// GetOrderTotal breaks down the amount due of an order.
func (srv *orderService) GetOrderTotal(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*usecase.OrderTotal, error) {
	order, err := srv.GetOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}

	return &usecase.OrderTotal{
		OrderID:     order.ID,
		Subtotal:    order.LinesSubtotal(),
		Discount:    order.Discount,
		Tax:         order.Tax,
		ShippingFee: order.ShippingFee,
		TotalPrice:  order.TotalPrice,
	}, nil
}

// ListUserOrders returns the order history of userID, newest first.
func (srv *orderService) ListUserOrders(ctx context.Context, actor usecase.Actor, userID string, page entity.Pagination) (*usecase.OrderPage, error) {
	if !actor.CanAccess(userID) {
		return nil, domainerrors.ErrForbidden
	}

	return srv.listOrders(ctx, repository.OrderFilter{UserID: userID, Pagination: page.Normalize()})
}

// ListOrders returns all orders matching the admin filter.
func (srv *orderService) ListOrders(ctx context.Context, input usecase.ListOrdersInput) (*usecase.OrderPage, error) {
	if input.Status != "" && !input.Status.IsValid() {
		return nil, validationError("unknown order status " + input.Status.String())
	}

	return srv.listOrders(ctx, repository.OrderFilter{
		Status:     input.Status,
		UserID:     strings.TrimSpace(input.UserID),
		Pagination: entity.Pagination{Page: input.Page, Limit: input.Limit}.Normalize(),
	})
}

func (srv *orderService) listOrders(ctx context.Context, filter repository.OrderFilter) (*usecase.OrderPage, error) {
	orders, total, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, databaseError(err, "list orders")
	}

	return &usecase.OrderPage{
		Data:    orders,
		Page:    filter.Pagination.Page,
		MaxPage: filter.Pagination.MaxPage(total),
		Total:   total,
	}, nil
}

// --- Status changes ---

// mutateOrder locks the order, applies fn and writes the result in one transaction.
func (srv *orderService) mutateOrder(
	ctx context.Context,
	orderID uuid.UUID,
	fn func(repos repository.RepositoryFactory, order *entity.Order, now time.Time) error,
) (*entity.Order, error) {
	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		order, err := repos.OrderRepo().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return mapOrderError(err, orderID, "lock order")
		}

		now := srv.now().In(srv.location)
		if err := fn(repos, order, now); err != nil {
			return err
		}

		order.UpdatedAt = now
		if err := repos.OrderRepo().Update(ctx, order); err != nil {
			return databaseError(err, "update order")
		}
		updated = order

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	return updated, nil
}

// transition validates next against the transition table and applies it. Cancelling
// returns every reserved quantity to stock.
func (srv *orderService) transition(ctx context.Context, repos repository.RepositoryFactory, order *entity.Order, next entity.OrderStatus, now time.Time) error {
	if !order.Status.CanTransitionTo(next) {
		return domainerrors.ErrInvalidStatusTransition.WithDetails(order.Status.String() + " -> " + next.String())
	}

	if next == entity.OrderStatusCancelled {
		if err := srv.restoreStock(ctx, repos.ProductRepo(), order); err != nil {
			return err
		}
	}

	order.ApplyStatus(next, now)

	return nil
}

func (srv *orderService) restoreStock(ctx context.Context, repo repository.ProductRepository, order *entity.Order) error {
	for _, line := range order.Lines {
		_, err := repo.RestoreStock(ctx, line.ProductID, line.Quantity)
		if errors.Is(err, repository.ErrProductNotFound) {
			srv.log(ctx).Warn("Skipping stock restore for missing product",
				slog.String("orderID", order.ID.String()),
				slog.String("productID", line.ProductID.String()),
			)

			continue
		}
		if err != nil {
			return databaseError(err, "restore stock")
		}
	}

	return nil
}

// ApproveOrder moves a verified order to AWAITING_PAYMENT.
func (srv *orderService) ApproveOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.mutateOrder(ctx, orderID, func(repos repository.RepositoryFactory, order *entity.Order, now time.Time) error {
		if order.Status != entity.OrderStatusAwaitingVerification {
			return domainerrors.ErrInvalidStatusTransition.WithDetails("only orders awaiting verification can be approved")
		}

		return srv.transition(ctx, repos, order, entity.OrderStatusAwaitingPayment, now)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order approved", slog.String("orderID", orderID.String()))

	return order, nil
}

// UpdateOrderStatus applies an admin status change.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, validationError("unknown order status " + status.String())
	}

	order, err := srv.mutateOrder(ctx, orderID, func(repos repository.RepositoryFactory, order *entity.Order, now time.Time) error {
		if status == entity.OrderStatusProcessing && order.AttachmentURL == "" {
			return domainerrors.ErrInvalidStatusTransition.WithDetails("payment proof required before processing")
		}

		return srv.transition(ctx, repos, order, status, now)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status updated", slog.String("orderID", orderID.String()), slog.String("status", status.String()))

	return order, nil
}

// AdjustCharges sets discount, tax and shipping while the order awaits verification.
func (srv *orderService) AdjustCharges(ctx context.Context, orderID uuid.UUID, input usecase.AdjustChargesInput) (*entity.Order, error) {
	if input.Discount.IsNegative() || input.Tax.IsNegative() || input.ShippingFee.IsNegative() {
		return nil, validationError("charges must not be negative")
	}

	return srv.mutateOrder(ctx, orderID, func(_ repository.RepositoryFactory, order *entity.Order, _ time.Time) error {
		if order.Status != entity.OrderStatusAwaitingVerification {
			return domainerrors.ErrInvalidStatusTransition.WithDetails("charges can only change while awaiting verification")
		}

		order.Discount = input.Discount.Round(2)
		order.Tax = input.Tax.Round(2)
		order.ShippingFee = input.ShippingFee.Round(2)
		order.RecalculateTotal()
		if order.TotalPrice.IsNegative() {
			return validationError("discount exceeds the order total")
		}

		return nil
	})
}

// CancelOrder cancels an order. Buyers may cancel their own order until payment is submitted.
func (srv *orderService) CancelOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.mutateOrder(ctx, orderID, func(repos repository.RepositoryFactory, order *entity.Order, now time.Time) error {
		if !actor.CanAccess(order.UserID) {
			return domainerrors.ErrForbidden
		}
		if !actor.IsAdmin() && order.Status != entity.OrderStatusAwaitingVerification && order.Status != entity.OrderStatusAwaitingPayment {
			return domainerrors.ErrInvalidStatusTransition.WithDetails("order can no longer be cancelled")
		}

		return srv.transition(ctx, repos, order, entity.OrderStatusCancelled, now)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order cancelled", slog.String("orderID", orderID.String()), slog.String("by", actor.UserID))

	return order, nil
}

// RateOrder records the buyer's rating of a completed order.
func (srv *orderService) RateOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID, rating int) (*entity.Order, error) {
	if rating < 1 || rating > 5 {
		return nil, validationError("rating must be between 1 and 5")
	}

	return srv.mutateOrder(ctx, orderID, func(_ repository.RepositoryFactory, order *entity.Order, _ time.Time) error {
		if !order.IsOwnedBy(actor.UserID) {
			return domainerrors.ErrForbidden
		}
		if order.Status != entity.OrderStatusCompleted {
			return domainerrors.ErrInvalidStatusTransition.WithDetails("only completed orders can be rated")
		}

		order.Rating = &rating

		return nil
	})
}
