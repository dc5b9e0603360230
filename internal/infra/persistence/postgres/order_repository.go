package postgres

import (
	"context"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order row and its lines in one statement batch.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("order violates a value constraint")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("order references a missing record")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, lineM := range orderM.Lines {
		if i < len(order.Lines) {
			order.Lines[i].ID = lineM.ID
			order.Lines[i].OrderID = lineM.OrderID
		}
	}

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByIDFromPrimary skips the replicas. Preload runs in a separate session, so the lines
// are loaded with an explicit second statement.
func (repo *orderRepository) FindByIDFromPrimary(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOnPrimary(ctx, id)
}

// FindByIDForUpdate locks the order row, then loads the lines in a second statement.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOnPrimary(ctx, id, clause.Locking{Strength: clause.LockingStrengthUpdate})
}

func (repo *orderRepository) findOnPrimary(ctx context.Context, id uuid.UUID, locking ...clause.Expression) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Clauses(append([]clause.Expression{dbresolver.Write}, locking...)...).
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to read order from primary")
	}

	err = repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("order_id = ?", id).
		Order("id ASC").
		Find(&orderM.Lines).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order lines")
	}

	return toOrderDomain(&orderM), nil
}

// Update writes every mutable column. Lines are left untouched.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"delivery_date":  order.DeliveryDate,
			"delivery_time":  order.DeliveryTime,
			"discount":       order.Discount,
			"tax":            order.Tax,
			"shipping_fee":   order.ShippingFee,
			"total_price":    order.TotalPrice,
			"notes":          order.Notes,
			"attachment_url": order.AttachmentURL,
			"status":         string(order.Status),
			"rating":         order.Rating,
			"cancelled_at":   order.CancelledAt,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("order violates a value constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, int64, error) {
	page := filter.Pagination.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderMs []model.OrderModel
	err := query.
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&orderMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders, total, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	lines := make([]*entity.OrderLine, 0, len(data.Lines))
	for _, lineM := range data.Lines {
		lines = append(lines, &entity.OrderLine{
			ID:           lineM.ID,
			OrderID:      lineM.OrderID,
			ProductID:    lineM.ProductID,
			ProductName:  lineM.ProductName,
			Quantity:     lineM.Quantity,
			PricePerUnit: lineM.PricePerUnit,
		})
	}

	return &entity.Order{
		ID:                 data.ID,
		UserID:             data.UserID,
		DeliveryAddressID:  data.DeliveryAddressID,
		PONumber:           data.PONumber,
		OrderDate:          data.OrderDate,
		DeliveryDate:       data.DeliveryDate,
		DeliveryTime:       data.DeliveryTime,
		Discount:           data.Discount,
		Tax:                data.Tax,
		ShippingFee:        data.ShippingFee,
		TotalPrice:         data.TotalPrice,
		Notes:              data.Notes,
		AttachmentURL:      data.AttachmentURL,
		Status:             entity.OrderStatus(data.Status),
		Rating:             data.Rating,
		PaymentMethod:      entity.PaymentMethod(data.PaymentMethod),
		DeliveryPICName:    data.DeliveryPICName,
		DeliveryStreet:     data.DeliveryStreet,
		DeliveryWard:       data.DeliveryWard,
		DeliveryCity:       data.DeliveryCity,
		DeliveryProvince:   data.DeliveryProvince,
		DeliveryPostalCode: data.DeliveryPostalCode,
		BillingCompanyName: data.BillingCompanyName,
		BillingPhoneNumber: data.BillingPhoneNumber,
		BillingTaxID:       data.BillingTaxID,
		Lines:              lines,
		CancelledAt:        data.CancelledAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	lines := make([]model.OrderLineModel, 0, len(data.Lines))
	for _, line := range data.Lines {
		lines = append(lines, model.OrderLineModel{
			ID:           line.ID,
			OrderID:      data.ID,
			ProductID:    line.ProductID,
			ProductName:  line.ProductName,
			Quantity:     line.Quantity,
			PricePerUnit: line.PricePerUnit,
		})
	}

	return &model.OrderModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		DeliveryAddressID:  data.DeliveryAddressID,
		PONumber:           data.PONumber,
		OrderDate:          data.OrderDate,
		DeliveryDate:       data.DeliveryDate,
		DeliveryTime:       data.DeliveryTime,
		Discount:           data.Discount,
		Tax:                data.Tax,
		ShippingFee:        data.ShippingFee,
		TotalPrice:         data.TotalPrice,
		Notes:              data.Notes,
		AttachmentURL:      data.AttachmentURL,
		Status:             string(data.Status),
		Rating:             data.Rating,
		PaymentMethod:      string(data.PaymentMethod),
		DeliveryPICName:    data.DeliveryPICName,
		DeliveryStreet:     data.DeliveryStreet,
		DeliveryWard:       data.DeliveryWard,
		DeliveryCity:       data.DeliveryCity,
		DeliveryProvince:   data.DeliveryProvince,
		DeliveryPostalCode: data.DeliveryPostalCode,
		BillingCompanyName: data.BillingCompanyName,
		BillingPhoneNumber: data.BillingPhoneNumber,
		BillingTaxID:       data.BillingTaxID,
		Lines:              lines,
		CancelledAt:        data.CancelledAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
