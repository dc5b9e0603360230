package postgres

import (
	"context"
	"time"

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

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository is the constructor for invoiceRepository.
func NewInvoiceRepository(db *gorm.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (repo *invoiceRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error) {
	var invoiceM model.InvoiceModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("order_id = ?", orderID).
		First(&invoiceM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice by order id")
	}

	return toInvoiceDomain(&invoiceM), nil
}

// Upsert inserts or refreshes the invoice of an order. id, number and created_at survive a conflict.
func (repo *invoiceRepository) Upsert(ctx context.Context, invoice *entity.Invoice) error {
	invoiceM := fromInvoiceDomain(invoice)

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "order_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"invoice_date", "subtotal", "discount", "tax", "shipping_fee", "total_price",
					"payment_method", "payment_status", "document_url", "sent_at", "updated_at",
				}),
			},
			clause.Returning{},
		).
		Create(invoiceM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert invoice")
	}

	invoice.ID = invoiceM.ID
	invoice.Number = invoiceM.Number
	invoice.CreatedAt = invoiceM.CreatedAt
	invoice.UpdatedAt = invoiceM.UpdatedAt

	return nil
}

type invoiceJobRepository struct {
	db *gorm.DB
}

// NewInvoiceJobRepository is the constructor for invoiceJobRepository.
func NewInvoiceJobRepository(db *gorm.DB) repository.InvoiceJobRepository {
	return &invoiceJobRepository{db: db}
}

// Enqueue inserts the job unless the order already has one.
func (repo *invoiceJobRepository) Enqueue(ctx context.Context, job *entity.InvoiceJob) (bool, error) {
	jobM := fromInvoiceJobDomain(job)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoNothing: true,
		}).
		Create(jobM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to enqueue invoice job")
	}

	return result.RowsAffected > 0, nil
}

func (repo *invoiceJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceJob, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *invoiceJobRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.InvoiceJob, error) {
	return repo.findOne(ctx, "order_id = ?", orderID)
}

// ClaimDue must run inside a transaction; the row locks are what keep two relays apart.
func (repo *invoiceJobRepository) ClaimDue(ctx context.Context, now time.Time, staleBefore time.Time, limit int) ([]*entity.InvoiceJob, error) {
	var jobMs []model.InvoiceJobModel
	err := repo.db.WithContext(ctx).
		Clauses(
			dbresolver.Write,
			clause.Locking{Strength: clause.LockingStrengthUpdate, Options: clause.LockingOptionsSkipLocked},
		).
		Where("(status IN ? AND next_attempt_at <= ?) OR (status = ? AND dispatched_at <= ?)",
			[]string{string(entity.InvoiceJobStatusPending), string(entity.InvoiceJobStatusRetry)}, now,
			string(entity.InvoiceJobStatusDispatched), staleBefore,
		).
		Order("next_attempt_at ASC").
		Limit(limit).
		Find(&jobMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to claim invoice jobs")
	}

	jobs := make([]*entity.InvoiceJob, 0, len(jobMs))
	for i := range jobMs {
		jobs = append(jobs, toInvoiceJobDomain(&jobMs[i]))
	}

	return jobs, nil
}

func (repo *invoiceJobRepository) Save(ctx context.Context, job *entity.InvoiceJob) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InvoiceJobModel{}).
		Where("id = ?", job.ID).
		Updates(map[string]any{
			"status":          string(job.Status),
			"attempts":        job.Attempts,
			"next_attempt_at": job.NextAttemptAt,
			"dispatched_at":   job.DispatchedAt,
			"completed_at":    job.CompletedAt,
			"last_error":      job.LastError,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save invoice job")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInvoiceJobNotFound
	}

	return nil
}

func (repo *invoiceJobRepository) findOne(ctx context.Context, where string, arg any) (*entity.InvoiceJob, error) {
	var jobM model.InvoiceJobModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where(where, arg).
		First(&jobM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvoiceJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice job")
	}

	return toInvoiceJobDomain(&jobM), nil
}

// --- Mapper Functions ---

func toInvoiceDomain(data *model.InvoiceModel) *entity.Invoice {
	if data == nil {
		return nil
	}

	return &entity.Invoice{
		ID:            data.ID,
		Number:        data.Number,
		OrderID:       data.OrderID,
		UserID:        data.UserID,
		InvoiceDate:   data.InvoiceDate,
		Subtotal:      data.Subtotal,
		Discount:      data.Discount,
		Tax:           data.Tax,
		ShippingFee:   data.ShippingFee,
		TotalPrice:    data.TotalPrice,
		PaymentMethod: entity.PaymentMethod(data.PaymentMethod),
		PaymentStatus: entity.InvoicePaymentStatus(data.PaymentStatus),
		DocumentURL:   data.DocumentURL,
		SentAt:        data.SentAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromInvoiceDomain(data *entity.Invoice) *model.InvoiceModel {
	if data == nil {
		return nil
	}

	return &model.InvoiceModel{
		ID:            data.ID,
		Number:        data.Number,
		OrderID:       data.OrderID,
		UserID:        data.UserID,
		InvoiceDate:   data.InvoiceDate,
		Subtotal:      data.Subtotal,
		Discount:      data.Discount,
		Tax:           data.Tax,
		ShippingFee:   data.ShippingFee,
		TotalPrice:    data.TotalPrice,
		PaymentMethod: string(data.PaymentMethod),
		PaymentStatus: string(data.PaymentStatus),
		DocumentURL:   data.DocumentURL,
		SentAt:        data.SentAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toInvoiceJobDomain(data *model.InvoiceJobModel) *entity.InvoiceJob {
	if data == nil {
		return nil
	}

	return &entity.InvoiceJob{
		ID:            data.ID,
		OrderID:       data.OrderID,
		Status:        entity.InvoiceJobStatus(data.Status),
		Attempts:      data.Attempts,
		NextAttemptAt: data.NextAttemptAt,
		DispatchedAt:  data.DispatchedAt,
		CompletedAt:   data.CompletedAt,
		LastError:     data.LastError,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromInvoiceJobDomain(data *entity.InvoiceJob) *model.InvoiceJobModel {
	if data == nil {
		return nil
	}

	return &model.InvoiceJobModel{
		ID:            data.ID,
		OrderID:       data.OrderID,
		Status:        string(data.Status),
		Attempts:      data.Attempts,
		NextAttemptAt: data.NextAttemptAt,
		DispatchedAt:  data.DispatchedAt,
		CompletedAt:   data.CompletedAt,
		LastError:     data.LastError,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
