package impl

import (
	"context"
	"log/slog"
	"time"

	"harvest/config"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	"harvest/internal/errors"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// invoiceService implements the InvoiceUsecase interface.
type invoiceService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	invoiceRepo repository.InvoiceRepository
	jobRepo     repository.InvoiceJobRepository
	publisher   service.EventPublisher
	renderer    service.InvoiceRenderer
	storage     service.ObjectStorage
	mailer      service.Mailer
	outbox      config.OutboxConfig
	now         func() time.Time
	logger      *slog.Logger
}

// InvoiceServiceParams holds dependencies for InvoiceService, injected by Fx.
type InvoiceServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	UserRepo    repository.UserRepository
	InvoiceRepo repository.InvoiceRepository
	JobRepo     repository.InvoiceJobRepository
	Publisher   service.EventPublisher
	Renderer    service.InvoiceRenderer
	Storage     service.ObjectStorage
	Mailer      service.Mailer
	Config      *config.Config
	Logger      *slog.Logger
}

// NewInvoiceService is the constructor for invoiceService.
func NewInvoiceService(params InvoiceServiceParams) usecase.InvoiceUsecase {
	var outbox config.OutboxConfig
	if params.Config != nil && params.Config.Outbox != nil {
		outbox = *params.Config.Outbox
	}

	return &invoiceService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		userRepo:    params.UserRepo,
		invoiceRepo: params.InvoiceRepo,
		jobRepo:     params.JobRepo,
		publisher:   params.Publisher,
		renderer:    params.Renderer,
		storage:     params.Storage,
		mailer:      params.Mailer,
		outbox:      outbox,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *invoiceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Outbox relay ---

// DispatchPendingJobs claims due jobs and publishes them. Jobs stay locked for the duration
// of the transaction, so concurrent relays never publish the same job twice per lease.
func (srv *invoiceService) DispatchPendingJobs(ctx context.Context) (int, error) {
	now := srv.now()
	dispatched := 0

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		jobRepo := repos.InvoiceJobRepo()

		jobs, err := jobRepo.ClaimDue(ctx, now, now.Add(-srv.outbox.DispatchLease), srv.outbox.BatchSize)
		if err != nil {
			return databaseError(err, "claim invoice jobs")
		}

		for _, job := range jobs {
			event := &entity.InvoiceJobEvent{JobID: job.ID, OrderID: job.OrderID, EnqueuedAt: job.CreatedAt}

			publishErr := srv.publisher.PublishInvoiceJob(ctx, event)
			if errors.Is(publishErr, service.ErrPublishingDisabled) {
				srv.log(ctx).Warn("Invoice jobs left pending, no transport configured", slog.Int("due", len(jobs)))

				return nil
			}

			if publishErr != nil {
				srv.log(ctx).Warn("Failed to publish invoice job",
					slog.String("jobID", job.ID.String()),
					slog.Any("error", publishErr),
				)
				job.RecordFailure(publishErr, now, srv.outbox.RetryBackoff, srv.outbox.MaxAttempts)
			} else {
				job.MarkDispatched(now)
				dispatched++
			}

			if err := jobRepo.Save(ctx, job); err != nil {
				return databaseError(err, "save invoice job")
			}
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to dispatch invoice jobs")
	}

	if dispatched > 0 {
		srv.log(ctx).Info("Invoice jobs dispatched", slog.Int("count", dispatched))
	}

	return dispatched, nil
}

// --- Worker ---

// ProcessInvoiceJob emits the invoice of a delivered job and records the outcome on the
// job. Only a failure to read or record the job is retryable; an emission failure is
// scheduled for a later attempt by the relay.
func (srv *invoiceService) ProcessInvoiceJob(ctx context.Context, jobID uuid.UUID) error {
	job, err := srv.jobRepo.FindByID(ctx, jobID)
	if errors.Is(err, repository.ErrInvoiceJobNotFound) {
		srv.log(ctx).Warn("Dropping unknown invoice job", slog.String("jobID", jobID.String()))

		return nil
	}
	if err != nil {
		return &usecase.RetryableError{Err: errors.Wrap(err, "failed to load invoice job")}
	}
	if job.IsFinished() {
		srv.log(ctx).Debug("Invoice job already finished", slog.String("jobID", jobID.String()), slog.String("status", string(job.Status)))

		return nil
	}

	_, emitErr := srv.EmitInvoice(ctx, job.OrderID)

	now := srv.now()
	if emitErr != nil {
		job.RecordFailure(emitErr, now, srv.outbox.RetryBackoff, srv.outbox.MaxAttempts)
	} else {
		job.MarkCompleted(now)
	}

	if err := srv.jobRepo.Save(ctx, job); err != nil {
		return &usecase.RetryableError{Err: errors.Wrap(err, "failed to record invoice job outcome")}
	}

	if emitErr != nil {
		srv.log(ctx).Error("Invoice emission failed",
			slog.String("jobID", jobID.String()),
			slog.String("orderID", job.OrderID.String()),
			slog.Int("attempts", job.Attempts),
			slog.String("status", string(job.Status)),
			slog.Any("error", emitErr),
		)

		return errors.Wrap(emitErr, "invoice emission failed")
	}

	return nil
}

// EmitInvoice creates or refreshes the invoice of an order, stores the rendered PDF and
// mails it to the buyer unless it was already sent.
func (srv *invoiceService) EmitInvoice(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error) {
	// The job may be delivered before a replica has seen the order's latest transition.
	order, err := srv.orderRepo.FindByIDFromPrimary(ctx, orderID)
	if err != nil {
		return nil, mapOrderError(err, orderID, "find order")
	}

	customer, err := srv.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		return nil, mapUserError(err, "find invoice recipient")
	}

	now := srv.now()
	invoice, err := srv.invoiceRepo.FindByOrderID(ctx, orderID)
	switch {
	case errors.Is(err, repository.ErrInvoiceNotFound):
		invoice = &entity.Invoice{
			ID:          uuid.Must(uuid.NewV7()),
			Number:      entity.NewInvoiceNumber(now),
			OrderID:     order.ID,
			UserID:      order.UserID,
			InvoiceDate: now,
			CreatedAt:   now,
		}
	case err != nil:
		return nil, databaseError(err, "find invoice")
	}

	fillInvoice(invoice, order, now)
	doc := &entity.InvoiceDocument{Invoice: invoice, Order: order, Customer: customer}

	pdf, err := srv.renderer.RenderPDF(ctx, doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render invoice")
	}

	url, err := srv.storage.Upload(ctx, constants.BucketInvoices, order.ID.String()+".pdf", pdf, "application/pdf")
	if err != nil {
		return nil, errors.Wrap(storageError(err), "failed to store invoice")
	}
	invoice.DocumentURL = url

	if err := srv.invoiceRepo.Upsert(ctx, invoice); err != nil {
		return nil, databaseError(err, "upsert invoice")
	}

	if invoice.SentAt != nil {
		return invoice, nil
	}

	if err := srv.send(ctx, doc, pdf); err != nil {
		return nil, err
	}

	sentAt := srv.now()
	invoice.SentAt = &sentAt
	invoice.UpdatedAt = sentAt
	if err := srv.invoiceRepo.Upsert(ctx, invoice); err != nil {
		return nil, databaseError(err, "mark invoice sent")
	}

	srv.log(ctx).Info("Invoice emitted",
		slog.String("orderID", orderID.String()),
		slog.String("number", invoice.Number),
		slog.String("recipient", customer.Email),
	)

	return invoice, nil
}

func fillInvoice(invoice *entity.Invoice, order *entity.Order, now time.Time) {
	invoice.Subtotal = order.LinesSubtotal()
	invoice.Discount = order.Discount
	invoice.Tax = order.Tax
	invoice.ShippingFee = order.ShippingFee
	invoice.TotalPrice = order.TotalPrice
	invoice.PaymentMethod = order.PaymentMethod
	invoice.PaymentStatus = entity.PaymentStatusFor(order)
	invoice.UpdatedAt = now
}

func (srv *invoiceService) send(ctx context.Context, doc *entity.InvoiceDocument, pdf []byte) error {
	if doc.Customer.Email == "" {
		return errors.Errorf("customer %s has no email address", doc.Customer.ID)
	}

	body, err := srv.renderer.RenderEmailHTML(ctx, doc)
	if err != nil {
		return errors.Wrap(err, "failed to render invoice email")
	}

	err = srv.mailer.Send(ctx, &entity.MailMessage{
		To:       []string{doc.Customer.Email},
		Subject:  "Invoice " + doc.Invoice.Number + " for order " + doc.Order.PONumber,
		HTMLBody: body,
		Attachments: []entity.MailAttachment{{
			Filename:    doc.Invoice.Number + ".pdf",
			ContentType: "application/pdf",
			Content:     pdf,
		}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to mail invoice")
	}

	return nil
}

// --- Admin and buyer access ---

// RetryInvoice puts the order's job back in the queue with a fresh attempt budget, or
// creates the job when the order never had one.
func (srv *invoiceService) RetryInvoice(ctx context.Context, orderID uuid.UUID) (*entity.InvoiceJob, error) {
	now := srv.now()

	var job *entity.InvoiceJob
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		order, err := repos.OrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return mapOrderError(err, orderID, "find order")
		}
		if order.AttachmentURL == "" {
			return domainerrors.ErrInvalidStatusTransition.WithDetails("order has no payment proof to invoice")
		}

		existing, err := repos.InvoiceJobRepo().FindByOrderID(ctx, orderID)
		if errors.Is(err, repository.ErrInvoiceJobNotFound) {
			job = entity.NewInvoiceJob(orderID, now)
			if _, err := repos.InvoiceJobRepo().Enqueue(ctx, job); err != nil {
				return databaseError(err, "enqueue invoice job")
			}

			return nil
		}
		if err != nil {
			return databaseError(err, "find invoice job")
		}

		existing.Reset(now)
		if err := repos.InvoiceJobRepo().Save(ctx, existing); err != nil {
			return databaseError(err, "reset invoice job")
		}
		job = existing

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to retry invoice")
	}

	srv.log(ctx).Info("Invoice job requeued", slog.String("orderID", orderID.String()), slog.String("jobID", job.ID.String()))

	return job, nil
}

// GetInvoice returns the invoice of an order the actor may see.
func (srv *invoiceService) GetInvoice(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*entity.Invoice, error) {
	invoice, err := srv.invoiceRepo.FindByOrderID(ctx, orderID)
	if errors.Is(err, repository.ErrInvoiceNotFound) {
		return nil, domainerrors.ErrInvoiceNotFound.WithDetails("order " + orderID.String())
	}
	if err != nil {
		return nil, databaseError(err, "find invoice")
	}
	if !actor.CanAccess(invoice.UserID) {
		return nil, domainerrors.ErrForbidden
	}

	return invoice, nil
}
