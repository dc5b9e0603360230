package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

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

const proofAcceptedMessage = "Payment proof uploaded successfully"

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	storage   service.ObjectStorage
	qrCode    service.QRCodeService
	now       func() time.Time
	logger    *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Storage   service.ObjectStorage
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		storage:   params.Storage,
		qrCode:    params.QRCode,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func acceptsProof(status entity.OrderStatus) bool {
	return status == entity.OrderStatusAwaitingPayment || status == entity.OrderStatusProcessing
}

// SubmitProof stores the payment proof, moves the order to PROCESSING and queues the
// invoice job in the same transaction. The invoice itself is produced by the worker.
func (srv *paymentService) SubmitProof(ctx context.Context, actor usecase.Actor, orderID uuid.UUID, file usecase.FileUpload) (*usecase.SubmitProofOutput, error) {
	contentType, err := validateUpload(file, proofContentTypes)
	if err != nil {
		return nil, err
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, mapOrderError(err, orderID, "find order")
	}
	if !actor.CanAccess(order.UserID) {
		return nil, domainerrors.ErrForbidden
	}
	if !acceptsProof(order.Status) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails("order " + order.Status.String() + " does not accept payment proof")
	}

	now := srv.now()
	key := fmt.Sprintf("%s-%d-%s", orderID, now.UnixMilli(), sanitizeObjectName(file.Filename))
	url, err := srv.storage.Upload(ctx, constants.BucketPaymentProofs, key, file.Data, contentType)
	if err != nil {
		srv.log(ctx).Error("Payment proof upload failed", slog.String("orderID", orderID.String()), slog.Any("error", err))

		return nil, storageError(err)
	}

	var (
		updated  *entity.Order
		previous string
	)
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		locked, err := repos.OrderRepo().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return mapOrderError(err, orderID, "lock order")
		}
		if !acceptsProof(locked.Status) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails("order " + locked.Status.String() + " does not accept payment proof")
		}

		previous = locked.AttachmentURL
		locked.AttachmentURL = url
		if locked.Status == entity.OrderStatusAwaitingPayment {
			locked.ApplyStatus(entity.OrderStatusProcessing, now)
		}
		locked.UpdatedAt = now
		if err := repos.OrderRepo().Update(ctx, locked); err != nil {
			return databaseError(err, "attach payment proof")
		}

		inserted, err := repos.InvoiceJobRepo().Enqueue(ctx, entity.NewInvoiceJob(orderID, now))
		if err != nil {
			return databaseError(err, "enqueue invoice job")
		}
		if !inserted {
			srv.log(ctx).Debug("Invoice job already queued", slog.String("orderID", orderID.String()))
		}
		updated = locked

		return nil
	})
	if err != nil {
		removeObjects(ctx, srv.storage, srv.log(ctx), constants.BucketPaymentProofs, []string{url})

		return nil, errors.Wrap(err, "failed to record payment proof")
	}

	if previous != "" && previous != url {
		removeObjects(ctx, srv.storage, srv.log(ctx), constants.BucketPaymentProofs, []string{previous})
	}

	srv.log(ctx).Info("Payment proof accepted",
		slog.String("orderID", orderID.String()),
		slog.String("status", updated.Status.String()),
	)

	return &usecase.SubmitProofOutput{
		Message: proofAcceptedMessage,
		FileURL: url,
		Order:   updated,
	}, nil
}

// PaymentQR renders the QRIS code of an order that is waiting for payment.
func (srv *paymentService) PaymentQR(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, mapOrderError(err, orderID, "find order")
	}
	if !actor.CanAccess(order.UserID) {
		return nil, domainerrors.ErrForbidden
	}
	if order.PaymentMethod != entity.PaymentMethodQRIS || order.Status != entity.OrderStatusAwaitingPayment {
		return nil, domainerrors.ErrPaymentQRUnavailable
	}

	png, err := srv.qrCode.GeneratePaymentQR(order)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}
