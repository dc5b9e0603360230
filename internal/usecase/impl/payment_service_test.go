package impl

import (
	"context"
	"strings"
	"testing"

	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	mockRepo "harvest/internal/mocks/repository"
	mockSvc "harvest/internal/mocks/service"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentServiceFixtures struct {
	service   *paymentService
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	storage   *mockSvc.MockObjectStorage
	qrCode    *mockSvc.MockQRCodeService
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	storage := mockSvc.NewMockObjectStorage(t)
	qrCode := mockSvc.NewMockQRCodeService(t)

	service := NewPaymentService(PaymentServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Storage:   storage,
		QRCode:    qrCode,
		Logger:    newDiscardLogger(),
	}).(*paymentService)
	service.now = fixedClock

	return paymentServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		storage:   storage,
		qrCode:    qrCode,
	}
}

var pdfProof = usecase.FileUpload{Filename: "bukti transfer.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.7 proof")}

func TestPaymentService_SubmitProof_MovesOrderToProcessing(t *testing.T) {
	fx := createTestPaymentService(t)
	repos := newTxRepos(t)
	ctx := context.Background()
	order := testOrder(entity.OrderStatusAwaitingPayment)
	locked := testOrder(entity.OrderStatusAwaitingPayment)
	locked.ID = order.ID
	url := "https://storage.example.com/payment-proofs/proof.pdf"

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.storage.EXPECT().
		Upload(ctx, constants.BucketPaymentProofs, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, order.ID.String()+"-") && strings.HasSuffix(key, "-bukti-transfer.pdf")
		}), pdfProof.Data, "application/pdf").
		Return(url, nil)
	expectTx(fx.txManager, repos)
	repos.orders.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(locked, nil)
	repos.orders.EXPECT().Update(ctx, locked).Return(nil)
	repos.jobs.EXPECT().
		Enqueue(ctx, mock.MatchedBy(func(job *entity.InvoiceJob) bool {
			return job.OrderID == order.ID && job.Status == entity.InvoiceJobStatusPending
		})).
		Return(true, nil)

	out, err := fx.service.SubmitProof(ctx, buyer, order.ID, pdfProof)

	require.NoError(t, err)
	assert.Equal(t, proofAcceptedMessage, out.Message)
	assert.Equal(t, url, out.FileURL)
	assert.Equal(t, entity.OrderStatusProcessing, out.Order.Status)
	assert.Equal(t, url, out.Order.AttachmentURL)
}

func TestPaymentService_SubmitProof_ReplacesProofWhileProcessing(t *testing.T) {
	fx := createTestPaymentService(t)
	repos := newTxRepos(t)
	ctx := context.Background()
	order := testOrder(entity.OrderStatusProcessing)
	order.AttachmentURL = "https://storage.example.com/payment-proofs/old.pdf"
	url := "https://storage.example.com/payment-proofs/new.pdf"

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.storage.EXPECT().Upload(ctx, constants.BucketPaymentProofs, mock.Anything, mock.Anything, "application/pdf").Return(url, nil)
	expectTx(fx.txManager, repos)
	repos.orders.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	repos.orders.EXPECT().Update(ctx, order).Return(nil)
	repos.jobs.EXPECT().Enqueue(ctx, mock.Anything).Return(false, nil)
	fx.storage.EXPECT().KeyFromURL(constants.BucketPaymentProofs, "https://storage.example.com/payment-proofs/old.pdf").Return("old.pdf", true)
	fx.storage.EXPECT().Remove(ctx, constants.BucketPaymentProofs, []string{"old.pdf"}).Return(nil)

	out, err := fx.service.SubmitProof(ctx, buyer, order.ID, pdfProof)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, out.Order.Status)
	assert.Equal(t, url, out.Order.AttachmentURL)
}

func TestPaymentService_SubmitProof_RemovesUploadWhenTransactionFails(t *testing.T) {
	fx := createTestPaymentService(t)
	repos := newTxRepos(t)
	ctx := context.Background()
	order := testOrder(entity.OrderStatusAwaitingPayment)
	url := "https://storage.example.com/payment-proofs/p.pdf"

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.storage.EXPECT().Upload(ctx, constants.BucketPaymentProofs, mock.Anything, mock.Anything, "application/pdf").Return(url, nil)
	expectTx(fx.txManager, repos)
	repos.orders.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	repos.orders.EXPECT().Update(ctx, order).Return(nil)
	repos.jobs.EXPECT().Enqueue(ctx, mock.Anything).Return(false, errors.New("connection reset"))
	fx.storage.EXPECT().KeyFromURL(constants.BucketPaymentProofs, url).Return("p.pdf", true)
	fx.storage.EXPECT().Remove(ctx, constants.BucketPaymentProofs, []string{"p.pdf"}).Return(nil)

	_, err := fx.service.SubmitProof(ctx, buyer, order.ID, pdfProof)

	require.Error(t, err)
	_, isDBErr := errors.Cause(err).(*domainerrors.DatabaseExecuteError)
	assert.True(t, isDBErr)
}

func TestPaymentService_SubmitProof_Rejections(t *testing.T) {
	t.Run("wrong status", func(t *testing.T) {
		fx := createTestPaymentService(t)
		ctx := context.Background()
		order := testOrder(entity.OrderStatusAwaitingVerification)
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		_, err := fx.service.SubmitProof(ctx, buyer, order.ID, pdfProof)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	})

	t.Run("someone else's order", func(t *testing.T) {
		fx := createTestPaymentService(t)
		ctx := context.Background()
		order := testOrder(entity.OrderStatusAwaitingPayment)
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		_, err := fx.service.SubmitProof(ctx, usecase.Actor{UserID: "other"}, order.ID, pdfProof)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("empty file", func(t *testing.T) {
		fx := createTestPaymentService(t)

		_, err := fx.service.SubmitProof(context.Background(), buyer, uuid.New(), usecase.FileUpload{Filename: "a.pdf"})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unsupported type", func(t *testing.T) {
		fx := createTestPaymentService(t)

		_, err := fx.service.SubmitProof(context.Background(), buyer, uuid.New(), usecase.FileUpload{
			Filename: "a.zip", ContentType: "application/zip", Data: []byte("PK"),
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("upload failure", func(t *testing.T) {
		fx := createTestPaymentService(t)
		ctx := context.Background()
		order := testOrder(entity.OrderStatusAwaitingPayment)
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		fx.storage.EXPECT().Upload(ctx, constants.BucketPaymentProofs, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("bucket unavailable"))

		_, err := fx.service.SubmitProof(ctx, buyer, order.ID, pdfProof)

		assert.ErrorIs(t, err, domainerrors.ErrStorageUploadFailed)
	})

	t.Run("missing order", func(t *testing.T) {
		fx := createTestPaymentService(t)
		ctx := context.Background()
		orderID := uuid.New()
		fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.SubmitProof(ctx, buyer, orderID, pdfProof)

		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestPaymentService_PaymentQR(t *testing.T) {
	t.Run("qris order awaiting payment", func(t *testing.T) {
		fx := createTestPaymentService(t)
		ctx := context.Background()
		order := testOrder(entity.OrderStatusAwaitingPayment)
		order.PaymentMethod = entity.PaymentMethodQRIS
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		fx.qrCode.EXPECT().GeneratePaymentQR(order).Return([]byte("png"), nil)

		png, err := fx.service.PaymentQR(ctx, buyer, order.ID)

		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("bank transfer order", func(t *testing.T) {
		fx := createTestPaymentService(t)
		ctx := context.Background()
		order := testOrder(entity.OrderStatusAwaitingPayment)
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		_, err := fx.service.PaymentQR(ctx, buyer, order.ID)

		assert.ErrorIs(t, err, domainerrors.ErrPaymentQRUnavailable)
	})
}
