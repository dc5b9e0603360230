package impl

import (
	"context"
	"testing"
	"time"

	"harvest/config"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	mockRepo "harvest/internal/mocks/repository"
	mockSvc "harvest/internal/mocks/service"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type invoiceServiceFixtures struct {
	service     *invoiceService
	txManager   *mockRepo.MockTransactionManager
	orderRepo   *mockRepo.MockOrderRepository
	userRepo    *mockRepo.MockUserRepository
	invoiceRepo *mockRepo.MockInvoiceRepository
	jobRepo     *mockRepo.MockInvoiceJobRepository
	publisher   *mockSvc.MockEventPublisher
	renderer    *mockSvc.MockInvoiceRenderer
	storage     *mockSvc.MockObjectStorage
	mailer      *mockSvc.MockMailer
}

func createTestInvoiceService(t *testing.T) invoiceServiceFixtures {
	fx := invoiceServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		invoiceRepo: mockRepo.NewMockInvoiceRepository(t),
		jobRepo:     mockRepo.NewMockInvoiceJobRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		renderer:    mockSvc.NewMockInvoiceRenderer(t),
		storage:     mockSvc.NewMockObjectStorage(t),
		mailer:      mockSvc.NewMockMailer(t),
	}

	fx.service = NewInvoiceService(InvoiceServiceParams{
		TxManager:   fx.txManager,
		OrderRepo:   fx.orderRepo,
		UserRepo:    fx.userRepo,
		InvoiceRepo: fx.invoiceRepo,
		JobRepo:     fx.jobRepo,
		Publisher:   fx.publisher,
		Renderer:    fx.renderer,
		Storage:     fx.storage,
		Mailer:      fx.mailer,
		Config: &config.Config{Outbox: &config.OutboxConfig{
			BatchSize:     10,
			MaxAttempts:   3,
			RetryBackoff:  time.Minute,
			DispatchLease: 10 * time.Minute,
		}},
		Logger: newDiscardLogger(),
	}).(*invoiceService)
	fx.service.now = fixedClock

	return fx
}

func testCustomer() *entity.User {
	return &entity.User{ID: buyer.UserID, Email: "buyer@example.com", Username: "Sari", Role: entity.RoleCustomer}
}

func TestInvoiceService_DispatchPendingJobs(t *testing.T) {
	fx := createTestInvoiceService(t)
	repos := newTxRepos(t)
	ctx := context.Background()
	ok := entity.NewInvoiceJob(uuid.New(), testNow.Add(-time.Minute))
	failing := entity.NewInvoiceJob(uuid.New(), testNow.Add(-time.Minute))

	expectTx(fx.txManager, repos)
	repos.jobs.EXPECT().ClaimDue(ctx, testNow, testNow.Add(-10*time.Minute), 10).Return([]*entity.InvoiceJob{ok, failing}, nil)
	fx.publisher.EXPECT().PublishInvoiceJob(ctx, &entity.InvoiceJobEvent{JobID: ok.ID, OrderID: ok.OrderID, EnqueuedAt: ok.CreatedAt}).Return(nil)
	fx.publisher.EXPECT().PublishInvoiceJob(ctx, &entity.InvoiceJobEvent{JobID: failing.ID, OrderID: failing.OrderID, EnqueuedAt: failing.CreatedAt}).
		Return(errors.New("broker unreachable"))
	repos.jobs.EXPECT().Save(ctx, ok).Return(nil)
	repos.jobs.EXPECT().Save(ctx, failing).Return(nil)

	sent, err := fx.service.DispatchPendingJobs(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, entity.InvoiceJobStatusDispatched, ok.Status)
	assert.Equal(t, entity.InvoiceJobStatusRetry, failing.Status)
	assert.Equal(t, 1, failing.Attempts)
	assert.Equal(t, testNow.Add(time.Minute), failing.NextAttemptAt)
	assert.Equal(t, "broker unreachable", failing.LastError)
}

func TestInvoiceService_DispatchPendingJobs_PublishingDisabled(t *testing.T) {
	fx := createTestInvoiceService(t)
	repos := newTxRepos(t)
	ctx := context.Background()
	job := entity.NewInvoiceJob(uuid.New(), testNow)

	expectTx(fx.txManager, repos)
	repos.jobs.EXPECT().ClaimDue(ctx, testNow, mock.Anything, 10).Return([]*entity.InvoiceJob{job}, nil)
	fx.publisher.EXPECT().PublishInvoiceJob(ctx, mock.Anything).Return(service.ErrPublishingDisabled)

	sent, err := fx.service.DispatchPendingJobs(ctx)

	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Equal(t, entity.InvoiceJobStatusPending, job.Status)
	assert.Zero(t, job.Attempts)
}

func TestInvoiceService_DispatchPendingJobs_ClaimFailure(t *testing.T) {
	fx := createTestInvoiceService(t)
	repos := newTxRepos(t)
	ctx := context.Background()

	expectTx(fx.txManager, repos)
	repos.jobs.EXPECT().ClaimDue(ctx, testNow, mock.Anything, 10).Return(nil, errors.New("deadlock detected"))

	_, err := fx.service.DispatchPendingJobs(ctx)

	require.Error(t, err)
	_, isDBErr := errors.Cause(err).(*domainerrors.DatabaseExecuteError)
	assert.True(t, isDBErr)
}

func expectEmission(fx invoiceServiceFixtures, ctx context.Context, order *entity.Order, existing *entity.Invoice) {
	fx.orderRepo.EXPECT().FindByIDFromPrimary(ctx, order.ID).Return(order, nil)
	fx.userRepo.EXPECT().FindByID(ctx, order.UserID).Return(testCustomer(), nil)
	if existing == nil {
		fx.invoiceRepo.EXPECT().FindByOrderID(ctx, order.ID).Return(nil, repository.ErrInvoiceNotFound)
	} else {
		fx.invoiceRepo.EXPECT().FindByOrderID(ctx, order.ID).Return(existing, nil)
	}
	fx.renderer.EXPECT().RenderPDF(ctx, mock.Anything).Return([]byte("%PDF"), nil)
	fx.storage.EXPECT().Upload(ctx, constants.BucketInvoices, order.ID.String()+".pdf", []byte("%PDF"), "application/pdf").
		Return("https://storage.example.com/invoices/"+order.ID.String()+".pdf", nil)
}

func TestInvoiceService_EmitInvoice_CreatesAndMails(t *testing.T) {
	fx := createTestInvoiceService(t)
	ctx := context.Background()
	order := testOrder(entity.OrderStatusProcessing, testLine(uuid.New(), 4, "25000"))
	order.ShippingFee = decimal.NewFromInt(15000)
	order.RecalculateTotal()

	expectEmission(fx, ctx, order, nil)
	fx.invoiceRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Invoice")).Return(nil).Twice()
	fx.renderer.EXPECT().RenderEmailHTML(ctx, mock.Anything).Return("<p>invoice</p>", nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg *entity.MailMessage) bool {
			return len(msg.To) == 1 && msg.To[0] == "buyer@example.com" &&
				msg.HTMLBody == "<p>invoice</p>" &&
				len(msg.Attachments) == 1 && msg.Attachments[0].ContentType == "application/pdf"
		})).
		Return(nil)

	invoice, err := fx.service.EmitInvoice(ctx, order.ID)

	require.NoError(t, err)
	assert.Regexp(t, `^INV-[0-9A-Z]{26}$`, invoice.Number)
	assert.Equal(t, order.ID, invoice.OrderID)
	assert.True(t, invoice.Subtotal.Equal(decimal.NewFromInt(100000)))
	assert.True(t, invoice.TotalPrice.Equal(decimal.NewFromInt(115000)))
	assert.Equal(t, entity.InvoicePaymentStatusPaid, invoice.PaymentStatus)
	assert.Equal(t, "https://storage.example.com/invoices/"+order.ID.String()+".pdf", invoice.DocumentURL)
	require.NotNil(t, invoice.SentAt)
	assert.Equal(t, testNow, *invoice.SentAt)
	fx.orderRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestInvoiceService_EmitInvoice_AlreadySentIsNotMailedAgain(t *testing.T) {
	fx := createTestInvoiceService(t)
	ctx := context.Background()
	order := testOrder(entity.OrderStatusCompleted, testLine(uuid.New(), 1, "5000"))
	sentAt := testNow.Add(-time.Hour)
	existing := &entity.Invoice{ID: uuid.New(), Number: "INV-01HQZ8Y6C3V7W9X2Y4Z6A8B0C2", OrderID: order.ID, UserID: order.UserID, SentAt: &sentAt}

	expectEmission(fx, ctx, order, existing)
	fx.invoiceRepo.EXPECT().Upsert(ctx, existing).Return(nil).Once()

	invoice, err := fx.service.EmitInvoice(ctx, order.ID)

	require.NoError(t, err)
	assert.Equal(t, "INV-01HQZ8Y6C3V7W9X2Y4Z6A8B0C2", invoice.Number)
	assert.Equal(t, sentAt, *invoice.SentAt)
}

func TestInvoiceService_EmitInvoice_MailFailureLeavesInvoiceUnsent(t *testing.T) {
	fx := createTestInvoiceService(t)
	ctx := context.Background()
	order := testOrder(entity.OrderStatusProcessing, testLine(uuid.New(), 1, "5000"))

	expectEmission(fx, ctx, order, nil)
	fx.invoiceRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil).Once()
	fx.renderer.EXPECT().RenderEmailHTML(ctx, mock.Anything).Return("<p/>", nil)
	fx.mailer.EXPECT().Send(ctx, mock.Anything).Return(errors.New("535 authentication failed"))

	_, err := fx.service.EmitInvoice(ctx, order.ID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to mail invoice")
}

func TestInvoiceService_ProcessInvoiceJob(t *testing.T) {
	t.Run("completes the job", func(t *testing.T) {
		fx := createTestInvoiceService(t)
		ctx := context.Background()
		order := testOrder(entity.OrderStatusProcessing, testLine(uuid.New(), 1, "5000"))
		job := entity.NewInvoiceJob(order.ID, testNow)
		job.MarkDispatched(testNow)

		fx.jobRepo.EXPECT().FindByID(ctx, job.ID).Return(job, nil)
		expectEmission(fx, ctx, order, nil)
		fx.invoiceRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)
		fx.renderer.EXPECT().RenderEmailHTML(ctx, mock.Anything).Return("<p/>", nil)
		fx.mailer.EXPECT().Send(ctx, mock.Anything).Return(nil)
		fx.jobRepo.EXPECT().Save(ctx, job).Return(nil)

		err := fx.service.ProcessInvoiceJob(ctx, job.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.InvoiceJobStatusCompleted, job.Status)
	})

	t.Run("records emission failure without retrying delivery", func(t *testing.T) {
		fx := createTestInvoiceService(t)
		ctx := context.Background()
		orderID := uuid.New()
		job := entity.NewInvoiceJob(orderID, testNow)

		fx.jobRepo.EXPECT().FindByID(ctx, job.ID).Return(job, nil)
		fx.orderRepo.EXPECT().FindByIDFromPrimary(ctx, orderID).Return(nil, repository.ErrOrderNotFound)
		fx.jobRepo.EXPECT().Save(ctx, job).Return(nil)

		err := fx.service.ProcessInvoiceJob(ctx, job.ID)

		require.Error(t, err)
		assert.False(t, usecase.IsRetryable(err))
		assert.Equal(t, entity.InvoiceJobStatusRetry, job.Status)
		assert.Equal(t, 1, job.Attempts)
	})

	t.Run("unknown job is dropped", func(t *testing.T) {
		fx := createTestInvoiceService(t)
		ctx := context.Background()
		jobID := uuid.New()
		fx.jobRepo.EXPECT().FindByID(ctx, jobID).Return(nil, repository.ErrInvoiceJobNotFound)

		assert.NoError(t, fx.service.ProcessInvoiceJob(ctx, jobID))
	})

	t.Run("finished job is skipped", func(t *testing.T) {
		fx := createTestInvoiceService(t)
		ctx := context.Background()
		job := entity.NewInvoiceJob(uuid.New(), testNow)
		job.MarkCompleted(testNow)
		fx.jobRepo.EXPECT().FindByID(ctx, job.ID).Return(job, nil)

		assert.NoError(t, fx.service.ProcessInvoiceJob(ctx, job.ID))
	})

	t.Run("lookup failure is retryable", func(t *testing.T) {
		fx := createTestInvoiceService(t)
		ctx := context.Background()
		jobID := uuid.New()
		fx.jobRepo.EXPECT().FindByID(ctx, jobID).Return(nil, errors.New("too many connections"))

		err := fx.service.ProcessInvoiceJob(ctx, jobID)

		assert.True(t, usecase.IsRetryable(err))
	})
}

func TestInvoiceService_RetryInvoice(t *testing.T) {
	t.Run("resets an existing job", func(t *testing.T) {
		fx := createTestInvoiceService(t)
		repos := newTxRepos(t)
		ctx := context.Background()
		order := testOrder(entity.OrderStatusProcessing)
		order.AttachmentURL = "https://storage.example.com/payment-proofs/p.pdf"
		job := entity.NewInvoiceJob(order.ID, testNow.Add(-time.Hour))
		job.Status = entity.InvoiceJobStatusDead
		job.Attempts = 3

		expectTx(fx.txManager, repos)
		repos.orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		repos.jobs.EXPECT().FindByOrderID(ctx, order.ID).Return(job, nil)
		repos.jobs.EXPECT().Save(ctx, job).Return(nil)

		got, err := fx.service.RetryInvoice(ctx, order.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.InvoiceJobStatusPending, got.Status)
		assert.Zero(t, got.Attempts)
		assert.Equal(t, testNow, got.NextAttemptAt)
	})

	t.Run("enqueues a missing job", func(t *testing.T) {
		fx := createTestInvoiceService(t)
		repos := newTxRepos(t)
		ctx := context.Background()
		order := testOrder(entity.OrderStatusCompleted)
		order.AttachmentURL = "https://storage.example.com/payment-proofs/p.pdf"

		expectTx(fx.txManager, repos)
		repos.orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		repos.jobs.EXPECT().FindByOrderID(ctx, order.ID).Return(nil, repository.ErrInvoiceJobNotFound)
		repos.jobs.EXPECT().Enqueue(ctx, mock.AnythingOfType("*entity.InvoiceJob")).Return(true, nil)

		got, err := fx.service.RetryInvoice(ctx, order.ID)

		require.NoError(t, err)
		assert.Equal(t, order.ID, got.OrderID)
	})

	t.Run("order without payment proof", func(t *testing.T) {
		fx := createTestInvoiceService(t)
		repos := newTxRepos(t)
		ctx := context.Background()
		order := testOrder(entity.OrderStatusAwaitingPayment)

		expectTx(fx.txManager, repos)
		repos.orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		_, err := fx.service.RetryInvoice(ctx, order.ID)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	})
}

func TestInvoiceService_GetInvoice(t *testing.T) {
	orderID := uuid.New()
	invoice := &entity.Invoice{ID: uuid.New(), OrderID: orderID, UserID: buyer.UserID}

	t.Run("owner", func(t *testing.T) {
		fx := createTestInvoiceService(t)
		fx.invoiceRepo.EXPECT().FindByOrderID(mock.Anything, orderID).Return(invoice, nil)

		got, err := fx.service.GetInvoice(context.Background(), buyer, orderID)

		require.NoError(t, err)
		assert.Equal(t, invoice, got)
	})

	t.Run("admin", func(t *testing.T) {
		fx := createTestInvoiceService(t)
		fx.invoiceRepo.EXPECT().FindByOrderID(mock.Anything, orderID).Return(invoice, nil)

		_, err := fx.service.GetInvoice(context.Background(), admin, orderID)

		assert.NoError(t, err)
	})

	t.Run("other buyer", func(t *testing.T) {
		fx := createTestInvoiceService(t)
		fx.invoiceRepo.EXPECT().FindByOrderID(mock.Anything, orderID).Return(invoice, nil)

		_, err := fx.service.GetInvoice(context.Background(), usecase.Actor{UserID: "someone-else", Role: entity.RoleCustomer}, orderID)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("not emitted yet", func(t *testing.T) {
		fx := createTestInvoiceService(t)
		fx.invoiceRepo.EXPECT().FindByOrderID(mock.Anything, orderID).Return(nil, repository.ErrInvoiceNotFound)

		_, err := fx.service.GetInvoice(context.Background(), buyer, orderID)

		assert.ErrorIs(t, err, domainerrors.ErrInvoiceNotFound)
	})
}
