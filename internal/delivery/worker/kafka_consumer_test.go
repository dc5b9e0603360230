package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	"harvest/internal/infra/pubsub"
	mockUsecase "harvest/internal/mocks/usecase"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

// fakeKafkaClient replays scripted polls and records commits.
type fakeKafkaClient struct {
	mu        sync.Mutex
	polls     []kgo.Fetches
	onDrained func()
	committed []*kgo.Record
	closed    bool
}

func (f *fakeKafkaClient) PollFetches(context.Context) kgo.Fetches {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.polls) == 0 {
		f.onDrained()

		return nil
	}
	next := f.polls[0]
	f.polls = f.polls[1:]

	return next
}

func (f *fakeKafkaClient) CommitRecords(_ context.Context, rs ...*kgo.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.committed = append(f.committed, rs...)

	return nil
}

func (f *fakeKafkaClient) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
}

func jobRecord(t *testing.T, partition int32, offset int64, jobID uuid.UUID) *kgo.Record {
	t.Helper()

	value, err := json.Marshal(entity.InvoiceJobEvent{JobID: jobID, OrderID: uuid.New()})
	require.NoError(t, err)

	return &kgo.Record{Topic: "invoice-jobs", Partition: partition, Offset: offset, Value: value}
}

func fetchesOf(records ...*kgo.Record) kgo.Fetches {
	byPartition := map[int32][]*kgo.Record{}
	var order []int32
	for _, r := range records {
		if _, ok := byPartition[r.Partition]; !ok {
			order = append(order, r.Partition)
		}
		byPartition[r.Partition] = append(byPartition[r.Partition], r)
	}

	topic := kgo.FetchTopic{Topic: "invoice-jobs"}
	for _, p := range order {
		topic.Partitions = append(topic.Partitions, kgo.FetchPartition{Partition: p, Records: byPartition[p]})
	}

	return kgo.Fetches{{Topics: []kgo.FetchTopic{topic}}}
}

func newTestConsumer(t *testing.T, polls ...kgo.Fetches) (*kafkaConsumer, *fakeKafkaClient, *mockUsecase.MockInvoiceUsecase) {
	invoiceUC := mockUsecase.NewMockInvoiceUsecase(t)
	client := &fakeKafkaClient{polls: polls}
	consumer := newKafkaConsumer(client, invoiceUC, slog.New(slog.NewTextHandler(io.Discard, nil)))
	client.onDrained = consumer.cancel
	consumer.sleep = func(ctx context.Context, _ time.Duration) bool { return ctx.Err() == nil }

	return consumer, client, invoiceUC
}

func TestKafkaConsumer_CommitsHandledRecords(t *testing.T) {
	jobA, jobB := uuid.New(), uuid.New()
	recA := jobRecord(t, 0, 41, jobA)
	recB := jobRecord(t, 1, 7, jobB)
	poison := &kgo.Record{Topic: "invoice-jobs", Partition: 0, Offset: 42, Value: []byte("not json")}

	consumer, client, invoiceUC := newTestConsumer(t, fetchesOf(recA, poison, recB))

	invoiceUC.EXPECT().ProcessInvoiceJob(mock.Anything, jobA).Return(nil).Once()
	invoiceUC.EXPECT().ProcessInvoiceJob(mock.Anything, jobB).Return(errors.New("smtp: 550 mailbox unavailable")).Once()

	require.NoError(t, consumer.Serve(context.Background()))

	assert.ElementsMatch(t, []*kgo.Record{recA, poison, recB}, client.committed)
}

func TestKafkaConsumer_RetriesRetryableFailures(t *testing.T) {
	job := uuid.New()
	rec := jobRecord(t, 0, 3, job)

	consumer, client, invoiceUC := newTestConsumer(t, fetchesOf(rec))

	invoiceUC.EXPECT().
		ProcessInvoiceJob(mock.Anything, job).
		Return(&usecase.RetryableError{Err: errors.New("database unavailable")}).
		Twice()
	invoiceUC.EXPECT().ProcessInvoiceJob(mock.Anything, job).Return(nil).Once()

	require.NoError(t, consumer.Serve(context.Background()))

	assert.Equal(t, []*kgo.Record{rec}, client.committed)
}

func TestKafkaConsumer_LeavesOffsetOnShutdown(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	recFirst := jobRecord(t, 0, 10, first)
	recSecond := jobRecord(t, 0, 11, second)

	consumer, client, invoiceUC := newTestConsumer(t, fetchesOf(recFirst, recSecond))

	invoiceUC.EXPECT().ProcessInvoiceJob(mock.Anything, first).Return(nil).Once()
	invoiceUC.EXPECT().
		ProcessInvoiceJob(mock.Anything, second).
		RunAndReturn(func(context.Context, uuid.UUID) error {
			// Shutdown arrives while the job keeps failing.
			consumer.cancel()

			return &usecase.RetryableError{Err: errors.New("database unavailable")}
		}).
		Once()

	require.NoError(t, consumer.Serve(context.Background()))

	assert.Equal(t, []*kgo.Record{recFirst}, client.committed)
}

func TestKafkaConsumer_Stop(t *testing.T) {
	consumer, client, _ := newTestConsumer(t)

	served := make(chan struct{})
	go func() {
		_ = consumer.Serve(context.Background())
		close(served)
	}()
	<-served

	require.NoError(t, consumer.stop(context.Background()))
	assert.True(t, client.closed)
}

func TestKafkaConsumer_UsesRequestIDHeader(t *testing.T) {
	job := uuid.New()
	rec := jobRecord(t, 0, 3, job)
	rec.Headers = []kgo.RecordHeader{{Key: pubsub.AttrRequestID, Value: []byte("relay-9")}}

	consumer, _, invoiceUC := newTestConsumer(t)
	invoiceUC.EXPECT().
		ProcessInvoiceJob(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "relay-9"
		}), job).
		Return(nil).
		Once()

	assert.True(t, consumer.handleRecord(context.Background(), rec))
}
