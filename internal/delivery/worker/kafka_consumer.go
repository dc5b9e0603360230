package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"harvest/config"
	"harvest/internal/delivery"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	"harvest/internal/errors"
	"harvest/internal/infra/pubsub"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/fx"
)

const (
	defaultConsumerGroup = "invoice-worker"

	redeliveryBackoff    = time.Second
	maxRedeliveryBackoff = 30 * time.Second
)

// kafkaClient is the subset of *kgo.Client the consumer uses.
type kafkaClient interface {
	PollFetches(ctx context.Context) kgo.Fetches
	CommitRecords(ctx context.Context, rs ...*kgo.Record) error
	Close()
}

// KafkaConsumerParams holds dependencies for the Kafka consumer delivery
type KafkaConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	InvoiceUC usecase.InvoiceUsecase
}

type kafkaConsumer struct {
	client    kafkaClient
	invoiceUC usecase.InvoiceUsecase
	logger    *slog.Logger
	sleep     func(ctx context.Context, d time.Duration) bool

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewKafkaConsumer joins the invoice job consumer group when the kafka provider is selected.
// Offsets are committed manually and only after a record has been handled.
func NewKafkaConsumer(params KafkaConsumerParams) (delivery.Delivery, error) {
	if params.Cfg.PubSub == nil || params.Cfg.PubSub.Provider != constants.PubSubProviderKafka {
		return disabledDelivery{name: "kafka consumer", logger: params.Logger}, nil
	}

	opts, err := pubsub.KafkaClientOptions(params.Cfg.Kafka)
	if err != nil {
		return nil, err
	}

	groupID := params.Cfg.Kafka.GroupID
	if groupID == "" {
		groupID = defaultConsumerGroup
	}
	opts = append(opts,
		kgo.ConsumerGroup(groupID),
		kgo.ConsumeTopics(params.Cfg.Kafka.Topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
		kgo.DisableAutoCommit(),
		kgo.SessionTimeout(30*time.Second),
		kgo.RebalanceTimeout(30*time.Second),
	)

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka consumer")
	}

	consumer := newKafkaConsumer(client, params.InvoiceUC, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: consumer.stop,
	})

	return consumer, nil
}

func newKafkaConsumer(client kafkaClient, invoiceUC usecase.InvoiceUsecase, logger *slog.Logger) *kafkaConsumer {
	ctx, cancel := context.WithCancel(context.Background())

	return &kafkaConsumer{
		client:    client,
		invoiceUC: invoiceUC,
		logger:    logger,
		sleep:     sleepContext,
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
}

// Serve polls until the consumer is stopped. Records of one partition are handled in order.
func (k *kafkaConsumer) Serve(_ context.Context) error {
	defer close(k.done)

	k.logger.Info("Starting Kafka invoice job consumer")

	for {
		fetches := k.client.PollFetches(k.ctx)
		if fetches.IsClientClosed() || k.ctx.Err() != nil {
			return nil
		}

		fetches.EachError(func(topic string, partition int32, err error) {
			k.logger.Error("[Kafka] Fetch error",
				slog.String("topic", topic),
				slog.Int("partition", int(partition)),
				slog.Any("error", err),
			)
		})

		var handled []*kgo.Record
		fetches.EachPartition(func(p kgo.FetchTopicPartition) {
			for _, record := range p.Records {
				if k.ctx.Err() != nil || !k.handleRecord(k.ctx, record) {
					return
				}
				handled = append(handled, record)
			}
		})

		if len(handled) == 0 {
			continue
		}
		// Commit on a fresh context so the final batch is recorded during shutdown.
		commitCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := k.client.CommitRecords(commitCtx, handled...); err != nil {
			k.logger.Error("[Kafka] Failed to commit offsets", slog.Int("records", len(handled)), slog.Any("error", err))
		}
		cancel()
	}
}

// handleRecord runs the job, retrying in place while the failure is retryable. It returns
// false when the consumer stops before the record is handled; its offset is then left
// uncommitted so the group redelivers it.
func (k *kafkaConsumer) handleRecord(ctx context.Context, record *kgo.Record) bool {
	logger := k.logger.With(
		slog.Int("partition", int(record.Partition)),
		slog.Int64("offset", record.Offset),
	)

	var event entity.InvoiceJobEvent
	if err := json.Unmarshal(record.Value, &event); err != nil || event.JobID == uuid.Nil {
		logger.Error("[Kafka] Dropping undecodable invoice job record", slog.Any("error", err))

		return true
	}

	requestID := recordHeader(record, pubsub.AttrRequestID)
	if requestID == "" {
		requestID = event.JobID.String()
	}
	logger = logger.With(slog.String("request_id", requestID), slog.String("job_id", event.JobID.String()))
	jobCtx := deliverycontext.WithScope(ctx, requestID, logger)

	backoff := redeliveryBackoff
	for {
		err := k.invoiceUC.ProcessInvoiceJob(jobCtx, event.JobID)
		if err == nil {
			return true
		}
		if !usecase.IsRetryable(err) {
			logger.Error("[Kafka] Invoice job failed", slog.Any("error", err))

			return true
		}

		logger.Warn("[Kafka] Retryable invoice job failure", slog.Any("error", err), slog.Duration("backoff", backoff))
		if !k.sleep(ctx, backoff) {
			return false
		}
		backoff = min(backoff*2, maxRedeliveryBackoff)
	}
}

func (k *kafkaConsumer) stop(ctx context.Context) error {
	k.logger.Info("Stopping Kafka invoice job consumer")
	k.cancel()

	select {
	case <-k.done:
	case <-ctx.Done():
	}
	k.client.Close()

	return nil
}

func recordHeader(record *kgo.Record, key string) string {
	for _, h := range record.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}

	return ""
}

// sleepContext waits for d and reports false when ctx ends first.
func sleepContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
