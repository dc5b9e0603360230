package pubsub

import (
	"context"
	"log/slog"
	"time"

	"harvest/config"
	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"
	"harvest/internal/errors"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl/plain"
)

// KafkaClientOptions returns the connection options shared by producer and consumer.
func KafkaClientOptions(cfg *config.KafkaConfig) ([]kgo.Opt, error) {
	if cfg == nil || len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if cfg.Topic == "" {
		return nil, errors.New("kafka topic is required")
	}

	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
	}
	if cfg.Username != "" && cfg.Password != "" {
		opts = append(opts, kgo.SASL(plain.Auth{
			User: cfg.Username,
			Pass: cfg.Password,
		}.AsMechanism()))
	}

	return opts, nil
}

// kafkaProducer is the subset of *kgo.Client the publisher uses.
type kafkaProducer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type kafkaPublisher struct {
	client kafkaProducer
	logger *slog.Logger
}

// NewKafkaPublisher creates a franz-go producer writing to the configured topic.
func NewKafkaPublisher(cfg *config.KafkaConfig, logger *slog.Logger) (service.EventPublisher, error) {
	opts, err := KafkaClientOptions(cfg)
	if err != nil {
		return nil, err
	}
	opts = append(opts,
		kgo.DefaultProduceTopic(cfg.Topic),
		kgo.AllowAutoTopicCreation(),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
		kgo.ProducerLinger(10*time.Millisecond),
	)

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka client")
	}

	return &kafkaPublisher{client: client, logger: logger}, nil
}

// PublishInvoiceJob produces one record keyed by order id and waits for the broker ack.
func (p *kafkaPublisher) PublishInvoiceJob(ctx context.Context, event *entity.InvoiceJobEvent) error {
	encoded, err := encodeEvent(ctx, event)
	if err != nil {
		return err
	}

	record := &kgo.Record{
		Key:     []byte(event.OrderID.String()),
		Value:   encoded.data,
		Headers: make([]kgo.RecordHeader, 0, len(encoded.attrs)),
	}
	for _, a := range encoded.attrs {
		record.Headers = append(record.Headers, kgo.RecordHeader{Key: a.key, Value: []byte(a.value)})
	}

	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return errors.Wrap(err, "failed to produce invoice job")
	}

	p.logger.InfoContext(ctx, "[Kafka] Invoice job published",
		slog.String("job_id", event.JobID.String()),
		slog.String("topic", record.Topic),
		slog.Int64("offset", record.Offset),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	p.client.Close()

	return nil
}
