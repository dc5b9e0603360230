package pubsub

import (
	"context"
	"log/slog"

	"harvest/config"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"
	"harvest/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher refuses every publish, so with no transport configured the relay leaves jobs
// pending instead of marking them dispatched.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishInvoiceJob(ctx context.Context, event *entity.InvoiceJobEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Publishing disabled, invoice job stays pending",
		slog.String("job_id", event.JobID.String()),
	)

	return service.ErrPublishingDisabled
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the transport named by pubsub.provider and closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newProviderPublisher(params.Ctx, params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing invoice job publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newProviderPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	ps := cfg.PubSub
	if ps == nil || ps.Provider == "" {
		logger.Warn("PubSub not configured, invoice jobs will not be dispatched")

		return &noopPublisher{logger: logger}, nil
	}

	switch ps.Provider {
	case constants.PubSubProviderLocal:
		if ps.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Publishing invoice jobs to local worker", slog.String("endpoint", ps.LocalEndpoint))

		return NewLocalHTTPPublisher(ps.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if ps.ProjectID == "" || ps.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Publishing invoice jobs to Google Pub/Sub",
			slog.String("project_id", ps.ProjectID),
			slog.String("topic_id", ps.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, ps.ProjectID, ps.TopicID, logger)

	case constants.PubSubProviderKafka:
		if cfg.Kafka == nil {
			return nil, errors.New("kafka configuration is required for the kafka provider")
		}
		logger.Info("Publishing invoice jobs to Kafka",
			slog.Any("brokers", cfg.Kafka.Brokers),
			slog.String("topic", cfg.Kafka.Topic),
		)

		return NewKafkaPublisher(cfg.Kafka, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", ps.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
