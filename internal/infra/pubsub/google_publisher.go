package pubsub

import (
	"context"
	"log/slog"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"
	"harvest/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails fast when topicID does not exist,
// since a missing topic would otherwise only surface on the first relay tick.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topic)
	}

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// PublishInvoiceJob blocks until Pub/Sub acknowledges the message, so the relay marks a job
// dispatched only once it is durable.
func (p *googlePubSubPublisher) PublishInvoiceJob(ctx context.Context, event *entity.InvoiceJobEvent) error {
	encoded, err := encodeEvent(ctx, event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       encoded.data,
		Attributes: encoded.attributeMap(),
	}).Get(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to publish invoice job")
	}

	p.logger.InfoContext(ctx, "[GooglePubSub] Invoice job published",
		slog.String("job_id", event.JobID.String()),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
