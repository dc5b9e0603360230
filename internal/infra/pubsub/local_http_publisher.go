package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"
	"harvest/internal/errors"
)

const (
	localSubscription = "projects/local/subscriptions/invoice-jobs"
	localPushTimeout  = 30 * time.Second
)

// PushMessage is the body Google Pub/Sub sends to push endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher posts jobs straight to the worker's /push endpoint in Pub/Sub push
// format, so development runs without an emulator.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	now        func() time.Time
	logger     *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPushTimeout},
		now:        time.Now,
		logger:     logger,
	}
}

// PublishInvoiceJob treats any non-2xx answer from the worker as a failed publish. A 503 from
// a retryable job failure therefore leaves the job for the relay to retry.
func (p *localHTTPPublisher) PublishInvoiceJob(ctx context.Context, event *entity.InvoiceJobEvent) error {
	encoded, err := encodeEvent(ctx, event)
	if err != nil {
		return err
	}

	var pushMsg PushMessage
	pushMsg.Subscription = localSubscription
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(encoded.data)
	pushMsg.Message.Attributes = encoded.attributeMap()
	pushMsg.Message.MessageID = event.JobID.String()
	pushMsg.Message.PublishTime = p.now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build push request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to push invoice job")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("worker answered %d", resp.StatusCode)
	}

	p.logger.InfoContext(ctx, "[LocalPubSub] Invoice job pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("job_id", event.JobID.String()),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
