package pubsub

import (
	"context"
	"encoding/json"

	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	"harvest/internal/errors"
)

// Message attribute keys shared by every transport. Pub/Sub carries them as attributes and
// Kafka as record headers.
const (
	AttrJobID     = "job_id"
	AttrOrderID   = "order_id"
	AttrRequestID = "request_id"
)

type attribute struct {
	key   string
	value string
}

// encodedEvent is an invoice job event ready for any transport.
type encodedEvent struct {
	data  []byte
	attrs []attribute
}

// encodeEvent marshals event and tags it with the job, the order and, when the relay tick
// carries one, the request ID, so the worker logs under the same ID.
func encodeEvent(ctx context.Context, event *entity.InvoiceJobEvent) (*encodedEvent, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal invoice job event")
	}

	attrs := []attribute{
		{key: AttrJobID, value: event.JobID.String()},
		{key: AttrOrderID, value: event.OrderID.String()},
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		attrs = append(attrs, attribute{key: AttrRequestID, value: requestID})
	}

	return &encodedEvent{data: data, attrs: attrs}, nil
}

func (e *encodedEvent) attributeMap() map[string]string {
	m := make(map[string]string, len(e.attrs))
	for _, a := range e.attrs {
		m[a.key] = a.value
	}

	return m
}
