package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"harvest/config"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	"harvest/internal/errors"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler runs invoice jobs delivered by Pub/Sub push or the local publisher
type PushHandler struct {
	audience      string
	validateToken tokenValidator
	logger        *slog.Logger
	invoiceUC     usecase.InvoiceUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	InvoiceUC usecase.InvoiceUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. Push tokens are verified only when a
// push audience is configured.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		audience:      audience,
		validateToken: idtoken.Validate,
		logger:        params.Logger,
		invoiceUC:     params.InvoiceUC,
	}
}

// HandlePush answers 200 to acknowledge a message and 503 to have Pub/Sub redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.WarnContext(ctx, "[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)
	ctx = deliverycontext.WithScope(ctx, requestID, reqLogger)

	event, err := decodeInvoiceJobEvent(&pushMsg)
	if err != nil {
		// Redelivering a message that can never be decoded only clogs the subscription.
		reqLogger.Error("[Worker] Dropping undecodable invoice job message", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Processing invoice job",
		slog.String("job_id", event.JobID.String()),
		slog.String("order_id", event.OrderID.String()),
	)

	if err := h.invoiceUC.ProcessInvoiceJob(ctx, event.JobID); err != nil {
		retryable := usecase.IsRetryable(err)
		reqLogger.Error("[Worker] Failed to process invoice job",
			slog.String("job_id", event.JobID.String()),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Invoice job processed", slog.String("job_id", event.JobID.String()))

	return c.NoContent(http.StatusOK)
}

// decodeInvoiceJobEvent reads the base64 JSON payload. The job id attribute is used when the
// payload omits it.
func decodeInvoiceJobEvent(pushMsg *PubSubMessage) (*entity.InvoiceJobEvent, error) {
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event entity.InvoiceJobEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse invoice job event")
	}

	if event.JobID == uuid.Nil {
		jobID, err := uuid.Parse(pushMsg.Message.Attributes["job_id"])
		if err != nil {
			return nil, errors.New("invoice job event has no job id")
		}
		event.JobID = jobID
	}

	return &event, nil
}

// extractRequestID prefers the message attribute, then the id set by the request-ID
// middleware, then generates one.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token Pub/Sub attaches to authenticated push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token == "" {
		return errors.New("invalid authorization header format")
	}

	payload, err := h.validateToken(req.Context(), token, h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
