package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRequestID(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	parsed, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestWithScope(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "job-1"))

	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	ctx := WithScope(context.Background(), "job-1", scoped)
	assert.Equal(t, "job-1", GetRequestIDFromContext(ctx))
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}

func TestEnrichLogger(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	EnrichLogger(c, slog.String("user_id", "u-1"))
	assert.Nil(t, GetLogger(c.Request().Context()))

	base := slog.New(slog.NewTextHandler(io.Discard, nil))
	c.SetRequest(req.WithContext(WithLogger(req.Context(), base)))
	EnrichLogger(c, slog.String("user_id", "u-1"))

	enriched := GetLogger(c.Request().Context())
	require.NotNil(t, enriched)
	assert.NotSame(t, base, enriched)
}
