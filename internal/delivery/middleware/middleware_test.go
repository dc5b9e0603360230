package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"harvest/config"
	deliverycontext "harvest/internal/delivery/context"
	domainerrors "harvest/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantID   string
	}{
		{name: "client id is kept", incoming: "req-abc-123", wantID: "req-abc-123"},
		{name: "missing id is generated", incoming: "", wantID: "generated"},
		{name: "id with spaces is replaced", incoming: "evil id\nlevel=ERROR", wantID: "generated"},
		{name: "oversized id is replaced", incoming: strings.Repeat("a", maxRequestIDLength+1), wantID: "generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			m.newID = func() string { return "generated" }

			req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var ctxID string
			err := m.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return nil
			})(c)
			require.NoError(t, err)

			assert.Equal(t, tt.wantID, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, tt.wantID, deliverycontext.GetRequestID(c))
			assert.Equal(t, tt.wantID, ctxID)
		})
	}
}

func TestNewRequestID(t *testing.T) {
	a, b := newRequestID(), newRequestID()

	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	newMiddleware := func(buf *bytes.Buffer, debug bool) *LoggerMiddleware {
		cfg := &config.Config{}
		cfg.Env.Debug = debug
		m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(buf, nil)), cfg)
		start := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
		calls := 0
		m.now = func() time.Time {
			calls++

			return start.Add(time.Duration(calls-1) * 15 * time.Millisecond)
		}

		return m
	}

	t.Run("logs the final status of a failed request", func(t *testing.T) {
		var buf bytes.Buffer
		m := newMiddleware(&buf, false)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/x?page=2", nil)
		c := echo.New().NewContext(req, httptest.NewRecorder())

		err := m.Handle(func(echo.Context) error { return domainerrors.ErrOrderNotFound })(c)
		require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, float64(http.StatusNotFound), entry["status"])
		assert.NotContains(t, entry, "query")
	})

	t.Run("debug adds the query", func(t *testing.T) {
		var buf bytes.Buffer
		m := newMiddleware(&buf, true)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products?search=mango", nil)
		c := echo.New().NewContext(req, httptest.NewRecorder())

		require.NoError(t, m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "search=mango", entry["query"])
	})

	t.Run("health checks are not logged", func(t *testing.T) {
		var buf bytes.Buffer
		m := newMiddleware(&buf, false)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		c := echo.New().NewContext(req, httptest.NewRecorder())

		require.NoError(t, m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
		assert.Zero(t, buf.Len())
	})
}
