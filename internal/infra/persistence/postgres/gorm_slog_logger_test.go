package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"harvest/config"
	deliverycontext "harvest/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}

	return lines
}

func sqlAndRows() (string, int64) {
	return `UPDATE "products" SET "stock"=stock - 2 WHERE id = '0195a3b0'`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		wantMsg string
		wantLvl string
	}{
		{name: "failed statement", err: gorm.ErrInvalidTransaction, wantMsg: "[GORM] Query failed", wantLvl: "ERROR"},
		{name: "slow statement", elapsed: time.Second, wantMsg: "[GORM] Slow query", wantLvl: "WARN"},
		{name: "debug mode logs every statement", debug: true, wantMsg: "[GORM] Query", wantLvl: "DEBUG"},
		{name: "fast statement is quiet outside debug"},
		{name: "record not found is quiet", err: gorm.ErrRecordNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			l := newGormSlogLogger(newBufferedLogger(&buf), cfg)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlAndRows, tt.err)

			lines := logLines(t, &buf)
			if tt.wantMsg == "" {
				assert.Empty(t, lines)

				return
			}
			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantMsg, lines[0]["msg"])
			assert.Equal(t, tt.wantLvl, lines[0]["level"])
			assert.Contains(t, lines[0]["sql"], "products")
			assert.EqualValues(t, 1, lines[0]["rows"])
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&base), &config.Config{})

	ctx := deliverycontext.WithLogger(context.Background(), newBufferedLogger(&scoped).With(slog.String("request_id", "req-42")))
	l.Trace(ctx, time.Now(), sqlAndRows, gorm.ErrInvalidData)

	assert.Empty(t, base.String())
	lines := logLines(t, &scoped)
	require.Len(t, lines, 1)
	assert.Equal(t, "req-42", lines[0]["request_id"])
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&buf), &config.Config{})

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlAndRows, gorm.ErrInvalidData)
	l.LogMode(logger.Silent).Error(context.Background(), "dropped %d", 1)
	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "reconnect after %s", "1s")
	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "[GORM] reconnect after 1s", lines[0]["msg"])
}
