package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	t.Run("no new waits", func(t *testing.T) {
		var buf bytes.Buffer
		logPoolWait(context.Background(), newBufferedLogger(&buf), prev, prev)
		assert.Empty(t, buf.String())
	})

	t.Run("short waits are debug", func(t *testing.T) {
		var buf bytes.Buffer
		cur := sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond, InUse: 4}
		logPoolWait(context.Background(), newBufferedLogger(&buf), prev, cur)

		lines := logLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "DEBUG", lines[0]["level"])
		assert.EqualValues(t, 2, lines[0]["waits"])
		assert.EqualValues(t, 4, lines[0]["in_use"])
	})

	t.Run("long waits warn", func(t *testing.T) {
		var buf bytes.Buffer
		cur := sql.DBStats{WaitCount: 11, WaitDuration: 2 * time.Second}
		logPoolWait(context.Background(), newBufferedLogger(&buf), prev, cur)

		lines := logLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "WARN", lines[0]["level"])
	})
}

func TestModels(t *testing.T) {
	assert.Len(t, Models(), 7)
}
