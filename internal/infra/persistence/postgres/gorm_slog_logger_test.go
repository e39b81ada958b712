package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlAndRows() (string, int64) {
	return "SELECT * FROM categories", 3
}

func TestGormSlogLogger_ThresholdFromConfig(t *testing.T) {
	cfg := &config.Config{Schema: &config.SchemaConfig{SlowQueryThreshold: time.Second}}
	cfg.Env.Debug = true

	l, ok := newGormSlogLogger(slog.Default(), cfg).(*gormSlogLogger)
	assert.True(t, ok)
	assert.Equal(t, time.Second, l.slowThreshold)
	assert.Equal(t, logger.Info, l.level)

	l, ok = newGormSlogLogger(slog.Default(), nil).(*gormSlogLogger)
	assert.True(t, ok)
	assert.Equal(t, defaultGormSlowThreshold, l.slowThreshold)
	assert.Equal(t, logger.Warn, l.level)
}

func TestGormSlogLogger_TraceUsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&base), nil)

	ctx := deliverycontext.WithLogger(context.Background(),
		newBufferLogger(&scoped).With(slog.String("request_id", "req-1")))

	l.Trace(ctx, time.Now(), sqlAndRows, errors.New("relation does not exist"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-1")
	assert.Contains(t, scoped.String(), "Database query failed")
}

func TestGormSlogLogger_TraceSkipsRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), nil)

	l.Trace(context.Background(), time.Now(), sqlAndRows, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_TraceReportsSlowQuery(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), nil)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlAndRows, nil)

	assert.Contains(t, buf.String(), "Slow database query")
	assert.Contains(t, buf.String(), "rows=3")
}
