package logger

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
)

// QueryHook logs every bun query through LogQuery. Slow queries are promoted
// to warnings.
type QueryHook struct {
	SlowThreshold time.Duration
}

var _ bun.QueryHook = (*QueryHook)(nil)

func (h *QueryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *QueryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	duration := time.Since(event.StartTime)
	err := event.Err
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
	}

	if err == nil && h.SlowThreshold > 0 && duration > h.SlowThreshold {
		LogSlowQuery(event.Operation(), event.Query, duration)
		return
	}
	LogQuery(event.Operation(), event.Query, duration, err)
}
