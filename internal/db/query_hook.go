package db

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-pg/pg/v10"
)

// QueryHook reports failed and slow statements at warn level. With verbose set
// every statement is also logged at debug level.
type QueryHook struct {
	logger  *slog.Logger
	slow    time.Duration
	verbose bool
}

// NewQueryHook returns a hook for pg.DB.AddQueryHook. A zero slow threshold
// disables slow statement reporting.
func NewQueryHook(logger *slog.Logger, slow time.Duration, verbose bool) *QueryHook {
	return &QueryHook{
		logger:  logger,
		slow:    slow,
		verbose: verbose,
	}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, _ *pg.QueryEvent) (context.Context, error) {
	return ctx, nil
}

func (h *QueryHook) AfterQuery(ctx context.Context, event *pg.QueryEvent) error {
	elapsed := time.Since(event.StartTime)

	level, msg := slog.LevelDebug, "sql query executed"
	switch {
	case event.Err != nil && !errors.Is(event.Err, pg.ErrNoRows):
		level, msg = slog.LevelWarn, "sql query failed"
	case h.slow > 0 && elapsed >= h.slow:
		level, msg = slog.LevelWarn, "slow sql query"
	case !h.verbose:
		return nil
	}

	if !h.logger.Enabled(ctx, level) {
		return nil
	}

	query, err := event.FormattedQuery()
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to format query", "error", err)
		return nil
	}

	attrs := []any{"query", string(query), "duration", elapsed}
	if event.Result != nil {
		attrs = append(attrs, "rows", event.Result.RowsAffected())
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err)
	}

	h.logger.Log(ctx, level, msg, attrs...)

	return nil
}
