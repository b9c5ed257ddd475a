package repos

import (
	"context"
	"log/slog"
	"time"

	"github.com/DataDog/go-sqllexer"
	"github.com/jackc/pgx/v5"
)

// tracer logs failed and slow statements. SQL is normalized before logging
// so values never end up in the logs.
type tracer struct{}

var normalizer = sqllexer.NewNormalizer()

type ctxKey int

const (
	_ ctxKey = iota
	traceQueryCtxKey
	traceBatchCtxKey
)

const slowQueryThreshold = 200 * time.Millisecond

type traceQueryData struct {
	startTime time.Time
	sql       string
}

func (tl *tracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	sql, _, err := normalizer.Normalize(data.SQL)
	if err != nil {
		slog.Warn("error normalizing SQL", "err", err)
		sql = ""
	}
	return context.WithValue(ctx, traceQueryCtxKey, &traceQueryData{
		startTime: time.Now(),
		sql:       sql,
	})
}

func (tl *tracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	queryData := ctx.Value(traceQueryCtxKey).(*traceQueryData)
	interval := time.Since(queryData.startTime)

	if data.Err != nil {
		slog.Error("query failed", "sql", queryData.sql, "err", data.Err, "elapsed", interval)
		return
	}
	if interval > slowQueryThreshold {
		slog.Warn("slow query", "sql", queryData.sql, "elapsed", interval,
			"command_tag", data.CommandTag.String())
	}
}

type traceBatchData struct {
	startTime time.Time
	sql       map[string]int
}

func (tl *tracer) TraceBatchStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceBatchStartData) context.Context {
	sql := make(map[string]int)
	for _, q := range data.Batch.QueuedQueries {
		s, _, err := normalizer.Normalize(q.SQL)
		if err != nil {
			slog.Warn("error normalizing SQL", "err", err)
			continue
		}
		sql[s] += 1
	}

	return context.WithValue(ctx, traceBatchCtxKey, &traceBatchData{
		startTime: time.Now(),
		sql:       sql,
	})
}

func (tl *tracer) TraceBatchQuery(_ context.Context, _ *pgx.Conn, data pgx.TraceBatchQueryData) {
	if data.Err != nil {
		slog.Error("batch query failed", "sql", data.SQL, "err", data.Err)
	}
}

func (tl *tracer) TraceBatchEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceBatchEndData) {
	batchData := ctx.Value(traceBatchCtxKey).(*traceBatchData)
	interval := time.Since(batchData.startTime)

	if data.Err != nil {
		slog.Error("batch close failed", "err", data.Err, "elapsed", interval)
		return
	}
	if interval > slowQueryThreshold {
		slog.Warn("slow batch", "sql", batchData.sql, "elapsed", interval)
	}
}
