// Package log provides context-tagged structured logging on top of log/slog.
//
// Tags added to a context with AddTags are attached to every record logged
// with that context or any context derived from it. The driver uses this to
// label all output for a trial with the trial's name.
//
// Each level function takes a message and an even-length list
// of key-value pairs.
package log

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"
)

type contextKey int

const logTagKey contextKey = iota

// AddTags returns a context carrying the given key-value pairs
// in addition to any tags already present in ctx.
func AddTags(ctx context.Context, kvs ...any) context.Context {
	if len(kvs)%2 != 0 {
		panic("log: AddTags requires an even number of arguments")
	}
	tags := fromContext(ctx)
	merged := make([]any, 0, len(tags)+len(kvs))
	merged = append(merged, tags...)
	merged = append(merged, kvs...)
	return context.WithValue(ctx, logTagKey, merged)
}

func fromContext(ctx context.Context) []any {
	tags, _ := ctx.Value(logTagKey).([]any)
	return tags
}

// Setup installs a text handler writing to w as the default slog
// logger. Debug records are included only when verbose is set.
func Setup(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}

func emit(ctx context.Context, level slog.Level, msg string, keyvals []any) {
	handler := slog.Default().Handler()
	if !handler.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	addPairs(&r, keyvals)
	addPairs(&r, fromContext(ctx))
	if err := handler.Handle(ctx, r); err != nil {
		slog.ErrorContext(ctx, "error handling log record", "error", err)
	}
}

func addPairs(r *slog.Record, kvs []any) {
	for i := 0; i+1 < len(kvs); i += 2 {
		key, ok := kvs[i].(string)
		if !ok {
			panic("log: invalid log key")
		}
		r.Add(key, kvs[i+1])
	}
}

// Infow logs a message with key-value pairs at info level.
func Infow(ctx context.Context, msg string, keyvals ...any) {
	emit(ctx, slog.LevelInfo, msg, keyvals)
}

// Errorw logs a message with key-value pairs at error level.
func Errorw(ctx context.Context, msg string, keyvals ...any) {
	emit(ctx, slog.LevelError, msg, keyvals)
}

// Debugw logs a message with key-value pairs at debug level.
func Debugw(ctx context.Context, msg string, keyvals ...any) {
	emit(ctx, slog.LevelDebug, msg, keyvals)
}

// Warnw logs a message with key-value pairs at warn level.
func Warnw(ctx context.Context, msg string, keyvals ...any) {
	emit(ctx, slog.LevelWarn, msg, keyvals)
}
