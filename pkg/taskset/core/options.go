package core

import (
	"context"
	"log/slog"
	"time"
)

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
	PollOptionKey   OptionKey = "poll_options"
	LoggerOptionKey OptionKey = "logger_options"
)

const (
	DefaultMaxWorkers   = 3
	DefaultPollInterval = 100 * time.Millisecond
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type PollOptions struct {
	Interval time.Duration
}

type LoggerOptions struct {
	Logger *slog.Logger
}

var discardLogger = slog.New(slog.DiscardHandler)

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func WithPollOptions(ctx context.Context, interval time.Duration) context.Context {
	return context.WithValue(ctx, PollOptionKey, PollOptions{Interval: interval})
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

// GetWorkerMaxCount returns the worker limit stored on ctx. Missing or
// non-positive values fall back to defaultMaxWorkers.
func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func GetPollInterval(ctx context.Context, defaultInterval time.Duration) time.Duration {
	options, ok := ctx.Value(PollOptionKey).(PollOptions)
	if ok && options.Interval > 0 {
		return options.Interval
	}
	return defaultInterval
}

// GetLogger never returns nil; without a logger on ctx it discards everything.
func GetLogger(ctx context.Context) *slog.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return discardLogger
}
