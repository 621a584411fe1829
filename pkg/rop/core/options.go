package core

import (
	"context"
	"runtime"
)

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
)

type MaxLimitOption struct {
	Value int
}
type WorkerOptions struct {
	MaxCount MaxLimitOption
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

// Workers resolves a requested worker count: an explicit positive value
// wins, then the context option, then the number of CPUs.
func Workers(ctx context.Context, requested int) int {
	if requested > 0 {
		return requested
	}
	return GetWorkerMaxCount(ctx, runtime.NumCPU())
}
