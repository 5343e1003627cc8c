package core

import "context"

type optionKey string

const (
	processOptionKey optionKey = "process_options"
	workerOptionKey  optionKey = "worker_options"
)

type WorkerOptions struct {
	MaxCount int
}

type ProcessOptions struct {
	ProcessRemaining bool
}

// WithProcessOptions controls whether cancel handlers flush values still
// in flight when the context ends.
func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, processOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

// WithWorkerOptions caps the number of worker lines a stage may spin up.
func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, WorkerOptions{MaxCount: maxWorkers})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(workerOptionKey).(WorkerOptions)
	if ok {
		return options.MaxCount
	}
	return defaultMaxWorkers
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	options, ok := ctx.Value(processOptionKey).(ProcessOptions)
	if ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}
