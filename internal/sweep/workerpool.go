package sweep

import (
	"context"

	"go.uber.org/zap"
)

// WorkerPoolI runs the per-student fine tasks the daily sweep
// schedules. The pool bounds how many fines are applied concurrently
// so a large overdue batch cannot exhaust the database pool.
type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task fines a single overdue student. A failed task is logged and
// the sweep retries the student on the next run.
type Task func() error

type WorkerPool struct {
	pool chan Task
}

func NewWorkerPool(size int) *WorkerPool {
	pool := make(chan Task, size)
	wp := &WorkerPool{pool: pool}

	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("fine task failed", zap.Error(err))
		}
	}
}

// AddTask blocks until a worker frees up or the sweep context ends.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

func (wp *WorkerPool) Close() {
	select {
	case <-wp.pool:
	default:
		close(wp.pool)
	}
}
