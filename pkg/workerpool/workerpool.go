package workerpool

//go:generate mockgen -source=workerpool.go -destination=mock_workerpool.go -package=workerpool

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrClosed    = errors.New("worker pool is closed")
	ErrQueueFull = errors.New("worker pool queue is full")
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	TryAddTask(task Task) error
	Close()
}

type Task func() error

// WorkerPool runs tasks on a fixed number of goroutines. Task errors are
// logged, not returned.
type WorkerPool struct {
	pool   chan Task
	done   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
	name   string
	closed sync.RWMutex
}

func New(name string, size int) *WorkerPool {
	return NewWithQueue(name, size, size)
}

// NewWithQueue starts size workers behind a queue of the given depth. The
// queue is never shallower than the number of workers.
func NewWithQueue(name string, size, queue int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	if queue < size {
		queue = size
	}
	wp := &WorkerPool{
		pool: make(chan Task, queue),
		done: make(chan struct{}),
		name: name,
	}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("task execution failed", zap.String("pool", wp.name), zap.Error(err))
		}
	}
}

// AddTask blocks until a worker slot frees up, ctx ends or the pool closes.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	wp.closed.RLock()
	defer wp.closed.RUnlock()

	select {
	case <-wp.done:
		return ErrClosed
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.done:
		return ErrClosed
	case wp.pool <- task:
		return nil
	}
}

// TryAddTask queues task without waiting. It fails with ErrQueueFull when
// every queue slot is taken.
func (wp *WorkerPool) TryAddTask(task Task) error {
	wp.closed.RLock()
	defer wp.closed.RUnlock()

	select {
	case <-wp.done:
		return ErrClosed
	default:
	}

	select {
	case wp.pool <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting tasks and waits for queued ones to finish. It is safe
// to call more than once.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		close(wp.done)
		wp.closed.Lock()
		close(wp.pool)
		wp.closed.Unlock()
	})
	wp.wg.Wait()
}
