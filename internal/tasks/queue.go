package tasks

import (
	"context"
	"sync"
	"time"

	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/logger"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

// Task is a unit of background work. Run is retried with exponential backoff;
// OnFailure, when set, is called once after the last attempt failed.
type Task struct {
	ID        string
	Name      string
	Fields    map[string]interface{}
	Run       func(ctx context.Context) error
	OnFailure func(ctx context.Context, err error)
}

// Enqueuer accepts tasks for asynchronous execution
type Enqueuer interface {
	Enqueue(task Task) error
}

// Options configures a Queue
type Options struct {
	Workers         int
	QueueSize       int
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	TaskTimeout     time.Duration
}

// Queue runs tasks on a fixed set of workers. Enqueue never blocks: when the
// buffer is full the task is dropped and logged.
type Queue struct {
	opts   Options
	tasks  chan Task
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool

	// base is cancelled when Close gives up waiting, aborting retries.
	base   context.Context
	cancel context.CancelFunc
}

// NewQueue creates a queue and starts its workers
func NewQueue(opts Options) *Queue {
	if opts.Workers <= 0 {
		opts.Workers = 2
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 256
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.InitialInterval <= 0 {
		opts.InitialInterval = 500 * time.Millisecond
	}
	if opts.MaxInterval <= 0 {
		opts.MaxInterval = 30 * time.Second
	}
	if opts.TaskTimeout <= 0 {
		opts.TaskTimeout = 2 * time.Minute
	}

	base, cancel := context.WithCancel(context.Background())
	q := &Queue{
		opts:   opts,
		tasks:  make(chan Task, opts.QueueSize),
		base:   base,
		cancel: cancel,
	}
	for i := 0; i < opts.Workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	return q
}

// Enqueue schedules task for execution
func (q *Queue) Enqueue(task Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return apperrors.ErrQueueClosed
	}

	select {
	case q.tasks <- task:
		return nil
	default:
		logger.New().WithFields(taskFields(task)).Error("task queue full, dropping task")
		return apperrors.ErrQueueFull
	}
}

// Close stops accepting tasks and waits for queued ones to finish. If ctx
// ends first, in-flight retries are aborted and ctx.Err() is returned.
func (q *Queue) Close(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.tasks)
	}
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		q.cancel()
		return nil
	case <-ctx.Done():
		q.cancel()
		<-done
		return ctx.Err()
	}
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for task := range q.tasks {
		q.execute(task)
	}
}

func (q *Queue) execute(task Task) {
	log := logger.New().WithFields(taskFields(task))
	start := time.Now()

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = q.opts.InitialInterval
	eb.MaxInterval = q.opts.MaxInterval
	eb.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(q.opts.MaxRetries)), q.base)

	attempts := 0
	err := backoff.Retry(func() error {
		attempts++
		ctx, cancel := context.WithTimeout(q.base, q.opts.TaskTimeout)
		defer cancel()

		err := safeRun(ctx, task)
		if err != nil && attempts <= q.opts.MaxRetries {
			log.WithField("attempt", attempts).WithError(err).Warn("task attempt failed")
		}
		return err
	}, policy)

	log = log.WithFields(map[string]interface{}{
		"attempts":    attempts,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	if err == nil {
		log.Debug("task completed")
		return
	}

	log.WithError(err).Error("task failed")
	if task.OnFailure != nil {
		ctx, cancel := context.WithTimeout(context.Background(), q.opts.TaskTimeout)
		defer cancel()
		task.OnFailure(ctx, err)
	}
}

// safeRun turns a panicking task into a permanent failure.
func safeRun(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = backoff.Permanent(panicError{value: r})
		}
	}()
	return task.Run(ctx)
}

type panicError struct{ value interface{} }

func (p panicError) Error() string { return "task panicked: " + toString(p.value) }

func toString(v interface{}) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	if s, ok := v.(string); ok {
		return s
	}
	return "non-error panic value"
}

func taskFields(task Task) map[string]interface{} {
	fields := map[string]interface{}{
		"task":    task.Name,
		"task_id": task.ID,
	}
	for k, v := range task.Fields {
		fields[k] = v
	}
	return fields
}
