package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/knoguchi/assistant/internal/metrics"
)

const (
	// popTimeout bounds each blocking pop so workers notice shutdown.
	popTimeout = 5 * time.Second

	backoffBase = 2 * time.Second
	backoffCap  = 60 * time.Second
)

// Queue is a Redis-list-backed task queue. Tasks are moved to a processing
// list while a worker holds them and removed only once their outcome is
// durable, so a crashed worker leaves its task recoverable.
type Queue struct {
	client     *redis.Client
	queue      string
	processing string
	maxRetries int
	backoff    func(attempt int) time.Duration
	logger     *slog.Logger
}

// NewQueue connects to Redis and returns a queue over the named list.
// maxRetries is the number of retries after the first attempt.
func NewQueue(ctx context.Context, redisURL, queueName string, maxRetries int, logger *slog.Logger) (*Queue, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	if maxRetries <= 0 {
		maxRetries = 3
	}

	return &Queue{
		client:     client,
		queue:      queueName,
		processing: queueName + ":processing",
		maxRetries: maxRetries,
		backoff:    backoffDelay,
		logger:     logger,
	}, nil
}

// Enqueue adds a task to the queue and returns its task id. A fresh id and
// attempt counter are assigned when absent.
func (q *Queue) Enqueue(ctx context.Context, task DocumentTask) (string, error) {
	if task.TaskID == "" {
		task.TaskID = uuid.NewString()
	}
	if task.Attempt <= 0 {
		task.Attempt = 1
	}

	raw, err := json.Marshal(task)
	if err != nil {
		return "", fmt.Errorf("failed to marshal task: %w", err)
	}

	if err := q.client.LPush(ctx, q.queue, raw).Err(); err != nil {
		return "", fmt.Errorf("failed to enqueue task: %w", err)
	}

	return task.TaskID, nil
}

// Consume runs concurrency workers until the context is cancelled. Each
// worker holds at most one task at a time.
func (q *Queue) Consume(ctx context.Context, concurrency int, handler Handler) error {
	if concurrency <= 0 {
		concurrency = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			q.worker(ctx, worker, handler)
		}(i)
	}
	wg.Wait()

	return ctx.Err()
}

func (q *Queue) worker(ctx context.Context, worker int, handler Handler) {
	logger := q.logger.With("worker", worker)

	for {
		if ctx.Err() != nil {
			return
		}

		raw, err := q.client.BLMove(ctx, q.queue, q.processing, "RIGHT", "LEFT", popTimeout).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			logger.Error("failed to pop task", "error", err)
			q.sleep(ctx, time.Second)
			continue
		}

		var task DocumentTask
		if err := json.Unmarshal([]byte(raw), &task); err != nil {
			logger.Error("dropping malformed task", "error", err)
			q.ack(ctx, raw)
			continue
		}

		lastAttempt := q.isLastAttempt(task.Attempt)
		err = handler(ctx, task, lastAttempt)
		q.settle(ctx, logger, raw, task, lastAttempt, err)
	}
}

// isLastAttempt reports whether a failure at the given attempt will not be
// retried. The first attempt is followed by up to maxRetries retries.
func (q *Queue) isLastAttempt(attempt int) bool {
	return attempt > q.maxRetries
}

// settle acks or retries a finished task. The task stays in the processing
// list until its outcome is durable: a terminal result, or the retry copy
// safely back on the queue. A worker crash before that point leaves the
// task recoverable from the processing list.
func (q *Queue) settle(ctx context.Context, logger *slog.Logger, raw string, task DocumentTask, lastAttempt bool, handlerErr error) {
	if handlerErr == nil {
		q.ack(ctx, raw)
		return
	}

	if IsPermanent(handlerErr) || lastAttempt {
		logger.Error("task failed permanently",
			"task_id", task.TaskID, "document_id", task.DocumentID,
			"attempt", task.Attempt, "error", handlerErr)
		q.ack(ctx, raw)
		return
	}

	logger.Warn("task failed, retrying",
		"task_id", task.TaskID, "document_id", task.DocumentID,
		"attempt", task.Attempt, "error", handlerErr)
	metrics.TaskRetries.Inc()

	q.sleep(ctx, q.backoff(task.Attempt))

	task.Attempt++
	if _, err := q.Enqueue(context.WithoutCancel(ctx), task); err != nil {
		logger.Error("failed to re-enqueue task, leaving it in the processing list",
			"task_id", task.TaskID, "error", err)
		return
	}
	q.ack(ctx, raw)
}

// ack removes the task from the processing list once handled.
func (q *Queue) ack(ctx context.Context, raw string) {
	if err := q.client.LRem(context.WithoutCancel(ctx), q.processing, 1, raw).Err(); err != nil {
		q.logger.Error("failed to ack task", "error", err)
	}
}

func (q *Queue) sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// backoffDelay doubles per attempt, capped at backoffCap.
func backoffDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := backoffBase << (attempt - 1)
	if d > backoffCap || d <= 0 {
		return backoffCap
	}
	return d
}

// Ping verifies the Redis connection is alive.
func (q *Queue) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (q *Queue) Close() error {
	return q.client.Close()
}
