// Package genqueue carries admin-triggered month generation off the
// request path. The immediate variant runs jobs in-process; the valkey
// variant persists them so a restart cannot lose accepted work.
package genqueue

import "context"

// Job is one month-generation request.
type Job struct {
	RunID string `json:"runId"`
	Year  int    `json:"year"`
	Month int    `json:"month"`
}

// Handler executes jobs synchronously or in the background.
type Handler func(ctx context.Context, job Job)

// Queue accepts generation jobs.
type Queue interface {
	Enqueue(ctx context.Context, job Job) error
}

// HandlerQueue supports setting a handler for job delivery.
type HandlerQueue interface {
	Queue
	SetHandler(handler Handler)
}

// ImmediateQueue calls the handler on enqueue in a fresh goroutine.
type ImmediateQueue struct {
	handler Handler
}

// NewImmediateQueue constructs the queue.
func NewImmediateQueue(handler Handler) *ImmediateQueue {
	return &ImmediateQueue{handler: handler}
}

// SetHandler replaces the handler used for queued jobs.
func (q *ImmediateQueue) SetHandler(handler Handler) {
	q.handler = handler
}

// Enqueue invokes the handler asynchronously. The job is detached from
// the caller's cancellation: the admin endpoint responds 202 and its
// request context dies immediately, while the generation it accepted
// must keep running.
func (q *ImmediateQueue) Enqueue(ctx context.Context, job Job) error {
	if q.handler == nil {
		return nil
	}
	go q.handler(context.WithoutCancel(ctx), job)
	return nil
}

// Close implements the shutdown hook. Immediate jobs are
// fire-and-forget, so there is nothing to stop.
func (q *ImmediateQueue) Close() {}

var _ HandlerQueue = (*ImmediateQueue)(nil)
