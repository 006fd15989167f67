package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/starbuy/shop/internal/domain/model"
)

// Sender delivers rendered notifications to their Telegram chats.
type Sender interface {
	SendOrderPlaced(ctx context.Context, order *model.Order, user *model.User) error
	SendOrderResolved(ctx context.Context, order *model.Order) error
	SendDepositSubmitted(ctx context.Context, deposit *model.Deposit, user *model.User) error
	SendDepositResolved(ctx context.Context, deposit *model.Deposit) error
}

type job struct {
	kind string
	send func(ctx context.Context) error
}

// Dispatcher fans notification jobs out to a bounded worker pool. A full
// queue drops the notification instead of blocking the checkout path.
type Dispatcher struct {
	sender     Sender
	workers    int
	retries    int
	retryDelay time.Duration
	logger     *slog.Logger

	jobs   chan job
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDispatcher constructs the notification worker pool.
func NewDispatcher(sender Sender, workers, queueSize, retries int, logger *slog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	if retries <= 0 {
		retries = 1
	}
	return &Dispatcher{
		sender:     sender,
		workers:    workers,
		retries:    retries,
		retryDelay: 500 * time.Millisecond,
		logger:     logger,
		jobs:       make(chan job, queueSize),
	}
}

// Start launches background delivery. Workers are detached from the
// startup context, which is only valid for the duration of boot; they
// run until Stop.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop waits for all workers to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// OrderPlaced queues the admin-chat notification for a new order.
func (d *Dispatcher) OrderPlaced(order *model.Order, user *model.User) {
	o, u := *order, *user
	d.enqueue(job{kind: "order placed", send: func(ctx context.Context) error {
		return d.sender.SendOrderPlaced(ctx, &o, &u)
	}})
}

// OrderResolved queues the buyer notification for a resolved order.
func (d *Dispatcher) OrderResolved(order *model.Order) {
	o := *order
	d.enqueue(job{kind: "order resolved", send: func(ctx context.Context) error {
		return d.sender.SendOrderResolved(ctx, &o)
	}})
}

// DepositSubmitted queues the admin-chat notification for a new deposit.
func (d *Dispatcher) DepositSubmitted(deposit *model.Deposit, user *model.User) {
	dep, u := *deposit, *user
	d.enqueue(job{kind: "deposit submitted", send: func(ctx context.Context) error {
		return d.sender.SendDepositSubmitted(ctx, &dep, &u)
	}})
}

// DepositResolved queues the depositor notification for a resolved deposit.
func (d *Dispatcher) DepositResolved(deposit *model.Deposit) {
	dep := *deposit
	d.enqueue(job{kind: "deposit resolved", send: func(ctx context.Context) error {
		return d.sender.SendDepositResolved(ctx, &dep)
	}})
}

func (d *Dispatcher) enqueue(j job) {
	select {
	case d.jobs <- j:
	default:
		d.logger.Warn("notification queue full, dropping", slog.String("kind", j.kind))
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-d.jobs:
			if !ok {
				return
			}
			d.deliver(ctx, j)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, j job) {
	var err error
	for attempt := 1; attempt <= d.retries; attempt++ {
		if err = j.send(ctx); err == nil {
			return
		}
		if attempt == d.retries {
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(d.retryDelay * time.Duration(attempt)):
		}
	}
	d.logger.Error("notification delivery failed",
		slog.String("kind", j.kind),
		slog.Int("attempts", d.retries),
		slog.String("error", err.Error()),
	)
}
