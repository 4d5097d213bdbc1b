package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/storemart/internal/domain/model"
)

// StoreFacade exposes the subset of application functionality required by the reaper.
type StoreFacade interface {
	StaleOrders(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error)
	CancelStaleOrder(ctx context.Context, order *model.Order) error
}

// Reaper cancels orders that sat PENDING past their payment deadline.
// It polls in batches and fans cancellations out to a worker pool.
type Reaper struct {
	facade       StoreFacade
	pollInterval time.Duration
	pendingTTL   time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewReaper constructs the stale order reaper.
func NewReaper(facade StoreFacade, pollInterval, pendingTTL time.Duration, batchSize, workers int, logger *slog.Logger) *Reaper {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Reaper{
		facade:       facade,
		pollInterval: pollInterval,
		pendingTTL:   pendingTTL,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background processing.
func (r *Reaper) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx)
	}

	r.wg.Add(1)
	go r.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (r *Reaper) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Reaper) dispatch(ctx context.Context) {
	defer r.wg.Done()
	defer close(r.jobs)
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.fetchAndDispatch(ctx)
		}
	}
}

func (r *Reaper) fetchAndDispatch(ctx context.Context) {
	orders, err := r.facade.StaleOrders(ctx, r.pendingTTL, r.batchSize)
	if err != nil {
		r.logger.Error("fetch stale orders failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case r.jobs <- order:
		}
	}
}

func (r *Reaper) worker(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-r.jobs:
			if !ok {
				return
			}
			r.handleOrder(ctx, order)
		}
	}
}

func (r *Reaper) handleOrder(ctx context.Context, order model.Order) {
	if err := r.facade.CancelStaleOrder(ctx, &order); err != nil {
		r.logger.Error("cancel stale order failed",
			slog.String("number", order.Number),
			slog.String("error", err.Error()),
		)
		return
	}
	r.logger.Info("stale order cancelled",
		slog.String("number", order.Number),
		slog.Int64("order_id", order.ID),
	)
}
