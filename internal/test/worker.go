package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/polkiloo/storemart/internal/domain/model"
)

// ReaperFacadeStub mimics worker interactions with the store facade.
type ReaperFacadeStub struct {
	Batches        [][]model.Order
	StaleFn        func(context.Context, time.Duration, int) ([]model.Order, error)
	CancelFn       func(context.Context, *model.Order) error
	Cancelled      []model.Order
	mu             sync.Mutex
	staleCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *ReaperFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *ReaperFacadeStub) Unlock() { s.mu.Unlock() }

// StaleOrders returns batches from the configured queue.
func (s *ReaperFacadeStub) StaleOrders(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error) {
	if s.StaleFn != nil {
		return s.StaleFn(ctx, olderThan, limit)
	}
	call := atomic.AddInt32(&s.staleCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// CancelStaleOrder records cancellation requests.
func (s *ReaperFacadeStub) CancelStaleOrder(ctx context.Context, order *model.Order) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cancelled = append(s.Cancelled, *order)
	return nil
}
