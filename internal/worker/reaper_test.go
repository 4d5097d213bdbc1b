package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/polkiloo/storemart/internal/domain/model"
	testhelpers "github.com/polkiloo/storemart/internal/test"
)

func TestNewReaperDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	reaper := NewReaper(&testhelpers.ReaperFacadeStub{}, time.Second, time.Hour, 0, 0, logger)
	if reaper.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", reaper.batchSize)
	}
	if reaper.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", reaper.workers)
	}
}

func TestReaperCancelsStaleOrders(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.ReaperFacadeStub{Batches: [][]model.Order{{{ID: 1, Number: "a1", Status: model.OrderStatusPending}}}}
	reaper := NewReaper(facade, 10*time.Millisecond, time.Hour, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reaper.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		done := len(facade.Cancelled) > 0
		facade.Unlock()
		if done {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for stale order cancellation")
		case <-time.After(10 * time.Millisecond):
		}
	}

	reaper.Stop()
	facade.Lock()
	defer facade.Unlock()
	if facade.Cancelled[0].ID != 1 {
		t.Fatalf("expected order 1 cancelled, got %+v", facade.Cancelled)
	}
}

func TestReaperKeepsPollingAfterCancelFailure(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	attempts := int32(0)
	facade := &testhelpers.ReaperFacadeStub{
		Batches: [][]model.Order{
			{{ID: 1, Number: "a1", Status: model.OrderStatusPending}},
			{{ID: 2, Number: "a2", Status: model.OrderStatusPending}},
		},
	}
	facade.CancelFn = func(ctx context.Context, order *model.Order) error {
		if atomic.AddInt32(&attempts, 1) == 1 {
			return errors.New("storage unavailable")
		}
		facade.Lock()
		defer facade.Unlock()
		facade.Cancelled = append(facade.Cancelled, *order)
		return nil
	}

	reaper := NewReaper(facade, 5*time.Millisecond, time.Hour, 1, 1, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reaper.Start(ctx)

	deadline := time.After(time.Second)
	for {
		facade.Lock()
		if len(facade.Cancelled) > 0 {
			facade.Unlock()
			break
		}
		facade.Unlock()
		select {
		case <-deadline:
			t.Fatal("timeout waiting for second cancellation attempt")
		case <-time.After(10 * time.Millisecond):
		}
	}
	reaper.Stop()
}
