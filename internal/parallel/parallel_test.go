package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4}

	var counter int64
	seen := make([]bool, 100)

	err := For(context.Background(), len(seen), func(_ context.Context, i int) error {
		atomic.AddInt64(&counter, 1)
		seen[i] = true
		return nil
	}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
	for i, ok := range seen {
		if !ok {
			t.Errorf("Missing job %d", i)
		}
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var order []int
	err := For(context.Background(), 5, func(_ context.Context, i int) error {
		order = append(order, i)
		return nil
	}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, got := range order {
		if got != i {
			t.Errorf("Expected job %d at position %d, got %d", i, i, got)
		}
	}
}

func TestFor_Limit(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 2}

	var inFlight, peak int64
	err := For(context.Background(), 20, func(_ context.Context, _ int) error {
		cur := atomic.AddInt64(&inFlight, 1)
		for {
			old := atomic.LoadInt64(&peak)
			if cur <= old || atomic.CompareAndSwapInt64(&peak, old, cur) {
				break
			}
		}
		atomic.AddInt64(&inFlight, -1)
		return nil
	}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if peak > 2 {
		t.Errorf("Expected at most 2 jobs in flight, saw %d", peak)
	}
}

func TestFor_Error(t *testing.T) {
	boom := errors.New("boom")

	for _, cfg := range []Config{{Enabled: false}, {Enabled: true, NumWorkers: 3}} {
		err := For(context.Background(), 10, func(_ context.Context, i int) error {
			if i == 4 {
				return boom
			}
			return nil
		}, cfg)
		if !errors.Is(err, boom) {
			t.Errorf("Expected boom with %+v, got %v", cfg, err)
		}
	}
}

func TestFor_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran int64
	err := For(ctx, 10, func(_ context.Context, _ int) error {
		atomic.AddInt64(&ran, 1)
		return nil
	}, Config{Enabled: true, NumWorkers: 2})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if ran != 0 {
		t.Errorf("Expected no jobs to run, got %d", ran)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.NumWorkers < 1 {
		t.Errorf("Expected at least one worker, got %d", cfg.NumWorkers)
	}
}
