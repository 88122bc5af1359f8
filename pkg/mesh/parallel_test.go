package mesh

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNewPoolRejectsNoWorkers(t *testing.T) {
	if _, err := NewPool(0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewPool(-2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestForEachCoversEveryIndexOnce(t *testing.T) {
	pool, err := NewPool(4)
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}
	defer pool.Close()

	const n = 1000
	counts := make([]int32, n)
	pool.ForEach(n, func(i int) {
		atomic.AddInt32(&counts[i], 1)
	})

	for i, c := range counts {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
}

func TestForEachIsABarrier(t *testing.T) {
	pool, err := NewPool(3)
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}
	defer pool.Close()

	// Stage A writes; stage B must observe every write.
	const n = 500
	stageA := make([]int, n)
	pool.ForEach(n, func(i int) {
		stageA[i] = i * 2
	})

	pool.ForEach(n, func(i int) {
		if stageA[i] != i*2 {
			t.Errorf("stage B saw stale value at %d", i)
		}
	})
}

func TestForEachEmptyAndSingle(t *testing.T) {
	pool, err := NewPool(2)
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}
	defer pool.Close()

	pool.ForEach(0, func(i int) {
		t.Error("fn called for empty range")
	})

	ran := false
	pool.ForEach(1, func(i int) {
		ran = true
	})
	if !ran {
		t.Error("fn not called for single-element range")
	}
}

func TestForEachConcurrentCalls(t *testing.T) {
	pool, err := NewPool(4)
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}
	defer pool.Close()

	var total int64
	var wg sync.WaitGroup
	for g := 0; g < 3; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.ForEach(200, func(i int) {
				atomic.AddInt64(&total, 1)
			})
		}()
	}
	wg.Wait()

	if total != 600 {
		t.Errorf("total iterations = %d, want 600", total)
	}
}
