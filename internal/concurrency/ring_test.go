package concurrency

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestRingEnqueueDequeue(t *testing.T) {
	r := NewRing[int](4)
	for i := 0; i < 4; i++ {
		if !r.Enqueue(i) {
			t.Fatalf("enqueue %d failed on empty ring", i)
		}
	}
	if r.Enqueue(99) {
		t.Error("enqueue succeeded on full ring")
	}
	if r.Len() != 4 {
		t.Errorf("Len = %d, want 4", r.Len())
	}
	for i := 0; i < 4; i++ {
		v, ok := r.Dequeue()
		if !ok || v != i {
			t.Fatalf("dequeue = (%d, %v), want (%d, true)", v, ok, i)
		}
	}
	if _, ok := r.Dequeue(); ok {
		t.Error("dequeue succeeded on empty ring")
	}
}

func TestRingRoundsCapacityToPowerOfTwo(t *testing.T) {
	r := NewRing[int](5)
	if r.Cap() != 8 {
		t.Errorf("Cap = %d, want 8", r.Cap())
	}
	r = NewRing[int](0)
	if r.Cap() != 2 {
		t.Errorf("Cap = %d, want 2", r.Cap())
	}
}

func TestRingConcurrentProducersConsumers(t *testing.T) {
	const (
		producers = 4
		perProd   = 1000
	)
	r := NewRing[int](1024)
	var got atomic.Int64

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProd; i++ {
				for !r.Enqueue(1) {
				}
			}
		}()
	}
	done := make(chan struct{})
	go func() {
		for got.Load() < producers*perProd {
			if v, ok := r.Dequeue(); ok {
				got.Add(int64(v))
			}
		}
		close(done)
	}()
	wg.Wait()
	<-done
	if got.Load() != producers*perProd {
		t.Errorf("consumed %d, want %d", got.Load(), producers*perProd)
	}
}
