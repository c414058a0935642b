package keymutex_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cashback-advisor/pkg/keymutex"
)

func TestLock_SerializesSameKey(t *testing.T) {
	km := keymutex.New()

	var active, maxActive int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := km.Lock(context.Background(), "s1")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			defer unlock()

			n := atomic.AddInt32(&active, 1)
			for {
				m := atomic.LoadInt32(&maxActive)
				if n <= m || atomic.CompareAndSwapInt32(&maxActive, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&active, -1)
		}()
	}
	wg.Wait()

	if maxActive != 1 {
		t.Errorf("expected at most one holder, saw %d", maxActive)
	}
	if km.Len() != 0 {
		t.Errorf("expected entries to be released, got %d", km.Len())
	}
}

func TestLock_DifferentKeysDoNotBlock(t *testing.T) {
	km := keymutex.New()

	unlockA, err := km.Lock(context.Background(), "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer unlockA()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	unlockB, err := km.Lock(ctx, "b")
	if err != nil {
		t.Fatalf("key b should not wait on key a: %v", err)
	}
	unlockB()
}

func TestLock_ContextCancelled(t *testing.T) {
	km := keymutex.New()

	unlock, _ := km.Lock(context.Background(), "s1")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := km.Lock(ctx, "s1"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}

	unlock()
	unlock() // second call is a no-op

	if km.Len() != 0 {
		t.Errorf("expected no entries after release, got %d", km.Len())
	}
}
