package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestUnlimited_NeverBlocks(t *testing.T) {
	l := Unlimited()
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 100; i++ {
		if err := l.Wait(ctx); err != nil {
			t.Fatalf("Wait() returned unexpected error: %v", err)
		}
	}
	if d := time.Since(start); d > 100*time.Millisecond {
		t.Errorf("100 waits took %v on an unlimited limiter", d)
	}
}

func TestLimiter_Allow(t *testing.T) {
	l := New(1, 2)

	if !l.Allow() || !l.Allow() {
		t.Fatal("Allow() = false within burst, want true")
	}
	if l.Allow() {
		t.Error("Allow() = true after burst exhausted, want false")
	}
}

func TestLimiter_WaitHonoursContext(t *testing.T) {
	l := New(0.001, 1)
	l.Allow()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx); err == nil {
		t.Error("Wait() expected error when the context expires first, got nil")
	}
}

func TestLimiter_NilIsUnlimited(t *testing.T) {
	var l *Limiter
	if err := l.Wait(context.Background()); err != nil {
		t.Errorf("nil Wait() returned error: %v", err)
	}
	if !l.Allow() {
		t.Error("nil Allow() = false, want true")
	}
}
