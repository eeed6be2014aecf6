package worker

import (
	"context"
	"testing"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 1 {
		t.Errorf("expected default burst 1 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "gemini"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
	// A different provider draws from its own bucket.
	if err := limiter.Wait(ctx, "claude"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_PerProviderBuckets(t *testing.T) {
	// 1 rps, burst 1: the first request drains the bucket.
	limiter := NewLimiter(1, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "gemini"); err != nil {
		t.Errorf("first wait failed: %v", err)
	}
	if limiter.Allow("gemini") {
		t.Errorf("expected gemini bucket exhausted")
	}
	if !limiter.Allow("azure") {
		t.Errorf("expected azure bucket untouched")
	}
}

func TestLimiter_UnlimitedByDefault(t *testing.T) {
	limiter := NewLimiter(0, 0)

	for i := 0; i < 100; i++ {
		if !limiter.Allow("gemini") {
			t.Fatalf("expected unlimited limiter to always allow, denied at %d", i)
		}
	}
}

func TestLimiter_WaitRespectsContext(t *testing.T) {
	// Bucket drained and refilling at 0.001 rps: Wait must fail fast
	// once the context is cancelled instead of sleeping for ages.
	limiter := NewLimiter(0.001, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "gemini"); err != nil {
		t.Fatalf("first wait failed: %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := limiter.Wait(cancelled, "gemini"); err == nil {
		t.Errorf("expected error from cancelled context")
	}
}
