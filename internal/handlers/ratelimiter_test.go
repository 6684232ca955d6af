package handlers

import (
	"testing"
	"time"
)

func TestRateLimiterBurst(t *testing.T) {
	rl := NewRateLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("request %d rejected within burst", i+1)
		}
	}
	if rl.Allow("1.2.3.4") {
		t.Error("request allowed after burst exhausted")
	}
}

func TestRateLimiterPerIP(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	if !rl.Allow("1.1.1.1") {
		t.Fatal("first IP rejected on first request")
	}
	if rl.Allow("1.1.1.1") {
		t.Error("first IP allowed past its budget")
	}
	if !rl.Allow("2.2.2.2") {
		t.Error("second IP throttled by first IP's usage")
	}
}

func TestRateLimiterRefill(t *testing.T) {
	rl := NewRateLimiter(1000, 1)

	if !rl.Allow("3.3.3.3") {
		t.Fatal("first request rejected")
	}

	// At 1000 tokens/sec the bucket refills within a few milliseconds.
	time.Sleep(10 * time.Millisecond)
	if !rl.Allow("3.3.3.3") {
		t.Error("bucket never refilled")
	}
}
