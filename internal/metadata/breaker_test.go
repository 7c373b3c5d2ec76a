// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package metadata

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

// stubProvider returns canned results and counts calls.
type stubProvider struct {
	calls atomic.Int32
	fn    func(id string) Result
}

func (s *stubProvider) Fetch(_ context.Context, id string) Result {
	s.calls.Add(1)
	return s.fn(id)
}

func failingWith(status int) *stubProvider {
	return &stubProvider{fn: func(id string) Result {
		return unavailable(id, &StatusError{StatusCode: status})
	}}
}

func TestBreakerOpensAfterFailures(t *testing.T) {
	t.Parallel()

	stub := failingWith(http.StatusServiceUnavailable)
	bp := NewBreakerProvider(stub, testConfig("http://unused").Breaker, testLogger)

	if bp.State() != gobreaker.StateClosed {
		t.Fatalf("initial State() = %v, want closed", bp.State())
	}

	// MinRequests is 4 with a 50% ratio: the fourth failure opens the circuit.
	for i := 0; i < 4; i++ {
		if res := bp.Fetch(context.Background(), "tt1"); res.Available() {
			t.Fatalf("Fetch() #%d available", i)
		}
	}
	if bp.State() != gobreaker.StateOpen {
		t.Fatalf("State() = %v after 4 failures, want open", bp.State())
	}

	res := bp.Fetch(context.Background(), "tt2")
	if res.Available() {
		t.Fatal("Fetch() available while open")
	}
	if !errors.Is(res.Err, gobreaker.ErrOpenState) || !errors.Is(res.Err, ErrUnavailable) {
		t.Errorf("Err = %v, want open state and unavailable", res.Err)
	}
	if res.ID != "tt2" {
		t.Errorf("ID = %q, want tt2", res.ID)
	}
	if got := stub.calls.Load(); got != 4 {
		t.Errorf("provider calls = %d, want 4 (rejected calls never reach it)", got)
	}
}

func TestBreakerIgnoresClientErrors(t *testing.T) {
	t.Parallel()

	bp := NewBreakerProvider(failingWith(http.StatusNotFound), testConfig("http://unused").Breaker, testLogger)
	for i := 0; i < 10; i++ {
		bp.Fetch(context.Background(), "tt-missing")
	}
	if bp.State() != gobreaker.StateClosed {
		t.Errorf("State() = %v after 404s, want closed", bp.State())
	}
}

func TestBreakerRecovers(t *testing.T) {
	t.Parallel()

	var (
		mu      sync.Mutex
		healthy bool
	)
	stub := &stubProvider{fn: func(id string) Result {
		mu.Lock()
		defer mu.Unlock()
		if healthy {
			return Result{ID: id, Movie: &Movie{ID: id, Title: "Back"}}
		}
		return unavailable(id, errors.New("connection refused"))
	}}

	cfg := testConfig("http://unused").Breaker
	cfg.Timeout = 20 * time.Millisecond
	bp := NewBreakerProvider(stub, cfg, testLogger)

	for i := 0; i < 4; i++ {
		bp.Fetch(context.Background(), "tt1")
	}
	if bp.State() != gobreaker.StateOpen {
		t.Fatalf("State() = %v, want open", bp.State())
	}

	mu.Lock()
	healthy = true
	mu.Unlock()
	time.Sleep(50 * time.Millisecond)

	res := bp.Fetch(context.Background(), "tt1")
	if !res.Available() {
		t.Fatalf("Fetch() after open timeout unavailable: %v", res.Err)
	}
	if bp.State() != gobreaker.StateClosed {
		t.Errorf("State() = %v after a successful probe, want closed", bp.State())
	}
}

func TestIsHealthy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, true},
		{"canceled", fmt.Errorf("%w: %w", ErrUnavailable, context.Canceled), true},
		{"not found", &StatusError{StatusCode: http.StatusNotFound}, true},
		{"rate limited", &StatusError{StatusCode: http.StatusTooManyRequests}, false},
		{"server error", &StatusError{StatusCode: http.StatusInternalServerError}, false},
		{"transport", errors.New("dial tcp: connection refused"), false},
	}
	for _, tt := range tests {
		if got := isHealthy(tt.err); got != tt.want {
			t.Errorf("isHealthy(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNewProvider(t *testing.T) {
	t.Parallel()

	cfg := testConfig("http://unused")
	if _, ok := NewProvider(cfg, testLogger).(*BreakerProvider); !ok {
		t.Error("NewProvider() with breaker enabled did not return a *BreakerProvider")
	}
	cfg.Breaker.Enabled = false
	if _, ok := NewProvider(cfg, testLogger).(*Client); !ok {
		t.Error("NewProvider() with breaker disabled did not return a *Client")
	}
	cfg.CacheSize = 16
	if _, ok := NewProvider(cfg, testLogger).(*CachingProvider); !ok {
		t.Error("NewProvider() with a cache size did not return a *CachingProvider")
	}
}
