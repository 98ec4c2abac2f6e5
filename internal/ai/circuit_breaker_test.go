package ai

import (
	"errors"
	"testing"
	"time"

	"resumelens/internal/config"
	appErrors "resumelens/internal/errors"

	"google.golang.org/genai"
)

func breakerConfig(enabled bool) *config.OperationAIConfig {
	return &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "gemini-2.0-flash",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          enabled,
			MaxRequests:      3,
			Interval:         60 * time.Second,
			Timeout:          60 * time.Second,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}
}

func testLogger(t *testing.T) *appErrors.Logger {
	t.Helper()
	logger, err := appErrors.New("error")
	if err != nil {
		t.Fatalf("creating logger: %v", err)
	}
	return logger
}

func TestNewCritiqueCircuitBreakerDisabled(t *testing.T) {
	cb := NewCritiqueCircuitBreaker(breakerConfig(false), nil)
	if cb != nil {
		t.Fatal("expected nil breaker when disabled")
	}

	// A nil breaker passes calls straight through
	called := false
	_, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		called = true
		return nil, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected function to run through nil breaker")
	}

	if !cb.IsHealthy() {
		t.Error("nil breaker should report healthy")
	}
	stats := cb.GetStats()
	if enabled, _ := stats["enabled"].(bool); enabled {
		t.Error("nil breaker stats should report enabled=false")
	}
}

func TestCritiqueCircuitBreakerTripsAfterFailures(t *testing.T) {
	cb := NewCritiqueCircuitBreaker(breakerConfig(true), testLogger(t))
	if cb == nil {
		t.Fatal("expected breaker when enabled")
	}

	failing := func() (*genai.GenerateContentResponse, error) {
		return nil, errors.New("backend down")
	}

	// MinRequests=3, FailureThreshold=0.6: three straight failures trip it
	for range 3 {
		if _, err := cb.Execute(failing); err == nil {
			t.Fatal("expected failure")
		}
	}

	if cb.IsHealthy() {
		t.Error("breaker should be open after consecutive failures")
	}

	if _, err := cb.Execute(failing); err == nil {
		t.Error("expected open breaker to reject calls")
	}

	stats := cb.GetStats()
	if enabled, _ := stats["enabled"].(bool); !enabled {
		t.Error("stats should report enabled=true")
	}
	if stats["state"] == "closed" {
		t.Errorf("unexpected state %v", stats["state"])
	}
}

func TestModelCircuitBreakerLenientTrip(t *testing.T) {
	cb := NewModelCircuitBreaker(breakerConfig(true), testLogger(t))
	if cb == nil {
		t.Fatal("expected breaker when enabled")
	}

	failing := func() (*genai.Model, error) {
		return nil, errors.New("lookup failed")
	}

	// Model breaker needs 5 requests at 80% failure before tripping
	for range 4 {
		_, _ = cb.ExecuteModel(failing)
	}
	if !cb.IsModelHealthy() {
		t.Error("breaker should still be closed after 4 failures")
	}

	_, _ = cb.ExecuteModel(failing)
	if cb.IsModelHealthy() {
		t.Error("breaker should be open after 5 failures")
	}
}
