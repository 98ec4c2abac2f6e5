package server

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllowWithinBurst(t *testing.T) {
	rl := NewRateLimiter(60, time.Minute, 3, nil)
	defer rl.Close()

	for i := 0; i < 3; i++ {
		if !rl.Allow("ip:10.0.0.1") {
			t.Fatalf("request %d should be allowed within burst", i+1)
		}
	}

	if rl.Allow("ip:10.0.0.1") {
		t.Error("request beyond burst capacity should be denied")
	}

	// A different key gets its own bucket
	if !rl.Allow("ip:10.0.0.2") {
		t.Error("request from a different key should be allowed")
	}
}

func TestRateLimiterStats(t *testing.T) {
	rl := NewRateLimiter(120, time.Minute, 5, nil)
	defer rl.Close()

	rl.Allow("api:key-one")
	rl.Allow("api:key-two")

	stats := rl.GetStats()
	if stats["active_limiters"] != 2 {
		t.Errorf("active_limiters = %v, want 2", stats["active_limiters"])
	}
	if stats["burst_capacity"] != 5 {
		t.Errorf("burst_capacity = %v, want 5", stats["burst_capacity"])
	}
	if stats["rate_per_minute"] != 120.0 {
		t.Errorf("rate_per_minute = %v, want 120", stats["rate_per_minute"])
	}
}

func TestRateLimiterCleanupEvictsIdleKeys(t *testing.T) {
	rl := NewRateLimiter(60, time.Minute, 1, nil)
	defer rl.Close()

	rl.Allow("ip:192.168.1.1")
	rl.lastSeen["ip:192.168.1.1"] = time.Now().Add(-time.Hour)

	rl.cleanup(30 * time.Minute)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if len(rl.limiters) != 0 {
		t.Errorf("expected idle limiter to be evicted, %d remain", len(rl.limiters))
	}
}

func TestGetRateLimitKey(t *testing.T) {
	tests := []struct {
		name     string
		header   map[string]string
		byAPIKey bool
		byIP     bool
		want     string
	}{
		{
			name:     "api key header preferred",
			header:   map[string]string{"X-API-Key": "secret123"},
			byAPIKey: true,
			byIP:     true,
			want:     "api:secret123",
		},
		{
			name:     "bearer token fallback",
			header:   map[string]string{"Authorization": "Bearer tok456"},
			byAPIKey: true,
			want:     "api:tok456",
		},
		{
			name: "ip fallback when no api key",
			byIP: true,
			want: "ip:192.0.2.1",
		},
		{
			name: "no limiting dimensions",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/analyze", nil)
			for k, v := range tt.header {
				r.Header.Set(k, v)
			}

			got := getRateLimitKey(r, tt.byAPIKey, tt.byIP)
			if got != tt.want {
				t.Errorf("getRateLimitKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		want   string
	}{
		{
			name:   "x-forwarded-for first entry",
			header: map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.1"},
			want:   "203.0.113.5",
		},
		{
			name:   "invalid forwarded entries skipped",
			header: map[string]string{"X-Forwarded-For": "not-an-ip, 203.0.113.9"},
			want:   "203.0.113.9",
		},
		{
			name:   "x-real-ip",
			header: map[string]string{"X-Real-IP": "198.51.100.7"},
			want:   "198.51.100.7",
		},
		{
			name: "remote addr fallback",
			want: "192.0.2.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/health", nil)
			for k, v := range tt.header {
				r.Header.Set(k, v)
			}

			if got := getClientIP(r); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
