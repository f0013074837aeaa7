package middleware

import (
	"math"
	"testing"

	"golang.org/x/time/rate"
)

func TestNewSchoolRateLimiterRejectsZeroRate(t *testing.T) {
	rl := NewSchoolRateLimiter(RateLimiterConfig{
		RequestsPerSecond: 0,
		BurstSize:         0,
	})

	def := DefaultRateLimiterConfig()
	if rl.rate != rate.Limit(def.RequestsPerSecond) {
		t.Errorf("rate = %v, want default %v", rl.rate, def.RequestsPerSecond)
	}
	if rl.burst != def.BurstSize {
		t.Errorf("burst = %d, want default %d", rl.burst, def.BurstSize)
	}
	if rl.cleanupTick != def.CleanupInterval {
		t.Errorf("cleanup interval = %v, want default %v", rl.cleanupTick, def.CleanupInterval)
	}
	if rl.entryTTL != def.EntryTTL {
		t.Errorf("entry TTL = %v, want default %v", rl.entryTTL, def.EntryTTL)
	}
}

func TestNewSchoolRateLimiterRejectsNonFiniteRate(t *testing.T) {
	def := DefaultRateLimiterConfig()

	for _, rps := range []float64{math.Inf(1), math.NaN(), -5} {
		rl := NewSchoolRateLimiter(RateLimiterConfig{
			RequestsPerSecond: rps,
			BurstSize:         20,
			CleanupInterval:   def.CleanupInterval,
			EntryTTL:          def.EntryTTL,
		})
		if rl.rate != rate.Limit(def.RequestsPerSecond) {
			t.Errorf("rate for input %v = %v, want default %v", rps, rl.rate, def.RequestsPerSecond)
		}
	}
}

func TestNewSchoolRateLimiterKeepsValidConfig(t *testing.T) {
	def := DefaultRateLimiterConfig()
	rl := NewSchoolRateLimiter(RateLimiterConfig{
		RequestsPerSecond: 2.5,
		BurstSize:         5,
		CleanupInterval:   def.CleanupInterval,
		EntryTTL:          def.EntryTTL,
	})

	if rl.rate != rate.Limit(2.5) {
		t.Errorf("rate = %v, want 2.5", rl.rate)
	}
	if rl.burst != 5 {
		t.Errorf("burst = %d, want 5", rl.burst)
	}
}
