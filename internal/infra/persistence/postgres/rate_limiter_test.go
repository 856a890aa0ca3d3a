package postgres

import (
	"testing"
	"time"

	"promptpush/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRateLimiter_Decide(t *testing.T) {
	limiter := &rateLimiter{minInterval: time.Minute, now: time.Now}
	now := time.Now()

	tests := []struct {
		name       string
		lastSentAt time.Time
		pending    int
		expected   service.RateLimitDecision
	}{
		{
			name:       "interval elapsed sends and surfaces suppressed count",
			lastSentAt: now.Add(-2 * time.Minute),
			pending:    3,
			expected:   service.RateLimitDecision{ShouldSend: true, PendingCount: 3},
		},
		{
			name:       "exact interval boundary sends",
			lastSentAt: now.Add(-time.Minute),
			pending:    0,
			expected:   service.RateLimitDecision{ShouldSend: true, PendingCount: 0},
		},
		{
			name:       "within interval coalesces",
			lastSentAt: now.Add(-10 * time.Second),
			pending:    2,
			expected:   service.RateLimitDecision{ShouldSend: false, PendingCount: 3},
		},
		{
			// A reservation row just written by a concurrent dispatch that won
			// the insert race: the loser coalesces behind it instead of
			// sending a second notification.
			name:       "row created by concurrent winner coalesces",
			lastSentAt: now,
			pending:    0,
			expected:   service.RateLimitDecision{ShouldSend: false, PendingCount: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, limiter.decide(tt.lastSentAt, tt.pending, now))
		})
	}
}

func TestNewRateLimiter(t *testing.T) {
	t.Run("nil db yields nil limiter", func(t *testing.T) {
		assert.Nil(t, NewRateLimiter(nil, time.Minute))
	})

	t.Run("non-positive interval falls back to default", func(t *testing.T) {
		limiter, ok := NewRateLimiter(&gorm.DB{}, 0).(*rateLimiter)
		require.True(t, ok)
		assert.Equal(t, defaultMinInterval, limiter.minInterval)
	})
}
