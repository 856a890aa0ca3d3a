package service

import (
	"context"

	"github.com/google/uuid"
)

// RateLimitDecision is the outcome of asking the rate limiter about one
// (user, room) pair. PendingCount is the number of notifications coalesced
// since the last one actually sent; it is only meaningful when ShouldSend
// is true.
type RateLimitDecision struct {
	ShouldSend   bool
	PendingCount int
}

// RateLimiter decides, per recipient and room, whether a notification should
// go out now or be coalesced into the pending count. Asking is a side effect:
// the underlying counter is atomically reset (on send) or incremented (on
// coalesce) by the call itself, so concurrent dispatch invocations cannot
// double-send.
type RateLimiter interface {
	Reserve(ctx context.Context, userID, roomID uuid.UUID) (RateLimitDecision, error)
}
