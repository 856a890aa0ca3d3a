// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// DispatchResult is the aggregate outcome of one dispatch invocation.
// For message dispatch, Sent counts recipients with at least one successful
// endpoint delivery and Total counts eligible recipients. For turn dispatch,
// both counts are per endpoint of the single on-turn user. Message carries
// the informational reason when the invocation short-circuited.
type DispatchResult struct {
	Sent    int    `json:"sent"`
	Total   int    `json:"total"`
	Message string `json:"message,omitempty"`
}

// DispatchUsecase orchestrates push-notification dispatch for chat triggers.
type DispatchUsecase interface {
	// DispatchMessage notifies eligible room members that a message was
	// posted. It never fails because of an individual endpoint; only
	// store-level failures surface as errors.
	DispatchMessage(ctx context.Context, roomID, messageID, senderID uuid.UUID) (*DispatchResult, error)

	// DispatchTurn notifies the user whose turn it now is. Turn
	// notifications bypass the rate limiter: gameplay pacing already
	// bounds their frequency.
	DispatchTurn(ctx context.Context, roomID uuid.UUID) (*DispatchResult, error)
}
