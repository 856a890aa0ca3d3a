package repository

import (
	"context"

	"promptpush/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNoActiveSession is returned when a room has no active turn session.
var ErrNoActiveSession = errors.New("no active turn session")

// TurnRepository defines the interface for turn-session lookups.
type TurnRepository interface {
	// FindActiveSession retrieves the active turn session for a room.
	FindActiveSession(ctx context.Context, roomID uuid.UUID) (*entity.TurnSession, error)
}
