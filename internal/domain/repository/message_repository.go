package repository

import (
	"context"

	"promptpush/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMessageNotFound is returned when a message is not found.
// The dispatcher treats this as "nothing to notify": the message may have
// been deleted between the trigger firing and dispatch running.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines the interface for message lookups.
type MessageRepository interface {
	// FindMessageByID retrieves a message by its unique ID.
	FindMessageByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)
}
