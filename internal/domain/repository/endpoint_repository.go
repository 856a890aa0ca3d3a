// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"promptpush/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for push endpoint persistence.
var (
	// ErrEndpointNotFound is returned when a push endpoint is not found.
	ErrEndpointNotFound = errors.New("push endpoint not found")
)

// PushEndpointRepository defines the interface for push-endpoint database operations.
type PushEndpointRepository interface {
	// CreateEndpoint persists a new push endpoint for a user.
	CreateEndpoint(ctx context.Context, endpoint *entity.PushEndpoint) error

	// FindEndpointsByUser retrieves all push endpoints registered by a user.
	FindEndpointsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushEndpoint, error)

	// DeleteEndpoint removes an endpoint by its ID, regardless of owner.
	// Used by the dispatcher to clean up endpoints the push service reports gone.
	DeleteEndpoint(ctx context.Context, id uuid.UUID) error

	// DeleteUserEndpoint removes an endpoint by its ID if it belongs to the user.
	DeleteUserEndpoint(ctx context.Context, userID, id uuid.UUID) error
}
