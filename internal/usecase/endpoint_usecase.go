package usecase

import (
	"context"

	"promptpush/internal/domain/entity"

	"github.com/google/uuid"
)

// EndpointInfo carries the fields a browser submits when subscribing to push.
type EndpointInfo struct {
	Endpoint string `json:"endpoint"`
	P256dh   string `json:"p256dh"`
	Auth     string `json:"auth"`
}

// EndpointUsecase manages the push endpoints a user has registered.
type EndpointUsecase interface {
	// RegisterEndpoint stores a new push endpoint for the user.
	RegisterEndpoint(ctx context.Context, userID uuid.UUID, info *EndpointInfo) (*entity.PushEndpoint, error)

	// ListEndpoints returns all endpoints registered by the user.
	ListEndpoints(ctx context.Context, userID uuid.UUID) ([]*entity.PushEndpoint, error)

	// RemoveEndpoint deletes one of the user's endpoints.
	RemoveEndpoint(ctx context.Context, userID, endpointID uuid.UUID) error

	// VAPIDPublicKey returns the key browsers need to create a subscription.
	// Empty when push delivery is not configured.
	VAPIDPublicKey() string
}
