package impl

import (
	"context"
	"log/slog"

	"promptpush/internal/domain/entity"
	domainerrors "promptpush/internal/domain/errors"
	"promptpush/internal/domain/repository"
	"promptpush/internal/domain/service"
	"promptpush/internal/errors"
	"promptpush/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type endpointService struct {
	logger       *slog.Logger
	endpointRepo repository.PushEndpointRepository
	pushSvc      service.PushSender
}

// EndpointServiceParams holds dependencies for the endpoint service.
type EndpointServiceParams struct {
	fx.In

	Logger       *slog.Logger
	EndpointRepo repository.PushEndpointRepository `optional:"true"`
	PushSvc      service.PushSender                `optional:"true"`
}

// NewEndpointService creates the endpoint usecase instance.
func NewEndpointService(params EndpointServiceParams) usecase.EndpointUsecase {
	return &endpointService{
		logger:       params.Logger,
		endpointRepo: params.EndpointRepo,
		pushSvc:      params.PushSvc,
	}
}

// RegisterEndpoint stores a new push endpoint for the user. Re-registering an
// endpoint the user already has is harmless: fan-out is idempotent per
// endpoint and duplicates age out through gone-endpoint cleanup.
func (s *endpointService) RegisterEndpoint(ctx context.Context, userID uuid.UUID, info *usecase.EndpointInfo) (*entity.PushEndpoint, error) {
	if s.endpointRepo == nil {
		return nil, domainerrors.ErrStoreNotConfigured
	}

	endpoint := &entity.PushEndpoint{
		ID:       uuid.New(),
		UserID:   userID,
		Endpoint: info.Endpoint,
		P256dh:   info.P256dh,
		Auth:     info.Auth,
	}

	if err := s.endpointRepo.CreateEndpoint(ctx, endpoint); err != nil {
		return nil, errors.Wrap(err, "failed to create endpoint")
	}

	s.logger.Info("Push endpoint registered",
		slog.String("user_id", userID.String()),
		slog.String("endpoint_id", endpoint.ID.String()),
	)

	return endpoint, nil
}

// ListEndpoints returns all endpoints registered by the user.
func (s *endpointService) ListEndpoints(ctx context.Context, userID uuid.UUID) ([]*entity.PushEndpoint, error) {
	if s.endpointRepo == nil {
		return nil, domainerrors.ErrStoreNotConfigured
	}

	endpoints, err := s.endpointRepo.FindEndpointsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list endpoints")
	}

	return endpoints, nil
}

// RemoveEndpoint deletes one of the user's endpoints.
func (s *endpointService) RemoveEndpoint(ctx context.Context, userID, endpointID uuid.UUID) error {
	if s.endpointRepo == nil {
		return domainerrors.ErrStoreNotConfigured
	}

	if err := s.endpointRepo.DeleteUserEndpoint(ctx, userID, endpointID); err != nil {
		if errors.Is(err, repository.ErrEndpointNotFound) {
			return domainerrors.ErrEndpointNotFound
		}

		return errors.Wrap(err, "failed to delete endpoint")
	}

	return nil
}

// VAPIDPublicKey returns the key browsers need to create a subscription.
func (s *endpointService) VAPIDPublicKey() string {
	if s.pushSvc == nil {
		return ""
	}

	return s.pushSvc.PublicKey()
}
