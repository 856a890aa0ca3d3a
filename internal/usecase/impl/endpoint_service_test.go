package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"promptpush/internal/domain/entity"
	domainerrors "promptpush/internal/domain/errors"
	"promptpush/internal/domain/repository"
	mockRepo "promptpush/internal/mocks/repository"
	mockSvc "promptpush/internal/mocks/service"
	"promptpush/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestEndpointService(t *testing.T) (
	usecase.EndpointUsecase,
	*mockRepo.MockPushEndpointRepository,
	*mockSvc.MockPushSender,
) {
	endpointRepo := mockRepo.NewMockPushEndpointRepository(t)
	pushSvc := mockSvc.NewMockPushSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewEndpointService(EndpointServiceParams{
		Logger:       logger,
		EndpointRepo: endpointRepo,
		PushSvc:      pushSvc,
	})

	return svc, endpointRepo, pushSvc
}

func TestEndpointService_RegisterEndpoint_Success(t *testing.T) {
	svc, endpointRepo, _ := createTestEndpointService(t)

	ctx := context.Background()
	userID := uuid.New()

	endpointRepo.EXPECT().CreateEndpoint(ctx, mock.MatchedBy(func(e *entity.PushEndpoint) bool {
		return e.UserID == userID &&
			e.Endpoint == "https://push.example.com/sub" &&
			e.P256dh == "p256dh-key" &&
			e.Auth == "auth-secret"
	})).Return(nil)

	endpoint, err := svc.RegisterEndpoint(ctx, userID, &usecase.EndpointInfo{
		Endpoint: "https://push.example.com/sub",
		P256dh:   "p256dh-key",
		Auth:     "auth-secret",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, endpoint.ID)
	assert.Equal(t, userID, endpoint.UserID)
}

func TestEndpointService_RegisterEndpoint_StoreNotConfigured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewEndpointService(EndpointServiceParams{Logger: logger})

	_, err := svc.RegisterEndpoint(context.Background(), uuid.New(), &usecase.EndpointInfo{})

	assert.ErrorIs(t, err, domainerrors.ErrStoreNotConfigured)
}

func TestEndpointService_ListEndpoints_Success(t *testing.T) {
	svc, endpointRepo, _ := createTestEndpointService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := []*entity.PushEndpoint{
		{ID: uuid.New(), UserID: userID},
		{ID: uuid.New(), UserID: userID},
	}

	endpointRepo.EXPECT().FindEndpointsByUser(ctx, userID).Return(stored, nil)

	endpoints, err := svc.ListEndpoints(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, endpoints, 2)
}

func TestEndpointService_RemoveEndpoint_Success(t *testing.T) {
	svc, endpointRepo, _ := createTestEndpointService(t)

	ctx := context.Background()
	userID := uuid.New()
	endpointID := uuid.New()

	endpointRepo.EXPECT().DeleteUserEndpoint(ctx, userID, endpointID).Return(nil)

	err := svc.RemoveEndpoint(ctx, userID, endpointID)

	require.NoError(t, err)
}

func TestEndpointService_RemoveEndpoint_NotFound(t *testing.T) {
	svc, endpointRepo, _ := createTestEndpointService(t)

	ctx := context.Background()
	userID := uuid.New()
	endpointID := uuid.New()

	endpointRepo.EXPECT().DeleteUserEndpoint(ctx, userID, endpointID).
		Return(repository.ErrEndpointNotFound)

	err := svc.RemoveEndpoint(ctx, userID, endpointID)

	assert.ErrorIs(t, err, domainerrors.ErrEndpointNotFound)
}

func TestEndpointService_VAPIDPublicKey(t *testing.T) {
	svc, _, pushSvc := createTestEndpointService(t)

	pushSvc.EXPECT().PublicKey().Return("BPublicKey")

	assert.Equal(t, "BPublicKey", svc.VAPIDPublicKey())
}

func TestEndpointService_VAPIDPublicKey_NotConfigured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewEndpointService(EndpointServiceParams{Logger: logger})

	assert.Empty(t, svc.VAPIDPublicKey())
}
