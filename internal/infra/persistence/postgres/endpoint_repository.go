package postgres

import (
	"context"

	"promptpush/internal/domain/entity"
	domainerrors "promptpush/internal/domain/errors"
	"promptpush/internal/domain/repository"
	"promptpush/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pushEndpointRepository implements the repository.PushEndpointRepository interface.
type pushEndpointRepository struct {
	db *gorm.DB
}

// NewPushEndpointRepository is the constructor for pushEndpointRepository.
// A nil db yields a nil repository, signalling the not-configured state.
func NewPushEndpointRepository(db *gorm.DB) repository.PushEndpointRepository {
	if db == nil {
		return nil
	}

	return &pushEndpointRepository{
		db: db,
	}
}

// CreateEndpoint persists a new push endpoint for a user.
func (repo *pushEndpointRepository) CreateEndpoint(ctx context.Context, endpoint *entity.PushEndpoint) error {
	endpointM := fromEndpointDomain(endpoint)

	if err := repo.db.WithContext(ctx).Create(endpointM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEndpointCreationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEndpointCreationFailed.WrapMessage("missing required endpoint information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create endpoint")
	}

	// Update the entity with generated values
	endpoint.ID = endpointM.ID
	endpoint.CreatedAt = endpointM.CreatedAt
	endpoint.UpdatedAt = endpointM.UpdatedAt

	return nil
}

// FindEndpointsByUser retrieves all push endpoints registered by a user.
func (repo *pushEndpointRepository) FindEndpointsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushEndpoint, error) {
	var endpointModels []*model.PushEndpointModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&endpointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find endpoints by user")
	}

	endpoints := make([]*entity.PushEndpoint, 0, len(endpointModels))
	for _, endpointM := range endpointModels {
		endpoints = append(endpoints, toEndpointDomain(endpointM))
	}

	return endpoints, nil
}

// DeleteEndpoint removes an endpoint by its ID, regardless of owner.
func (repo *pushEndpointRepository) DeleteEndpoint(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PushEndpointModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete endpoint")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEndpointNotFound
	}

	return nil
}

// DeleteUserEndpoint removes an endpoint by its ID if it belongs to the user.
func (repo *pushEndpointRepository) DeleteUserEndpoint(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.PushEndpointModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete endpoint")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEndpointNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toEndpointDomain converts a GORM PushEndpointModel to a domain PushEndpoint entity.
func toEndpointDomain(data *model.PushEndpointModel) *entity.PushEndpoint {
	if data == nil {
		return nil
	}

	return &entity.PushEndpoint{
		ID:        data.ID,
		UserID:    data.UserID,
		Endpoint:  data.Endpoint,
		P256dh:    data.P256dh,
		Auth:      data.Auth,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromEndpointDomain converts a domain PushEndpoint entity to a GORM PushEndpointModel.
func fromEndpointDomain(data *entity.PushEndpoint) *model.PushEndpointModel {
	if data == nil {
		return nil
	}

	return &model.PushEndpointModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Endpoint:  data.Endpoint,
		P256dh:    data.P256dh,
		Auth:      data.Auth,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
