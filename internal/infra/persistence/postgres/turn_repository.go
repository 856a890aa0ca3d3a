package postgres

import (
	"context"

	"promptpush/internal/domain/entity"
	"promptpush/internal/domain/repository"
	"promptpush/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// turnRepository implements the repository.TurnRepository interface.
type turnRepository struct {
	db *gorm.DB
}

// NewTurnRepository is the constructor for turnRepository.
func NewTurnRepository(db *gorm.DB) repository.TurnRepository {
	if db == nil {
		return nil
	}

	return &turnRepository{
		db: db,
	}
}

// FindActiveSession retrieves the active turn session for a room.
func (repo *turnRepository) FindActiveSession(ctx context.Context, roomID uuid.UUID) (*entity.TurnSession, error) {
	var sessionM model.TurnSessionModel

	if err := repo.db.WithContext(ctx).
		Where("room_id = ? AND is_active = ?", roomID, true).
		Order("updated_at DESC").
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoActiveSession
		}

		return nil, errors.Wrap(err, "failed to find active turn session")
	}

	session := &entity.TurnSession{
		ID:        sessionM.ID,
		RoomID:    sessionM.RoomID,
		IsActive:  sessionM.IsActive,
		UpdatedAt: sessionM.UpdatedAt,
	}
	if sessionM.CurrentUserID != nil {
		session.CurrentUserID = *sessionM.CurrentUserID
	}

	return session, nil
}
