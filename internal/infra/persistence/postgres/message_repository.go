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

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	if db == nil {
		return nil
	}

	return &messageRepository{
		db: db,
	}
}

// FindMessageByID retrieves a message by its unique ID.
func (repo *messageRepository) FindMessageByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message by ID")
	}

	return &entity.Message{
		ID:        messageM.ID,
		RoomID:    messageM.RoomID,
		SenderID:  messageM.SenderID,
		Type:      messageM.Type,
		Content:   messageM.Content,
		CreatedAt: messageM.CreatedAt,
	}, nil
}
