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

// roomRepository implements the repository.RoomRepository interface.
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository is the constructor for roomRepository.
func NewRoomRepository(db *gorm.DB) repository.RoomRepository {
	if db == nil {
		return nil
	}

	return &roomRepository{
		db: db,
	}
}

// FindRoomByID retrieves a room by its unique ID.
func (repo *roomRepository) FindRoomByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	var roomM model.RoomModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&roomM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to find room by ID")
	}

	return &entity.Room{
		ID:        roomM.ID,
		Name:      roomM.Name,
		CreatedAt: roomM.CreatedAt,
	}, nil
}

// eligibleMemberScope is the single enforcement point for recipient
// eligibility: it drops the acting user and members who disabled message
// notifications, so the dispatcher never sees ineligible members.
func eligibleMemberScope(roomID, excludeUserID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("room_id = ? AND user_id <> ? AND message_notifs_enabled = ?", roomID, excludeUserID, true)
	}
}

// EligibleRecipients returns the members of a room excluding the given user,
// filtered to members with message notifications enabled.
func (repo *roomRepository) EligibleRecipients(ctx context.Context, roomID, excludeUserID uuid.UUID) ([]*entity.MemberNotificationPreference, error) {
	var memberModels []*model.RoomMemberModel

	if err := repo.db.WithContext(ctx).
		Scopes(eligibleMemberScope(roomID, excludeUserID)).
		Find(&memberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find eligible recipients")
	}

	members := make([]*entity.MemberNotificationPreference, 0, len(memberModels))
	for _, memberM := range memberModels {
		members = append(members, &entity.MemberNotificationPreference{
			UserID:               memberM.UserID,
			DisplayName:          memberM.DisplayName,
			MessageNotifsEnabled: memberM.MessageNotifsEnabled,
		})
	}

	return members, nil
}

// CountMembers returns the total number of members in a room, before any
// eligibility filtering.
func (repo *roomRepository) CountMembers(ctx context.Context, roomID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RoomMemberModel{}).
		Where("room_id = ?", roomID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count room members")
	}

	return count, nil
}

// FindMemberDisplayName returns the display name a user carries in a room.
func (repo *roomRepository) FindMemberDisplayName(ctx context.Context, roomID, userID uuid.UUID) (string, error) {
	var memberM model.RoomMemberModel

	if err := repo.db.WithContext(ctx).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		First(&memberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrMemberNotFound
		}

		return "", errors.Wrap(err, "failed to find room member")
	}

	return memberM.DisplayName, nil
}
