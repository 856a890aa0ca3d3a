package repository

import (
	"context"

	"promptpush/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for room persistence.
var (
	// ErrRoomNotFound is returned when a room is not found.
	ErrRoomNotFound = errors.New("room not found")
	// ErrMemberNotFound is returned when a user is not a member of the room.
	ErrMemberNotFound = errors.New("room member not found")
)

// RoomRepository defines the interface for room and membership lookups.
type RoomRepository interface {
	// FindRoomByID retrieves a room by its unique ID.
	FindRoomByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)

	// EligibleRecipients returns the members of a room excluding the given
	// user, filtered to members with message notifications enabled.
	EligibleRecipients(ctx context.Context, roomID, excludeUserID uuid.UUID) ([]*entity.MemberNotificationPreference, error)

	// CountMembers returns the total number of members in a room, before any
	// eligibility filtering.
	CountMembers(ctx context.Context, roomID uuid.UUID) (int64, error)

	// FindMemberDisplayName returns the display name a user carries in a room.
	FindMemberDisplayName(ctx context.Context, roomID, userID uuid.UUID) (string, error)
}
