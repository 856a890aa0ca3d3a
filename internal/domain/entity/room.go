package entity

import (
	"time"

	"github.com/google/uuid"
)

// Room represents a group-chat room.
type Room struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"` // May be empty; callers fall back to a default label.
	CreatedAt time.Time `json:"created_at"`
}

// MemberNotificationPreference describes a room member together with the
// notification categories they have enabled. It is the unit the dispatcher
// reasons about when building the eligible recipient set.
type MemberNotificationPreference struct {
	UserID               uuid.UUID `json:"user_id"`
	DisplayName          string    `json:"display_name"`
	MessageNotifsEnabled bool      `json:"message_notifs_enabled"`
}
