package entity

import (
	"time"

	"github.com/google/uuid"
)

// TurnSession represents the active turn-taking session of a room.
// CurrentUserID is Nil while the session has no player on turn.
type TurnSession struct {
	ID            uuid.UUID `json:"id"`
	RoomID        uuid.UUID `json:"room_id"`
	CurrentUserID uuid.UUID `json:"current_user_id"`
	IsActive      bool      `json:"is_active"`
	UpdatedAt     time.Time `json:"updated_at"`
}
