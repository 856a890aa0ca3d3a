package model

import (
	"time"

	"github.com/google/uuid"
)

// RoomModel is the GORM-specific struct for the 'rooms' table.
type RoomModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoomModel) TableName() string {
	return "rooms"
}

// RoomMemberModel is the GORM-specific struct for the 'room_members' table.
// Notification preferences live on the membership row: a user enables or
// disables categories per room.
type RoomMemberModel struct {
	RoomID               uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID               uuid.UUID `gorm:"type:uuid;primary_key"`
	DisplayName          string    `gorm:"type:varchar(255);not null"`
	MessageNotifsEnabled bool      `gorm:"not null;default:true"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoomMemberModel) TableName() string {
	return "room_members"
}
