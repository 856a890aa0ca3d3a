package model

import (
	"time"

	"github.com/google/uuid"
)

// TurnSessionModel is the GORM-specific struct for the 'turn_sessions' table.
type TurnSessionModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RoomID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	CurrentUserID *uuid.UUID `gorm:"type:uuid"`
	IsActive      bool       `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (TurnSessionModel) TableName() string {
	return "turn_sessions"
}
