package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationRateLimitModel is the GORM-specific struct for the
// 'notification_rate_limits' table. One row per (user, room) pair holding
// the last send time and the count of notifications coalesced since.
type NotificationRateLimitModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primary_key"`
	RoomID       uuid.UUID `gorm:"type:uuid;primary_key"`
	LastSentAt   time.Time `gorm:"not null"`
	PendingCount int       `gorm:"not null;default:0"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationRateLimitModel) TableName() string {
	return "notification_rate_limits"
}
