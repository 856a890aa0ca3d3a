package model

import (
	"time"

	"github.com/google/uuid"
)

// PushEndpointModel is the GORM-specific struct for the 'push_endpoints' table.
// One row per registered browser/device push subscription.
type PushEndpointModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Endpoint  string    `gorm:"type:text;not null"`
	P256dh    string    `gorm:"type:varchar(255);not null"`
	Auth      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushEndpointModel) TableName() string {
	return "push_endpoints"
}
