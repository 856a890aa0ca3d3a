// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushEndpoint represents a single browser/device push subscription owned by a user.
type PushEndpoint struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the endpoint.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the user who owns this endpoint.
	Endpoint  string    `json:"endpoint"`   // Opaque push-service URL the payload is delivered to.
	P256dh    string    `json:"p256dh"`     // Client public key for payload encryption.
	Auth      string    `json:"auth"`       // Client auth secret for payload encryption.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this endpoint was registered.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
