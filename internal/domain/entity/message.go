package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message kinds as stored by the chat application.
const (
	MessageTypeText         = "text"
	MessageTypeImage        = "image"
	MessageTypeTurnResponse = "turn_response"
)

// Message represents a single chat message posted to a room.
type Message struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Type      string    `json:"type"`    // One of the MessageType constants.
	Content   string    `json:"content"` // Literal text, or JSON for turn responses.
	CreatedAt time.Time `json:"created_at"`
}
