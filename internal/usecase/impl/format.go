package impl

import (
	"encoding/json"
	"fmt"

	"promptpush/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	// previewMaxRunes caps the literal message content shown in a notification body.
	previewMaxRunes = 80

	defaultRoomName   = "Group chat"
	defaultSenderName = "Someone"

	turnBody = "It's your turn!"
)

// formatPreview builds the notification body for a posted message:
// photo-bearing messages collapse to a fixed phrase, everything else is the
// literal content truncated to previewMaxRunes with an ellipsis.
func formatPreview(senderName string, msg *entity.Message) string {
	if msg.Type == entity.MessageTypeImage || isPhotoTurnResponse(msg) {
		return senderName + ": Sent a photo"
	}

	return senderName + ": " + truncateContent(msg.Content)
}

// isPhotoTurnResponse reports whether a structured turn response is tagged as
// a photo turn. Content that fails to parse is treated as plain text.
func isPhotoTurnResponse(msg *entity.Message) bool {
	if msg.Type != entity.MessageTypeTurnResponse {
		return false
	}

	var turnContent struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal([]byte(msg.Content), &turnContent); err != nil {
		return false
	}

	return turnContent.Kind == "photo_turn"
}

func truncateContent(content string) string {
	runes := []rune(content)
	if len(runes) <= previewMaxRunes {
		return content
	}

	return string(runes[:previewMaxRunes]) + "…"
}

// appendPendingCount surfaces coalesced notifications in the body.
func appendPendingCount(body string, pendingCount int) string {
	if pendingCount <= 0 {
		return body
	}

	return fmt.Sprintf("%s (+%d more)", body, pendingCount)
}

// Tag namespaces keep message and turn notifications in separate OS-level
// coalescing groups per room.
func messageTag(roomID uuid.UUID) string {
	return "message-" + roomID.String()
}

func turnTag(roomID uuid.UUID) string {
	return "turn-" + roomID.String()
}

func roomURL(baseURL string, roomID uuid.UUID) string {
	return fmt.Sprintf("%s/rooms/%s", baseURL, roomID)
}

// formatTurnPayload builds the full wire payload for a turn notification.
func formatTurnPayload(roomName, baseURL string, roomID uuid.UUID) *entity.NotificationPayload {
	return &entity.NotificationPayload{
		Title:  roomName,
		Body:   turnBody,
		RoomID: roomID.String(),
		URL:    roomURL(baseURL, roomID),
		Tag:    turnTag(roomID),
	}
}
