package impl

import (
	"strings"
	"testing"

	"promptpush/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFormatPreview_ShortContentVerbatim(t *testing.T) {
	msg := &entity.Message{
		Type:    entity.MessageTypeText,
		Content: "Hello everyone this is a short message",
	}

	preview := formatPreview("Alice", msg)

	assert.Equal(t, "Alice: Hello everyone this is a short message", preview)
}

func TestFormatPreview_ContentAtLimitVerbatim(t *testing.T) {
	content := strings.Repeat("a", 80)
	msg := &entity.Message{Type: entity.MessageTypeText, Content: content}

	preview := formatPreview("Alice", msg)

	assert.Equal(t, "Alice: "+content, preview)
}

func TestFormatPreview_TruncatesLongContent(t *testing.T) {
	content := strings.Repeat("x", 79) + "YREST_OF_THE_MESSAGE"
	msg := &entity.Message{Type: entity.MessageTypeText, Content: content}

	preview := formatPreview("Alice", msg)

	assert.Equal(t, "Alice: "+strings.Repeat("x", 79)+"Y…", preview)
}

func TestFormatPreview_TruncatesByRunesNotBytes(t *testing.T) {
	content := strings.Repeat("語", 81)
	msg := &entity.Message{Type: entity.MessageTypeText, Content: content}

	preview := formatPreview("Alice", msg)

	assert.Equal(t, "Alice: "+strings.Repeat("語", 80)+"…", preview)
}

func TestFormatPreview_ImageMessage(t *testing.T) {
	msg := &entity.Message{
		Type:    entity.MessageTypeImage,
		Content: "https://cdn.example.com/uploads/cat.jpg",
	}

	preview := formatPreview("Bob", msg)

	assert.Equal(t, "Bob: Sent a photo", preview)
}

func TestFormatPreview_PhotoTurnResponse(t *testing.T) {
	msg := &entity.Message{
		Type:    entity.MessageTypeTurnResponse,
		Content: `{"kind":"photo_turn","photoUrl":"https://cdn.example.com/p.jpg"}`,
	}

	preview := formatPreview("Carol", msg)

	assert.Equal(t, "Carol: Sent a photo", preview)
}

func TestFormatPreview_NonPhotoTurnResponse(t *testing.T) {
	msg := &entity.Message{
		Type:    entity.MessageTypeTurnResponse,
		Content: `{"kind":"text_turn","text":"my answer"}`,
	}

	preview := formatPreview("Carol", msg)

	assert.Equal(t, `Carol: {"kind":"text_turn","text":"my answer"}`, preview)
}

func TestFormatPreview_MalformedTurnResponseTreatedAsText(t *testing.T) {
	msg := &entity.Message{
		Type:    entity.MessageTypeTurnResponse,
		Content: "{not valid json",
	}

	preview := formatPreview("Carol", msg)

	assert.Equal(t, "Carol: {not valid json", preview)
}

func TestAppendPendingCount(t *testing.T) {
	assert.Equal(t, "Alice: hi", appendPendingCount("Alice: hi", 0))
	assert.Equal(t, "Alice: hi (+3 more)", appendPendingCount("Alice: hi", 3))
}

func TestTagNamespacesAreDistinctPerRoom(t *testing.T) {
	roomID := uuid.New()

	assert.Equal(t, "message-"+roomID.String(), messageTag(roomID))
	assert.Equal(t, "turn-"+roomID.String(), turnTag(roomID))
	assert.NotEqual(t, messageTag(roomID), turnTag(roomID))
}

func TestFormatTurnPayload(t *testing.T) {
	roomID := uuid.New()

	payload := formatTurnPayload("Book Club", "https://app.example.com", roomID)

	assert.Equal(t, "Book Club", payload.Title)
	assert.Equal(t, "It's your turn!", payload.Body)
	assert.Equal(t, roomID.String(), payload.RoomID)
	assert.Equal(t, "https://app.example.com/rooms/"+roomID.String(), payload.URL)
	assert.Equal(t, "turn-"+roomID.String(), payload.Tag)
}
