package entity

// NotificationPayload is the wire-level content delivered to a push endpoint.
// The JSON encoding of this struct is what the push transport encrypts and
// what the receiver in the browser decodes again.
type NotificationPayload struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	RoomID string `json:"roomId"`
	URL    string `json:"url"` // In-app location a notification click should open.
	Tag    string `json:"tag"` // OS-level coalescing key, scoped per room and event kind.
}
