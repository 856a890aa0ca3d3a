// Package receiver models the client-side notification receiver as a
// two-state event-driven actor. It consumes delivered push payloads, renders
// a system notification, and routes a click on that notification to the right
// in-app location, mirroring the service worker contract browsers run.
package receiver

import (
	"context"
	"encoding/json"
	"log/slog"

	"promptpush/internal/domain/entity"
)

// State is the receiver's lifecycle position.
type State int

const (
	// StateIdle means no notification is currently displayed.
	StateIdle State = iota
	// StateDisplaying means a notification is on screen awaiting interaction.
	StateDisplaying
)

// defaultVibration is the pattern applied to every rendered notification.
var defaultVibration = []int{200, 100, 200}

// ShowRequest describes a system notification to render.
type ShowRequest struct {
	Title              string
	Body               string
	Tag                string
	Vibrate            []int
	RequireInteraction bool
	RoomID             string
	URL                string
}

// Presenter renders and dismisses system notifications.
type Presenter interface {
	Show(ctx context.Context, req *ShowRequest) error
	Close(ctx context.Context, tag string) error
}

// Window is an open application window the receiver can route a click into.
type Window interface {
	Origin() string
	Navigate(ctx context.Context, url string) error
	Focus(ctx context.Context) error
}

// WindowClient enumerates open windows and opens new ones.
type WindowClient interface {
	Windows(ctx context.Context) []Window
	OpenWindow(ctx context.Context, url string) error
}

// Receiver is the actor. Feed it raw push payloads with Push and user clicks
// with Click; Run processes them sequentially so the state transitions stay
// serialized.
type Receiver struct {
	origin    string
	presenter Presenter
	windows   WindowClient
	logger    *slog.Logger

	pushes chan []byte
	clicks chan struct{}

	state   State
	stashed *entity.NotificationPayload
}

// New creates a Receiver bound to the application origin.
func New(origin string, presenter Presenter, windows WindowClient, logger *slog.Logger) *Receiver {
	return &Receiver{
		origin:    origin,
		presenter: presenter,
		windows:   windows,
		logger:    logger,
		pushes:    make(chan []byte, 16),
		clicks:    make(chan struct{}, 16),
		state:     StateIdle,
	}
}

// State reports the receiver's current state.
func (r *Receiver) State() State {
	return r.state
}

// Push enqueues a delivered payload for processing.
func (r *Receiver) Push(payload []byte) {
	r.pushes <- payload
}

// Click enqueues a user click on the displayed notification.
func (r *Receiver) Click() {
	r.clicks <- struct{}{}
}

// Run drives the actor until the context is cancelled.
func (r *Receiver) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case payload := <-r.pushes:
			r.handlePush(ctx, payload)
		case <-r.clicks:
			r.handleClick(ctx)
		}
	}
}

// handlePush parses and renders one delivered payload. A malformed payload is
// dropped without a state change: the receiver must never crash on bad input.
func (r *Receiver) handlePush(ctx context.Context, raw []byte) {
	var payload entity.NotificationPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		r.logger.Debug("Dropping malformed push payload", slog.Any("error", err))

		return
	}

	if err := r.presenter.Show(ctx, &ShowRequest{
		Title:              payload.Title,
		Body:               payload.Body,
		Tag:                payload.Tag,
		Vibrate:            defaultVibration,
		RequireInteraction: false,
		RoomID:             payload.RoomID,
		URL:                payload.URL,
	}); err != nil {
		r.logger.Warn("Failed to show notification", slog.Any("error", err))

		return
	}

	r.stashed = &payload
	r.state = StateDisplaying
}

// handleClick closes the notification and routes to the stashed URL: an
// existing same-origin window is navigated and focused; failing that, a new
// window opens. A mid-navigation window that rejects either step falls back
// to the new-window path too.
func (r *Receiver) handleClick(ctx context.Context) {
	if r.state != StateDisplaying || r.stashed == nil {
		return
	}
	payload := r.stashed
	r.stashed = nil
	r.state = StateIdle

	if err := r.presenter.Close(ctx, payload.Tag); err != nil {
		r.logger.Debug("Failed to close notification", slog.Any("error", err))
	}

	for _, window := range r.windows.Windows(ctx) {
		if window.Origin() != r.origin {
			continue
		}
		if err := r.routeInto(ctx, window, payload.URL); err != nil {
			r.logger.Debug("Window routing failed, opening new window", slog.Any("error", err))

			break
		}

		return
	}

	if err := r.windows.OpenWindow(ctx, payload.URL); err != nil {
		r.logger.Warn("Failed to open window", slog.Any("error", err))
	}
}

func (r *Receiver) routeInto(ctx context.Context, window Window, url string) error {
	if err := window.Navigate(ctx, url); err != nil {
		return err
	}

	return window.Focus(ctx)
}
