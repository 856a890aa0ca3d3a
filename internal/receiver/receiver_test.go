package receiver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"promptpush/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWait = time.Second
	testTick = 10 * time.Millisecond
)

type fakePresenter struct {
	shown    []*ShowRequest
	closed   []string
	showErr  error
	closeErr error
}

func (p *fakePresenter) Show(_ context.Context, req *ShowRequest) error {
	if p.showErr != nil {
		return p.showErr
	}
	p.shown = append(p.shown, req)

	return nil
}

func (p *fakePresenter) Close(_ context.Context, tag string) error {
	p.closed = append(p.closed, tag)

	return p.closeErr
}

type fakeWindow struct {
	origin      string
	navigated   []string
	focused     int
	navigateErr error
	focusErr    error
}

func (w *fakeWindow) Origin() string { return w.origin }

func (w *fakeWindow) Navigate(_ context.Context, url string) error {
	if w.navigateErr != nil {
		return w.navigateErr
	}
	w.navigated = append(w.navigated, url)

	return nil
}

func (w *fakeWindow) Focus(_ context.Context) error {
	if w.focusErr != nil {
		return w.focusErr
	}
	w.focused++

	return nil
}

type fakeWindowClient struct {
	mu      sync.Mutex
	windows []Window
	opened  []string
	openErr error
}

func (c *fakeWindowClient) Windows(_ context.Context) []Window { return c.windows }

func (c *fakeWindowClient) OpenWindow(_ context.Context, url string) error {
	if c.openErr != nil {
		return c.openErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opened = append(c.opened, url)

	return nil
}

func (c *fakeWindowClient) openedURLs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.opened...)
}

func newTestReceiver(presenter *fakePresenter, windows *fakeWindowClient) *Receiver {
	return New("https://app.example.com", presenter, windows, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func marshalPayload(t *testing.T, payload *entity.NotificationPayload) []byte {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	return raw
}

func TestHandlePush_RendersNotification(t *testing.T) {
	presenter := &fakePresenter{}
	windows := &fakeWindowClient{}
	r := newTestReceiver(presenter, windows)

	raw := marshalPayload(t, &entity.NotificationPayload{
		Title:  "Book Club",
		Body:   "Alice: Hello",
		RoomID: "room-1",
		URL:    "https://app.example.com/rooms/room-1",
		Tag:    "message-room-1",
	})
	r.handlePush(context.Background(), raw)

	require.Len(t, presenter.shown, 1)
	assert.Equal(t, "Book Club", presenter.shown[0].Title)
	assert.Equal(t, "Alice: Hello", presenter.shown[0].Body)
	assert.Equal(t, "message-room-1", presenter.shown[0].Tag)
	assert.False(t, presenter.shown[0].RequireInteraction)
	assert.NotEmpty(t, presenter.shown[0].Vibrate)
	assert.Equal(t, StateDisplaying, r.State())
}

func TestHandlePush_MalformedPayloadDroppedSilently(t *testing.T) {
	presenter := &fakePresenter{}
	r := newTestReceiver(presenter, &fakeWindowClient{})

	r.handlePush(context.Background(), []byte("{not json"))

	assert.Empty(t, presenter.shown)
	assert.Equal(t, StateIdle, r.State())
}

func TestHandleClick_RoutesIntoExistingWindow(t *testing.T) {
	presenter := &fakePresenter{}
	window := &fakeWindow{origin: "https://app.example.com"}
	windows := &fakeWindowClient{windows: []Window{window}}
	r := newTestReceiver(presenter, windows)

	r.handlePush(context.Background(), marshalPayload(t, &entity.NotificationPayload{
		Title: "Book Club",
		URL:   "https://app.example.com/rooms/room-1",
		Tag:   "message-room-1",
	}))
	r.handleClick(context.Background())

	assert.Equal(t, []string{"message-room-1"}, presenter.closed)
	assert.Equal(t, []string{"https://app.example.com/rooms/room-1"}, window.navigated)
	assert.Equal(t, 1, window.focused)
	assert.Empty(t, windows.opened)
	assert.Equal(t, StateIdle, r.State())
}

func TestHandleClick_OpensNewWindowWhenNoneMatchOrigin(t *testing.T) {
	presenter := &fakePresenter{}
	foreign := &fakeWindow{origin: "https://other.example.com"}
	windows := &fakeWindowClient{windows: []Window{foreign}}
	r := newTestReceiver(presenter, windows)

	r.handlePush(context.Background(), marshalPayload(t, &entity.NotificationPayload{
		URL: "https://app.example.com/rooms/room-2",
		Tag: "turn-room-2",
	}))
	r.handleClick(context.Background())

	assert.Empty(t, foreign.navigated)
	assert.Equal(t, []string{"https://app.example.com/rooms/room-2"}, windows.opened)
}

func TestHandleClick_FallsBackWhenNavigationFails(t *testing.T) {
	presenter := &fakePresenter{}
	stuck := &fakeWindow{
		origin:      "https://app.example.com",
		navigateErr: errors.New("window is mid-navigation"),
	}
	windows := &fakeWindowClient{windows: []Window{stuck}}
	r := newTestReceiver(presenter, windows)

	r.handlePush(context.Background(), marshalPayload(t, &entity.NotificationPayload{
		URL: "https://app.example.com/rooms/room-3",
		Tag: "message-room-3",
	}))
	r.handleClick(context.Background())

	assert.Equal(t, []string{"https://app.example.com/rooms/room-3"}, windows.opened)
	assert.Equal(t, StateIdle, r.State())
}

func TestHandleClick_NoOpWhenIdle(t *testing.T) {
	presenter := &fakePresenter{}
	windows := &fakeWindowClient{}
	r := newTestReceiver(presenter, windows)

	r.handleClick(context.Background())

	assert.Empty(t, presenter.closed)
	assert.Empty(t, windows.opened)
}

func TestRun_ProcessesEventsUntilCancelled(t *testing.T) {
	presenter := &fakePresenter{}
	windows := &fakeWindowClient{}
	r := newTestReceiver(presenter, windows)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	r.Push(marshalPayload(t, &entity.NotificationPayload{
		Title: "Book Club",
		URL:   "https://app.example.com/rooms/room-1",
		Tag:   "message-room-1",
	}))
	r.Click()

	assert.Eventually(t, func() bool {
		return len(windows.openedURLs()) == 1
	}, testWait, testTick)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
