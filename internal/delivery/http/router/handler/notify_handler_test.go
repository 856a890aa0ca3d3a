package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"promptpush/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDispatchUsecase returns canned results for handler tests.
type stubDispatchUsecase struct {
	result *usecase.DispatchResult
	err    error
}

func (s *stubDispatchUsecase) DispatchMessage(_ context.Context, _, _, _ uuid.UUID) (*usecase.DispatchResult, error) {
	return s.result, s.err
}

func (s *stubDispatchUsecase) DispatchTurn(_ context.Context, _ uuid.UUID) (*usecase.DispatchResult, error) {
	return s.result, s.err
}

func newNotifyContext(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestNotifyHandler(uc usecase.DispatchUsecase) *NotifyHandler {
	return NewNotifyHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNotifyHandler_NotifyMessage_Success(t *testing.T) {
	h := newTestNotifyHandler(&stubDispatchUsecase{
		result: &usecase.DispatchResult{Sent: 1, Total: 1},
	})

	body, err := json.Marshal(NotifyMessageRequest{
		RoomID:    uuid.NewString(),
		MessageID: uuid.NewString(),
		SenderID:  uuid.NewString(),
	})
	require.NoError(t, err)
	c, rec := newNotifyContext(t, "/internal/notify/message", string(body))

	require.NoError(t, h.NotifyMessage(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sent":1,"total":1}`, rec.Body.String())
}

func TestNotifyHandler_NotifyMessage_MissingFields(t *testing.T) {
	h := newTestNotifyHandler(&stubDispatchUsecase{})

	c, rec := newNotifyContext(t, "/internal/notify/message", `{"roomId":"`+uuid.NewString()+`"}`)

	require.NoError(t, h.NotifyMessage(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestNotifyHandler_NotifyMessage_MalformedBody(t *testing.T) {
	h := newTestNotifyHandler(&stubDispatchUsecase{})

	c, rec := newNotifyContext(t, "/internal/notify/message", "{not json")

	require.NoError(t, h.NotifyMessage(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotifyHandler_NotifyMessage_SoftNoOp(t *testing.T) {
	h := newTestNotifyHandler(&stubDispatchUsecase{
		result: &usecase.DispatchResult{Message: "No active turn session"},
	})

	body, err := json.Marshal(NotifyMessageRequest{
		RoomID:    uuid.NewString(),
		MessageID: uuid.NewString(),
		SenderID:  uuid.NewString(),
	})
	require.NoError(t, err)
	c, rec := newNotifyContext(t, "/internal/notify/message", string(body))

	require.NoError(t, h.NotifyMessage(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sent":0,"total":0,"message":"No active turn session"}`, rec.Body.String())
}

func TestNotifyHandler_NotifyMessage_UnexpectedErrorIsSoft(t *testing.T) {
	h := newTestNotifyHandler(&stubDispatchUsecase{
		err: errors.New("store exploded"),
	})

	body, err := json.Marshal(NotifyMessageRequest{
		RoomID:    uuid.NewString(),
		MessageID: uuid.NewString(),
		SenderID:  uuid.NewString(),
	})
	require.NoError(t, err)
	c, rec := newNotifyContext(t, "/internal/notify/message", string(body))

	require.NoError(t, h.NotifyMessage(c))

	// Dispatch is best-effort: the trigger caller never sees a hard failure.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sent":0,"total":0,"error":"notification dispatch failed"}`, rec.Body.String())
}

type panickingDispatchUsecase struct{}

func (panickingDispatchUsecase) DispatchMessage(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) (*usecase.DispatchResult, error) {
	panic("nil map write")
}

func (panickingDispatchUsecase) DispatchTurn(context.Context, uuid.UUID) (*usecase.DispatchResult, error) {
	panic("nil map write")
}

func TestNotifyHandler_NotifyMessage_PanicIsSoft(t *testing.T) {
	h := newTestNotifyHandler(panickingDispatchUsecase{})

	body, err := json.Marshal(NotifyMessageRequest{
		RoomID:    uuid.NewString(),
		MessageID: uuid.NewString(),
		SenderID:  uuid.NewString(),
	})
	require.NoError(t, err)
	c, rec := newNotifyContext(t, "/internal/notify/message", string(body))

	require.NoError(t, h.NotifyMessage(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sent":0,"total":0,"error":"notification dispatch failed"}`, rec.Body.String())
}

func TestNotifyHandler_NotifyTurn_Success(t *testing.T) {
	h := newTestNotifyHandler(&stubDispatchUsecase{
		result: &usecase.DispatchResult{Sent: 2, Total: 2},
	})

	c, rec := newNotifyContext(t, "/internal/notify/turn", `{"roomId":"`+uuid.NewString()+`"}`)

	require.NoError(t, h.NotifyTurn(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sent":2,"total":2}`, rec.Body.String())
}

func TestNotifyHandler_NotifyTurn_InvalidRoomID(t *testing.T) {
	h := newTestNotifyHandler(&stubDispatchUsecase{})

	c, rec := newNotifyContext(t, "/internal/notify/turn", `{"roomId":"not-a-uuid"}`)

	require.NoError(t, h.NotifyTurn(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
