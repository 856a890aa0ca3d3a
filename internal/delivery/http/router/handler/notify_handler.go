package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "promptpush/internal/delivery/context"
	"promptpush/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotifyHandler holds dependencies for the internal dispatch endpoints. These
// endpoints are called by the chat backend after a message is persisted or a
// turn advances, so their responses use the flat shape that caller expects
// rather than the public API envelope.
type NotifyHandler struct {
	uc     usecase.DispatchUsecase
	logger *slog.Logger
}

// NewNotifyHandler is the constructor for NotifyHandler
func NewNotifyHandler(uc usecase.DispatchUsecase, logger *slog.Logger) *NotifyHandler {
	return &NotifyHandler{
		uc:     uc,
		logger: logger,
	}
}

// NotifyMessageRequest represents the request body for a message dispatch
type NotifyMessageRequest struct {
	RoomID    string `json:"roomId"`
	MessageID string `json:"messageId"`
	SenderID  string `json:"senderId"`
}

// NotifyTurnRequest represents the request body for a turn dispatch
type NotifyTurnRequest struct {
	RoomID string `json:"roomId"`
}

type dispatchResponse struct {
	Sent    int    `json:"sent"`
	Total   int    `json:"total"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NotifyMessage handles the dispatch trigger for a newly posted message
func (h *NotifyHandler) NotifyMessage(c echo.Context) (err error) {
	defer h.recoverSoft(c, &err)

	var req NotifyMessageRequest
	if err := c.Bind(&req); err != nil {
		return badDispatchRequest(c, "invalid request body")
	}

	roomID, err := parseRequiredUUID(req.RoomID)
	if err != nil {
		return badDispatchRequest(c, "roomId must be a valid UUID")
	}
	messageID, err := parseRequiredUUID(req.MessageID)
	if err != nil {
		return badDispatchRequest(c, "messageId must be a valid UUID")
	}
	senderID, err := parseRequiredUUID(req.SenderID)
	if err != nil {
		return badDispatchRequest(c, "senderId must be a valid UUID")
	}

	result, err := h.uc.DispatchMessage(c.Request().Context(), roomID, messageID, senderID)
	if err != nil {
		return h.softFailure(c, err)
	}

	return c.JSON(http.StatusOK, dispatchResponse{
		Sent:    result.Sent,
		Total:   result.Total,
		Message: result.Message,
	})
}

// NotifyTurn handles the dispatch trigger for a turn advancing
func (h *NotifyHandler) NotifyTurn(c echo.Context) (err error) {
	defer h.recoverSoft(c, &err)

	var req NotifyTurnRequest
	if err := c.Bind(&req); err != nil {
		return badDispatchRequest(c, "invalid request body")
	}

	roomID, err := parseRequiredUUID(req.RoomID)
	if err != nil {
		return badDispatchRequest(c, "roomId must be a valid UUID")
	}

	result, err := h.uc.DispatchTurn(c.Request().Context(), roomID)
	if err != nil {
		return h.softFailure(c, err)
	}

	return c.JSON(http.StatusOK, dispatchResponse{
		Sent:    result.Sent,
		Total:   result.Total,
		Message: result.Message,
	})
}

// softFailure reports an unexpected dispatch failure without failing the
// caller: posting a message must never break on notification trouble.
func (h *NotifyHandler) softFailure(c echo.Context, err error) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
	logger.Error("Dispatch failed",
		slog.String("path", c.Request().URL.Path),
		slog.Any("error", err),
	)

	return c.JSON(http.StatusOK, dispatchResponse{
		Sent:  0,
		Error: "notification dispatch failed",
	})
}

// recoverSoft converts a panic on the dispatch path into the soft failure
// shape: the trigger caller already committed its write and must not see a
// hard error from this side channel.
func (h *NotifyHandler) recoverSoft(c echo.Context, err *error) {
	if r := recover(); r != nil {
		h.logger.Error("Dispatch panicked",
			slog.String("path", c.Request().URL.Path),
			slog.Any("panic", r),
		)
		*err = c.JSON(http.StatusOK, dispatchResponse{
			Sent:  0,
			Error: "notification dispatch failed",
		})
	}
}

func badDispatchRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

func parseRequiredUUID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, errors.New("missing required ID")
	}

	return uuid.Parse(raw)
}
