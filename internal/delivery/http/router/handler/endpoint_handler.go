package handler

import (
	"log/slog"
	"net/http"

	"promptpush/internal/delivery/http/response"
	domainerrors "promptpush/internal/domain/errors"
	"promptpush/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EndpointHandler holds dependencies for push endpoint registration handlers
type EndpointHandler struct {
	uc     usecase.EndpointUsecase
	logger *slog.Logger
}

// NewEndpointHandler is the constructor for EndpointHandler
func NewEndpointHandler(uc usecase.EndpointUsecase, logger *slog.Logger) *EndpointHandler {
	return &EndpointHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterEndpointRequest represents the request body for registering a push endpoint
type RegisterEndpointRequest struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	Endpoint string    `json:"endpoint" validate:"required,url"`
	P256dh   string    `json:"p256dh" validate:"required"`
	Auth     string    `json:"auth" validate:"required"`
}

// RegisterEndpoint handles storing a browser push subscription
func (h *EndpointHandler) RegisterEndpoint(c echo.Context) error {
	var req RegisterEndpointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "endpoint, p256dh, auth and user_id are required")
	}

	endpoint, err := h.uc.RegisterEndpoint(c.Request().Context(), req.UserID, &usecase.EndpointInfo{
		Endpoint: req.Endpoint,
		P256dh:   req.P256dh,
		Auth:     req.Auth,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, endpoint, "Push endpoint registered successfully")
}

// ListEndpoints handles retrieving the endpoints a user has registered
func (h *EndpointHandler) ListEndpoints(c echo.Context) error {
	userID, err := uuid.Parse(c.QueryParam("user_id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "user_id must be a valid UUID")
	}

	endpoints, err := h.uc.ListEndpoints(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, endpoints, "Push endpoints retrieved successfully")
}

// RemoveEndpoint handles deleting one of a user's endpoints
func (h *EndpointHandler) RemoveEndpoint(c echo.Context) error {
	endpointID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "id must be a valid UUID")
	}

	userID, err := uuid.Parse(c.QueryParam("user_id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "user_id must be a valid UUID")
	}

	if err := h.uc.RemoveEndpoint(c.Request().Context(), userID, endpointID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Push endpoint removed successfully")
}

// VAPIDPublicKey returns the key browsers use to create a push subscription
func (h *EndpointHandler) VAPIDPublicKey(c echo.Context) error {
	key := h.uc.VAPIDPublicKey()
	if key == "" {
		return response.NotFound(c, "PUSH_NOT_CONFIGURED", "Push delivery is not configured")
	}

	return response.Success(c, http.StatusOK, map[string]string{"publicKey": key}, "VAPID public key retrieved successfully")
}

// handleAppError handles application errors
func (h *EndpointHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
