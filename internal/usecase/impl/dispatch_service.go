package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"promptpush/config"
	"promptpush/internal/domain/entity"
	"promptpush/internal/domain/repository"
	"promptpush/internal/domain/service"
	"promptpush/internal/errors"
	"promptpush/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultSendTimeout = 10 * time.Second
	defaultAppBaseURL  = "http://localhost:3000"
)

// Informational short-circuit messages surfaced to the trigger caller.
const (
	msgNotConfigured       = "Push notifications not configured"
	msgMessageNotFound     = "Message not found"
	msgNoEligibleMembers   = "No eligible recipients"
	msgNoActiveTurnSession = "No active turn session"
	msgNoTurnEndpoints     = "No registered endpoints"
)

type dispatchService struct {
	logger       *slog.Logger
	sendTimeout  time.Duration
	appBaseURL   string
	pushSvc      service.PushSender
	rateLimiter  service.RateLimiter
	messageRepo  repository.MessageRepository
	roomRepo     repository.RoomRepository
	turnRepo     repository.TurnRepository
	endpointRepo repository.PushEndpointRepository
}

// DispatchServiceParams holds dependencies for the dispatch service.
// PushSvc, RateLimiter and the repositories are optional: they are nil when
// push credentials or the store connection are absent, which the service
// reports as a soft "not configured" result instead of an error.
type DispatchServiceParams struct {
	fx.In

	Logger       *slog.Logger
	Config       *config.Config
	PushSvc      service.PushSender                `optional:"true"`
	RateLimiter  service.RateLimiter               `optional:"true"`
	MessageRepo  repository.MessageRepository      `optional:"true"`
	RoomRepo     repository.RoomRepository         `optional:"true"`
	TurnRepo     repository.TurnRepository         `optional:"true"`
	EndpointRepo repository.PushEndpointRepository `optional:"true"`
}

// NewDispatchService creates the dispatch usecase instance.
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	sendTimeout := defaultSendTimeout
	appBaseURL := defaultAppBaseURL
	if params.Config.Notify != nil {
		if params.Config.Notify.SendTimeout > 0 {
			sendTimeout = params.Config.Notify.SendTimeout
		}
		if params.Config.Notify.AppBaseURL != "" {
			appBaseURL = params.Config.Notify.AppBaseURL
		}
	}

	return &dispatchService{
		logger:       params.Logger,
		sendTimeout:  sendTimeout,
		appBaseURL:   appBaseURL,
		pushSvc:      params.PushSvc,
		rateLimiter:  params.RateLimiter,
		messageRepo:  params.MessageRepo,
		roomRepo:     params.RoomRepo,
		turnRepo:     params.TurnRepo,
		endpointRepo: params.EndpointRepo,
	}
}

// notConfigured reports whether the deployment lacks push credentials or a
// store connection. Dispatch is a best-effort side channel, so this state is
// a recognized soft no-op, not an error.
func (s *dispatchService) notConfigured() bool {
	return s.pushSvc == nil || s.endpointRepo == nil
}

// DispatchMessage notifies eligible room members about a posted message.
func (s *dispatchService) DispatchMessage(ctx context.Context, roomID, messageID, senderID uuid.UUID) (*usecase.DispatchResult, error) {
	if s.notConfigured() {
		s.logger.Info("Dispatch skipped, push not configured", slog.String("room_id", roomID.String()))

		return &usecase.DispatchResult{Message: msgNotConfigured}, nil
	}

	msg, err := s.messageRepo.FindMessageByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			// Deleted between enqueue and dispatch: nothing to notify.
			return &usecase.DispatchResult{Message: msgMessageNotFound}, nil
		}

		return nil, errors.Wrap(err, "failed to fetch message")
	}

	roomName := s.resolveRoomName(ctx, roomID)
	senderName := s.resolveSenderName(ctx, roomID, senderID)
	preview := formatPreview(senderName, msg)

	recipients, err := s.roomRepo.EligibleRecipients(ctx, roomID, senderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve eligible recipients")
	}
	if len(recipients) == 0 {
		// The unfiltered count tells an empty room apart from members who
		// all opted out or only the sender remaining.
		memberCount, countErr := s.roomRepo.CountMembers(ctx, roomID)
		if countErr != nil {
			s.logger.Warn("Failed to count room members",
				slog.String("room_id", roomID.String()),
				slog.Any("error", countErr),
			)
		}
		s.logger.Info("No eligible recipients",
			slog.String("room_id", roomID.String()),
			slog.String("message_id", messageID.String()),
			slog.Int64("member_count", memberCount),
		)

		return &usecase.DispatchResult{Message: msgNoEligibleMembers}, nil
	}

	sent := 0
	for _, recipient := range recipients {
		if s.notifyRecipient(ctx, recipient.UserID, roomID, roomName, preview) {
			sent++
		}
	}

	s.logger.Info("Message dispatch completed",
		slog.String("room_id", roomID.String()),
		slog.String("message_id", messageID.String()),
		slog.Int("sent", sent),
		slog.Int("total", len(recipients)),
	)

	return &usecase.DispatchResult{Sent: sent, Total: len(recipients)}, nil
}

// notifyRecipient runs the per-recipient pipeline: rate-limit gate, endpoint
// lookup, payload build, fan-out. Returns true when at least one endpoint
// delivery succeeded.
func (s *dispatchService) notifyRecipient(ctx context.Context, userID, roomID uuid.UUID, roomName, preview string) bool {
	decision := service.RateLimitDecision{ShouldSend: true}
	if s.rateLimiter != nil {
		var err error
		decision, err = s.rateLimiter.Reserve(ctx, userID, roomID)
		if err != nil {
			// Fail open: a broken limiter must not silence notifications.
			s.logger.Warn("Rate limiter unavailable, sending anyway",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
			decision = service.RateLimitDecision{ShouldSend: true}
		}
	}
	if !decision.ShouldSend {
		return false
	}

	endpoints, err := s.endpointRepo.FindEndpointsByUser(ctx, userID)
	if err != nil {
		s.logger.Warn("Failed to fetch endpoints",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return false
	}
	if len(endpoints) == 0 {
		return false
	}

	payload := &entity.NotificationPayload{
		Title:  roomName,
		Body:   appendPendingCount(preview, decision.PendingCount),
		RoomID: roomID.String(),
		URL:    roomURL(s.appBaseURL, roomID),
		Tag:    messageTag(roomID),
	}

	return s.fanOut(ctx, endpoints, payload) > 0
}

// DispatchTurn notifies the user whose turn it now is.
func (s *dispatchService) DispatchTurn(ctx context.Context, roomID uuid.UUID) (*usecase.DispatchResult, error) {
	if s.notConfigured() {
		s.logger.Info("Dispatch skipped, push not configured", slog.String("room_id", roomID.String()))

		return &usecase.DispatchResult{Message: msgNotConfigured}, nil
	}

	session, err := s.turnRepo.FindActiveSession(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNoActiveSession) {
			return &usecase.DispatchResult{Message: msgNoActiveTurnSession}, nil
		}

		return nil, errors.Wrap(err, "failed to fetch turn session")
	}
	if session.CurrentUserID == uuid.Nil {
		return &usecase.DispatchResult{Message: msgNoActiveTurnSession}, nil
	}

	endpoints, err := s.endpointRepo.FindEndpointsByUser(ctx, session.CurrentUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch endpoints")
	}
	if len(endpoints) == 0 {
		return &usecase.DispatchResult{Message: msgNoTurnEndpoints}, nil
	}

	roomName := s.resolveRoomName(ctx, roomID)
	payload := formatTurnPayload(roomName, s.appBaseURL, roomID)

	delivered := s.fanOut(ctx, endpoints, payload)

	s.logger.Info("Turn dispatch completed",
		slog.String("room_id", roomID.String()),
		slog.String("user_id", session.CurrentUserID.String()),
		slog.Int("sent", delivered),
		slog.Int("total", len(endpoints)),
	)

	return &usecase.DispatchResult{Sent: delivered, Total: len(endpoints)}, nil
}

// fanOut delivers the payload to every endpoint concurrently and reconciles
// the outcomes: endpoints reported gone are removed from the store, transient
// failures are logged and counted as non-delivery. No single failure aborts
// the others. Returns the number of successful deliveries.
func (s *dispatchService) fanOut(ctx context.Context, endpoints []*entity.PushEndpoint, payload *entity.NotificationPayload) int {
	results := make([]error, len(endpoints))

	var wg sync.WaitGroup
	for i, endpoint := range endpoints {
		wg.Add(1)
		go func(i int, endpoint *entity.PushEndpoint) {
			defer wg.Done()

			sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
			defer cancel()

			results[i] = s.pushSvc.Send(sendCtx, endpoint, payload)
		}(i, endpoint)
	}
	wg.Wait()

	delivered := 0
	for i, sendErr := range results {
		switch {
		case sendErr == nil:
			delivered++
		case errors.Is(sendErr, service.ErrEndpointGone):
			if delErr := s.endpointRepo.DeleteEndpoint(ctx, endpoints[i].ID); delErr != nil {
				s.logger.Warn("Failed to delete gone endpoint",
					slog.String("endpoint_id", endpoints[i].ID.String()),
					slog.Any("error", delErr),
				)
			} else {
				s.logger.Info("Removed gone endpoint",
					slog.String("endpoint_id", endpoints[i].ID.String()),
				)
			}
		default:
			s.logger.Warn("Push delivery failed",
				slog.String("endpoint_id", endpoints[i].ID.String()),
				slog.Any("error", sendErr),
			)
		}
	}

	return delivered
}

func (s *dispatchService) resolveRoomName(ctx context.Context, roomID uuid.UUID) string {
	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil || room.Name == "" {
		return defaultRoomName
	}

	return room.Name
}

func (s *dispatchService) resolveSenderName(ctx context.Context, roomID, senderID uuid.UUID) string {
	name, err := s.roomRepo.FindMemberDisplayName(ctx, roomID, senderID)
	if err != nil || name == "" {
		return defaultSenderName
	}

	return name
}
