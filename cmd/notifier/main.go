package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"promptpush/config"
	"promptpush/internal/delivery"
	"promptpush/internal/delivery/http"
	"promptpush/internal/delivery/http/router/handler"
	"promptpush/internal/domain/service"
	logs "promptpush/internal/infra/log"
	"promptpush/internal/infra/persistence/postgres"
	"promptpush/internal/infra/push"
	"promptpush/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPushEndpointRepository,
			postgres.NewMessageRepository,
			postgres.NewRoomRepository,
			postgres.NewTurnRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newWebPushService,
			newRateLimiter,
		),
	)
}

// newWebPushService creates the web-push sender. Missing credentials are a
// recognized deployment state: the dispatcher degrades to soft no-ops.
func newWebPushService(cfg *config.Config) (service.PushSender, error) {
	if cfg.WebPush == nil {
		return nil, nil
	}

	return push.NewWebPushService(cfg.WebPush)
}

// newRateLimiter creates the store-backed rate limiter.
func newRateLimiter(db *gorm.DB, cfg *config.Config) service.RateLimiter {
	var minInterval time.Duration
	if cfg.Notify != nil {
		minInterval = cfg.Notify.MinInterval
	}

	return postgres.NewRateLimiter(db, minInterval)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDispatchService,
			impl.NewEndpointService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNotifyHandler,
			handler.NewEndpointHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
