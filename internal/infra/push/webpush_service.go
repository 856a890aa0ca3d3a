// Package push contains the Web Push delivery client.
package push

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"promptpush/config"
	"promptpush/internal/domain/entity"
	"promptpush/internal/domain/service"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/pkg/errors"
)

const defaultTTLSeconds = 60 * 60 * 24

type webPushService struct {
	publicKey  string
	privateKey string
	subscriber string
	ttl        int
}

// NewWebPushService creates a Web Push sender from VAPID credentials.
func NewWebPushService(cfg *config.WebPushConfig) (service.PushSender, error) {
	if cfg.PublicKey == "" || cfg.PrivateKey == "" {
		return nil, errors.New("webpush requires both VAPID keys")
	}

	ttl := cfg.TTLSeconds
	if ttl <= 0 {
		ttl = defaultTTLSeconds
	}

	return &webPushService{
		publicKey:  cfg.PublicKey,
		privateKey: cfg.PrivateKey,
		subscriber: cfg.Subscriber,
		ttl:        ttl,
	}, nil
}

// Send encrypts and delivers the payload to a single endpoint. 404/410
// responses map to service.ErrEndpointGone; every other failure is transient.
func (s *webPushService) Send(ctx context.Context, endpoint *entity.PushEndpoint, payload *entity.NotificationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode payload")
	}

	subscription := &webpush.Subscription{
		Endpoint: endpoint.Endpoint,
		Keys: webpush.Keys{
			P256dh: endpoint.P256dh,
			Auth:   endpoint.Auth,
		},
	}

	resp, err := webpush.SendNotificationWithContext(ctx, body, subscription, &webpush.Options{
		Subscriber:      s.subscriber,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		TTL:             s.ttl,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send push notification")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	return classifyStatus(resp.StatusCode)
}

// PublicKey returns the VAPID public key browsers use to subscribe.
func (s *webPushService) PublicKey() string {
	return s.publicKey
}

// classifyStatus maps a push-service response code onto the delivery
// contract. Only 404/410 are terminal; anything else non-2xx is transient.
func classifyStatus(code int) error {
	switch {
	case code == http.StatusNotFound || code == http.StatusGone:
		return service.ErrEndpointGone
	case code >= 200 && code < 300:
		return nil
	default:
		return errors.Errorf("push service returned status %d", code)
	}
}
