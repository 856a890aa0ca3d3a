// Package service defines interfaces for external collaborators of the domain.
package service

import (
	"context"

	"promptpush/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrEndpointGone marks a terminal delivery failure: the push service reported
// the endpoint will never again accept deliveries (HTTP 404/410). Callers must
// remove the endpoint. Every other delivery failure is transient and must NOT
// be mapped to this error, since misclassification silently severs a user's
// notification channel.
var ErrEndpointGone = errors.New("push endpoint gone")

// PushSender performs the authenticated, encrypted delivery of one payload to
// one push endpoint.
type PushSender interface {
	// Send delivers the payload to the endpoint. It returns nil on success,
	// ErrEndpointGone on a terminal failure, and any other error for
	// transient failures.
	Send(ctx context.Context, endpoint *entity.PushEndpoint, payload *entity.NotificationPayload) error

	// PublicKey returns the VAPID public key browsers use to subscribe.
	PublicKey() string
}
