package push

import (
	"testing"

	"promptpush/config"
	"promptpush/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name string
		code int
		gone bool
		ok   bool
	}{
		{name: "created", code: 201, ok: true},
		{name: "ok", code: 200, ok: true},
		{name: "not found is gone", code: 404, gone: true},
		{name: "gone is gone", code: 410, gone: true},
		{name: "bad request is transient", code: 400},
		{name: "too many requests is transient", code: 429},
		{name: "server error is transient", code: 500},
		{name: "bad gateway is transient", code: 502},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyStatus(tt.code)
			switch {
			case tt.ok:
				assert.NoError(t, err)
			case tt.gone:
				assert.ErrorIs(t, err, service.ErrEndpointGone)
			default:
				require.Error(t, err)
				assert.NotErrorIs(t, err, service.ErrEndpointGone)
			}
		})
	}
}

func TestNewWebPushService_RequiresKeys(t *testing.T) {
	_, err := NewWebPushService(&config.WebPushConfig{PrivateKey: "private"})
	assert.Error(t, err)

	_, err = NewWebPushService(&config.WebPushConfig{PublicKey: "public"})
	assert.Error(t, err)

	svc, err := NewWebPushService(&config.WebPushConfig{PublicKey: "public", PrivateKey: "private"})
	require.NoError(t, err)
	assert.Equal(t, "public", svc.PublicKey())
}
