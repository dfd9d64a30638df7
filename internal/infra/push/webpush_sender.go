// Package push contains the push delivery implementations (Web Push, FCM).
package push

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"canino/config"
	"canino/internal/domain/entity"
	"canino/internal/domain/service"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/pkg/errors"
)

const defaultPushTTLSeconds = 3600

// webPushSender implements service.PushSender using the Web Push protocol
// with VAPID authentication.
type webPushSender struct {
	publicKey  string
	privateKey string
	subscriber string
	ttl        int
}

// NewWebPushSender is the constructor for webPushSender.
func NewWebPushSender(cfg *config.Config) (service.PushSender, error) {
	wp := cfg.WebPush
	if wp == nil || wp.VAPIDPublicKey == "" || wp.VAPIDPrivateKey == "" {
		return nil, errors.New("web push requires a VAPID key pair")
	}

	ttl := wp.TTLSeconds
	if ttl <= 0 {
		ttl = defaultPushTTLSeconds
	}

	return &webPushSender{
		publicKey:  wp.VAPIDPublicKey,
		privateKey: wp.VAPIDPrivateKey,
		subscriber: wp.Subscriber,
		ttl:        ttl,
	}, nil
}

// Send delivers one payload to one subscription endpoint. A 404 or 410 from
// the push service means the endpoint no longer exists; that is reported as
// service.ErrSubscriptionGone so the caller can deactivate the subscription.
func (s *webPushSender) Send(ctx context.Context, sub *entity.PushSubscription, payload *service.PushPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode push payload")
	}

	target := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}

	resp, err := webpush.SendNotificationWithContext(ctx, body, target, &webpush.Options{
		Subscriber:      s.subscriber,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		TTL:             s.ttl,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send web push")
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return service.ErrSubscriptionGone
	case resp.StatusCode >= 400:
		return errors.Errorf("push service returned status %d", resp.StatusCode)
	}

	return nil
}
