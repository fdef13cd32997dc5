package push

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/sentinel-dakar/flood_reporting_system/internal/models"
)

// ErrSubscriptionGone marks a delivery rejected because the client
// registration expired or was cancelled (HTTP 404/410 from the push service).
// The owning subscription row must be deleted.
var ErrSubscriptionGone = errors.New("push subscription gone")

// Sender delivers an encrypted payload to a single push subscription.
type Sender interface {
	Send(ctx context.Context, sub *models.PushSubscription, payload []byte) error
}

// WebpushSender implements Sender on top of the Web Push protocol with VAPID
// authentication.
type WebpushSender struct {
	publicKey  string
	privateKey string
	subject    string
	ttl        int
	httpClient *http.Client
}

// NewWebpushSender creates a sender signing with the server VAPID key pair.
// Each delivery is bounded by timeout so one unresponsive push endpoint
// cannot stall a fan-out indefinitely.
func NewWebpushSender(publicKey, privateKey, subject string, ttl int, timeout time.Duration) *WebpushSender {
	return &WebpushSender{
		publicKey:  publicKey,
		privateKey: privateKey,
		subject:    subject,
		ttl:        ttl,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send pushes the payload to the subscription endpoint.
func (s *WebpushSender) Send(ctx context.Context, sub *models.PushSubscription, payload []byte) error {
	target := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, target, &webpush.Options{
		HTTPClient:      s.httpClient,
		Subscriber:      s.subject,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		TTL:             s.ttl,
	})
	if err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return ErrSubscriptionGone
	case resp.StatusCode >= 400:
		return fmt.Errorf("push service returned status %d", resp.StatusCode)
	}
	return nil
}
