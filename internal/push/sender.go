// Package push delivers web-push notifications to stored browser
// subscriptions using VAPID keys.
package push

import (
	"encoding/json"
	"fmt"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/config"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
)

// ErrSubscriptionGone reports that the push service no longer knows the
// endpoint and the subscription should be pruned.
var ErrSubscriptionGone = fmt.Errorf("push subscription gone")

type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
}

type Sender struct {
	conf *config.PushConfig
}

func NewSender(conf *config.PushConfig) *Sender {
	return &Sender{
		conf: conf,
	}
}

func (s *Sender) Send(sub domain.PushSubscription, notification Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	resp, err := webpush.SendNotification(payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		Subscriber:      s.conf.Subscriber,
		VAPIDPublicKey:  s.conf.VAPIDPublicKey,
		VAPIDPrivateKey: s.conf.VAPIDPrivateKey,
		TTL:             3600,
	})
	if err != nil {
		return fmt.Errorf("webpush.SendNotification -> %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotFound, http.StatusGone:
		return ErrSubscriptionGone
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("push service returned %v", resp.StatusCode)
	}

	return nil
}
