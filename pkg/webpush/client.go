// Package webpush sends Web Push notifications signed with VAPID keys.
package webpush

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
)

// ErrGone is returned when the push service reports the subscription as expired or unknown.
var ErrGone = errors.New("subscription gone")

// Subscription is the browser's PushSubscription in its JSON form.
type Subscription struct {
	Endpoint string `json:"endpoint"`
	Keys     struct {
		P256dh string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
}

// ParseSubscription decodes a JSON subscription token.
func ParseSubscription(token string) (*webpush.Subscription, error) {
	var s Subscription
	if err := json.Unmarshal([]byte(token), &s); err != nil {
		return nil, fmt.Errorf("decode subscription: %w", err)
	}

	if s.Endpoint == "" || s.Keys.P256dh == "" || s.Keys.Auth == "" {
		return nil, errors.New("incomplete subscription")
	}

	return &webpush.Subscription{
		Endpoint: s.Endpoint,
		Keys: webpush.Keys{
			P256dh: s.Keys.P256dh,
			Auth:   s.Keys.Auth,
		},
	}, nil
}

type Client struct {
	subscriber string
	publicKey  string
	privateKey string
	ttl        int
	httpClient webpush.HTTPClient
}

// NewClient creates a client that signs requests with the VAPID key pair.
// The subscriber is a mailto: or https: contact for the push service.
func NewClient(subscriber, publicKey, privateKey string, ttl int, httpClient webpush.HTTPClient) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		subscriber: subscriber,
		publicKey:  publicKey,
		privateKey: privateKey,
		ttl:        ttl,
		httpClient: httpClient,
	}
}

// Send encrypts the payload for the subscription token and posts it to the push service.
func (c *Client) Send(ctx context.Context, token string, payload []byte) error {
	sub, err := ParseSubscription(token)
	if err != nil {
		return err
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, sub, &webpush.Options{
		HTTPClient:      c.httpClient,
		Subscriber:      c.subscriber,
		VAPIDPublicKey:  c.publicKey,
		VAPIDPrivateKey: c.privateKey,
		TTL:             c.ttl,
	})
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return ErrGone
	case resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("push service returned %d: %s", resp.StatusCode, body)
	}

	return nil
}
