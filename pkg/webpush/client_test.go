package webpush

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subscriptionToken(t *testing.T, endpoint string) string {
	t.Helper()

	key, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)

	auth := make([]byte, 16)
	_, err = rand.Read(auth)
	require.NoError(t, err)

	var s Subscription
	s.Endpoint = endpoint
	s.Keys.P256dh = base64.RawURLEncoding.EncodeToString(key.PublicKey().Bytes())
	s.Keys.Auth = base64.RawURLEncoding.EncodeToString(auth)

	b, err := json.Marshal(s)
	require.NoError(t, err)

	return string(b)
}

func newTestClient(t *testing.T) *Client {
	t.Helper()

	priv, pub, err := webpush.GenerateVAPIDKeys()
	require.NoError(t, err)

	return NewClient("mailto:ops@example.com", pub, priv, 60, nil)
}

func TestClient_Send(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "60", r.Header.Get("TTL"))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := newTestClient(t)

	err := c.Send(context.Background(), subscriptionToken(t, srv.URL+"/push/abc"), []byte(`{"title":"hi"}`))
	assert.NoError(t, err)
}

func TestClient_SendGone(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusGone} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		err := newTestClient(t).Send(context.Background(), subscriptionToken(t, srv.URL), []byte(`{}`))
		assert.ErrorIs(t, err, ErrGone)

		srv.Close()
	}
}

func TestClient_SendServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	err := newTestClient(t).Send(context.Background(), subscriptionToken(t, srv.URL), []byte(`{}`))
	assert.ErrorContains(t, err, "500")
	assert.NotErrorIs(t, err, ErrGone)
}

func TestParseSubscription(t *testing.T) {
	_, err := ParseSubscription("ExponentPushToken[abc]")
	assert.Error(t, err)

	_, err = ParseSubscription(`{"endpoint":"https://push.example.com/x"}`)
	assert.ErrorContains(t, err, "incomplete")

	sub, err := ParseSubscription(`{"endpoint":"https://push.example.com/x","keys":{"p256dh":"a","auth":"b"}}`)
	require.NoError(t, err)
	assert.Equal(t, "https://push.example.com/x", sub.Endpoint)
	assert.Equal(t, "a", sub.Keys.P256dh)
}
