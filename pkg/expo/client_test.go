package expo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(WithBaseURL(srv.URL+"/"), WithRetry(3, time.Millisecond), WithAccessToken("secret"))
}

func TestClient_Send(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/push/send", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var msgs []Message
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msgs))
		require.Len(t, msgs, 2)
		assert.Equal(t, "default", msgs[0].Sound)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"status": "ok", "id": "ticket-1"},
				{"status": "error", "message": "not registered", "details": map[string]string{"error": "DeviceNotRegistered"}},
			},
		})
	})

	tickets, err := c.Send(context.Background(), []Message{
		{To: "ExponentPushToken[a]", Body: "hi", Sound: "default"},
		{To: "ExponentPushToken[b]", Body: "hi", Sound: "default"},
	})
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "ok", tickets[0].Status)
	assert.Equal(t, "ticket-1", tickets[0].ID)
	assert.Equal(t, "DeviceNotRegistered", tickets[1].Details.Error)
}

func TestClient_SendRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"data":[{"status":"ok","id":"t"}]}`))
	})

	tickets, err := c.Send(context.Background(), []Message{{To: "x", Body: "y"}})
	require.NoError(t, err)
	assert.Len(t, tickets, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_SendDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"code":"VALIDATION_ERROR","message":"bad"}]}`))
	})

	_, err := c.Send(context.Background(), []Message{{To: "x", Body: "y"}})
	assert.ErrorContains(t, err, "HTTP 400")
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_SendRequestErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"code":"PUSH_TOO_MANY_EXPERIENCE_IDS","message":"mixed projects"}]}`))
	})

	_, err := c.Send(context.Background(), []Message{{To: "x", Body: "y"}})
	assert.ErrorContains(t, err, "PUSH_TOO_MANY_EXPERIENCE_IDS")
}

func TestClient_SendTooMany(t *testing.T) {
	c := NewClient()

	_, err := c.Send(context.Background(), make([]Message, MaxMessagesPerRequest+1))
	assert.Error(t, err)
}

func TestClient_Receipts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/push/getReceipts", r.URL.Path)

		var req receiptsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"a", "b"}, req.IDs)

		_, _ = w.Write([]byte(`{"data":{"a":{"status":"ok"},"b":{"status":"error","message":"gone","details":{"error":"DeviceNotRegistered"}}}}`))
	})

	receipts, err := c.Receipts(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "ok", receipts["a"].Status)
	assert.Equal(t, "DeviceNotRegistered", receipts["b"].Details.Error)
}

func TestClient_ReceiptsTooMany(t *testing.T) {
	_, err := NewClient().Receipts(context.Background(), make([]string, MaxReceiptIDsPerRequest+1))
	assert.Error(t, err)
}
