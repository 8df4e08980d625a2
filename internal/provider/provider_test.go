package provider

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/birthday-notifier/internal/model"
	"github.com/aliskhannn/birthday-notifier/pkg/expo"
	"github.com/aliskhannn/birthday-notifier/pkg/webpush"
)

type fakeExpo struct {
	sent    []expo.Message
	tickets []expo.Ticket
	err     error
}

func (f *fakeExpo) Send(_ context.Context, messages []expo.Message) ([]expo.Ticket, error) {
	f.sent = messages
	return f.tickets, f.err
}

func (f *fakeExpo) Receipts(_ context.Context, ids []string) (map[string]expo.Receipt, error) {
	out := make(map[string]expo.Receipt, len(ids))
	for _, id := range ids {
		out[id] = expo.Receipt{Status: "error", Details: expo.Details{Error: "DeviceNotRegistered"}}
	}
	return out, f.err
}

func TestExpo_Send(t *testing.T) {
	fake := &fakeExpo{tickets: []expo.Ticket{
		{Status: "ok", ID: "t-1"},
		{Status: "error", Message: "gone", Details: expo.Details{Error: "DeviceNotRegistered"}},
	}}
	p := NewExpo(fake)

	assert.Equal(t, 100, p.ChunkSize())
	assert.Equal(t, 300, p.ReceiptChunkSize())

	tickets, err := p.Send(context.Background(), []model.PushMessage{
		{To: "a", Title: "Birthday reminder", Body: "hi", Sound: "default", Data: map[string]string{"friendId": "f"}},
		{To: "b", Body: "hi"},
	})
	require.NoError(t, err)

	assert.Equal(t, "a", fake.sent[0].To)
	assert.Equal(t, "f", fake.sent[0].Data["friendId"])
	assert.True(t, tickets[0].OK())
	assert.Equal(t, "t-1", tickets[0].ID)
	assert.Equal(t, model.ErrorDeviceNotRegistered, tickets[1].ErrorCode)
}

func TestExpo_SendError(t *testing.T) {
	p := NewExpo(&fakeExpo{err: errors.New("HTTP 503")})

	_, err := p.Send(context.Background(), []model.PushMessage{{To: "a"}})
	assert.Error(t, err)
}

func TestExpo_Receipts(t *testing.T) {
	p := NewExpo(&fakeExpo{})

	receipts, err := p.Receipts(context.Background(), []string{"x"})
	require.NoError(t, err)
	assert.Equal(t, model.ErrorDeviceNotRegistered, receipts["x"].ErrorCode)
}

type fakeWebPush struct {
	mu       sync.Mutex
	payloads map[string]string
	errs     map[string]error
}

func (f *fakeWebPush) Send(_ context.Context, token string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads[token] = string(payload)
	return f.errs[token]
}

func TestWebPush_Send(t *testing.T) {
	fake := &fakeWebPush{
		payloads: map[string]string{},
		errs: map[string]error{
			"gone":   fmt.Errorf("send: %w", webpush.ErrGone),
			"broken": errors.New("push service returned 500"),
		},
	}
	p := NewWebPush(fake, 2)

	tickets, err := p.Send(context.Background(), []model.PushMessage{
		{To: "ok", Title: "Birthday reminder", Body: "hi"},
		{To: "gone", Body: "hi"},
		{To: "broken", Body: "hi"},
	})
	require.NoError(t, err)
	require.Len(t, tickets, 3)

	assert.True(t, tickets[0].OK())
	assert.NotEmpty(t, tickets[0].ID)
	assert.Equal(t, model.ErrorDeviceNotRegistered, tickets[1].ErrorCode)
	assert.Equal(t, model.StatusError, tickets[2].Status)
	assert.Empty(t, tickets[2].ErrorCode)
	assert.JSONEq(t, `{"title":"Birthday reminder","body":"hi"}`, fake.payloads["ok"])
}

func TestWebPush_Receipts(t *testing.T) {
	receipts, err := NewWebPush(nil, 1).Receipts(context.Background(), []string{"x", "y"})
	assert.NoError(t, err)
	assert.Equal(t, map[string]model.Receipt{
		"x": {Status: model.StatusOK},
		"y": {Status: model.StatusOK},
	}, receipts)
}
