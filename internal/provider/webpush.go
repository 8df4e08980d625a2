package provider

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/birthday-notifier/internal/model"
	"github.com/aliskhannn/birthday-notifier/pkg/webpush"
)

const webPushChunkSize = 100

type webPushClient interface {
	Send(ctx context.Context, token string, payload []byte) error
}

type webPushPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// WebPush delivers to browser subscriptions. Each message's token is a JSON PushSubscription.
type WebPush struct {
	client      webPushClient
	concurrency int
}

func NewWebPush(client webPushClient, concurrency int) *WebPush {
	if concurrency <= 0 {
		concurrency = 1
	}

	return &WebPush{client: client, concurrency: concurrency}
}

func (w *WebPush) Name() string { return "webpush" }

func (w *WebPush) ChunkSize() int { return webPushChunkSize }

func (w *WebPush) ReceiptChunkSize() int { return webPushChunkSize }

// Send posts every message on its own and returns a ticket per message.
// Tickets of accepted messages get a locally generated id.
func (w *WebPush) Send(ctx context.Context, messages []model.PushMessage) ([]model.DeliveryTicket, error) {
	tickets := make([]model.DeliveryTicket, len(messages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)

	for i, m := range messages {
		g.Go(func() error {
			payload, err := json.Marshal(webPushPayload{Title: m.Title, Body: m.Body, Data: m.Data})
			if err != nil {
				return err
			}

			tickets[i] = ticketFor(w.client.Send(gctx, m.To, payload))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return tickets, nil
}

// Receipts reports every ticket as delivered. Web Push settles delivery when Send returns.
func (w *WebPush) Receipts(_ context.Context, ids []string) (map[string]model.Receipt, error) {
	receipts := make(map[string]model.Receipt, len(ids))
	for _, id := range ids {
		receipts[id] = model.Receipt{Status: model.StatusOK}
	}

	return receipts, nil
}

func ticketFor(err error) model.DeliveryTicket {
	switch {
	case err == nil:
		return model.DeliveryTicket{Status: model.StatusOK, ID: uuid.NewString()}
	case errors.Is(err, webpush.ErrGone):
		return model.DeliveryTicket{Status: model.StatusError, Message: err.Error(), ErrorCode: model.ErrorDeviceNotRegistered}
	default:
		return model.DeliveryTicket{Status: model.StatusError, Message: err.Error()}
	}
}
