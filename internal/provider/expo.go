// Package provider adapts the push clients to the dispatcher's provider interface.
package provider

import (
	"context"

	"github.com/aliskhannn/birthday-notifier/internal/model"
	"github.com/aliskhannn/birthday-notifier/pkg/expo"
)

type expoClient interface {
	Send(ctx context.Context, messages []expo.Message) ([]expo.Ticket, error)
	Receipts(ctx context.Context, ids []string) (map[string]expo.Receipt, error)
}

// Expo delivers through the Expo push service.
type Expo struct {
	client expoClient
}

func NewExpo(client expoClient) *Expo {
	return &Expo{client: client}
}

func (e *Expo) Name() string { return "expo" }

func (e *Expo) ChunkSize() int { return expo.MaxMessagesPerRequest }

func (e *Expo) ReceiptChunkSize() int { return expo.MaxReceiptIDsPerRequest }

func (e *Expo) Send(ctx context.Context, messages []model.PushMessage) ([]model.DeliveryTicket, error) {
	out := make([]expo.Message, len(messages))
	for i, m := range messages {
		out[i] = expo.Message{
			To:    m.To,
			Title: m.Title,
			Body:  m.Body,
			Sound: m.Sound,
			Data:  m.Data,
		}
	}

	tickets, err := e.client.Send(ctx, out)
	if err != nil {
		return nil, err
	}

	res := make([]model.DeliveryTicket, len(tickets))
	for i, t := range tickets {
		res[i] = model.DeliveryTicket{
			Status:    t.Status,
			ID:        t.ID,
			Message:   t.Message,
			ErrorCode: t.Details.Error,
		}
	}

	return res, nil
}

func (e *Expo) Receipts(ctx context.Context, ids []string) (map[string]model.Receipt, error) {
	receipts, err := e.client.Receipts(ctx, ids)
	if err != nil {
		return nil, err
	}

	res := make(map[string]model.Receipt, len(receipts))
	for id, r := range receipts {
		res[id] = model.Receipt{
			Status:    r.Status,
			Message:   r.Message,
			ErrorCode: r.Details.Error,
		}
	}

	return res, nil
}
