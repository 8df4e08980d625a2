// Package push sends birthday reminders to a push provider and reconciles the
// provider's answers with the stored notifications and profiles.
package push

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/birthday-notifier/internal/model"
)

//go:generate mockgen -source=push.go -destination=../../mocks/service/push/mock.go -package=mocks

// Provider is a push delivery service.
type Provider interface {
	// Name identifies the provider in logs and metrics.
	Name() string
	// ChunkSize is the maximum number of messages per Send call.
	ChunkSize() int
	// ReceiptChunkSize is the maximum number of ticket ids per Receipts call.
	ReceiptChunkSize() int
	// Send returns one ticket per message, in message order.
	Send(ctx context.Context, messages []model.PushMessage) ([]model.DeliveryTicket, error)
	// Receipts returns the receipts that are available, keyed by ticket id.
	Receipts(ctx context.Context, ticketIDs []string) (map[string]model.Receipt, error)
}

type recordRepository interface {
	AttachTicket(ctx context.Context, userID, friendID uuid.UUID, ticketID string, since time.Time) error
}

type ticketRepository interface {
	Save(ctx context.Context, tickets []model.PushTicket) error
	ListUnchecked(ctx context.Context, olderThan time.Time, limit int) ([]model.PushTicket, error)
	MarkChecked(ctx context.Context, ticketIDs []string, at time.Time) (int64, error)
}

type profileRepository interface {
	DisablePush(ctx context.Context, tokens []string) (int64, error)
}
