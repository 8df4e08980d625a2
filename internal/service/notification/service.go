package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/birthday-notifier/internal/model"
	"github.com/aliskhannn/birthday-notifier/internal/repository/notification"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type notificationRepository interface {
	CreateBatch(ctx context.Context, notifications []model.Notification) ([]model.Notification, []notification.ItemError, error)
}

// Writer persists one notification record per candidate.
type Writer struct {
	repo notificationRepository
}

// NewWriter creates a new notification record writer.
func NewWriter(repo notificationRepository) *Writer {
	return &Writer{repo: repo}
}

// Methods returns the delivery methods recorded for the candidate.
func Methods(c model.Candidate) []string {
	methods := []string{model.MethodDefault}
	if c.PushNotifications {
		methods = append(methods, model.MethodPush)
	}
	if c.EmailNotifications {
		methods = append(methods, model.MethodEmail)
	}

	return methods
}

// CreateNotifications writes a record for every well-formed candidate and
// returns the records that were persisted. Malformed candidates and failed
// inserts are logged and left out without affecting the rest of the batch.
// An error means the whole batch was lost.
func (w *Writer) CreateNotifications(ctx context.Context, candidates []model.Candidate) ([]model.Notification, error) {
	batch := make([]model.Notification, 0, len(candidates))
	for _, c := range candidates {
		if c.UserID == uuid.Nil || c.FriendID == uuid.Nil || c.DaysUntil < 0 {
			zlog.Logger.Warn().
				Str("user_id", c.UserID.String()).
				Str("friend_id", c.FriendID.String()).
				Int("days_until", c.DaysUntil).
				Msg("skipping malformed candidate")
			continue
		}

		batch = append(batch, model.Notification{
			Type:     c.DaysUntil,
			UserID:   c.UserID,
			FriendID: c.FriendID,
			Methods:  Methods(c),
		})
	}

	if len(batch) == 0 {
		return []model.Notification{}, nil
	}

	created, failed, err := w.repo.CreateBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("create notifications: %w", err)
	}

	for _, f := range failed {
		n := batch[f.Index]
		zlog.Logger.Error().
			Err(f.Err).
			Str("user_id", n.UserID.String()).
			Str("friend_id", n.FriendID.String()).
			Int("type", n.Type).
			Msg("failed to create notification")
	}

	return created, nil
}
