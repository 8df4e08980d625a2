package mailer

import (
	"context"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/birthday-notifier/internal/model"
	"github.com/aliskhannn/birthday-notifier/internal/rabbitmq/queue"
	"github.com/aliskhannn/birthday-notifier/internal/service/push"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/mailer/mock.go -package=mocks

type emailPublisher interface {
	Publish(msg queue.EmailMessage, strategy retry.Strategy) error
}

type emailSender interface {
	Send(to, subject, body string) error
}

// Service queues reminder emails and sends them through SMTP.
type Service struct {
	queue    emailPublisher
	sender   emailSender
	strategy retry.Strategy
}

// NewService creates a new mailer service.
func NewService(queue emailPublisher, sender emailSender, strategy retry.Strategy) *Service {
	return &Service{queue: queue, sender: sender, strategy: strategy}
}

// Enqueue publishes a reminder email for every candidate with email enabled
// and returns how many were queued. Publish failures are logged.
func (s *Service) Enqueue(ctx context.Context, candidates []model.Candidate) int {
	queued := 0
	for _, c := range candidates {
		if ctx.Err() != nil {
			zlog.Logger.Warn().Err(ctx.Err()).Int("queued", queued).Msg("email enqueue interrupted")
			break
		}

		if !c.EmailNotifications || c.Email == "" {
			continue
		}

		msg := queue.EmailMessage{
			ID:       uuid.New(),
			UserID:   c.UserID,
			FriendID: c.FriendID,
			To:       c.Email,
			Subject:  push.Title,
			Body:     push.Body(c.FriendName, c.DaysUntil),
		}

		if err := s.queue.Publish(msg, s.strategy); err != nil {
			zlog.Logger.Error().
				Err(err).
				Str("user_id", c.UserID.String()).
				Str("friend_id", c.FriendID.String()).
				Msg("failed to publish email")
			continue
		}

		queued++
	}

	return queued
}

// Send delivers one email.
func (s *Service) Send(to, subject, body string) error {
	return s.sender.Send(to, subject, body)
}
