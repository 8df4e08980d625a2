package email

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/birthday-notifier/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/email/mock.go -package=mocks
type emailService interface {
	Send(to, subject, body string) error
}

type requeuer interface {
	Retry(msg queue.EmailMessage, strategy retry.Strategy) error
	DeadLetter(msg queue.EmailMessage, strategy retry.Strategy) error
}

type Handler struct {
	service emailService
	queue   requeuer
}

func NewHandler(svc emailService, q requeuer) *Handler {
	return &Handler{
		service: svc,
		queue:   q,
	}
}

// HandleMessage sends the email, retrying with the strategy. A message that
// still fails goes to the retry queue, or to the DLQ once its deliveries are used up.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.EmailMessage, strategy retry.Strategy) {
	zlog.Logger.Info().Str("id", msg.ID.String()).Msg("handle message: got email")

	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return h.service.Send(msg.To, msg.Subject, msg.Body)
		}
	}, strategy)
	if err != nil {
		zlog.Logger.Error().
			Err(err).
			Str("id", msg.ID.String()).
			Str("user_id", msg.UserID.String()).
			Int("attempt", msg.Attempt).
			Msg("handle message: email failed")

		h.requeue(msg, strategy)
		return
	}

	zlog.Logger.Info().Str("id", msg.ID.String()).Msg("handle message: email sent")
}

func (h *Handler) requeue(msg queue.EmailMessage, strategy retry.Strategy) {
	if queue.Exhausted(msg) {
		if err := h.queue.DeadLetter(msg, strategy); err != nil {
			zlog.Logger.Error().Err(err).Str("id", msg.ID.String()).Msg("handle message: failed to dead-letter email")
			return
		}

		zlog.Logger.Warn().Str("id", msg.ID.String()).Msg("handle message: email dead-lettered")
		return
	}

	if err := h.queue.Retry(msg, strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("id", msg.ID.String()).Msg("handle message: failed to requeue email")
	}
}
