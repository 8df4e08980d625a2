package worker

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/birthday-notifier/internal/rabbitmq/queue"
)

//go:generate mockgen -source=mailer.go -destination=../mocks/worker/mailer_mock.go -package=mocks

type emailQueue interface {
	Consume(out chan<- queue.EmailMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.EmailMessage, strategy retry.Strategy)
}

// Mailer drains the email queue with a pool of workers.
type Mailer struct {
	queue   emailQueue
	handler messageHandler
}

func NewMailer(q emailQueue, h messageHandler) *Mailer {
	return &Mailer{
		queue:   q,
		handler: h,
	}
}

// Run blocks until ctx is done.
func (m *Mailer) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	msgChan := make(chan queue.EmailMessage)

	go func() {
		if err := m.queue.Consume(msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume messages")
		}
	}()

	for i := 0; i < workerCount; i++ {
		go func(id int) {
			zlog.Logger.Printf("mailer-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("mailer-%d shutting down", id)
					return
				case msg := <-msgChan:
					m.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	zlog.Logger.Print("mailer stopped")
}
