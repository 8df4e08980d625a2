package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/birthday-notifier/internal/mocks/rabbitmq/handlers/email"
	"github.com/aliskhannn/birthday-notifier/internal/rabbitmq/queue"
)

func testMessage() queue.EmailMessage {
	return queue.EmailMessage{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		FriendID: uuid.New(),
		To:       "test@example.com",
		Subject:  "Birthday reminder",
		Body:     "Bob's birthday is today. Don't forget to tell them happy birthday!",
	}
}

func TestHandler_HandleMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockemailService(ctrl)
	mockQueue := mocks.NewMockrequeuer(ctrl)
	h := NewHandler(mockService, mockQueue)

	msg := testMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockService.EXPECT().Send(msg.To, msg.Subject, msg.Body).Return(nil)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_RetriesThenSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockemailService(ctrl)
	mockQueue := mocks.NewMockrequeuer(ctrl)
	h := NewHandler(mockService, mockQueue)

	msg := testMessage()
	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 1}

	gomock.InOrder(
		mockService.EXPECT().Send(msg.To, msg.Subject, msg.Body).Return(errors.New("421 try again")),
		mockService.EXPECT().Send(msg.To, msg.Subject, msg.Body).Return(nil),
	)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_SendFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockemailService(ctrl)
	mockQueue := mocks.NewMockrequeuer(ctrl)
	h := NewHandler(mockService, mockQueue)

	msg := testMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockService.EXPECT().Send(msg.To, msg.Subject, msg.Body).Return(errors.New("send error"))
	mockQueue.EXPECT().Retry(msg, strategy).Return(nil)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_LastAttemptDeadLetters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockemailService(ctrl)
	mockQueue := mocks.NewMockrequeuer(ctrl)
	h := NewHandler(mockService, mockQueue)

	msg := testMessage()
	msg.Attempt = queue.MaxDeliveries - 1
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockService.EXPECT().Send(msg.To, msg.Subject, msg.Body).Return(errors.New("550 mailbox unavailable"))
	mockQueue.EXPECT().DeadLetter(msg, strategy).Return(nil)
	mockQueue.EXPECT().Retry(gomock.Any(), gomock.Any()).Times(0)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_RequeueFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockemailService(ctrl)
	mockQueue := mocks.NewMockrequeuer(ctrl)
	h := NewHandler(mockService, mockQueue)

	msg := testMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockService.EXPECT().Send(msg.To, msg.Subject, msg.Body).Return(errors.New("send error"))
	mockQueue.EXPECT().Retry(msg, strategy).Return(errors.New("channel closed"))

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockemailService(ctrl)
	mockQueue := mocks.NewMockrequeuer(ctrl)
	h := NewHandler(mockService, mockQueue)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msg := testMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	// Send is never called once the context is done; the message is kept for a later delivery.
	mockQueue.EXPECT().Retry(msg, strategy).Return(nil)

	h.HandleMessage(ctx, msg, strategy)
}
