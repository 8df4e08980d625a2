package queue

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

const (
	ExchangeName   = "birthday-exchange"
	MainQueueName  = "birthday-email-queue"
	RetryQueueName = "birthday-email-retry"
	DLQName        = "birthday-email-dlq"
	RoutingKey     = "email"
	RetryRouting   = "email.retry"
	DeadRouting    = "email.dead"

	// MaxDeliveries is how many times a message is consumed before it is dead-lettered.
	MaxDeliveries = 3

	retryTTL = int32(5000) // ms before a retried message returns to the main queue
)

// EmailMessage is a reminder email waiting to be sent.
type EmailMessage struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	FriendID uuid.UUID `json:"friend_id"`
	To       string    `json:"to"`
	Subject  string    `json:"subject"`
	Body     string    `json:"body"`
	Attempt  int       `json:"attempt"`
}

type EmailQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer
}

// NewEmailQueue declares the exchange, the main queue and its retry and dead-letter queues.
func NewEmailQueue(ch *rabbitmq.Channel) (*EmailQueue, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(DLQName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": MainQueueName,
		"x-message-ttl":             retryTTL,
	}

	_, err = qm.DeclareQueue(RetryQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": DLQName,
	}

	mainQ, err := qm.DeclareQueue(MainQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	if err := ch.QueueBind(RetryQueueName, RetryRouting, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the retry queue: %w", err)
	}

	if err := ch.QueueBind(DLQName, DeadRouting, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the DLQ: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &EmailQueue{Publisher: pub, Consumer: cons}, nil
}

// Publish encodes the message as JSON and publishes it with the given retry strategy.
func (q *EmailQueue) Publish(msg EmailMessage, strategy retry.Strategy) error {
	return q.publish(msg, RoutingKey, strategy)
}

// Retry parks the message in the retry queue with its attempt counter bumped.
// It returns to the main queue once retryTTL expires.
func (q *EmailQueue) Retry(msg EmailMessage, strategy retry.Strategy) error {
	msg.Attempt++
	return q.publish(msg, RetryRouting, strategy)
}

// DeadLetter moves the message to the DLQ.
func (q *EmailQueue) DeadLetter(msg EmailMessage, strategy retry.Strategy) error {
	return q.publish(msg, DeadRouting, strategy)
}

func (q *EmailQueue) publish(msg EmailMessage, routingKey string, strategy retry.Strategy) error {
	body, err := Encode(msg)
	if err != nil {
		return err
	}

	return q.Publisher.PublishWithRetry(body, routingKey, "application/json", strategy)
}

// Exhausted reports whether msg has used up its deliveries.
func Exhausted(msg EmailMessage) bool {
	return msg.Attempt+1 >= MaxDeliveries
}

// Consume decodes deliveries into out until the consumer stops. Malformed bodies are logged and dropped.
func (q *EmailQueue) Consume(out chan<- EmailMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			msg, err := Decode(m)
			if err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal message")
				continue
			}

			out <- msg
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}

func Encode(msg EmailMessage) ([]byte, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return body, nil
}

func Decode(body []byte) (EmailMessage, error) {
	var msg EmailMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return EmailMessage{}, fmt.Errorf("failed to unmarshal message: %w", err)
	}

	if msg.To == "" {
		return EmailMessage{}, fmt.Errorf("message %s has no recipient", msg.ID)
	}

	return msg, nil
}
