package model

import (
	"time"

	"github.com/google/uuid"
)

// Ticket and receipt statuses reported by push providers.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ErrorDeviceNotRegistered is the provider error code for a dead push target.
const ErrorDeviceNotRegistered = "DeviceNotRegistered"

// PushMessage is a single message handed to a push provider.
type PushMessage struct {
	To    string            `json:"to"`
	Title string            `json:"title,omitempty"`
	Body  string            `json:"body"`
	Sound string            `json:"sound,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

// DeliveryTicket is a provider's synchronous per-message acknowledgment.
type DeliveryTicket struct {
	Status    string `json:"status"`
	ID        string `json:"id,omitempty"`
	Message   string `json:"message,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
}

// OK reports whether the provider accepted the message.
func (t DeliveryTicket) OK() bool {
	return t.Status == StatusOK
}

// Receipt is a provider's asynchronous delivery outcome for a ticket.
type Receipt struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
}

// PushTicket correlates an accepted ticket with the token it was sent to.
type PushTicket struct {
	TicketID  string     `json:"ticket_id"`
	Token     string     `json:"token"`
	UserID    uuid.UUID  `json:"user_id"`
	FriendID  uuid.UUID  `json:"friend_id"`
	CreatedAt time.Time  `json:"created_at"`
	CheckedAt *time.Time `json:"checked_at,omitempty"`
}
