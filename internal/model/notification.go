package model

import (
	"time"

	"github.com/google/uuid"
)

// Delivery methods recorded on a notification.
const (
	MethodDefault = "default"
	MethodPush    = "push"
	MethodEmail   = "email"
)

// Notification is a persisted birthday reminder for a (user, friend) pair.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Type      int       `json:"type"` // lead time in days
	UserID    uuid.UUID `json:"user_id"`
	FriendID  uuid.UUID `json:"friend_id"`
	Methods   []string  `json:"methods"`
	TicketID  string    `json:"ticket_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// HasMethod reports whether the notification was tagged with the given method.
func (n Notification) HasMethod(method string) bool {
	for _, m := range n.Methods {
		if m == method {
			return true
		}
	}

	return false
}
