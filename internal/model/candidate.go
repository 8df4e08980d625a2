package model

import (
	"time"

	"github.com/google/uuid"
)

// EligiblePair is a (user, friend) row that passed the store-side filters:
// notifications enabled, friend opted in, no recent notification.
type EligiblePair struct {
	UserID             uuid.UUID
	Email              string
	Timezone           string
	Schedule           []int
	EmailNotifications bool
	PushNotifications  bool
	FriendID           uuid.UUID
	FriendName         string
	DOB                time.Time
	Token              string
}

// Candidate is a (user, friend) pair due for a notification.
type Candidate struct {
	UserID             uuid.UUID `json:"user_id"`
	Email              string    `json:"email"`
	Token              string    `json:"token,omitempty"` // empty when the user has no device
	FriendID           uuid.UUID `json:"friend_id"`
	FriendName         string    `json:"friend_name"`
	DaysUntil          int       `json:"days_until"`
	EmailNotifications bool      `json:"email_notifications"`
	PushNotifications  bool      `json:"push_notifications"`
}

// HasToken reports whether a push token is attached.
func (c Candidate) HasToken() bool {
	return c.Token != ""
}

// PairKey identifies a (user, friend) pair.
type PairKey struct {
	UserID   uuid.UUID
	FriendID uuid.UUID
}

// Key returns the candidate's pair key.
func (c Candidate) Key() PairKey {
	return PairKey{UserID: c.UserID, FriendID: c.FriendID}
}
