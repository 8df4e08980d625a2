package push

import (
	"fmt"

	"github.com/aliskhannn/birthday-notifier/internal/model"
)

const (
	Title        = "Birthday reminder"
	DefaultSound = "default"
)

// Body returns the reminder copy for a friend's birthday that is days away.
func Body(name string, days int) string {
	switch days {
	case 30:
		return fmt.Sprintf("%s's birthday is 30 days away! Get personalized gift recommendations in the Explore tab and save to their favorites for later.", name)
	case 7:
		return fmt.Sprintf("%s's birthday is 7 days away! Venture to their favorite gifts to find the perfect one.", name)
	case 3:
		return fmt.Sprintf("%s's birthday is 3 days away! Did you get them a gift yet?", name)
	case 0:
		return fmt.Sprintf("%s's birthday is today. Don't forget to tell them happy birthday!", name)
	default:
		return fmt.Sprintf("%s's birthday is %d days away!", name, days)
	}
}

// NewMessage builds the push message for a candidate.
func NewMessage(c model.Candidate) model.PushMessage {
	return model.PushMessage{
		To:    c.Token,
		Title: Title,
		Body:  Body(c.FriendName, c.DaysUntil),
		Sound: DefaultSound,
		Data:  map[string]string{"friendId": c.FriendID.String()},
	}
}

// Chunk splits items into consecutive chunks of at most size elements.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = 1
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}

	return chunks
}
