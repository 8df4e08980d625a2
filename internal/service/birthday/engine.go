package birthday

import (
	"context"
	"slices"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/birthday-notifier/internal/model"
)

//go:generate mockgen -source=engine.go -destination=../../mocks/service/birthday/mock.go -package=mocks

type pairRepository interface {
	ListEligiblePairs(ctx context.Context, since time.Time) ([]model.EligiblePair, error)
}

type leadResolver interface {
	DaysUntil(dob time.Time, tz string, ref time.Time) (int, error)
}

// Engine finds the (user, friend) pairs whose birthday lead time matches the user's schedule.
type Engine struct {
	repo     pairRepository
	resolver leadResolver
}

// NewEngine creates a new birthday query engine.
func NewEngine(repo pairRepository, resolver leadResolver) *Engine {
	return &Engine{repo: repo, resolver: resolver}
}

// ApproachingBirthdays returns the candidates due for a notification at now.
//
// Pairs notified after now-clearance are excluded by the store. A store
// failure is logged and yields an empty result; a pair with an unknown
// timezone is logged and skipped.
func (e *Engine) ApproachingBirthdays(ctx context.Context, now time.Time, clearance time.Duration) []model.Candidate {
	pairs, err := e.repo.ListEligiblePairs(ctx, now.Add(-clearance))
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to load eligible pairs")
		return []model.Candidate{}
	}

	candidates := make([]model.Candidate, 0, len(pairs))
	for _, p := range pairs {
		days, err := e.resolver.DaysUntil(p.DOB, p.Timezone, now)
		if err != nil {
			zlog.Logger.Warn().
				Err(err).
				Str("user_id", p.UserID.String()).
				Str("friend_id", p.FriendID.String()).
				Msg("skipping pair")
			continue
		}

		if !slices.Contains(p.Schedule, days) {
			continue
		}

		candidates = append(candidates, model.Candidate{
			UserID:             p.UserID,
			Email:              p.Email,
			Token:              p.Token,
			FriendID:           p.FriendID,
			FriendName:         p.FriendName,
			DaysUntil:          days,
			EmailNotifications: p.EmailNotifications,
			PushNotifications:  p.PushNotifications,
		})
	}

	return candidates
}
