package push

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"
)

// Reconciler turns push off for users whose device is no longer registered.
type Reconciler struct {
	profiles profileRepository
}

// NewReconciler creates a new reconciler.
func NewReconciler(profiles profileRepository) *Reconciler {
	return &Reconciler{profiles: profiles}
}

// Unregister disables push for every profile owning one of the tokens and
// returns the number of profiles changed. Push is never re-enabled here.
func (r *Reconciler) Unregister(ctx context.Context, tokens []string) (int64, error) {
	seen := make(map[string]struct{}, len(tokens))
	unique := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		unique = append(unique, t)
	}

	if len(unique) == 0 {
		return 0, nil
	}

	n, err := r.profiles.DisablePush(ctx, unique)
	if err != nil {
		return 0, fmt.Errorf("unregister tokens: %w", err)
	}

	zlog.Logger.Info().Int("tokens", len(unique)).Int64("profiles", n).Msg("push disabled for unregistered devices")

	return n, nil
}
