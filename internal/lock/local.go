package lock

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrNotHeld is returned by Unlock when the token no longer owns the lock.
var ErrNotHeld = errors.New("lock not held")

// Local is an in-process lock for single-replica deployments.
type Local struct {
	mu    sync.Mutex
	token string
}

func NewLocal() *Local {
	return &Local{}
}

func (l *Local) TryLock(context.Context) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.token != "" {
		return "", false, nil
	}

	l.token = uuid.NewString()

	return l.token, true, nil
}

func (l *Local) Unlock(_ context.Context, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if token == "" || l.token != token {
		return ErrNotHeld
	}

	l.token = ""

	return nil
}
