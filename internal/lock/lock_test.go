package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis emulates SET NX and the compare-and-delete script on one key.
type fakeRedis struct {
	value string
	ttl   time.Duration
	err   error
}

func (f *fakeRedis) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if f.value != "" {
		return redis.NewBoolResult(false, nil)
	}
	f.value = value.(string)
	f.ttl = expiration
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	if f.err != nil {
		return redis.NewCmdResult(nil, f.err)
	}
	if f.value != "" && f.value == args[0] {
		f.value = ""
		return redis.NewCmdResult(int64(1), nil)
	}
	return redis.NewCmdResult(int64(0), nil)
}

func TestRedis_TryLockAndUnlock(t *testing.T) {
	ctx := context.Background()
	fake := &fakeRedis{}
	l := NewRedis(fake, "birthday:run", time.Minute)

	token, ok, err := l.TryLock(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, token)
	assert.Equal(t, time.Minute, fake.ttl)

	_, ok, err = l.TryLock(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, l.Unlock(ctx, "someone-else"), ErrNotHeld)
	assert.NoError(t, l.Unlock(ctx, token))

	_, ok, err = l.TryLock(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedis_Errors(t *testing.T) {
	ctx := context.Background()
	l := NewRedis(&fakeRedis{err: errors.New("connection refused")}, "k", time.Second)

	_, ok, err := l.TryLock(ctx)
	assert.Error(t, err)
	assert.False(t, ok)

	assert.ErrorContains(t, l.Unlock(ctx, "t"), "connection refused")
}

func TestLocal(t *testing.T) {
	ctx := context.Background()
	l := NewLocal()

	token, ok, err := l.TryLock(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, _ = l.TryLock(ctx)
	assert.False(t, ok)

	assert.ErrorIs(t, l.Unlock(ctx, "bogus"), ErrNotHeld)
	assert.NoError(t, l.Unlock(ctx, token))
	assert.ErrorIs(t, l.Unlock(ctx, token), ErrNotHeld)

	_, ok, _ = l.TryLock(ctx)
	assert.True(t, ok)
}

func TestReleaseScript_ComparesToken(t *testing.T) {
	assert.Contains(t, releaseScript, `redis.call("GET", KEYS[1]) == ARGV[1]`)
}
