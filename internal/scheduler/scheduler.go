// Package scheduler triggers the reminder pipeline on a fixed interval and
// makes sure only one run is in flight.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/birthday-notifier/internal/pipeline"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler/mock.go -package=mocks

// ErrRunInProgress is returned when a run is already executing in this process or another replica.
var ErrRunInProgress = errors.New("pipeline run in progress")

const unlockTimeout = 5 * time.Second

type runner interface {
	Run(ctx context.Context, now time.Time, clearance time.Duration) pipeline.Report
}

type locker interface {
	TryLock(ctx context.Context) (string, bool, error)
	Unlock(ctx context.Context, token string) error
}

type Config struct {
	Interval   time.Duration
	RunTimeout time.Duration
	Clearance  time.Duration
}

type Scheduler struct {
	runner  runner
	locker  locker
	cfg     Config
	running atomic.Bool
	wg      sync.WaitGroup
	now     func() time.Time
}

func New(r runner, l locker, cfg Config) *Scheduler {
	return &Scheduler{
		runner: r,
		locker: l,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Start ticks until ctx is done, then waits for the run in flight to finish.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	zlog.Logger.Info().Dur("interval", s.cfg.Interval).Msg("scheduler started")

	for {
		select {
		case <-ctx.Done():
			s.wg.Wait()
			zlog.Logger.Print("scheduler stopped")
			return
		case <-ticker.C:
			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				s.tick(ctx)
			}()
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	_, err := s.RunNow(ctx, s.cfg.Clearance)
	switch {
	case errors.Is(err, ErrRunInProgress):
		zlog.Logger.Debug().Msg("previous run still in progress, tick skipped")
	case err != nil:
		zlog.Logger.Error().Err(err).Msg("scheduled run failed")
	}
}

// Running reports whether a run is executing in this process.
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

// RunNow executes the pipeline once with the given clearance window.
func (s *Scheduler) RunNow(ctx context.Context, clearance time.Duration) (pipeline.Report, error) {
	if !s.running.CompareAndSwap(false, true) {
		return pipeline.Report{}, ErrRunInProgress
	}
	defer s.running.Store(false)

	token, ok, err := s.locker.TryLock(ctx)
	if err != nil {
		return pipeline.Report{}, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return pipeline.Report{}, ErrRunInProgress
	}
	defer func() {
		unlockCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), unlockTimeout)
		defer cancel()

		if err := s.locker.Unlock(unlockCtx, token); err != nil {
			zlog.Logger.Warn().Err(err).Msg("failed to release run lock")
		}
	}()

	runCtx := ctx
	if s.cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.cfg.RunTimeout)
		defer cancel()
	}

	return s.run(runCtx, clearance)
}

func (s *Scheduler) run(ctx context.Context, clearance time.Duration) (report pipeline.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			zlog.Logger.Error().Interface("panic", r).Msg("pipeline run panicked")
			err = fmt.Errorf("pipeline run panicked: %v", r)
		}
	}()

	return s.runner.Run(ctx, s.now(), clearance), nil
}
