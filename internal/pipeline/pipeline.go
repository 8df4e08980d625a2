// Package pipeline runs one pass of the birthday reminder pipeline:
// find due pairs, persist records, push, reconcile and queue emails.
package pipeline

import (
	"context"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/birthday-notifier/internal/metrics"
	"github.com/aliskhannn/birthday-notifier/internal/model"
	"github.com/aliskhannn/birthday-notifier/internal/service/push"
)

//go:generate mockgen -source=pipeline.go -destination=../mocks/pipeline/mock.go -package=mocks

type birthdayEngine interface {
	ApproachingBirthdays(ctx context.Context, now time.Time, clearance time.Duration) []model.Candidate
}

type recordWriter interface {
	CreateNotifications(ctx context.Context, candidates []model.Candidate) ([]model.Notification, error)
}

type pushDispatcher interface {
	Dispatch(ctx context.Context, candidates []model.Candidate) push.Result
}

type tokenReconciler interface {
	Unregister(ctx context.Context, tokens []string) (int64, error)
}

type emailEnqueuer interface {
	Enqueue(ctx context.Context, candidates []model.Candidate) int
}

// Report is the outcome of a run.
type Report struct {
	StartedAt     time.Time     `json:"started_at"`
	Duration      time.Duration `json:"duration"`
	Candidates    int           `json:"candidates"`
	Notifications int           `json:"notifications"`
	PushSent      int           `json:"push_sent"`
	PushOK        int           `json:"push_ok"`
	PushErrors    int           `json:"push_errors"`
	FailedChunks  int           `json:"failed_chunks"`
	Unregistered  int64         `json:"unregistered"`
	EmailsQueued  int           `json:"emails_queued"`
	Error         string        `json:"error,omitempty"`
}

type Pipeline struct {
	engine     birthdayEngine
	writer     recordWriter
	dispatcher pushDispatcher
	reconciler tokenReconciler
	mailer     emailEnqueuer
	metrics    *metrics.Metrics
}

// New creates a pipeline. mailer and m may be nil.
func New(
	engine birthdayEngine,
	writer recordWriter,
	dispatcher pushDispatcher,
	reconciler tokenReconciler,
	mailer emailEnqueuer,
	m *metrics.Metrics,
) *Pipeline {
	return &Pipeline{
		engine:     engine,
		writer:     writer,
		dispatcher: dispatcher,
		reconciler: reconciler,
		mailer:     mailer,
		metrics:    m,
	}
}

// Run executes the stages in order. Push and email only go to candidates
// whose record was persisted; if the record batch is lost nothing is sent.
func (p *Pipeline) Run(ctx context.Context, now time.Time, clearance time.Duration) (report Report) {
	report = Report{StartedAt: now}
	start := time.Now()

	outcome := "ok"
	defer func() {
		report.Duration = time.Since(start)
		p.observe(report, outcome)
	}()

	candidates := p.engine.ApproachingBirthdays(ctx, now, clearance)
	report.Candidates = len(candidates)
	if len(candidates) == 0 {
		outcome = "empty"
		return report
	}

	records, err := p.writer.CreateNotifications(ctx, candidates)
	if err != nil {
		zlog.Logger.Error().Err(err).Int("candidates", len(candidates)).Msg("notification batch lost, skipping delivery")
		report.Error = err.Error()
		outcome = "write_failed"
		return report
	}
	report.Notifications = len(records)

	persisted := Persisted(candidates, records)

	res := p.dispatcher.Dispatch(ctx, persisted)
	report.PushSent = res.Sent
	report.PushOK = res.OK
	report.PushErrors = res.Errors
	report.FailedChunks = res.FailedChunks

	if len(res.Unregister) > 0 {
		n, err := p.reconciler.Unregister(ctx, res.Unregister)
		if err != nil {
			zlog.Logger.Error().Err(err).Int("tokens", len(res.Unregister)).Msg("failed to unregister devices")
		}
		report.Unregistered = n
	}

	if p.mailer != nil {
		report.EmailsQueued = p.mailer.Enqueue(ctx, persisted)
	}

	zlog.Logger.Info().
		Int("candidates", report.Candidates).
		Int("notifications", report.Notifications).
		Int("push_ok", report.PushOK).
		Int("push_errors", report.PushErrors).
		Int64("unregistered", report.Unregistered).
		Int("emails_queued", report.EmailsQueued).
		Msg("pipeline run finished")

	return report
}

// Persisted returns the candidates that have a record of the same pair and lead time.
func Persisted(candidates []model.Candidate, records []model.Notification) []model.Candidate {
	type key struct {
		pair model.PairKey
		days int
	}

	written := make(map[key]struct{}, len(records))
	for _, r := range records {
		written[key{model.PairKey{UserID: r.UserID, FriendID: r.FriendID}, r.Type}] = struct{}{}
	}

	out := make([]model.Candidate, 0, len(records))
	for _, c := range candidates {
		if _, ok := written[key{c.Key(), c.DaysUntil}]; ok {
			out = append(out, c)
		}
	}

	return out
}

func (p *Pipeline) observe(r Report, outcome string) {
	if p.metrics == nil {
		return
	}

	p.metrics.Runs.WithLabelValues(outcome).Inc()
	p.metrics.RunDuration.Observe(r.Duration.Seconds())
	p.metrics.Candidates.Add(float64(r.Candidates))
	p.metrics.Notifications.Add(float64(r.Notifications))
	p.metrics.PushTickets.WithLabelValues("ok").Add(float64(r.PushOK))
	p.metrics.PushTickets.WithLabelValues("error").Add(float64(r.PushErrors))
	p.metrics.FailedChunks.Add(float64(r.FailedChunks))
	p.metrics.Unregistered.Add(float64(r.Unregistered))
	p.metrics.EmailsQueued.Add(float64(r.EmailsQueued))
}
