// Package metrics holds the Prometheus collectors of the reminder pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "birthday_notifier"

type Metrics struct {
	Runs            *prometheus.CounterVec
	RunDuration     prometheus.Histogram
	Candidates      prometheus.Counter
	Notifications   prometheus.Counter
	PushTickets     *prometheus.CounterVec
	FailedChunks    prometheus.Counter
	Unregistered    prometheus.Counter
	EmailsQueued    prometheus.Counter
	ReceiptsChecked prometheus.Counter
	ReceiptErrors   prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Pipeline runs by outcome.",
		}, []string{"outcome"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Pipeline run duration.",
			Buckets:   prometheus.DefBuckets,
		}),
		Candidates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_total",
			Help:      "Pairs found due for a reminder.",
		}),
		Notifications: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_created_total",
			Help:      "Notification records persisted.",
		}),
		PushTickets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_tickets_total",
			Help:      "Push tickets by status.",
		}, []string{"status"}),
		FailedChunks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_failed_chunks_total",
			Help:      "Push chunks the provider rejected as a whole.",
		}),
		Unregistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_disabled_profiles_total",
			Help:      "Profiles whose push notifications were turned off.",
		}),
		EmailsQueued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_queued_total",
			Help:      "Reminder emails published to the queue.",
		}),
		ReceiptsChecked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_receipts_checked_total",
			Help:      "Push tickets whose receipts were fetched.",
		}),
		ReceiptErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_receipt_errors_total",
			Help:      "Push receipts reporting a delivery error.",
		}),
	}

	reg.MustRegister(
		m.Runs,
		m.RunDuration,
		m.Candidates,
		m.Notifications,
		m.PushTickets,
		m.FailedChunks,
		m.Unregistered,
		m.EmailsQueued,
		m.ReceiptsChecked,
		m.ReceiptErrors,
	)

	return m
}
