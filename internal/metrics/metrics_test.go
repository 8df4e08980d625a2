package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Runs.WithLabelValues("ok").Inc()
	m.PushTickets.WithLabelValues("ok").Add(6)
	m.PushTickets.WithLabelValues("error").Inc()
	m.Candidates.Add(7)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("ok")))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.PushTickets.WithLabelValues("ok")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.Candidates))

	n, err := testutil.GatherAndCount(reg, "birthday_notifier_push_tickets_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestNew_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}
