package push

import (
	"context"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/birthday-notifier/internal/model"
)

// ReceiptRetention is how long a provider keeps receipts. Tickets still
// without a receipt after it are given up on.
const ReceiptRetention = 24 * time.Hour

// ReceiptReport summarizes a receipt check.
type ReceiptReport struct {
	Checked      int
	Errors       int
	Expired      int
	Unregistered int64
}

// ReceiptChecker fetches delivery receipts for stored tickets.
type ReceiptChecker struct {
	provider   Provider
	tickets    ticketRepository
	reconciler *Reconciler
	delay      time.Duration
	batch      int
	now        func() time.Time
}

// NewReceiptChecker creates a checker that looks at tickets at least delay old, batch at a time.
func NewReceiptChecker(provider Provider, tickets ticketRepository, reconciler *Reconciler, delay time.Duration, batch int) *ReceiptChecker {
	if batch <= 0 {
		batch = 1000
	}

	return &ReceiptChecker{
		provider:   provider,
		tickets:    tickets,
		reconciler: reconciler,
		delay:      delay,
		batch:      batch,
		now:        time.Now,
	}
}

// Check loads unchecked tickets, fetches their receipts, unregisters dead
// devices and marks the tickets that got a receipt as checked. Tickets the
// provider has no receipt for yet stay unchecked until ReceiptRetention
// passes. Failures are logged.
func (rc *ReceiptChecker) Check(ctx context.Context) ReceiptReport {
	var report ReceiptReport

	now := rc.now()
	pending, err := rc.tickets.ListUnchecked(ctx, now.Add(-rc.delay), rc.batch)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list unchecked tickets")
		return report
	}

	if len(pending) == 0 {
		return report
	}

	byID := make(map[string]model.PushTicket, len(pending))
	ids := make([]string, 0, len(pending))
	for _, t := range pending {
		byID[t.TicketID] = t
		ids = append(ids, t.TicketID)
	}

	var (
		checked []string
		dead    []string
	)

	for _, chunk := range Chunk(ids, rc.provider.ReceiptChunkSize()) {
		receipts, err := rc.provider.Receipts(ctx, chunk)
		if err != nil {
			zlog.Logger.Error().Err(err).Int("tickets", len(chunk)).Msg("failed to fetch receipts")
			continue
		}

		for _, id := range chunk {
			if _, ok := receipts[id]; ok {
				checked = append(checked, id)
				continue
			}

			if now.Sub(byID[id].CreatedAt) >= ReceiptRetention {
				report.Expired++
				checked = append(checked, id)
				zlog.Logger.Warn().Str("ticket_id", id).Msg("no receipt within retention, giving up")
			}
		}

		for id, r := range receipts {
			if r.Status == model.StatusOK {
				continue
			}

			report.Errors++
			zlog.Logger.Warn().
				Str("ticket_id", id).
				Str("error_code", r.ErrorCode).
				Str("message", r.Message).
				Msg("push receipt error")

			if r.ErrorCode == model.ErrorDeviceNotRegistered {
				if t, ok := byID[id]; ok {
					dead = append(dead, t.Token)
				}
			}
		}
	}

	if len(dead) > 0 {
		n, err := rc.reconciler.Unregister(ctx, dead)
		if err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to unregister devices from receipts")
		}
		report.Unregistered = n
	}

	if len(checked) > 0 {
		if _, err := rc.tickets.MarkChecked(ctx, checked, now); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to mark tickets checked")
		} else {
			report.Checked = len(checked)
		}
	}

	return report
}
