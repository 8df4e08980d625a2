package worker

import (
	"context"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/birthday-notifier/internal/service/push"
)

//go:generate mockgen -source=receipts.go -destination=../mocks/worker/receipts_mock.go -package=mocks

type receiptChecker interface {
	Check(ctx context.Context) push.ReceiptReport
}

// ReceiptPoller checks push receipts on a fixed interval.
type ReceiptPoller struct {
	checker  receiptChecker
	interval time.Duration
	onReport func(push.ReceiptReport)
}

func NewReceiptPoller(checker receiptChecker, interval time.Duration, onReport func(push.ReceiptReport)) *ReceiptPoller {
	return &ReceiptPoller{checker: checker, interval: interval, onReport: onReport}
}

// Run blocks until ctx is done.
func (p *ReceiptPoller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	zlog.Logger.Info().Dur("interval", p.interval).Msg("receipt poller started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Print("receipt poller stopped")
			return
		case <-ticker.C:
			report := p.checker.Check(ctx)
			if report.Checked > 0 || report.Errors > 0 {
				zlog.Logger.Info().
					Int("checked", report.Checked).
					Int("errors", report.Errors).
					Int64("unregistered", report.Unregistered).
					Msg("push receipts checked")
			}

			if p.onReport != nil {
				p.onReport(report)
			}
		}
	}
}
