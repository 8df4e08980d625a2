package push

import (
	"context"
	"errors"
	"time"

	"github.com/wb-go/wbf/zlog"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/birthday-notifier/internal/model"
	"github.com/aliskhannn/birthday-notifier/internal/repository/notification"
)

// DispatcherConfig tunes how messages are handed to the provider.
type DispatcherConfig struct {
	ChunkSize    int           // upper bound below the provider's own limit; 0 keeps the provider's
	Concurrency  int           // chunks in flight
	TicketWindow time.Duration // how far back a record may be to receive its ticket id
}

// ChunkResult is the outcome of sending one chunk.
type ChunkResult struct {
	Candidates []model.Candidate
	Tickets    []model.DeliveryTicket
	Err        error
}

// Result summarizes a dispatch.
type Result struct {
	Sent         int
	OK           int
	Errors       int
	FailedChunks int
	Attached     int
	Unregister   []string
}

// Dispatcher sends push reminders in provider-sized chunks.
type Dispatcher struct {
	provider Provider
	records  recordRepository
	tickets  ticketRepository
	cfg      DispatcherConfig
	now      func() time.Time
}

// NewDispatcher creates a new push dispatcher.
func NewDispatcher(provider Provider, records recordRepository, tickets ticketRepository, cfg DispatcherConfig) *Dispatcher {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.TicketWindow <= 0 {
		cfg.TicketWindow = time.Hour
	}

	return &Dispatcher{
		provider: provider,
		records:  records,
		tickets:  tickets,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (d *Dispatcher) chunkSize() int {
	size := d.provider.ChunkSize()
	if d.cfg.ChunkSize > 0 && d.cfg.ChunkSize < size {
		size = d.cfg.ChunkSize
	}

	return size
}

// Dispatch sends a reminder to every candidate with push enabled and a token.
//
// Tickets are matched to candidates by position within their chunk. Accepted
// tickets are attached to the pair's newest record and stored for receipt
// checks. Tokens rejected as DeviceNotRegistered are returned for unregistration.
func (d *Dispatcher) Dispatch(ctx context.Context, candidates []model.Candidate) Result {
	var targets []model.Candidate
	for _, c := range candidates {
		if c.PushNotifications && c.HasToken() {
			targets = append(targets, c)
		}
	}

	var res Result
	if len(targets) == 0 {
		return res
	}

	chunks := Chunk(targets, d.chunkSize())
	results := make([]ChunkResult, len(chunks))

	var g errgroup.Group
	g.SetLimit(d.cfg.Concurrency)

	for i, chunk := range chunks {
		g.Go(func() error {
			results[i] = d.sendChunk(ctx, chunk)
			return nil
		})
	}
	_ = g.Wait()

	since := d.now().Add(-d.cfg.TicketWindow)
	var accepted []model.PushTicket

	for i, r := range results {
		res.Sent += len(r.Candidates)

		if r.Err != nil {
			res.FailedChunks++
			zlog.Logger.Error().Err(r.Err).Int("chunk", i).Int("size", len(r.Candidates)).Msg("failed to send push chunk")
			continue
		}

		n := min(len(r.Tickets), len(r.Candidates))
		if len(r.Tickets) != len(r.Candidates) {
			zlog.Logger.Warn().
				Int("chunk", i).
				Int("messages", len(r.Candidates)).
				Int("tickets", len(r.Tickets)).
				Msg("ticket count does not match message count")
		}

		for j := 0; j < n; j++ {
			c, t := r.Candidates[j], r.Tickets[j]

			if !t.OK() {
				res.Errors++
				zlog.Logger.Warn().
					Str("user_id", c.UserID.String()).
					Str("friend_id", c.FriendID.String()).
					Str("error_code", t.ErrorCode).
					Str("message", t.Message).
					Msg("push rejected")

				if t.ErrorCode == model.ErrorDeviceNotRegistered {
					res.Unregister = append(res.Unregister, c.Token)
				}
				continue
			}

			res.OK++
			accepted = append(accepted, model.PushTicket{
				TicketID: t.ID,
				Token:    c.Token,
				UserID:   c.UserID,
				FriendID: c.FriendID,
			})

			if err := d.records.AttachTicket(ctx, c.UserID, c.FriendID, t.ID, since); err != nil {
				if errors.Is(err, notification.ErrNotificationNotFound) {
					zlog.Logger.Warn().
						Str("user_id", c.UserID.String()).
						Str("friend_id", c.FriendID.String()).
						Str("ticket_id", t.ID).
						Msg("no recent notification for ticket")
				} else {
					zlog.Logger.Error().Err(err).Str("ticket_id", t.ID).Msg("failed to attach ticket")
				}
				continue
			}
			res.Attached++
		}
	}

	if err := d.tickets.Save(ctx, accepted); err != nil {
		zlog.Logger.Error().Err(err).Int("tickets", len(accepted)).Msg("failed to save push tickets")
	}

	return res
}

func (d *Dispatcher) sendChunk(ctx context.Context, chunk []model.Candidate) ChunkResult {
	messages := make([]model.PushMessage, len(chunk))
	for i, c := range chunk {
		messages[i] = NewMessage(c)
	}

	tickets, err := d.provider.Send(ctx, messages)

	return ChunkResult{Candidates: chunk, Tickets: tickets, Err: err}
}
