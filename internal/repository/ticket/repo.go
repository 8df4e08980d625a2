package ticket

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/birthday-notifier/internal/model"
)

const (
	saveTicketsQuery = `
		INSERT INTO push_tickets (ticket_id, token, user_id, friend_id)
		SELECT * FROM unnest($1::text[], $2::text[], $3::uuid[], $4::uuid[])
		ON CONFLICT (ticket_id) DO NOTHING;
    `

	listUncheckedQuery = `
		SELECT ticket_id, token, user_id, friend_id, created_at
		FROM push_tickets
		WHERE checked_at IS NULL AND created_at <= $1
		ORDER BY created_at
		LIMIT $2;
    `

	markCheckedQuery = `
		UPDATE push_tickets
		SET checked_at = $1
		WHERE ticket_id = ANY($2);
    `
)

// Repository stores push tickets until their receipts are checked.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new push ticket repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Save inserts the tickets in one statement. Tickets that already exist are left untouched.
func (r *Repository) Save(ctx context.Context, tickets []model.PushTicket) error {
	if len(tickets) == 0 {
		return nil
	}

	ids := make([]string, len(tickets))
	tokens := make([]string, len(tickets))
	users := make([]string, len(tickets))
	friends := make([]string, len(tickets))

	for i, t := range tickets {
		ids[i] = t.TicketID
		tokens[i] = t.Token
		users[i] = t.UserID.String()
		friends[i] = t.FriendID.String()
	}

	_, err := r.db.ExecContext(ctx, saveTicketsQuery, pq.Array(ids), pq.Array(tokens), pq.Array(users), pq.Array(friends))
	if err != nil {
		return fmt.Errorf("failed to save push tickets: %w", err)
	}

	return nil
}

// ListUnchecked returns up to limit tickets created at or before olderThan whose receipts were not fetched yet.
func (r *Repository) ListUnchecked(ctx context.Context, olderThan time.Time, limit int) ([]model.PushTicket, error) {
	rows, err := r.db.QueryContext(ctx, listUncheckedQuery, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list unchecked tickets: %w", err)
	}
	defer rows.Close()

	var tickets []model.PushTicket
	for rows.Next() {
		var t model.PushTicket
		if err := rows.Scan(&t.TicketID, &t.Token, &t.UserID, &t.FriendID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}

		tickets = append(tickets, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tickets: %w", err)
	}

	return tickets, nil
}

// MarkChecked stamps the tickets as checked and returns how many rows changed.
func (r *Repository) MarkChecked(ctx context.Context, ticketIDs []string, at time.Time) (int64, error) {
	if len(ticketIDs) == 0 {
		return 0, nil
	}

	res, err := r.db.ExecContext(ctx, markCheckedQuery, at, pq.Array(ticketIDs))
	if err != nil {
		return 0, fmt.Errorf("failed to mark tickets checked: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows, nil
}
