package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/birthday-notifier/internal/model"
)

var ErrNotificationNotFound = errors.New("notification not found")

const (
	savepointQuery         = `SAVEPOINT notification_item;`
	releaseSavepointQuery  = `RELEASE SAVEPOINT notification_item;`
	rollbackSavepointQuery = `ROLLBACK TO SAVEPOINT notification_item;`

	insertNotificationQuery = `
		INSERT INTO notifications (
		    type, user_id, friend_id, sent_methods
		) VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
    `

	attachTicketQuery = `
		UPDATE notifications
		SET ticket_id = $1
		WHERE id = (
		    SELECT id
		    FROM notifications
		    WHERE user_id = $2 AND friend_id = $3 AND created_at >= $4
		    ORDER BY created_at DESC
		    LIMIT 1
		);
    `
)

// ItemError reports a batch item that was rolled back.
type ItemError struct {
	Index int
	Err   error
}

func (e ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e ItemError) Unwrap() error {
	return e.Err
}

// Repository provides methods to interact with notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateBatch inserts the notifications in a single transaction on the master.
//
// Every item is wrapped in a savepoint, so a failed insert is rolled back alone
// and reported in the returned item errors. The created notifications carry the
// ids and timestamps assigned by the database. If the transaction cannot be
// committed nothing is returned but the error.
func (r *Repository) CreateBatch(ctx context.Context, notifications []model.Notification) ([]model.Notification, []ItemError, error) {
	if len(notifications) == 0 {
		return nil, nil, nil
	}

	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	created := make([]model.Notification, 0, len(notifications))
	var failed []ItemError

	for i, n := range notifications {
		if _, err := tx.ExecContext(ctx, savepointQuery); err != nil {
			return nil, nil, fmt.Errorf("failed to create savepoint: %w", err)
		}

		err := tx.QueryRowContext(
			ctx, insertNotificationQuery, n.Type, n.UserID, n.FriendID, pq.Array(n.Methods),
		).Scan(&n.ID, &n.CreatedAt)
		if err != nil {
			failed = append(failed, ItemError{Index: i, Err: err})

			if _, err := tx.ExecContext(ctx, rollbackSavepointQuery); err != nil {
				return nil, nil, fmt.Errorf("failed to roll back to savepoint: %w", err)
			}

			continue
		}

		if _, err := tx.ExecContext(ctx, releaseSavepointQuery); err != nil {
			return nil, nil, fmt.Errorf("failed to release savepoint: %w", err)
		}

		created = append(created, n)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit notifications: %w", err)
	}

	return created, failed, nil
}

// AttachTicket sets the ticket id on the newest notification of the pair created at or after since.
func (r *Repository) AttachTicket(ctx context.Context, userID, friendID uuid.UUID, ticketID string, since time.Time) error {
	res, err := r.db.ExecContext(ctx, attachTicketQuery, ticketID, userID, friendID, since)
	if err != nil {
		return fmt.Errorf("failed to attach ticket: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
