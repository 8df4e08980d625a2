package birthday

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/birthday-notifier/internal/model"
)

// eligiblePairsQuery selects every (user, friend) pair that may be notified:
// the user accepts email or push, the friend is included in notifications,
// and no notification for the pair was created after $1. The most recently
// registered device token is attached when the user has one.
const eligiblePairsQuery = `
		SELECT u.id, u.email, p.timezone, p.notification_schedule,
		       p.email_notifications, p.push_notifications,
		       f.id, f.name, f.dob, d.device_token
		FROM users u
		JOIN user_profiles p ON p.user_id = u.id
		JOIN friends f ON f.user_id = u.id
		LEFT JOIN LATERAL (
		    SELECT di.device_token
		    FROM device_infos di
		    WHERE di.user_id = u.id
		    ORDER BY di.created_at DESC
		    LIMIT 1
		) d ON TRUE
		WHERE (p.email_notifications OR p.push_notifications)
		  AND f.include_in_notifications
		  AND NOT EXISTS (
		    SELECT 1
		    FROM notifications n
		    WHERE n.user_id = u.id
		      AND n.friend_id = f.id
		      AND n.created_at > $1
		  )
		ORDER BY u.id, f.id;
    `

// Repository reads the joined user, profile and friend data used to find approaching birthdays.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new birthday repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// ListEligiblePairs returns the pairs that passed the store-side filters, ordered by user and friend id.
//
// The query runs on the master so that records written by the previous tick are always visible.
func (r *Repository) ListEligiblePairs(ctx context.Context, since time.Time) ([]model.EligiblePair, error) {
	rows, err := r.db.Master.QueryContext(ctx, eligiblePairsQuery, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query eligible pairs: %w", err)
	}
	defer rows.Close()

	var pairs []model.EligiblePair
	for rows.Next() {
		var (
			p        model.EligiblePair
			tz       sql.NullString
			schedule pq.Int64Array
			token    sql.NullString
		)

		if err := rows.Scan(
			&p.UserID, &p.Email, &tz, &schedule,
			&p.EmailNotifications, &p.PushNotifications,
			&p.FriendID, &p.FriendName, &p.DOB, &token,
		); err != nil {
			return nil, fmt.Errorf("failed to scan eligible pair: %w", err)
		}

		p.Timezone = tz.String
		p.Token = token.String
		p.Schedule = make([]int, len(schedule))
		for i, d := range schedule {
			p.Schedule[i] = int(d)
		}

		pairs = append(pairs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate eligible pairs: %w", err)
	}

	return pairs, nil
}
