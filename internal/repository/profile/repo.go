package profile

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
)

const disablePushQuery = `
		UPDATE user_profiles
		SET push_notifications = FALSE
		WHERE push_notifications
		  AND user_id IN (
		    SELECT user_id
		    FROM device_infos
		    WHERE device_token = ANY($1)
		  );
    `

// Repository provides methods to interact with user_profiles table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new profile repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// DisablePush turns push notifications off for every profile whose user owns
// one of the tokens. It returns the number of profiles changed.
func (r *Repository) DisablePush(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	res, err := r.db.ExecContext(ctx, disablePushQuery, pq.Array(tokens))
	if err != nil {
		return 0, fmt.Errorf("failed to disable push notifications: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows, nil
}
