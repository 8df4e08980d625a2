package birthday

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

var pairColumns = []string{
	"id", "email", "timezone", "notification_schedule",
	"email_notifications", "push_notifications",
	"id", "name", "dob", "device_token",
}

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewRepository(&dbpg.DB{Master: db}), mock
}

func TestListEligiblePairs(t *testing.T) {
	repo, mock := setupMockDB(t)

	since := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)
	userID, friendA, friendB := uuid.New(), uuid.New(), uuid.New()
	dob := time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(eligiblePairsQuery)).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows(pairColumns).
			AddRow(userID.String(), "ann@example.com", "America/New_York", "{0,3,7,30}", true, true, friendA.String(), "Bob", dob, "ExponentPushToken[abc]").
			AddRow(userID.String(), "ann@example.com", nil, "{}", true, false, friendB.String(), "Eve", dob, nil))

	pairs, err := repo.ListEligiblePairs(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	assert.Equal(t, userID, pairs[0].UserID)
	assert.Equal(t, "America/New_York", pairs[0].Timezone)
	assert.Equal(t, []int{0, 3, 7, 30}, pairs[0].Schedule)
	assert.Equal(t, friendA, pairs[0].FriendID)
	assert.Equal(t, "Bob", pairs[0].FriendName)
	assert.Equal(t, "ExponentPushToken[abc]", pairs[0].Token)
	assert.True(t, pairs[0].PushNotifications)

	assert.Equal(t, "", pairs[1].Timezone)
	assert.Equal(t, "", pairs[1].Token)
	assert.Empty(t, pairs[1].Schedule)
	assert.False(t, pairs[1].PushNotifications)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEligiblePairs_QueryError(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(eligiblePairsQuery)).
		WillReturnError(errors.New("connection refused"))

	pairs, err := repo.ListEligiblePairs(context.Background(), time.Now())
	assert.Error(t, err)
	assert.Nil(t, pairs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEligiblePairs_Empty(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(eligiblePairsQuery)).
		WillReturnRows(sqlmock.NewRows(pairColumns))

	pairs, err := repo.ListEligiblePairs(context.Background(), time.Now())
	assert.NoError(t, err)
	assert.Empty(t, pairs)
}

// The store-side filters must stay in the query: opted-out friends, users
// with both channels off, and pairs inside the clearance window never reach Go.
func TestEligiblePairsQuery_Filters(t *testing.T) {
	for _, clause := range []string{
		"f.include_in_notifications",
		"(p.email_notifications OR p.push_notifications)",
		"n.created_at > $1",
		"ORDER BY di.created_at DESC",
		"ORDER BY u.id, f.id",
	} {
		assert.True(t, strings.Contains(eligiblePairsQuery, clause), clause)
	}
}
