package ticket

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/birthday-notifier/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewRepository(&dbpg.DB{Master: db}), mock
}

func TestSave(t *testing.T) {
	repo, mock := setupMockDB(t)

	userID, friendID := uuid.New(), uuid.New()
	tickets := []model.PushTicket{
		{TicketID: "t-1", Token: "tok-1", UserID: userID, FriendID: friendID},
		{TicketID: "t-2", Token: "tok-2", UserID: userID, FriendID: friendID},
	}

	mock.ExpectExec(regexp.QuoteMeta(saveTicketsQuery)).
		WithArgs(
			pq.Array([]string{"t-1", "t-2"}),
			pq.Array([]string{"tok-1", "tok-2"}),
			pq.Array([]string{userID.String(), userID.String()}),
			pq.Array([]string{friendID.String(), friendID.String()}),
		).
		WillReturnResult(sqlmock.NewResult(0, 2))

	assert.NoError(t, repo.Save(context.Background(), tickets))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_Empty(t *testing.T) {
	repo, mock := setupMockDB(t)

	assert.NoError(t, repo.Save(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_Error(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(saveTicketsQuery)).WillReturnError(errors.New("disk full"))

	err := repo.Save(context.Background(), []model.PushTicket{{TicketID: "t-1"}})
	assert.ErrorContains(t, err, "disk full")
}

func TestListUnchecked(t *testing.T) {
	repo, mock := setupMockDB(t)

	olderThan := time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)
	userID, friendID := uuid.New(), uuid.New()
	createdAt := olderThan.Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(listUncheckedQuery)).
		WithArgs(olderThan, 50).
		WillReturnRows(sqlmock.NewRows([]string{"ticket_id", "token", "user_id", "friend_id", "created_at"}).
			AddRow("t-1", "tok-1", userID.String(), friendID.String(), createdAt))

	tickets, err := repo.ListUnchecked(context.Background(), olderThan, 50)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "t-1", tickets[0].TicketID)
	assert.Equal(t, "tok-1", tickets[0].Token)
	assert.Equal(t, userID, tickets[0].UserID)
	assert.Equal(t, friendID, tickets[0].FriendID)
	assert.Equal(t, createdAt, tickets[0].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkChecked(t *testing.T) {
	repo, mock := setupMockDB(t)

	at := time.Date(2024, 3, 8, 12, 30, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(markCheckedQuery)).
		WithArgs(at, pq.Array([]string{"t-1", "t-2"})).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.MarkChecked(context.Background(), []string{"t-1", "t-2"}, at)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())

	n, err = repo.MarkChecked(context.Background(), nil, at)
	assert.NoError(t, err)
	assert.Zero(t, n)
}
