package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/xxxsen/taskradar/internal/model"
	appErr "github.com/xxxsen/taskradar/internal/pkg/errors"
	"github.com/xxxsen/taskradar/internal/repo"
	"github.com/xxxsen/taskradar/internal/testutil"
)

func TestNotificationRepoUpsertReplacesSameDedupKey(t *testing.T) {
	db, cleanup := testutil.OpenTestDB(t)
	defer cleanup()

	notifications := repo.NewNotificationRepo(db)
	userID := uuid.NewString()

	first := &model.Notification{
		ID:       uuid.NewString(),
		UserID:   userID,
		DedupKey: "task-1",
		Title:    "Task Nearby",
		Body:     "Task: Buy milk is 420 meters away.",
		Ctime:    100,
		Mtime:    100,
	}
	require.NoError(t, notifications.Upsert(context.Background(), first))

	second := &model.Notification{
		ID:       uuid.NewString(),
		UserID:   userID,
		DedupKey: "task-1",
		Title:    "Task Nearby",
		Body:     "Task: Buy milk is 57 meters away.",
		Ctime:    200,
		Mtime:    200,
	}
	require.NoError(t, notifications.Upsert(context.Background(), second))

	items, err := notifications.ListForUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, first.ID, items[0].ID)
	require.Equal(t, "Task: Buy milk is 57 meters away.", items[0].Body)
	require.Equal(t, int64(100), items[0].Ctime)
	require.Equal(t, int64(200), items[0].Mtime)
}

func TestNotificationRepoDistinctDedupKeys(t *testing.T) {
	db, cleanup := testutil.OpenTestDB(t)
	defer cleanup()

	notifications := repo.NewNotificationRepo(db)
	userID := uuid.NewString()

	for _, key := range []string{"task-1", "task-2"} {
		require.NoError(t, notifications.Upsert(context.Background(), &model.Notification{
			ID:       uuid.NewString(),
			UserID:   userID,
			DedupKey: key,
			Title:    "Task Nearby",
			Body:     "body",
			Ctime:    100,
			Mtime:    100,
		}))
	}

	items, err := notifications.ListForUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestNotificationRepoDelete(t *testing.T) {
	db, cleanup := testutil.OpenTestDB(t)
	defer cleanup()

	notifications := repo.NewNotificationRepo(db)
	userID := uuid.NewString()

	item := &model.Notification{
		ID:       uuid.NewString(),
		UserID:   userID,
		DedupKey: "task-1",
		Title:    "Task Nearby",
		Body:     "body",
		Ctime:    100,
		Mtime:    100,
	}
	require.NoError(t, notifications.Upsert(context.Background(), item))
	require.NoError(t, notifications.Delete(context.Background(), userID, item.ID))
	require.True(t, appErr.IsNotFound(notifications.Delete(context.Background(), userID, item.ID)))

	err := notifications.Delete(context.Background(), uuid.NewString(), item.ID)
	require.True(t, appErr.IsNotFound(err))
}
