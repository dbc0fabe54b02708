package notify

import (
	"context"

	"github.com/google/uuid"

	"github.com/xxxsen/taskradar/internal/model"
	"github.com/xxxsen/taskradar/internal/pkg/timeutil"
	"github.com/xxxsen/taskradar/internal/repo"
)

// StoreSink persists alerts as pending in-app notifications. Dedup is done
// by the repo upsert on (user_id, dedup_key).
type StoreSink struct {
	notifications *repo.NotificationRepo
}

func NewStoreSink(notifications *repo.NotificationRepo) *StoreSink {
	return &StoreSink{notifications: notifications}
}

func (s *StoreSink) Post(ctx context.Context, userID, key, title, body string) error {
	now := timeutil.NowUnix()
	return s.notifications.Upsert(ctx, &model.Notification{
		ID:       uuid.NewString(),
		UserID:   userID,
		DedupKey: key,
		Title:    title,
		Body:     body,
		Ctime:    now,
		Mtime:    now,
	})
}
