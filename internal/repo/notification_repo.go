package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/xxxsen/taskradar/internal/model"
	"github.com/xxxsen/taskradar/internal/pkg/dbutil"
	appErr "github.com/xxxsen/taskradar/internal/pkg/errors"
)

type NotificationRepo struct {
	db *sql.DB
}

func NewNotificationRepo(db *sql.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// Upsert inserts a pending notification or, when one already exists for the
// same user and dedup key, replaces its title, body and mtime. The original
// ctime and id survive so a replaced alert keeps its identity.
func (r *NotificationRepo) Upsert(ctx context.Context, notification *model.Notification) error {
	const query = `
		INSERT INTO notifications (id, user_id, dedup_key, title, body, ctime, mtime)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, dedup_key) DO UPDATE SET
			title = EXCLUDED.title,
			body = EXCLUDED.body,
			mtime = EXCLUDED.mtime
	`
	_, err := r.db.ExecContext(ctx, query,
		notification.ID, notification.UserID, notification.DedupKey,
		notification.Title, notification.Body, notification.Ctime, notification.Mtime)
	return err
}

func (r *NotificationRepo) ListForUser(ctx context.Context, userID string) ([]*model.Notification, error) {
	where := map[string]interface{}{
		"user_id":  userID,
		"_orderby": "mtime desc",
	}
	sqlStr, args, err := builder.BuildSelect("notifications", where, []string{"id", "user_id", "dedup_key", "title", "body", "ctime", "mtime"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	items := make([]*model.Notification, 0)
	for rows.Next() {
		var item model.Notification
		if err := rows.Scan(&item.ID, &item.UserID, &item.DedupKey, &item.Title, &item.Body, &item.Ctime, &item.Mtime); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (r *NotificationRepo) Delete(ctx context.Context, userID, notificationID string) error {
	where := map[string]interface{}{
		"id":      notificationID,
		"user_id": userID,
	}
	sqlStr, args, err := builder.BuildDelete("notifications", where)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}
