package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/xxxsen/taskradar/internal/model"
	"github.com/xxxsen/taskradar/internal/pkg/dbutil"
	appErr "github.com/xxxsen/taskradar/internal/pkg/errors"
	"github.com/xxxsen/taskradar/internal/pkg/geo"
)

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

var taskFields = []string{"id", "user_id", "title", "description", "due_date", "priority", "completed", "lat", "lng", "ctime", "mtime"}

func (r *TaskRepo) Create(ctx context.Context, task *model.Task) error {
	data := map[string]interface{}{
		"id":          task.ID,
		"user_id":     task.UserID,
		"title":       task.Title,
		"description": task.Description,
		"due_date":    nullableInt64(task.DueDate),
		"priority":    task.Priority,
		"completed":   task.Completed,
		"lat":         nullableLat(task.Location),
		"lng":         nullableLng(task.Location),
		"ctime":       task.Ctime,
		"mtime":       task.Mtime,
	}
	sqlStr, args, err := builder.BuildInsert("tasks", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		if dbutil.IsConflict(err) {
			return appErr.ErrConflict
		}
		return err
	}
	return nil
}

func (r *TaskRepo) Update(ctx context.Context, task *model.Task) error {
	where := map[string]interface{}{
		"id":      task.ID,
		"user_id": task.UserID,
	}
	update := map[string]interface{}{
		"title":       task.Title,
		"description": task.Description,
		"due_date":    nullableInt64(task.DueDate),
		"priority":    task.Priority,
		"completed":   task.Completed,
		"lat":         nullableLat(task.Location),
		"lng":         nullableLng(task.Location),
		"mtime":       task.Mtime,
	}
	return r.exec(ctx, where, update)
}

func (r *TaskRepo) SetCompleted(ctx context.Context, userID, taskID string, completed int, mtime int64) error {
	where := map[string]interface{}{
		"id":      taskID,
		"user_id": userID,
	}
	update := map[string]interface{}{
		"completed": completed,
		"mtime":     mtime,
	}
	return r.exec(ctx, where, update)
}

func (r *TaskRepo) exec(ctx context.Context, where, update map[string]interface{}) error {
	sqlStr, args, err := builder.BuildUpdate("tasks", where, update)
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

func (r *TaskRepo) Delete(ctx context.Context, userID, taskID string) error {
	where := map[string]interface{}{
		"id":      taskID,
		"user_id": userID,
	}
	sqlStr, args, err := builder.BuildDelete("tasks", where)
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

func (r *TaskRepo) Get(ctx context.Context, userID, taskID string) (*model.Task, error) {
	where := map[string]interface{}{
		"id":      taskID,
		"user_id": userID,
	}
	sqlStr, args, err := builder.BuildSelect("tasks", where, taskFields)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	return scanTask(rows)
}

func (r *TaskRepo) ListForUser(ctx context.Context, userID string) ([]*model.Task, error) {
	where := map[string]interface{}{
		"user_id":  userID,
		"_orderby": "ctime desc",
	}
	sqlStr, args, err := builder.BuildSelect("tasks", where, taskFields)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	tasks := make([]*model.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func scanTask(rows *sql.Rows) (*model.Task, error) {
	var task model.Task
	var dueDate sql.NullInt64
	var lat, lng sql.NullFloat64
	if err := rows.Scan(&task.ID, &task.UserID, &task.Title, &task.Description, &dueDate, &task.Priority, &task.Completed, &lat, &lng, &task.Ctime, &task.Mtime); err != nil {
		return nil, err
	}
	if dueDate.Valid {
		value := dueDate.Int64
		task.DueDate = &value
	}
	if lat.Valid && lng.Valid {
		task.Location = &geo.Point{Lat: lat.Float64, Lng: lng.Float64}
	}
	return &task, nil
}

func nullableInt64(value *int64) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func nullableLat(point *geo.Point) interface{} {
	if point == nil {
		return nil
	}
	return point.Lat
}

func nullableLng(point *geo.Point) interface{} {
	if point == nil {
		return nil
	}
	return point.Lng
}
