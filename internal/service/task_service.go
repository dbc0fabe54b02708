package service

import (
	"context"
	"strings"

	"github.com/xxxsen/taskradar/internal/model"
	appErr "github.com/xxxsen/taskradar/internal/pkg/errors"
	"github.com/xxxsen/taskradar/internal/pkg/geo"
	"github.com/xxxsen/taskradar/internal/pkg/timeutil"
	"github.com/xxxsen/taskradar/internal/repo"
)

type TaskService struct {
	tasks *repo.TaskRepo
}

func NewTaskService(tasks *repo.TaskRepo) *TaskService {
	return &TaskService{tasks: tasks}
}

type TaskInput struct {
	Title       string
	Description string
	DueDate     *int64
	Priority    string
	Location    *geo.Point
}

// TaskSummary backs the dashboard screen: counts per priority plus
// completion and overdue totals.
type TaskSummary struct {
	Total      int            `json:"total"`
	Completed  int            `json:"completed"`
	Pending    int            `json:"pending"`
	Overdue    int            `json:"overdue"`
	ByPriority map[string]int `json:"by_priority"`
}

func (s *TaskService) Create(ctx context.Context, userID string, input TaskInput) (*model.Task, error) {
	priority, err := validateInput(&input)
	if err != nil {
		return nil, err
	}
	now := timeutil.NowUnix()
	task := &model.Task{
		ID:          newID(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    priority,
		Location:    input.Location,
		Ctime:       now,
		Mtime:       now,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, userID, taskID string, input TaskInput) (*model.Task, error) {
	priority, err := validateInput(&input)
	if err != nil {
		return nil, err
	}
	task, err := s.tasks.Get(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	task.Title = input.Title
	task.Description = input.Description
	task.DueDate = input.DueDate
	task.Priority = priority
	task.Location = input.Location
	task.Mtime = timeutil.NowUnix()
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) SetCompleted(ctx context.Context, userID, taskID string, completed bool) error {
	value := 0
	if completed {
		value = 1
	}
	return s.tasks.SetCompleted(ctx, userID, taskID, value, timeutil.NowUnix())
}

func (s *TaskService) Get(ctx context.Context, userID, taskID string) (*model.Task, error) {
	return s.tasks.Get(ctx, userID, taskID)
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	return s.tasks.Delete(ctx, userID, taskID)
}

func (s *TaskService) List(ctx context.Context, userID string) ([]*model.Task, error) {
	return s.tasks.ListForUser(ctx, userID)
}

func (s *TaskService) Summary(ctx context.Context, userID string) (*TaskSummary, error) {
	tasks, err := s.tasks.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := timeutil.NowUnix()
	summary := &TaskSummary{
		ByPriority: map[string]int{
			model.PriorityHigh:   0,
			model.PriorityMedium: 0,
			model.PriorityLow:    0,
		},
	}
	for _, task := range tasks {
		summary.Total++
		if _, ok := summary.ByPriority[task.Priority]; ok {
			summary.ByPriority[task.Priority]++
		}
		if task.Completed != 0 {
			summary.Completed++
			continue
		}
		summary.Pending++
		if task.DueDate != nil && *task.DueDate < now {
			summary.Overdue++
		}
	}
	return summary, nil
}

func validateInput(input *TaskInput) (string, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return "", appErr.ErrInvalid
	}
	priority, err := normalizePriority(input.Priority)
	if err != nil {
		return "", err
	}
	if input.Location != nil {
		if input.Location.Lat < -90 || input.Location.Lat > 90 ||
			input.Location.Lng < -180 || input.Location.Lng > 180 {
			return "", appErr.ErrInvalid
		}
	}
	return priority, nil
}

func normalizePriority(priority string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(priority)) {
	case "", strings.ToLower(model.PriorityLow):
		return model.PriorityLow, nil
	case strings.ToLower(model.PriorityMedium):
		return model.PriorityMedium, nil
	case strings.ToLower(model.PriorityHigh):
		return model.PriorityHigh, nil
	default:
		return "", appErr.ErrInvalid
	}
}
