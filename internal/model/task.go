package model

import "github.com/xxxsen/taskradar/internal/pkg/geo"

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Task is a user-owned todo item. Location is optional; a nil Location means
// the task has no associated place and is never considered for proximity
// reminders.
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *int64     `json:"due_date,omitempty"`
	Priority    string     `json:"priority"`
	Completed   int        `json:"completed"`
	Location    *geo.Point `json:"location,omitempty"`
	Ctime       int64      `json:"ctime"`
	Mtime       int64      `json:"mtime"`
}
