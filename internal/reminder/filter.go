package reminder

import (
	"github.com/xxxsen/taskradar/internal/model"
	"github.com/xxxsen/taskradar/internal/pkg/geo"
)

// Match pairs a task with its distance from the device fix.
type Match struct {
	Task           *model.Task
	DistanceMeters float64
}

// Nearby selects tasks within radiusMeters of origin, boundary inclusive.
// Tasks without a location never qualify. Output order follows input order;
// callers must not rely on it.
func Nearby(tasks []*model.Task, origin geo.Point, radiusMeters float64) []Match {
	matches := make([]Match, 0)
	for _, task := range tasks {
		if task == nil || task.Location == nil {
			continue
		}
		distance := geo.DistanceMeters(origin, *task.Location)
		if distance <= radiusMeters {
			matches = append(matches, Match{Task: task, DistanceMeters: distance})
		}
	}
	return matches
}
