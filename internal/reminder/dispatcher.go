package reminder

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/taskradar/internal/notify"
)

type DispatchOutcome int

const (
	DispatchDelivered DispatchOutcome = iota
	DispatchSkipped
	DispatchFailed
)

const notificationTitle = "Task Nearby"

// Dispatcher turns a qualifying task into one deduplicated notification. The
// task id is the dedup key, so re-dispatching the same task replaces the
// pending alert.
type Dispatcher struct {
	sink notify.Sink
}

func NewDispatcher(sink notify.Sink) *Dispatcher {
	return &Dispatcher{sink: sink}
}

func (d *Dispatcher) Notify(ctx context.Context, userID string, match Match) DispatchOutcome {
	task := match.Task
	body := fmt.Sprintf("Task: %s is %d meters away.", task.Title, int(math.Round(match.DistanceMeters)))
	err := d.sink.Post(ctx, userID, task.ID, notificationTitle, body)
	if err == nil {
		return DispatchDelivered
	}
	logger := logutil.GetLogger(ctx).With(zap.String("task_id", task.ID))
	if errors.Is(err, notify.ErrNoPermission) {
		logger.Info("notification skipped: permission missing")
		return DispatchSkipped
	}
	logger.Error("notification delivery failed", zap.Error(err))
	return DispatchFailed
}
