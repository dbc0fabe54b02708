package reminder

import (
	"context"
	"errors"
	"fmt"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/taskradar/internal/model"
	"github.com/xxxsen/taskradar/internal/pkg/geo"
)

var (
	ErrPermissionDenied    = errors.New("location permission not granted")
	ErrLocationUnavailable = errors.New("no cached device location")
)

// TaskSource lists the tasks owned by a user.
type TaskSource interface {
	ListForUser(ctx context.Context, userID string) ([]*model.Task, error)
}

// LocationSource reads the cached device fix; nil means no fix is stored.
type LocationSource interface {
	LastKnown(ctx context.Context) (*geo.Point, error)
}

// PreferenceSource reads the device-side toggles and the stored user id.
// An empty user id means nobody is signed in.
type PreferenceSource interface {
	NotificationsEnabled(ctx context.Context) (bool, error)
	StoredUserID(ctx context.Context) (string, error)
}

// PermissionSource reports whether the device granted location permission.
type PermissionSource interface {
	LocationGranted(ctx context.Context) (bool, error)
}

// Job is the hourly proximity reminder run. One invocation reads a snapshot
// of the device state, fetches the user's tasks, and posts one deduplicated
// notification per task within the radius. The run is strictly sequential
// and touches no mutable shared state, so overlapping invocations are safe.
type Job struct {
	permissions  PermissionSource
	prefs        PreferenceSource
	location     LocationSource
	tasks        TaskSource
	dispatcher   *Dispatcher
	radiusMeters float64
}

func NewJob(permissions PermissionSource, prefs PreferenceSource, location LocationSource, tasks TaskSource, dispatcher *Dispatcher, radiusMeters float64) *Job {
	return &Job{
		permissions:  permissions,
		prefs:        prefs,
		location:     location,
		tasks:        tasks,
		dispatcher:   dispatcher,
		radiusMeters: radiusMeters,
	}
}

func (j *Job) Name() string {
	return "proximity_reminder"
}

// Run executes one reminder pipeline. A nil return reports success to the
// scheduler; any error reports failure for this invocation only and is never
// retried within the run. Per-task dispatch failures do not fail the run.
func (j *Job) Run(ctx context.Context) error {
	logger := logutil.GetLogger(ctx)

	granted, err := j.permissions.LocationGranted(ctx)
	if err != nil {
		return fmt.Errorf("read location permission: %w", err)
	}
	if !granted {
		return ErrPermissionDenied
	}

	enabled, err := j.prefs.NotificationsEnabled(ctx)
	if err != nil {
		return fmt.Errorf("read notification preference: %w", err)
	}
	if !enabled {
		// The user opted out; the run is a no-op success.
		logger.Info("reminder run skipped: notifications disabled")
		return nil
	}

	origin, err := j.location.LastKnown(ctx)
	if err != nil {
		return fmt.Errorf("read cached location: %w", err)
	}
	if origin == nil {
		return ErrLocationUnavailable
	}

	userID, err := j.prefs.StoredUserID(ctx)
	if err != nil {
		return fmt.Errorf("read stored user: %w", err)
	}
	if userID == "" {
		// No identified user means nothing to notify about, not an error.
		logger.Info("reminder run skipped: no stored user")
		return nil
	}

	tasks, err := j.tasks.ListForUser(ctx, userID)
	if err != nil {
		logger.Error("reminder task fetch failed", zap.String("user_id", userID), zap.Error(err))
		return fmt.Errorf("fetch tasks: %w", err)
	}

	matches := Nearby(tasks, *origin, j.radiusMeters)
	var delivered, skipped, failed int
	for _, match := range matches {
		switch j.dispatcher.Notify(ctx, userID, match) {
		case DispatchDelivered:
			delivered++
		case DispatchSkipped:
			skipped++
		case DispatchFailed:
			failed++
		}
	}
	logger.Info("reminder run finished",
		zap.Int("tasks", len(tasks)),
		zap.Int("nearby", len(matches)),
		zap.Int("delivered", delivered),
		zap.Int("skipped", skipped),
		zap.Int("failed", failed),
	)
	return nil
}
