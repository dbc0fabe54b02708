package service

import (
	"context"

	"github.com/xxxsen/taskradar/internal/model"
	appErr "github.com/xxxsen/taskradar/internal/pkg/errors"
	"github.com/xxxsen/taskradar/internal/pkg/geo"
	"github.com/xxxsen/taskradar/internal/pkg/timeutil"
	"github.com/xxxsen/taskradar/internal/repo"
)

// SettingsService manages the device snapshot the mobile client reports:
// toggles plus the last known fix. The reminder job reads the same snapshot
// through the repo's source interfaces.
type SettingsService struct {
	device *repo.DeviceStateRepo
}

func NewSettingsService(device *repo.DeviceStateRepo) *SettingsService {
	return &SettingsService{device: device}
}

type SettingsInput struct {
	LocationPermission   bool
	NotificationsEnabled bool
	DarkMode             bool
}

func (s *SettingsService) Get(ctx context.Context) (*model.DeviceState, error) {
	state, err := s.device.Get(ctx)
	if err != nil {
		if appErr.IsNotFound(err) {
			return &model.DeviceState{}, nil
		}
		return nil, err
	}
	return state, nil
}

func (s *SettingsService) Update(ctx context.Context, userID string, input SettingsInput) error {
	return s.device.SaveSettings(ctx, userID,
		boolToInt(input.LocationPermission),
		boolToInt(input.NotificationsEnabled),
		boolToInt(input.DarkMode),
		timeutil.NowUnix())
}

func (s *SettingsService) ReportLocation(ctx context.Context, userID string, point geo.Point) error {
	if point.Lat < -90 || point.Lat > 90 || point.Lng < -180 || point.Lng > 180 {
		return appErr.ErrInvalid
	}
	return s.device.SaveLocation(ctx, userID, point, timeutil.NowUnix())
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
