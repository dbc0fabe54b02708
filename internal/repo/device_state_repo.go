package repo

import (
	"context"
	"database/sql"

	"github.com/xxxsen/taskradar/internal/model"
	appErr "github.com/xxxsen/taskradar/internal/pkg/errors"
	"github.com/xxxsen/taskradar/internal/pkg/geo"
)

// DeviceStateRepo persists the single-row device snapshot reported by the
// mobile client. The reminder job consumes it read-only through the source
// interfaces it satisfies.
type DeviceStateRepo struct {
	db *sql.DB
}

func NewDeviceStateRepo(db *sql.DB) *DeviceStateRepo {
	return &DeviceStateRepo{db: db}
}

func (r *DeviceStateRepo) Get(ctx context.Context) (*model.DeviceState, error) {
	const query = `SELECT user_id, lat, lng, location_permission, notifications_enabled, dark_mode, mtime FROM device_state WHERE id = 1`
	row := r.db.QueryRowContext(ctx, query)
	var state model.DeviceState
	var lat, lng sql.NullFloat64
	if err := row.Scan(&state.UserID, &lat, &lng, &state.LocationPermission, &state.NotificationsEnabled, &state.DarkMode, &state.Mtime); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErr.ErrNotFound
		}
		return nil, err
	}
	if lat.Valid && lng.Valid {
		state.Location = &geo.Point{Lat: lat.Float64, Lng: lng.Float64}
	}
	return &state, nil
}

func (r *DeviceStateRepo) SaveLocation(ctx context.Context, userID string, point geo.Point, mtime int64) error {
	const query = `
		INSERT INTO device_state (id, user_id, lat, lng, mtime)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			mtime = EXCLUDED.mtime
	`
	_, err := r.db.ExecContext(ctx, query, userID, point.Lat, point.Lng, mtime)
	return err
}

func (r *DeviceStateRepo) SaveSettings(ctx context.Context, userID string, locationPermission, notificationsEnabled, darkMode int, mtime int64) error {
	const query = `
		INSERT INTO device_state (id, user_id, location_permission, notifications_enabled, dark_mode, mtime)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			location_permission = EXCLUDED.location_permission,
			notifications_enabled = EXCLUDED.notifications_enabled,
			dark_mode = EXCLUDED.dark_mode,
			mtime = EXCLUDED.mtime
	`
	_, err := r.db.ExecContext(ctx, query, userID, locationPermission, notificationsEnabled, darkMode, mtime)
	return err
}

// LocationGranted reports whether the device granted location permission. A
// missing snapshot reads as not granted.
func (r *DeviceStateRepo) LocationGranted(ctx context.Context) (bool, error) {
	state, err := r.Get(ctx)
	if err != nil {
		if appErr.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return state.LocationPermission != 0, nil
}

// NotificationsEnabled reports the device-side notification toggle. A missing
// snapshot reads as disabled.
func (r *DeviceStateRepo) NotificationsEnabled(ctx context.Context) (bool, error) {
	state, err := r.Get(ctx)
	if err != nil {
		if appErr.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return state.NotificationsEnabled != 0, nil
}

// StoredUserID returns the signed-in user recorded with the device snapshot,
// or "" when none has been stored.
func (r *DeviceStateRepo) StoredUserID(ctx context.Context) (string, error) {
	state, err := r.Get(ctx)
	if err != nil {
		if appErr.IsNotFound(err) {
			return "", nil
		}
		return "", err
	}
	return state.UserID, nil
}

// LastKnown returns the cached device fix, or nil when none has been
// reported.
func (r *DeviceStateRepo) LastKnown(ctx context.Context) (*geo.Point, error) {
	state, err := r.Get(ctx)
	if err != nil {
		if appErr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return state.Location, nil
}
