package model

import "github.com/xxxsen/taskradar/internal/pkg/geo"

// DeviceState is the single-row snapshot the mobile client reports: the
// signed-in user, the last cached fix and the device-side toggles. The
// reminder job reads it at run start and never writes it.
type DeviceState struct {
	UserID               string     `json:"user_id"`
	Location             *geo.Point `json:"location,omitempty"`
	LocationPermission   int        `json:"location_permission"`
	NotificationsEnabled int        `json:"notifications_enabled"`
	DarkMode             int        `json:"dark_mode"`
	Mtime                int64      `json:"mtime"`
}
