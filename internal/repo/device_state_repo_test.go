package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/xxxsen/taskradar/internal/pkg/geo"
	"github.com/xxxsen/taskradar/internal/repo"
	"github.com/xxxsen/taskradar/internal/testutil"
)

func TestDeviceStateRepoSaveAndRead(t *testing.T) {
	db, cleanup := testutil.OpenTestDB(t)
	defer cleanup()

	states := repo.NewDeviceStateRepo(db)
	userID := uuid.NewString()

	require.NoError(t, states.SaveSettings(context.Background(), userID, 1, 1, 0, 100))
	require.NoError(t, states.SaveLocation(context.Background(), userID, geo.Point{Lat: 1.5, Lng: 103.8}, 200))

	granted, err := states.LocationGranted(context.Background())
	require.NoError(t, err)
	require.True(t, granted)

	enabled, err := states.NotificationsEnabled(context.Background())
	require.NoError(t, err)
	require.True(t, enabled)

	stored, err := states.StoredUserID(context.Background())
	require.NoError(t, err)
	require.Equal(t, userID, stored)

	point, err := states.LastKnown(context.Background())
	require.NoError(t, err)
	require.NotNil(t, point)
	require.Equal(t, 1.5, point.Lat)
	require.Equal(t, 103.8, point.Lng)
}

func TestDeviceStateRepoSettingsToggle(t *testing.T) {
	db, cleanup := testutil.OpenTestDB(t)
	defer cleanup()

	states := repo.NewDeviceStateRepo(db)
	userID := uuid.NewString()

	require.NoError(t, states.SaveSettings(context.Background(), userID, 0, 0, 1, 100))

	granted, err := states.LocationGranted(context.Background())
	require.NoError(t, err)
	require.False(t, granted)

	enabled, err := states.NotificationsEnabled(context.Background())
	require.NoError(t, err)
	require.False(t, enabled)

	state, err := states.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, state.DarkMode)
}

func TestDeviceStateRepoSingleRow(t *testing.T) {
	db, cleanup := testutil.OpenTestDB(t)
	defer cleanup()

	states := repo.NewDeviceStateRepo(db)

	first := uuid.NewString()
	second := uuid.NewString()
	require.NoError(t, states.SaveLocation(context.Background(), first, geo.Point{Lat: 0, Lng: 0}, 100))
	require.NoError(t, states.SaveLocation(context.Background(), second, geo.Point{Lat: 2, Lng: 3}, 200))

	stored, err := states.StoredUserID(context.Background())
	require.NoError(t, err)
	require.Equal(t, second, stored)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM device_state").Scan(&count))
	require.Equal(t, 1, count)
}
