package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistanceMetersZeroForSamePoint(t *testing.T) {
	points := []Point{
		{Lat: 0, Lng: 0},
		{Lat: 37.7749, Lng: -122.4194},
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 90, Lng: 0},
	}
	for _, p := range points {
		require.InDelta(t, 0, DistanceMeters(p, p), 1e-9)
	}
}

func TestDistanceMetersSymmetric(t *testing.T) {
	a := Point{Lat: 12.9716, Lng: 77.5946}
	b := Point{Lat: 28.7041, Lng: 77.1025}
	require.Equal(t, DistanceMeters(a, b), DistanceMeters(b, a))
}

func TestDistanceMetersKnownValues(t *testing.T) {
	// One degree of longitude on the equator is ~111.19 km on a 6371 km sphere.
	require.InDelta(t, 111194.9, DistanceMeters(Point{}, Point{Lng: 1}), 0.5)
	// 0.009 degrees east of the origin is just over a kilometer.
	require.InDelta(t, 1000.75, DistanceMeters(Point{}, Point{Lng: 0.009}), 0.05)
}

func TestDistanceMetersPositive(t *testing.T) {
	a := Point{Lat: 1, Lng: 1}
	b := Point{Lat: 1.0001, Lng: 1}
	require.Greater(t, DistanceMeters(a, b), 0.0)
}
