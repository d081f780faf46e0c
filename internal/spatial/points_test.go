package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	assert.True(t, Valid(40.7580, -73.9855))
	assert.True(t, Valid(0, 0))
	assert.True(t, Valid(-90, 180))

	assert.False(t, Valid(91, 0))
	assert.False(t, Valid(0, 181))
	assert.False(t, Valid(-91, -200))
}

func TestBoundingRect(t *testing.T) {
	points := []Point{
		{Lat: 40.70, Lng: -74.01},
		{Lat: 40.80, Lng: -73.95},
		{Lat: 40.75, Lng: -73.99},
	}

	lo, hi, center, ok := BoundingRect(points)
	require.True(t, ok)

	assert.InDelta(t, 40.70, lo.Lat, 1e-9)
	assert.InDelta(t, -74.01, lo.Lng, 1e-9)
	assert.InDelta(t, 40.80, hi.Lat, 1e-9)
	assert.InDelta(t, -73.95, hi.Lng, 1e-9)
	assert.InDelta(t, 40.75, center.Lat, 1e-9)
	assert.InDelta(t, -73.98, center.Lng, 1e-9)
}

func TestBoundingRectSinglePoint(t *testing.T) {
	lo, hi, center, ok := BoundingRect([]Point{{Lat: 40.75, Lng: -73.98}})
	require.True(t, ok)

	assert.InDelta(t, 40.75, lo.Lat, 1e-9)
	assert.InDelta(t, 40.75, hi.Lat, 1e-9)
	assert.InDelta(t, -73.98, center.Lng, 1e-9)
}

func TestBoundingRectEmpty(t *testing.T) {
	_, _, _, ok := BoundingRect(nil)
	assert.False(t, ok)
}
