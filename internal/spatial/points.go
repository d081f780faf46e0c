package spatial

import "github.com/golang/geo/s2"

// Point is a WGS84 coordinate pair in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Valid reports whether the pair is a plottable coordinate: both components
// in range and normalized. Out-of-range junk rows are treated like nulls by
// the map extraction.
func Valid(lat, lng float64) bool {
	return s2.LatLngFromDegrees(lat, lng).IsValid()
}

// BoundingRect returns the corners and center of the smallest rectangle
// containing the points, for the map viewport. ok is false for an empty set.
func BoundingRect(points []Point) (lo, hi, center Point, ok bool) {
	if len(points) == 0 {
		return Point{}, Point{}, Point{}, false
	}

	rect := s2.EmptyRect()
	for _, p := range points {
		rect = rect.AddPoint(s2.LatLngFromDegrees(p.Lat, p.Lng))
	}

	lo = Point{Lat: rect.Lo().Lat.Degrees(), Lng: rect.Lo().Lng.Degrees()}
	hi = Point{Lat: rect.Hi().Lat.Degrees(), Lng: rect.Hi().Lng.Degrees()}
	c := rect.Center()
	center = Point{Lat: c.Lat.Degrees(), Lng: c.Lng.Degrees()}

	return lo, hi, center, true
}
