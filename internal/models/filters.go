package models

// TripFilter represents the filter parameters accepted by every read endpoint.
// A nil slice or nil bound means "not specified": the pipeline substitutes the
// default computed from the table it is about to filter.
type TripFilter struct {
	Passengers  []float64 `form:"passengers"`  // passenger_count membership
	MinDistance *float64  `form:"minDistance"` // trip_distance range, inclusive
	MaxDistance *float64  `form:"maxDistance"`
	Vendors     []float64 `form:"vendors"` // VendorID membership
}

// DistanceRange is the observed [min, max] of trip_distance.
type DistanceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterOptions reports each filter's selectable domain. Domains are computed
// on the progressively narrowed table: the distance range reflects the
// passenger selection, the vendor list reflects both prior filters.
type FilterOptions struct {
	PassengerCounts []float64      `json:"passengerCounts,omitempty"`
	Distance        *DistanceRange `json:"distance,omitempty"`
	Vendors         []float64      `json:"vendors,omitempty"`
}
