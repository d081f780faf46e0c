package models

// Metrics are the scalar cards rendered above the charts. Pointer fields are
// nil when the metric cannot be computed from the available columns; the
// frontend renders "N/A" for those.
type Metrics struct {
	TotalTrips       int      `json:"totalTrips"`
	TotalRevenue     float64  `json:"totalRevenue"`
	AvgDistanceMiles *float64 `json:"avgDistanceMiles"`
	AvgSpeedMPH      *float64 `json:"avgSpeedMph"`
}
