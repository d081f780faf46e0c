package models

// Chart payloads handed to the rendering frontend. Every chart carries an
// Available flag: false means its source column is absent from the dataset
// and the section is simply omitted from the page.

// ValueCount is one bar or pie slice.
type ValueCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// BarChart is a categorical count chart (trips per hour/day/month, vendors).
type BarChart struct {
	Available bool         `json:"available"`
	Bars      []ValueCount `json:"bars,omitempty"`
}

// Histogram is an equal-width binned distribution. Edges has one more entry
// than Counts; bin i covers [Edges[i], Edges[i+1]), the last bin inclusive.
type Histogram struct {
	Available bool      `json:"available"`
	Edges     []float64 `json:"edges,omitempty"`
	Counts    []int     `json:"counts,omitempty"`
}

// BoxSummary is a five-number summary with IQR whisker bounds, used for the
// tip-amount box plot.
type BoxSummary struct {
	Available    bool    `json:"available"`
	Min          float64 `json:"min"`
	Q1           float64 `json:"q1"`
	Median       float64 `json:"median"`
	Q3           float64 `json:"q3"`
	Max          float64 `json:"max"`
	LowerWhisker float64 `json:"lowerWhisker"`
	UpperWhisker float64 `json:"upperWhisker"`
	Outliers     int     `json:"outliers"`
}

// Heatmap is a symmetric Pearson correlation matrix over numeric columns.
// Values is row-major: Values[i][j] is the correlation of Columns[i] and
// Columns[j].
type Heatmap struct {
	Available bool        `json:"available"`
	Columns   []string    `json:"columns,omitempty"`
	Values    [][]float64 `json:"values,omitempty"`
}

// MapPoint is one plottable coordinate pair.
type MapPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MapData is a capped scatter of pickup or dropoff locations plus the
// viewport hints the frontend needs.
type MapData struct {
	Available bool       `json:"available"`
	Points    []MapPoint `json:"points,omitempty"`
	Total     int        `json:"total"`     // plottable rows before the cap
	Truncated bool       `json:"truncated"` // true when Total exceeded the cap
	Center    *MapPoint  `json:"center,omitempty"`
	Bounds    *MapBounds `json:"bounds,omitempty"`
}

// MapBounds is the bounding rectangle of the returned points.
type MapBounds struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLng float64 `json:"minLng"`
	MaxLng float64 `json:"maxLng"`
}
