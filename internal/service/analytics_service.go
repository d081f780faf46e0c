package service

import (
	"math"
	"sort"
	"strconv"

	"github.com/go-gota/gota/dataframe"

	"github.com/cabvision/cabvision-backend-go/internal/dataset"
	"github.com/cabvision/cabvision-backend-go/internal/models"
	"github.com/cabvision/cabvision-backend-go/internal/spatial"
	"github.com/cabvision/cabvision-backend-go/internal/stats"
)

const (
	// HistogramBins is the bin count of the distance and fare distributions.
	HistogramBins = 50
	// MapPointCap bounds the rows handed to a map scatter. Hard requirement:
	// only the first MapPointCap plottable rows of the filtered table are
	// returned regardless of dataset size.
	MapPointCap = 20000
)

// AnalyticsService computes the read-only aggregates the frontend renders.
// Every method filters first, then reads; an absent source column yields an
// unavailable payload, never an error.
type AnalyticsService struct {
	datasets *DatasetService
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(datasets *DatasetService) *AnalyticsService {
	return &AnalyticsService{datasets: datasets}
}

// Metrics computes the scalar cards over the filtered table
func (s *AnalyticsService) Metrics(id string, f models.TripFilter) (*models.Metrics, error) {
	df, _, err := s.datasets.Filtered(id, f)
	if err != nil {
		return nil, err
	}

	m := &models.Metrics{TotalTrips: df.Nrow()}

	if dataset.HasColumn(df, dataset.ColFareAmount) {
		m.TotalRevenue = stats.Round2(stats.Sum(dataset.FloatValues(df, dataset.ColFareAmount)))
	}

	if vals := dataset.FloatValues(df, dataset.ColTripDistance); len(vals) > 0 {
		v := stats.Round2(stats.Mean(vals))
		m.AvgDistanceMiles = &v
	}

	m.AvgSpeedMPH = meanSpeedMPH(df)

	return m, nil
}

// meanSpeedMPH averages per-row trip_distance / elapsed_hours over rows with
// a positive finite duration. Rows with null timestamps, null distance or
// non-positive elapsed time are excluded up front instead of letting them
// poison the aggregate. Returns nil when nothing qualifies.
func meanSpeedMPH(df dataframe.DataFrame) *float64 {
	if !dataset.HasColumn(df, dataset.ColPickupTime) ||
		!dataset.HasColumn(df, dataset.ColDropoffTime) ||
		!dataset.HasColumn(df, dataset.ColTripDistance) ||
		df.Nrow() == 0 {
		return nil
	}

	pickups := df.Col(dataset.ColPickupTime).Records()
	dropoffs := df.Col(dataset.ColDropoffTime).Records()
	distances := df.Col(dataset.ColTripDistance).Float()

	var speeds []float64
	for i := range pickups {
		tp, ok := dataset.ParseTimestamp(pickups[i])
		if !ok {
			continue
		}
		td, ok := dataset.ParseTimestamp(dropoffs[i])
		if !ok {
			continue
		}
		hours := td.Sub(tp).Hours()
		if hours <= 0 {
			continue
		}
		d := distances[i]
		if math.IsNaN(d) {
			continue
		}
		sp := d / hours
		if math.IsNaN(sp) || math.IsInf(sp, 0) {
			continue
		}
		speeds = append(speeds, sp)
	}

	if len(speeds) == 0 {
		return nil
	}
	v := stats.Round2(stats.Mean(speeds))
	return &v
}

// DistanceHistogram returns the trip_distance distribution
func (s *AnalyticsService) DistanceHistogram(id string, f models.TripFilter) (*models.Histogram, error) {
	return s.histogram(id, f, dataset.ColTripDistance)
}

// FareHistogram returns the fare_amount distribution
func (s *AnalyticsService) FareHistogram(id string, f models.TripFilter) (*models.Histogram, error) {
	return s.histogram(id, f, dataset.ColFareAmount)
}

func (s *AnalyticsService) histogram(id string, f models.TripFilter, col string) (*models.Histogram, error) {
	df, _, err := s.datasets.Filtered(id, f)
	if err != nil {
		return nil, err
	}
	if !dataset.HasColumn(df, col) {
		return &models.Histogram{}, nil
	}

	edges, counts := stats.Histogram(dataset.FloatValues(df, col), HistogramBins)
	return &models.Histogram{Available: true, Edges: edges, Counts: counts}, nil
}

// TripsByHour returns trip counts per pickup hour, hour-ascending
func (s *AnalyticsService) TripsByHour(id string, f models.TripFilter) (*models.BarChart, error) {
	return s.barChart(id, f, dataset.ColPickupHour, byLabelNumeric)
}

// TripsByDay returns trip counts per weekday name, most frequent first
func (s *AnalyticsService) TripsByDay(id string, f models.TripFilter) (*models.BarChart, error) {
	return s.barChart(id, f, dataset.ColPickupDay, byCountDesc)
}

// TripsByMonth returns trip counts per month name, most frequent first
func (s *AnalyticsService) TripsByMonth(id string, f models.TripFilter) (*models.BarChart, error) {
	return s.barChart(id, f, dataset.ColPickupMonth, byCountDesc)
}

// VendorPie returns trip counts per vendor
func (s *AnalyticsService) VendorPie(id string, f models.TripFilter) (*models.BarChart, error) {
	return s.barChart(id, f, dataset.ColVendorID, byCountDesc)
}

type barOrder int

const (
	byCountDesc barOrder = iota
	byLabelNumeric
)

func (s *AnalyticsService) barChart(id string, f models.TripFilter, col string, order barOrder) (*models.BarChart, error) {
	df, _, err := s.datasets.Filtered(id, f)
	if err != nil {
		return nil, err
	}
	if !dataset.HasColumn(df, col) {
		return &models.BarChart{}, nil
	}

	counts := make(map[string]int)
	for _, rec := range df.Col(col).Records() {
		if rec == "" || rec == "NaN" {
			continue
		}
		counts[rec]++
	}

	bars := make([]models.ValueCount, 0, len(counts))
	for label, count := range counts {
		bars = append(bars, models.ValueCount{Label: label, Count: count})
	}

	switch order {
	case byLabelNumeric:
		sort.Slice(bars, func(i, j int) bool {
			a, errA := strconv.ParseFloat(bars[i].Label, 64)
			b, errB := strconv.ParseFloat(bars[j].Label, 64)
			if errA != nil || errB != nil {
				return bars[i].Label < bars[j].Label
			}
			return a < b
		})
	default:
		sort.Slice(bars, func(i, j int) bool {
			if bars[i].Count == bars[j].Count {
				return bars[i].Label < bars[j].Label
			}
			return bars[i].Count > bars[j].Count
		})
	}

	return &models.BarChart{Available: true, Bars: bars}, nil
}

// TipBox returns the tip_amount box-plot summary
func (s *AnalyticsService) TipBox(id string, f models.TripFilter) (*models.BoxSummary, error) {
	df, _, err := s.datasets.Filtered(id, f)
	if err != nil {
		return nil, err
	}
	vals := dataset.FloatValues(df, dataset.ColTipAmount)
	if len(vals) == 0 {
		return &models.BoxSummary{}, nil
	}

	min, q1, median, q3, max := stats.FiveNumberSummary(vals)
	lower, upper := stats.OutliersBounds(vals)

	return &models.BoxSummary{
		Available:    true,
		Min:          min,
		Q1:           q1,
		Median:       median,
		Q3:           q3,
		Max:          max,
		LowerWhisker: lower,
		UpperWhisker: upper,
		Outliers:     stats.CountOutliers(vals),
	}, nil
}

// Correlation returns the Pearson matrix over all numeric columns of the
// filtered table, pairwise-complete per column pair
func (s *AnalyticsService) Correlation(id string, f models.TripFilter) (*models.Heatmap, error) {
	df, _, err := s.datasets.Filtered(id, f)
	if err != nil {
		return nil, err
	}

	cols := dataset.NumericColumns(df)
	if len(cols) < 2 {
		return &models.Heatmap{}, nil
	}

	data := make([][]float64, len(cols))
	for i, name := range cols {
		data[i] = df.Col(name).Float()
	}

	values := make([][]float64, len(cols))
	for i := range values {
		values[i] = make([]float64, len(cols))
		values[i][i] = 1
	}
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			var xs, ys []float64
			for k := range data[i] {
				x, y := data[i][k], data[j][k]
				if math.IsNaN(x) || math.IsNaN(y) {
					continue
				}
				xs = append(xs, x)
				ys = append(ys, y)
			}
			r := stats.PearsonCorrelation(xs, ys)
			values[i][j] = r
			values[j][i] = r
		}
	}

	return &models.Heatmap{Available: true, Columns: cols, Values: values}, nil
}

// PickupMap returns the capped pickup-location scatter
func (s *AnalyticsService) PickupMap(id string, f models.TripFilter) (*models.MapData, error) {
	return s.mapData(id, f, dataset.ColPickupLat, dataset.ColPickupLng)
}

// DropoffMap returns the capped dropoff-location scatter
func (s *AnalyticsService) DropoffMap(id string, f models.TripFilter) (*models.MapData, error) {
	return s.mapData(id, f, dataset.ColDropoffLat, dataset.ColDropoffLng)
}

func (s *AnalyticsService) mapData(id string, f models.TripFilter, latCol, lngCol string) (*models.MapData, error) {
	df, _, err := s.datasets.Filtered(id, f)
	if err != nil {
		return nil, err
	}
	if !dataset.HasColumn(df, latCol) || !dataset.HasColumn(df, lngCol) {
		return &models.MapData{}, nil
	}

	lats := df.Col(latCol).Float()
	lngs := df.Col(lngCol).Float()

	total := 0
	points := make([]models.MapPoint, 0)
	for i := range lats {
		lat, lng := lats[i], lngs[i]
		if math.IsNaN(lat) || math.IsNaN(lng) || !spatial.Valid(lat, lng) {
			continue
		}
		total++
		if len(points) < MapPointCap {
			points = append(points, models.MapPoint{Lat: lat, Lng: lng})
		}
	}

	md := &models.MapData{
		Available: true,
		Points:    points,
		Total:     total,
		Truncated: total > len(points),
	}

	spts := make([]spatial.Point, len(points))
	for i, p := range points {
		spts[i] = spatial.Point{Lat: p.Lat, Lng: p.Lng}
	}
	if lo, hi, center, ok := spatial.BoundingRect(spts); ok {
		md.Bounds = &models.MapBounds{MinLat: lo.Lat, MaxLat: hi.Lat, MinLng: lo.Lng, MaxLng: hi.Lng}
		md.Center = &models.MapPoint{Lat: center.Lat, Lng: center.Lng}
	}

	return md, nil
}
