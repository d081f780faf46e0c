package dataset

import (
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/cabvision/cabvision-backend-go/internal/models"
	"github.com/cabvision/cabvision-backend-go/internal/stats"
)

// Apply runs the filter pipeline over an ingested frame and returns the
// narrowed view consumed by every metric and chart. Each step is skipped when
// its column is absent; steps are conjunctive, stable and idempotent, so
// re-running the same parameters yields the same table.
func Apply(df dataframe.DataFrame, f models.TripFilter) dataframe.DataFrame {
	df = filterMembership(df, ColPassengerCount, f.Passengers)
	df = filterRange(df, ColTripDistance, f.MinDistance, f.MaxDistance)
	df = filterMembership(df, ColVendorID, f.Vendors)
	return df
}

// Options reports the selectable domain of every filter present in the frame.
// Each domain is computed on the table as narrowed by the preceding filters,
// matching the cascading widgets of the dashboard.
func Options(df dataframe.DataFrame, f models.TripFilter) models.FilterOptions {
	var opts models.FilterOptions
	if HasColumn(df, ColPassengerCount) {
		opts.PassengerCounts = DistinctValues(df, ColPassengerCount)
		df = filterMembership(df, ColPassengerCount, f.Passengers)
	}
	if HasColumn(df, ColTripDistance) {
		if vals := FloatValues(df, ColTripDistance); len(vals) > 0 {
			opts.Distance = &models.DistanceRange{Min: stats.Min(vals), Max: stats.Max(vals)}
		}
		df = filterRange(df, ColTripDistance, f.MinDistance, f.MaxDistance)
	}
	if HasColumn(df, ColVendorID) {
		opts.Vendors = DistinctValues(df, ColVendorID)
	}
	return opts
}

// DistinctValues returns the distinct non-null values of a numeric column in
// ascending order.
func DistinctValues(df dataframe.DataFrame, col string) []float64 {
	if !HasColumn(df, col) {
		return nil
	}
	seen := make(map[float64]struct{})
	var out []float64
	for _, v := range df.Col(col).Float() {
		if math.IsNaN(v) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

// filterMembership keeps rows whose column value is in the selected set.
// A nil selection defaults to every distinct value of the incoming table.
// Null values are never members, so an active filter drops them.
func filterMembership(df dataframe.DataFrame, col string, selected []float64) dataframe.DataFrame {
	if !HasColumn(df, col) || df.Nrow() == 0 {
		return df
	}
	if selected == nil {
		selected = DistinctValues(df, col)
	}
	out := df.Filter(dataframe.F{Colname: col, Comparator: series.In, Comparando: selected})
	if out.Err != nil {
		return df
	}
	return out
}

// filterRange keeps rows whose column value lies in the inclusive [low, high]
// interval. Unspecified bounds default to the observed min/max of the
// incoming table; low == high is a valid degenerate range.
func filterRange(df dataframe.DataFrame, col string, lo, hi *float64) dataframe.DataFrame {
	if !HasColumn(df, col) || df.Nrow() == 0 {
		return df
	}
	vals := FloatValues(df, col)
	if len(vals) == 0 {
		return df
	}
	low, high := stats.Min(vals), stats.Max(vals)
	if lo != nil {
		low = *lo
	}
	if hi != nil {
		high = *hi
	}
	out := df.FilterAggregation(dataframe.And,
		dataframe.F{Colname: col, Comparator: series.GreaterEq, Comparando: low},
		dataframe.F{Colname: col, Comparator: series.LessEq, Comparando: high},
	)
	if out.Err != nil {
		return df
	}
	return out
}
