package dataset

import (
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabvision/cabvision-backend-go/internal/models"
)

func tripFrame(t *testing.T, csv string) dataframe.DataFrame {
	t.Helper()
	df, err := Ingest(strings.NewReader(csv))
	require.NoError(t, err)
	return df
}

func floatPtr(v float64) *float64 { return &v }

const filterCSV = `VendorID,passenger_count,trip_distance,fare_amount
1,1,3.5,14.5
2,2,6.1,22.0
1,1,1.2,7.5
2,3,0.8,5.0
1,2,4.4,16.0
`

func TestApplyDefaultsAreIdentity(t *testing.T) {
	df := tripFrame(t, filterCSV)

	out := Apply(df, models.TripFilter{})

	assert.Equal(t, df.Nrow(), out.Nrow())
	assert.Equal(t, df.Col(ColTripDistance).Float(), out.Col(ColTripDistance).Float())
}

func TestPassengerMembershipKeepsOrder(t *testing.T) {
	df := tripFrame(t, filterCSV)

	out := Apply(df, models.TripFilter{Passengers: []float64{1}})

	require.Equal(t, 2, out.Nrow())
	// Stable filter: surviving rows keep their original relative order.
	assert.Equal(t, []float64{3.5, 1.2}, out.Col(ColTripDistance).Float())
}

func TestDistanceRangeFilter(t *testing.T) {
	df := tripFrame(t, filterCSV)

	out := Apply(df, models.TripFilter{MinDistance: floatPtr(1.0), MaxDistance: floatPtr(5.0)})

	require.Equal(t, 3, out.Nrow())
	assert.Equal(t, []float64{3.5, 1.2, 4.4}, out.Col(ColTripDistance).Float())
}

func TestDistanceRangeObservedBoundsAreIdentity(t *testing.T) {
	df := tripFrame(t, filterCSV)
	vals := FloatValues(df, ColTripDistance)
	require.NotEmpty(t, vals)

	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	out := Apply(df, models.TripFilter{MinDistance: &lo, MaxDistance: &hi})
	assert.Equal(t, df.Nrow(), out.Nrow())
}

func TestDegenerateSingleValueRange(t *testing.T) {
	csv := `trip_distance
2.0
2.0
2.0
`
	df := tripFrame(t, csv)

	out := Apply(df, models.TripFilter{MinDistance: floatPtr(2.0), MaxDistance: floatPtr(2.0)})
	assert.Equal(t, 3, out.Nrow())
}

func TestAbsentColumnIsNoop(t *testing.T) {
	csv := `trip_distance,fare_amount
3.5,14.5
1.2,7.5
`
	df := tripFrame(t, csv)

	out := Apply(df, models.TripFilter{
		Passengers: []float64{1},
		Vendors:    []float64{2},
	})

	assert.Equal(t, 2, out.Nrow())
}

func TestApplyIsIdempotent(t *testing.T) {
	df := tripFrame(t, filterCSV)
	f := models.TripFilter{
		Passengers:  []float64{1, 2},
		MinDistance: floatPtr(1.0),
		MaxDistance: floatPtr(5.0),
	}

	once := Apply(df, f)
	twice := Apply(once, f)

	assert.Equal(t, once.Nrow(), twice.Nrow())
	assert.Equal(t, once.Col(ColTripDistance).Float(), twice.Col(ColTripDistance).Float())
}

func TestDistinctValuesSortedAscending(t *testing.T) {
	df := tripFrame(t, filterCSV)

	assert.Equal(t, []float64{1, 2, 3}, DistinctValues(df, ColPassengerCount))
	assert.Equal(t, []float64{1, 2}, DistinctValues(df, ColVendorID))
	assert.Nil(t, DistinctValues(df, "no_such_column"))
}

func TestOptionsReflectProgressiveNarrowing(t *testing.T) {
	df := tripFrame(t, filterCSV)

	// With no selections the distance domain is the full observed range.
	full := Options(df, models.TripFilter{})
	require.NotNil(t, full.Distance)
	assert.Equal(t, 0.8, full.Distance.Min)
	assert.Equal(t, 6.1, full.Distance.Max)
	assert.Equal(t, []float64{1, 2, 3}, full.PassengerCounts)
	assert.Equal(t, []float64{1, 2}, full.Vendors)

	// Selecting passenger_count == 1 narrows the distance domain and the
	// vendor list offered downstream.
	narrowed := Options(df, models.TripFilter{Passengers: []float64{1}})
	require.NotNil(t, narrowed.Distance)
	assert.Equal(t, 1.2, narrowed.Distance.Min)
	assert.Equal(t, 3.5, narrowed.Distance.Max)
	assert.Equal(t, []float64{1}, narrowed.Vendors)
	// The passenger domain itself is computed before its own filter runs.
	assert.Equal(t, []float64{1, 2, 3}, narrowed.PassengerCounts)
}

func TestMembershipDropsNullValues(t *testing.T) {
	csv := `passenger_count,trip_distance
1,3.5
,6.1
2,1.2
`
	df := tripFrame(t, csv)
	require.Equal(t, 3, df.Nrow())

	// An active membership filter removes rows whose value is null, even
	// with the full default selection.
	out := Apply(df, models.TripFilter{Passengers: []float64{1, 2}})
	assert.Equal(t, 2, out.Nrow())
}
