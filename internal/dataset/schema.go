package dataset

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/cabvision/cabvision-backend-go/internal/models"
)

// Column names of the standard taxi-trip schema. Every one of them is
// optional in an uploaded file; consumers go through the capability set.
const (
	ColPickupTime     = "tpep_pickup_datetime"
	ColDropoffTime    = "tpep_dropoff_datetime"
	ColPassengerCount = "passenger_count"
	ColTripDistance   = "trip_distance"
	ColVendorID       = "VendorID"
	ColFareAmount     = "fare_amount"
	ColTipAmount      = "tip_amount"
	ColPickupLat      = "pickup_latitude"
	ColPickupLng      = "pickup_longitude"
	ColDropoffLat     = "dropoff_latitude"
	ColDropoffLng     = "dropoff_longitude"
)

// Derived feature columns added at ingestion.
const (
	ColPickupHour  = "pickup_hour"
	ColPickupDay   = "pickup_day"
	ColPickupMonth = "pickup_month"
)

// HasColumn reports whether the frame carries a column with the given name.
func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// DetectCapabilities inspects the frame once and returns the capability set
// every downstream consumer checks instead of probing columns ad hoc.
func DetectCapabilities(df dataframe.DataFrame) models.Capabilities {
	return models.Capabilities{
		HasPickupTime:     HasColumn(df, ColPickupTime),
		HasDropoffTime:    HasColumn(df, ColDropoffTime),
		HasPassengerCount: HasColumn(df, ColPassengerCount),
		HasTripDistance:   HasColumn(df, ColTripDistance),
		HasVendor:         HasColumn(df, ColVendorID),
		HasFare:           HasColumn(df, ColFareAmount),
		HasTip:            HasColumn(df, ColTipAmount),
		HasPickupGeo:      HasColumn(df, ColPickupLat) && HasColumn(df, ColPickupLng),
		HasDropoffGeo:     HasColumn(df, ColDropoffLat) && HasColumn(df, ColDropoffLng),
		HasTimeFeatures:   HasColumn(df, ColPickupHour),
	}
}

// NumericColumns returns the names of all int- and float-typed columns, in
// frame order. The correlation heatmap is computed over exactly these.
func NumericColumns(df dataframe.DataFrame) []string {
	var out []string
	types := df.Types()
	for i, name := range df.Names() {
		if types[i] == series.Int || types[i] == series.Float {
			out = append(out, name)
		}
	}
	return out
}

// FloatValues returns the non-null numeric values of a column, in row order.
func FloatValues(df dataframe.DataFrame, col string) []float64 {
	if !HasColumn(df, col) {
		return nil
	}
	var out []float64
	for _, v := range df.Col(col).Float() {
		if math.IsNaN(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}
