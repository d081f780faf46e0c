package dataset

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// TimeLayout is the canonical layout timestamp columns are normalized to at
// ingestion. Null timestamps are stored as empty strings.
const TimeLayout = "2006-01-02 15:04:05"

// Inbound layouts accepted for the raw timestamp columns.
var timeLayouts = []string{
	TimeLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"1/2/2006 15:04",
}

// Ingest parses raw CSV bytes into a trip table and augments it with the
// derived calendar features. Structurally malformed input is a fatal error;
// individual unparseable timestamp cells become nulls and never abort the
// upload. No rows are dropped.
func Ingest(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parse csv: %w", df.Err)
	}

	df = coerceTimestamp(df, ColPickupTime)
	df = coerceTimestamp(df, ColDropoffTime)
	df = deriveTimeFeatures(df)

	return df, nil
}

// coerceTimestamp rewrites a timestamp column to the canonical layout. Values
// that fit none of the accepted layouts become empty (null).
func coerceTimestamp(df dataframe.DataFrame, col string) dataframe.DataFrame {
	if !HasColumn(df, col) || df.Nrow() == 0 {
		return df
	}
	recs := df.Col(col).Records()
	out := make([]string, len(recs))
	for i, rec := range recs {
		if t, ok := parseAnyTimestamp(rec); ok {
			out[i] = t.Format(TimeLayout)
		}
	}
	return df.Mutate(series.New(out, series.String, col))
}

// deriveTimeFeatures adds pickup_hour, pickup_day and pickup_month from the
// coerced pickup timestamp. Skipped entirely when the column is missing or no
// value parsed; rows with a null pickup get null derived values.
func deriveTimeFeatures(df dataframe.DataFrame) dataframe.DataFrame {
	if !HasColumn(df, ColPickupTime) || df.Nrow() == 0 {
		return df
	}
	recs := df.Col(ColPickupTime).Records()
	hours := make([]string, len(recs))
	days := make([]string, len(recs))
	months := make([]string, len(recs))
	parsed := 0
	for i, rec := range recs {
		t, ok := ParseTimestamp(rec)
		if !ok {
			hours[i] = "NaN"
			continue
		}
		parsed++
		hours[i] = strconv.Itoa(t.Hour())
		days[i] = t.Weekday().String()
		months[i] = t.Month().String()
	}
	if parsed == 0 {
		return df
	}
	df = df.Mutate(series.New(hours, series.Int, ColPickupHour))
	df = df.Mutate(series.New(days, series.String, ColPickupDay))
	df = df.Mutate(series.New(months, series.String, ColPickupMonth))
	return df
}

// ParseTimestamp parses a value of a coerced timestamp column. The empty
// string is the null marker.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" || s == "NaN" {
		return time.Time{}, false
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func parseAnyTimestamp(s string) (time.Time, bool) {
	if s == "" || s == "NaN" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
