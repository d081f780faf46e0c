package models

import (
	"time"

	"github.com/go-gota/gota/dataframe"
)

// Dataset is one uploaded trip table held in memory for the session.
type Dataset struct {
	ID           string              `json:"id"`
	Checksum     string              `json:"checksum"`
	UploadedAt   time.Time           `json:"uploadedAt"`
	Rows         int                 `json:"rows"`
	Columns      []string            `json:"columns"`
	Capabilities Capabilities        `json:"capabilities"`
	Frame        dataframe.DataFrame `json:"-"`
}

// Capabilities reports which optional columns the upload carries. Each flag
// gates the dashboard section that reads the column.
type Capabilities struct {
	HasPickupTime     bool `json:"hasPickupTime"`
	HasDropoffTime    bool `json:"hasDropoffTime"`
	HasPassengerCount bool `json:"hasPassengerCount"`
	HasTripDistance   bool `json:"hasTripDistance"`
	HasVendor         bool `json:"hasVendor"`
	HasFare           bool `json:"hasFare"`
	HasTip            bool `json:"hasTip"`
	HasPickupGeo      bool `json:"hasPickupGeo"`
	HasDropoffGeo     bool `json:"hasDropoffGeo"`
	HasTimeFeatures   bool `json:"hasTimeFeatures"`
}

// DatasetSummary is the upload response: identity, shape and the default
// filter domains the frontend builds its widgets from.
type DatasetSummary struct {
	ID           string        `json:"id"`
	UploadedAt   time.Time     `json:"uploadedAt"`
	Rows         int           `json:"rows"`
	Columns      []string      `json:"columns"`
	Capabilities Capabilities  `json:"capabilities"`
	Filters      FilterOptions `json:"filters"`
}

// Preview is the head of the filtered table rendered as raw strings.
type Preview struct {
	Columns      []string   `json:"columns"`
	Rows         [][]string `json:"rows"`
	TotalRows    int        `json:"totalRows"`
	FilteredRows int        `json:"filteredRows"`
}
