package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabvision/cabvision-backend-go/internal/config"
	"github.com/cabvision/cabvision-backend-go/internal/models"
)

const tripsCSV = `VendorID,passenger_count,trip_distance,fare_amount,tpep_pickup_datetime,tpep_dropoff_datetime
1,1,3.5,14.5,2016-03-14 08:15:00,2016-03-14 08:40:00
2,2,6.1,22.0,2016-03-14 17:30:00,2016-03-14 18:05:00
1,1,1.2,7.5,2016-03-14 23:05:00,2016-03-14 23:15:00
`

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return SetupRouter(&config.Config{
		Port:            ":0",
		MaxUploadBytes:  1 << 20,
		PreviewRows:     10,
		UploadRateLimit: 1000,
	})
}

func uploadTrips(t *testing.T, router *gin.Engine, csv string) models.DatasetSummary {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "trips.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/datasets", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Equal(t, 0, env.Code)

	var summary models.DatasetSummary
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	require.NotEmpty(t, summary.ID)
	return summary
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	w := get(router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUploadAndGetSummary(t *testing.T) {
	router := newTestRouter()
	summary := uploadTrips(t, router, tripsCSV)

	assert.Equal(t, 3, summary.Rows)
	assert.True(t, summary.Capabilities.HasTripDistance)

	w := get(router, "/api/v1/datasets/"+summary.ID)
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var got models.DatasetSummary
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, summary.ID, got.ID)
	assert.Equal(t, 3, got.Rows)
}

func TestUploadWithoutFile(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/datasets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadMalformedCSV(t *testing.T) {
	router := newTestRouter()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "bad.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("a,b\n\"unclosed,1\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/datasets", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter()
	summary := uploadTrips(t, router, tripsCSV)

	w := get(router, "/api/v1/datasets/"+summary.ID+"/metrics")
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var m models.Metrics
	require.NoError(t, json.Unmarshal(env.Data, &m))
	assert.Equal(t, 3, m.TotalTrips)
	assert.Equal(t, 44.0, m.TotalRevenue)
}

func TestMetricsEndpointWithFilter(t *testing.T) {
	router := newTestRouter()
	summary := uploadTrips(t, router, tripsCSV)

	w := get(router, "/api/v1/datasets/"+summary.ID+"/metrics?passengers=1")
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var m models.Metrics
	require.NoError(t, json.Unmarshal(env.Data, &m))
	assert.Equal(t, 2, m.TotalTrips)
}

func TestFiltersEndpointNarrowsDomains(t *testing.T) {
	router := newTestRouter()
	summary := uploadTrips(t, router, tripsCSV)

	w := get(router, "/api/v1/datasets/"+summary.ID+"/filters?passengers=1")
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var opts models.FilterOptions
	require.NoError(t, json.Unmarshal(env.Data, &opts))
	require.NotNil(t, opts.Distance)
	assert.Equal(t, 1.2, opts.Distance.Min)
	assert.Equal(t, 3.5, opts.Distance.Max)
}

func TestPreviewEndpoint(t *testing.T) {
	router := newTestRouter()
	summary := uploadTrips(t, router, tripsCSV)

	w := get(router, "/api/v1/datasets/"+summary.ID+"/preview?limit=2")
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var p models.Preview
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, 3, p.TotalRows)
	assert.Len(t, p.Rows, 2)
}

func TestChartAndMapEndpoints(t *testing.T) {
	router := newTestRouter()
	summary := uploadTrips(t, router, tripsCSV)

	paths := []string{
		"/charts/trip-distance",
		"/charts/fare-amount",
		"/charts/hourly",
		"/charts/daily",
		"/charts/monthly",
		"/charts/tips",
		"/charts/vendors",
		"/charts/correlation",
		"/maps/pickup",
		"/maps/dropoff",
	}
	for _, p := range paths {
		w := get(router, "/api/v1/datasets/"+summary.ID+p)
		assert.Equal(t, http.StatusOK, w.Code, p)
	}
}

func TestUnknownDatasetReturns404(t *testing.T) {
	router := newTestRouter()

	assert.Equal(t, http.StatusNotFound, get(router, "/api/v1/datasets/nope").Code)
	assert.Equal(t, http.StatusNotFound, get(router, "/api/v1/datasets/nope/metrics").Code)
	assert.Equal(t, http.StatusNotFound, get(router, "/api/v1/datasets/nope/charts/hourly").Code)
}

func TestDeleteEndpoint(t *testing.T) {
	router := newTestRouter()
	summary := uploadTrips(t, router, tripsCSV)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/datasets/"+summary.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusNotFound, get(router, "/api/v1/datasets/"+summary.ID).Code)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/datasets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
