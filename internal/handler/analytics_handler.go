package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cabvision/cabvision-backend-go/internal/service"
	"github.com/cabvision/cabvision-backend-go/pkg/response"
)

// AnalyticsHandler handles HTTP requests for metrics and chart aggregates
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetMetrics handles GET /api/v1/datasets/:id/metrics
func (h *AnalyticsHandler) GetMetrics(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	metrics, err := h.analyticsService.Metrics(c.Param("id"), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, metrics)
}

// GetDistanceHistogram handles GET /api/v1/datasets/:id/charts/trip-distance
func (h *AnalyticsHandler) GetDistanceHistogram(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	hist, err := h.analyticsService.DistanceHistogram(c.Param("id"), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, hist)
}

// GetFareHistogram handles GET /api/v1/datasets/:id/charts/fare-amount
func (h *AnalyticsHandler) GetFareHistogram(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	hist, err := h.analyticsService.FareHistogram(c.Param("id"), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, hist)
}

// GetTripsByHour handles GET /api/v1/datasets/:id/charts/hourly
func (h *AnalyticsHandler) GetTripsByHour(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	chart, err := h.analyticsService.TripsByHour(c.Param("id"), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, chart)
}

// GetTripsByDay handles GET /api/v1/datasets/:id/charts/daily
func (h *AnalyticsHandler) GetTripsByDay(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	chart, err := h.analyticsService.TripsByDay(c.Param("id"), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, chart)
}

// GetTripsByMonth handles GET /api/v1/datasets/:id/charts/monthly
func (h *AnalyticsHandler) GetTripsByMonth(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	chart, err := h.analyticsService.TripsByMonth(c.Param("id"), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, chart)
}

// GetTipBox handles GET /api/v1/datasets/:id/charts/tips
func (h *AnalyticsHandler) GetTipBox(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	box, err := h.analyticsService.TipBox(c.Param("id"), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, box)
}

// GetVendorPie handles GET /api/v1/datasets/:id/charts/vendors
func (h *AnalyticsHandler) GetVendorPie(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	pie, err := h.analyticsService.VendorPie(c.Param("id"), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, pie)
}

// GetCorrelation handles GET /api/v1/datasets/:id/charts/correlation
func (h *AnalyticsHandler) GetCorrelation(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	heatmap, err := h.analyticsService.Correlation(c.Param("id"), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, heatmap)
}

// GetPickupMap handles GET /api/v1/datasets/:id/maps/pickup
func (h *AnalyticsHandler) GetPickupMap(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	data, err := h.analyticsService.PickupMap(c.Param("id"), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, data)
}

// GetDropoffMap handles GET /api/v1/datasets/:id/maps/dropoff
func (h *AnalyticsHandler) GetDropoffMap(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	data, err := h.analyticsService.DropoffMap(c.Param("id"), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, data)
}
