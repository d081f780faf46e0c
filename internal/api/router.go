package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cabvision/cabvision-backend-go/internal/config"
	"github.com/cabvision/cabvision-backend-go/internal/handler"
	"github.com/cabvision/cabvision-backend-go/internal/middleware"
	"github.com/cabvision/cabvision-backend-go/internal/repository"
	"github.com/cabvision/cabvision-backend-go/internal/service"
)

// SetupRouter wires the HTTP surface: one dataset store shared by all
// handlers, filter parameters accepted on every read route.
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "CABVISION backend is running",
		})
	})

	repo := repository.NewDatasetRepository()
	datasetService := service.NewDatasetService(repo)
	analyticsService := service.NewAnalyticsService(datasetService)

	datasetHandler := handler.NewDatasetHandler(datasetService, cfg.MaxUploadBytes, cfg.PreviewRows)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	api := r.Group("/api/v1")
	{
		datasets := api.Group("/datasets")
		{
			datasets.POST("", middleware.RateLimit(cfg.UploadRateLimit, time.Minute), datasetHandler.Upload)
			datasets.GET("/:id", datasetHandler.GetSummary)
			datasets.DELETE("/:id", datasetHandler.Delete)
			datasets.GET("/:id/filters", datasetHandler.GetFilters)
			datasets.GET("/:id/preview", datasetHandler.GetPreview)
			datasets.GET("/:id/metrics", analyticsHandler.GetMetrics)

			charts := datasets.Group("/:id/charts")
			{
				charts.GET("/trip-distance", analyticsHandler.GetDistanceHistogram)
				charts.GET("/fare-amount", analyticsHandler.GetFareHistogram)
				charts.GET("/hourly", analyticsHandler.GetTripsByHour)
				charts.GET("/daily", analyticsHandler.GetTripsByDay)
				charts.GET("/monthly", analyticsHandler.GetTripsByMonth)
				charts.GET("/tips", analyticsHandler.GetTipBox)
				charts.GET("/vendors", analyticsHandler.GetVendorPie)
				charts.GET("/correlation", analyticsHandler.GetCorrelation)
			}

			maps := datasets.Group("/:id/maps")
			{
				maps.GET("/pickup", analyticsHandler.GetPickupMap)
				maps.GET("/dropoff", analyticsHandler.GetDropoffMap)
			}
		}
	}

	return r
}
