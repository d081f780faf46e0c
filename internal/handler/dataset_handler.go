package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cabvision/cabvision-backend-go/internal/models"
	"github.com/cabvision/cabvision-backend-go/internal/service"
	"github.com/cabvision/cabvision-backend-go/pkg/response"
)

// DatasetHandler handles HTTP requests for dataset sessions
type DatasetHandler struct {
	datasetService *service.DatasetService
	maxUploadBytes int64
	previewRows    int
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(datasetService *service.DatasetService, maxUploadBytes int64, previewRows int) *DatasetHandler {
	return &DatasetHandler{
		datasetService: datasetService,
		maxUploadBytes: maxUploadBytes,
		previewRows:    previewRows,
	}
}

// Upload handles POST /api/v1/datasets
func (h *DatasetHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing file upload")
		return
	}
	if file.Size > h.maxUploadBytes {
		response.BadRequest(c, "Uploaded file exceeds the size limit")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	defer src.Close()

	raw, err := io.ReadAll(io.LimitReader(src, h.maxUploadBytes))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	summary, err := h.datasetService.Upload(raw)
	if err != nil {
		// Fatal ingestion error: the bytes are not parseable as tabular data.
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, summary)
}

// GetSummary handles GET /api/v1/datasets/:id
func (h *DatasetHandler) GetSummary(c *gin.Context) {
	summary, err := h.datasetService.Summary(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, summary)
}

// Delete handles DELETE /api/v1/datasets/:id
func (h *DatasetHandler) Delete(c *gin.Context) {
	if err := h.datasetService.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, nil)
}

// GetFilters handles GET /api/v1/datasets/:id/filters
func (h *DatasetHandler) GetFilters(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	opts, err := h.datasetService.Options(c.Param("id"), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, opts)
}

// GetPreview handles GET /api/v1/datasets/:id/preview
func (h *DatasetHandler) GetPreview(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(h.previewRows))
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	preview, err := h.datasetService.Preview(c.Param("id"), filter, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, preview)
}

// bindFilter parses the shared filter query parameters. Writes the error
// response itself and returns ok=false on malformed input.
func bindFilter(c *gin.Context) (models.TripFilter, bool) {
	var filter models.TripFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return filter, false
	}
	return filter, true
}

func respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrDatasetNotFound) {
		response.NotFound(c, "Dataset not found")
		return
	}
	response.InternalError(c, err.Error())
}
