package service

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/google/uuid"

	"github.com/cabvision/cabvision-backend-go/internal/dataset"
	"github.com/cabvision/cabvision-backend-go/internal/models"
	"github.com/cabvision/cabvision-backend-go/internal/repository"
)

// ErrDatasetNotFound is returned when a dataset ID refers to no live session.
var ErrDatasetNotFound = errors.New("dataset not found")

// DatasetService handles upload orchestration and filtered-view retrieval
type DatasetService struct {
	repo *repository.DatasetRepository
}

// NewDatasetService creates a new dataset service
func NewDatasetService(repo *repository.DatasetRepository) *DatasetService {
	return &DatasetService{repo: repo}
}

// Upload ingests raw CSV bytes into a new dataset. Uploading bytes identical
// to a live dataset returns that dataset instead of re-ingesting.
func (s *DatasetService) Upload(raw []byte) (*models.DatasetSummary, error) {
	sum := md5.Sum(raw)
	checksum := hex.EncodeToString(sum[:])

	if d, ok := s.repo.GetByChecksum(checksum); ok {
		return s.summarize(d), nil
	}

	frame, err := dataset.Ingest(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	d := &models.Dataset{
		ID:           uuid.NewString(),
		Checksum:     checksum,
		UploadedAt:   time.Now(),
		Rows:         frame.Nrow(),
		Columns:      frame.Names(),
		Capabilities: dataset.DetectCapabilities(frame),
		Frame:        frame,
	}
	s.repo.Save(d)

	return s.summarize(d), nil
}

// Get retrieves a live dataset by ID
func (s *DatasetService) Get(id string) (*models.Dataset, error) {
	d, ok := s.repo.GetByID(id)
	if !ok {
		return nil, ErrDatasetNotFound
	}
	return d, nil
}

// Summary returns the dataset summary with default filter domains
func (s *DatasetService) Summary(id string) (*models.DatasetSummary, error) {
	d, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return s.summarize(d), nil
}

// Filtered runs the filter pipeline over a dataset's frame
func (s *DatasetService) Filtered(id string, f models.TripFilter) (dataframe.DataFrame, *models.Dataset, error) {
	d, err := s.Get(id)
	if err != nil {
		return dataframe.DataFrame{}, nil, err
	}
	return dataset.Apply(d.Frame, f), d, nil
}

// Options returns the progressive filter domains for the current selections
func (s *DatasetService) Options(id string, f models.TripFilter) (models.FilterOptions, error) {
	d, err := s.Get(id)
	if err != nil {
		return models.FilterOptions{}, err
	}
	return dataset.Options(d.Frame, f), nil
}

// Preview returns the first rows of the filtered table
func (s *DatasetService) Preview(id string, f models.TripFilter, limit int) (*models.Preview, error) {
	filtered, d, err := s.Filtered(id, f)
	if err != nil {
		return nil, err
	}

	n := filtered.Nrow()
	if limit < 0 {
		limit = 0
	}
	if limit > n {
		limit = n
	}

	var rows [][]string
	if limit > 0 {
		head := filtered
		if limit < n {
			idx := make([]int, limit)
			for i := range idx {
				idx[i] = i
			}
			head = filtered.Subset(idx)
		}
		records := head.Records() // first record is the header row
		rows = records[1:]
	}

	return &models.Preview{
		Columns:      filtered.Names(),
		Rows:         rows,
		TotalRows:    d.Rows,
		FilteredRows: n,
	}, nil
}

// Delete removes a dataset session
func (s *DatasetService) Delete(id string) error {
	if !s.repo.Delete(id) {
		return ErrDatasetNotFound
	}
	return nil
}

func (s *DatasetService) summarize(d *models.Dataset) *models.DatasetSummary {
	return &models.DatasetSummary{
		ID:           d.ID,
		UploadedAt:   d.UploadedAt,
		Rows:         d.Rows,
		Columns:      d.Columns,
		Capabilities: d.Capabilities,
		Filters:      dataset.Options(d.Frame, models.TripFilter{}),
	}
}
