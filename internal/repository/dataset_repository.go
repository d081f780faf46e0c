package repository

import (
	"sync"

	"github.com/cabvision/cabvision-backend-go/internal/models"
)

// DatasetRepository is the in-memory registry of uploaded datasets. Tables
// live only for the session; there is no durable store. The checksum index
// lets a re-upload of identical bytes reuse the already-ingested frame.
type DatasetRepository struct {
	mu         sync.RWMutex
	byID       map[string]*models.Dataset
	byChecksum map[string]string // checksum -> dataset ID
}

// NewDatasetRepository creates an empty dataset repository
func NewDatasetRepository() *DatasetRepository {
	return &DatasetRepository{
		byID:       make(map[string]*models.Dataset),
		byChecksum: make(map[string]string),
	}
}

// Save stores a dataset and indexes its content checksum
func (r *DatasetRepository) Save(d *models.Dataset) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[d.ID] = d
	r.byChecksum[d.Checksum] = d.ID
}

// GetByID retrieves a dataset by its ID
func (r *DatasetRepository) GetByID(id string) (*models.Dataset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	return d, ok
}

// GetByChecksum retrieves a dataset by the md5 checksum of its raw bytes
func (r *DatasetRepository) GetByChecksum(sum string) (*models.Dataset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byChecksum[sum]
	if !ok {
		return nil, false
	}
	d, ok := r.byID[id]
	return d, ok
}

// Delete removes a dataset and frees its table
func (r *DatasetRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.byID[id]
	if !ok {
		return false
	}
	delete(r.byID, id)
	delete(r.byChecksum, d.Checksum)
	return true
}

// Count returns the number of stored datasets
func (r *DatasetRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID)
}
