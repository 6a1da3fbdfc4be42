package repositories

import (
	"errors"

	"solsight/internal/models"
)

var (
	ErrScanNotFound      = errors.New("scan record not found")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// ScanRepository defines the interface for scan history database operations
type ScanRepository interface {
	// Create persists a completed wallet analysis
	Create(record *models.ScanRecord) error

	// GetByID retrieves a scan record by its id
	GetByID(id string) (*models.ScanRecord, error)

	// ListByAddress retrieves scan records for an address with pagination,
	// newest first
	ListByAddress(address string, offset, limit int) ([]models.ScanRecord, int64, error)

	// List retrieves scan records across all addresses with pagination,
	// newest first
	List(offset, limit int) ([]models.ScanRecord, int64, error)
}

// Implementation is in scan_repository_impl.go
