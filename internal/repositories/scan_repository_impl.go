package repositories

import (
	"solsight/internal/models"

	"gorm.io/gorm"
)

type scanRepository struct {
	db *gorm.DB
}

// NewScanRepository creates a new instance of ScanRepository
func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepository{db: db}
}

func (r *scanRepository) Create(record *models.ScanRecord) error {
	if result := r.db.Create(record); result.Error != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *scanRepository) GetByID(id string) (*models.ScanRecord, error) {
	var record models.ScanRecord
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrScanNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *scanRepository) ListByAddress(address string, offset, limit int) ([]models.ScanRecord, int64, error) {
	var total int64
	if err := r.db.Model(&models.ScanRecord{}).Where("address = ?", address).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.ScanRecord
	err := r.db.Where("address = ?", address).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error
	return records, total, err
}

func (r *scanRepository) List(offset, limit int) ([]models.ScanRecord, int64, error) {
	var total int64
	if err := r.db.Model(&models.ScanRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.ScanRecord
	err := r.db.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error
	return records, total, err
}
