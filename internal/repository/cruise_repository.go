package repository

import (
	"errors"

	"github.com/sochitour-next/internal/models"

	"gorm.io/gorm"
)

// CruiseRepository is the cruise data access interface.
type CruiseRepository interface {
	ListAvailable() ([]models.Cruise, error)
	GetByID(id uint) (*models.Cruise, error)
	Create(cruise *models.Cruise) error
	UpdateFields(id uint, updates map[string]interface{}) (int64, error)
	Delete(id uint) (int64, error)
	DeleteByCategory(category string) (int64, error)
	WithTx(tx *gorm.DB) *GormCruiseRepository
}

// GormCruiseRepository is the GORM implementation.
type GormCruiseRepository struct {
	db *gorm.DB
}

// NewCruiseRepository creates a cruise repository.
func NewCruiseRepository(db *gorm.DB) *GormCruiseRepository {
	return &GormCruiseRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCruiseRepository) WithTx(tx *gorm.DB) *GormCruiseRepository {
	if tx == nil {
		return r
	}
	return &GormCruiseRepository{db: tx}
}

// ListAvailable returns storefront-visible cruises, newest first.
func (r *GormCruiseRepository) ListAvailable() ([]models.Cruise, error) {
	var cruises []models.Cruise
	if err := r.db.Where("available = ?", true).Order("created_at desc").Find(&cruises).Error; err != nil {
		return nil, err
	}
	return cruises, nil
}

// GetByID fetches a cruise by id; nil when missing.
func (r *GormCruiseRepository) GetByID(id uint) (*models.Cruise, error) {
	var cruise models.Cruise
	if err := r.db.First(&cruise, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cruise, nil
}

// Create inserts a new cruise.
func (r *GormCruiseRepository) Create(cruise *models.Cruise) error {
	return r.db.Create(cruise).Error
}

// UpdateFields applies a partial update; returns rows affected.
func (r *GormCruiseRepository) UpdateFields(id uint, updates map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Cruise{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

// Delete removes a cruise by id; returns rows affected.
func (r *GormCruiseRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Cruise{}, id)
	return result.RowsAffected, result.Error
}

// DeleteByCategory bulk-deletes a category; returns rows affected.
func (r *GormCruiseRepository) DeleteByCategory(category string) (int64, error) {
	result := r.db.Where("category = ?", category).Delete(&models.Cruise{})
	return result.RowsAffected, result.Error
}
