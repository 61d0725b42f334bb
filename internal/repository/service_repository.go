package repository

import (
	"errors"

	"github.com/sochitour-next/internal/models"

	"gorm.io/gorm"
)

// ServiceRepository is the extra-service data access interface.
type ServiceRepository interface {
	ListAvailable() ([]models.ServiceItem, error)
	GetByID(id uint) (*models.ServiceItem, error)
	Create(item *models.ServiceItem) error
	UpdateFields(id uint, updates map[string]interface{}) (int64, error)
	Delete(id uint) (int64, error)
	DeleteByCategory(category string) (int64, error)
	WithTx(tx *gorm.DB) *GormServiceRepository
}

// GormServiceRepository is the GORM implementation.
type GormServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a service repository.
func NewServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormServiceRepository) WithTx(tx *gorm.DB) *GormServiceRepository {
	if tx == nil {
		return r
	}
	return &GormServiceRepository{db: tx}
}

// ListAvailable returns storefront-visible services, newest first.
func (r *GormServiceRepository) ListAvailable() ([]models.ServiceItem, error) {
	var items []models.ServiceItem
	if err := r.db.Where("available = ?", true).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID fetches a service by id; nil when missing.
func (r *GormServiceRepository) GetByID(id uint) (*models.ServiceItem, error) {
	var item models.ServiceItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new service.
func (r *GormServiceRepository) Create(item *models.ServiceItem) error {
	return r.db.Create(item).Error
}

// UpdateFields applies a partial update; returns rows affected.
func (r *GormServiceRepository) UpdateFields(id uint, updates map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.ServiceItem{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

// Delete removes a service by id; returns rows affected.
func (r *GormServiceRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.ServiceItem{}, id)
	return result.RowsAffected, result.Error
}

// DeleteByCategory bulk-deletes a category; returns rows affected.
func (r *GormServiceRepository) DeleteByCategory(category string) (int64, error) {
	result := r.db.Where("category = ?", category).Delete(&models.ServiceItem{})
	return result.RowsAffected, result.Error
}
