package repository

import (
	"errors"

	"github.com/sochitour-next/internal/models"

	"gorm.io/gorm"
)

// TourRepository is the domestic tour data access interface.
type TourRepository interface {
	ListAvailable() ([]models.Tour, error)
	GetByID(id uint) (*models.Tour, error)
	Create(tour *models.Tour) error
	UpdateFields(id uint, updates map[string]interface{}) (int64, error)
	Delete(id uint) (int64, error)
	DeleteByCategory(category string) (int64, error)
	WithTx(tx *gorm.DB) *GormTourRepository
}

// GormTourRepository is the GORM implementation.
type GormTourRepository struct {
	db *gorm.DB
}

// NewTourRepository creates a tour repository.
func NewTourRepository(db *gorm.DB) *GormTourRepository {
	return &GormTourRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormTourRepository) WithTx(tx *gorm.DB) *GormTourRepository {
	if tx == nil {
		return r
	}
	return &GormTourRepository{db: tx}
}

// ListAvailable returns storefront-visible tours, newest first.
func (r *GormTourRepository) ListAvailable() ([]models.Tour, error) {
	var tours []models.Tour
	if err := r.db.Where("available = ?", true).Order("created_at desc").Find(&tours).Error; err != nil {
		return nil, err
	}
	return tours, nil
}

// GetByID fetches a tour by id; nil when missing.
func (r *GormTourRepository) GetByID(id uint) (*models.Tour, error) {
	var tour models.Tour
	if err := r.db.First(&tour, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tour, nil
}

// Create inserts a new tour.
func (r *GormTourRepository) Create(tour *models.Tour) error {
	return r.db.Create(tour).Error
}

// UpdateFields applies a partial update; returns rows affected.
func (r *GormTourRepository) UpdateFields(id uint, updates map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Tour{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

// Delete removes a tour by id; returns rows affected.
func (r *GormTourRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Tour{}, id)
	return result.RowsAffected, result.Error
}

// DeleteByCategory bulk-deletes a category; returns rows affected.
func (r *GormTourRepository) DeleteByCategory(category string) (int64, error) {
	result := r.db.Where("category = ?", category).Delete(&models.Tour{})
	return result.RowsAffected, result.Error
}
