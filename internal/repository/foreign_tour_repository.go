package repository

import (
	"errors"

	"github.com/sochitour-next/internal/models"

	"gorm.io/gorm"
)

// ForeignTourRepository is the international tour data access interface.
type ForeignTourRepository interface {
	ListAvailable() ([]models.ForeignTour, error)
	GetByID(id uint) (*models.ForeignTour, error)
	Create(tour *models.ForeignTour) error
	UpdateFields(id uint, updates map[string]interface{}) (int64, error)
	Delete(id uint) (int64, error)
	DeleteByCategory(category string) (int64, error)
	WithTx(tx *gorm.DB) *GormForeignTourRepository
}

// GormForeignTourRepository is the GORM implementation.
type GormForeignTourRepository struct {
	db *gorm.DB
}

// NewForeignTourRepository creates a foreign tour repository.
func NewForeignTourRepository(db *gorm.DB) *GormForeignTourRepository {
	return &GormForeignTourRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormForeignTourRepository) WithTx(tx *gorm.DB) *GormForeignTourRepository {
	if tx == nil {
		return r
	}
	return &GormForeignTourRepository{db: tx}
}

// ListAvailable returns storefront-visible foreign tours, newest first.
func (r *GormForeignTourRepository) ListAvailable() ([]models.ForeignTour, error) {
	var tours []models.ForeignTour
	if err := r.db.Where("available = ?", true).Order("created_at desc").Find(&tours).Error; err != nil {
		return nil, err
	}
	return tours, nil
}

// GetByID fetches a foreign tour by id; nil when missing.
func (r *GormForeignTourRepository) GetByID(id uint) (*models.ForeignTour, error) {
	var tour models.ForeignTour
	if err := r.db.First(&tour, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tour, nil
}

// Create inserts a new foreign tour.
func (r *GormForeignTourRepository) Create(tour *models.ForeignTour) error {
	return r.db.Create(tour).Error
}

// UpdateFields applies a partial update; returns rows affected.
func (r *GormForeignTourRepository) UpdateFields(id uint, updates map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.ForeignTour{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

// Delete removes a foreign tour by id; returns rows affected.
func (r *GormForeignTourRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.ForeignTour{}, id)
	return result.RowsAffected, result.Error
}

// DeleteByCategory bulk-deletes a category; returns rows affected.
func (r *GormForeignTourRepository) DeleteByCategory(category string) (int64, error) {
	result := r.db.Where("category = ?", category).Delete(&models.ForeignTour{})
	return result.RowsAffected, result.Error
}
