package repository

import (
	"errors"

	"github.com/sochitour-next/internal/models"

	"gorm.io/gorm"
)

// HotelRepository is the hotel data access interface.
type HotelRepository interface {
	ListAvailable() ([]models.Hotel, error)
	GetByID(id uint) (*models.Hotel, error)
	Create(hotel *models.Hotel) error
	UpdateFields(id uint, updates map[string]interface{}) (int64, error)
	Delete(id uint) (int64, error)
	DeleteByCategory(category string) (int64, error)
	WithTx(tx *gorm.DB) *GormHotelRepository
}

// GormHotelRepository is the GORM implementation.
type GormHotelRepository struct {
	db *gorm.DB
}

// NewHotelRepository creates a hotel repository.
func NewHotelRepository(db *gorm.DB) *GormHotelRepository {
	return &GormHotelRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormHotelRepository) WithTx(tx *gorm.DB) *GormHotelRepository {
	if tx == nil {
		return r
	}
	return &GormHotelRepository{db: tx}
}

// ListAvailable returns storefront-visible hotels, newest first.
func (r *GormHotelRepository) ListAvailable() ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := r.db.Where("available = ?", true).Order("created_at desc").Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

// GetByID fetches a hotel by id; nil when missing.
func (r *GormHotelRepository) GetByID(id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := r.db.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hotel, nil
}

// Create inserts a new hotel.
func (r *GormHotelRepository) Create(hotel *models.Hotel) error {
	return r.db.Create(hotel).Error
}

// UpdateFields applies a partial update; returns rows affected.
func (r *GormHotelRepository) UpdateFields(id uint, updates map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Hotel{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

// Delete removes a hotel by id; returns rows affected.
func (r *GormHotelRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Hotel{}, id)
	return result.RowsAffected, result.Error
}

// DeleteByCategory bulk-deletes a category; returns rows affected.
func (r *GormHotelRepository) DeleteByCategory(category string) (int64, error) {
	result := r.db.Where("category = ?", category).Delete(&models.Hotel{})
	return result.RowsAffected, result.Error
}
