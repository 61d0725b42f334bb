package repository

import (
	"errors"

	"github.com/sochitour-next/internal/models"

	"gorm.io/gorm"
)

// PromotionRepository is the promotion data access interface.
type PromotionRepository interface {
	ListActive() ([]models.Promotion, error)
	GetByID(id uint) (*models.Promotion, error)
	Create(promotion *models.Promotion) error
	UpdateFields(id uint, updates map[string]interface{}) (int64, error)
	Delete(id uint) (int64, error)
	DeleteByCategory(category string) (int64, error)
	WithTx(tx *gorm.DB) *GormPromotionRepository
}

// GormPromotionRepository is the GORM implementation.
type GormPromotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository creates a promotion repository.
func NewPromotionRepository(db *gorm.DB) *GormPromotionRepository {
	return &GormPromotionRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormPromotionRepository) WithTx(tx *gorm.DB) *GormPromotionRepository {
	if tx == nil {
		return r
	}
	return &GormPromotionRepository{db: tx}
}

// ListActive returns storefront-visible promotions, newest first.
func (r *GormPromotionRepository) ListActive() ([]models.Promotion, error) {
	var promotions []models.Promotion
	if err := r.db.Where("active = ?", true).Order("created_at desc").Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

// GetByID fetches a promotion by id; nil when missing.
func (r *GormPromotionRepository) GetByID(id uint) (*models.Promotion, error) {
	var promotion models.Promotion
	if err := r.db.First(&promotion, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &promotion, nil
}

// Create inserts a new promotion.
func (r *GormPromotionRepository) Create(promotion *models.Promotion) error {
	return r.db.Create(promotion).Error
}

// UpdateFields applies a partial update; returns rows affected.
func (r *GormPromotionRepository) UpdateFields(id uint, updates map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Promotion{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

// Delete removes a promotion by id; returns rows affected.
func (r *GormPromotionRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Promotion{}, id)
	return result.RowsAffected, result.Error
}

// DeleteByCategory bulk-deletes a category; returns rows affected.
func (r *GormPromotionRepository) DeleteByCategory(category string) (int64, error) {
	result := r.db.Where("category = ?", category).Delete(&models.Promotion{})
	return result.RowsAffected, result.Error
}
