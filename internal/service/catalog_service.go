package service

import (
	"strings"

	"github.com/sochitour-next/internal/logger"
	"github.com/sochitour-next/internal/models"
	"github.com/sochitour-next/internal/repository"
)

// CatalogService handles CRUD for the five catalog kinds and promotions.
type CatalogService struct {
	tourRepo        repository.TourRepository
	hotelRepo       repository.HotelRepository
	foreignTourRepo repository.ForeignTourRepository
	cruiseRepo      repository.CruiseRepository
	serviceRepo     repository.ServiceRepository
	promotionRepo   repository.PromotionRepository
}

// NewCatalogService creates a catalog service instance.
func NewCatalogService(
	tourRepo repository.TourRepository,
	hotelRepo repository.HotelRepository,
	foreignTourRepo repository.ForeignTourRepository,
	cruiseRepo repository.CruiseRepository,
	serviceRepo repository.ServiceRepository,
	promotionRepo repository.PromotionRepository,
) *CatalogService {
	return &CatalogService{
		tourRepo:        tourRepo,
		hotelRepo:       hotelRepo,
		foreignTourRepo: foreignTourRepo,
		cruiseRepo:      cruiseRepo,
		serviceRepo:     serviceRepo,
		promotionRepo:   promotionRepo,
	}
}

// TourInput carries create/update fields for a tour. Price is a pointer so
// a missing field is distinguishable from zero.
type TourInput struct {
	Name        string
	Description string
	Price       *models.Money
	Duration    string
	Destination string
	Category    string
	ImageURL    string
	Available   *bool
}

func (in TourInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Description) == "" || in.Price == nil {
		return NewValidationError("name, description and price are required")
	}
	return nil
}

// HotelInput carries create/update fields for a hotel.
type HotelInput struct {
	Name        string
	Description string
	Price       *models.Money
	Location    string
	Stars       int
	Category    string
	ImageURL    string
	Available   *bool
}

func (in HotelInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Description) == "" || in.Price == nil || strings.TrimSpace(in.Location) == "" {
		return NewValidationError("name, description, price and location are required")
	}
	return nil
}

// ForeignTourInput carries create/update fields for a foreign tour.
type ForeignTourInput struct {
	Name        string
	Description string
	Price       *models.Money
	Country     string
	Duration    string
	Highlights  models.StringArray
	TourType    string
	Category    string
	ImageURL    string
	Available   *bool
}

func (in ForeignTourInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Description) == "" || in.Price == nil || strings.TrimSpace(in.Country) == "" {
		return NewValidationError("name, description, price and country are required")
	}
	return nil
}

// CruiseInput carries create/update fields for a cruise.
type CruiseInput struct {
	Name        string
	Description string
	Price       *models.Money
	Departure   string
	Duration    string
	Destination string
	Category    string
	ImageURL    string
	Available   *bool
}

func (in CruiseInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Description) == "" || in.Price == nil || strings.TrimSpace(in.Departure) == "" {
		return NewValidationError("name, description, price and departure are required")
	}
	return nil
}

// ServiceInput carries create/update fields for an extra service.
type ServiceInput struct {
	Name        string
	Description string
	Price       *models.Money
	Category    string
	ImageURL    string
	Available   *bool
}

func (in ServiceInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Description) == "" || in.Price == nil {
		return NewValidationError("name, description and price are required")
	}
	return nil
}

// PromotionInput carries create/update fields for a promotion.
type PromotionInput struct {
	Title           string
	Description     string
	DiscountPercent *int
	ValidUntil      string
	Category        string
	ImageURL        string
	Active          *bool
}

func (in PromotionInput) validate() error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" || in.DiscountPercent == nil {
		return NewValidationError("title, description and discount_percent are required")
	}
	return nil
}

func flagOrDefault(flag *bool) bool {
	if flag == nil {
		return true
	}
	return *flag
}

// ListTours returns storefront-visible tours.
func (s *CatalogService) ListTours() ([]models.Tour, error) {
	return s.tourRepo.ListAvailable()
}

// CreateTour validates and inserts a tour.
func (s *CatalogService) CreateTour(in TourInput) (*models.Tour, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	tour := &models.Tour{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Duration:    in.Duration,
		Destination: in.Destination,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Available:   flagOrDefault(in.Available),
	}
	if err := s.tourRepo.Create(tour); err != nil {
		return nil, err
	}
	logger.Infow("catalog_item_created", "kind", "tour", "id", tour.ID)
	return tour, nil
}

// UpdateTour replaces a tour's fields; missing id yields ErrNotFound.
func (s *CatalogService) UpdateTour(id uint, in TourInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	affected, err := s.tourRepo.UpdateFields(id, map[string]interface{}{
		"name":        in.Name,
		"description": in.Description,
		"price":       *in.Price,
		"duration":    in.Duration,
		"destination": in.Destination,
		"category":    in.Category,
		"image_url":   in.ImageURL,
		"available":   flagOrDefault(in.Available),
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTour removes a tour; missing id yields ErrNotFound.
func (s *CatalogService) DeleteTour(id uint) error {
	affected, err := s.tourRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteToursByCategory bulk-deletes tours; zero matches is success.
func (s *CatalogService) DeleteToursByCategory(category string) (int64, error) {
	count, err := s.tourRepo.DeleteByCategory(category)
	if err != nil {
		return 0, err
	}
	logger.Infow("catalog_category_deleted", "kind", "tour", "category", category, "count", count)
	return count, nil
}

// ListHotels returns storefront-visible hotels.
func (s *CatalogService) ListHotels() ([]models.Hotel, error) {
	return s.hotelRepo.ListAvailable()
}

// CreateHotel validates and inserts a hotel.
func (s *CatalogService) CreateHotel(in HotelInput) (*models.Hotel, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	hotel := &models.Hotel{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Location:    in.Location,
		Stars:       in.Stars,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Available:   flagOrDefault(in.Available),
	}
	if err := s.hotelRepo.Create(hotel); err != nil {
		return nil, err
	}
	logger.Infow("catalog_item_created", "kind", "hotel", "id", hotel.ID)
	return hotel, nil
}

// UpdateHotel replaces a hotel's fields; missing id yields ErrNotFound.
func (s *CatalogService) UpdateHotel(id uint, in HotelInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	affected, err := s.hotelRepo.UpdateFields(id, map[string]interface{}{
		"name":        in.Name,
		"description": in.Description,
		"price":       *in.Price,
		"location":    in.Location,
		"stars":       in.Stars,
		"category":    in.Category,
		"image_url":   in.ImageURL,
		"available":   flagOrDefault(in.Available),
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteHotel removes a hotel; missing id yields ErrNotFound.
func (s *CatalogService) DeleteHotel(id uint) error {
	affected, err := s.hotelRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteHotelsByCategory bulk-deletes hotels; zero matches is success.
func (s *CatalogService) DeleteHotelsByCategory(category string) (int64, error) {
	count, err := s.hotelRepo.DeleteByCategory(category)
	if err != nil {
		return 0, err
	}
	logger.Infow("catalog_category_deleted", "kind", "hotel", "category", category, "count", count)
	return count, nil
}

// ListForeignTours returns storefront-visible foreign tours.
func (s *CatalogService) ListForeignTours() ([]models.ForeignTour, error) {
	return s.foreignTourRepo.ListAvailable()
}

// CreateForeignTour validates and inserts a foreign tour.
func (s *CatalogService) CreateForeignTour(in ForeignTourInput) (*models.ForeignTour, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	tour := &models.ForeignTour{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Country:     in.Country,
		Duration:    in.Duration,
		Highlights:  in.Highlights,
		TourType:    in.TourType,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Available:   flagOrDefault(in.Available),
	}
	if err := s.foreignTourRepo.Create(tour); err != nil {
		return nil, err
	}
	logger.Infow("catalog_item_created", "kind", "foreign_tour", "id", tour.ID)
	return tour, nil
}

// UpdateForeignTour replaces a foreign tour's fields; missing id yields ErrNotFound.
func (s *CatalogService) UpdateForeignTour(id uint, in ForeignTourInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	affected, err := s.foreignTourRepo.UpdateFields(id, map[string]interface{}{
		"name":        in.Name,
		"description": in.Description,
		"price":       *in.Price,
		"country":     in.Country,
		"duration":    in.Duration,
		"highlights":  in.Highlights,
		"tour_type":   in.TourType,
		"category":    in.Category,
		"image_url":   in.ImageURL,
		"available":   flagOrDefault(in.Available),
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteForeignTour removes a foreign tour; missing id yields ErrNotFound.
func (s *CatalogService) DeleteForeignTour(id uint) error {
	affected, err := s.foreignTourRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteForeignToursByCategory bulk-deletes foreign tours; zero matches is success.
func (s *CatalogService) DeleteForeignToursByCategory(category string) (int64, error) {
	count, err := s.foreignTourRepo.DeleteByCategory(category)
	if err != nil {
		return 0, err
	}
	logger.Infow("catalog_category_deleted", "kind", "foreign_tour", "category", category, "count", count)
	return count, nil
}

// ListCruises returns storefront-visible cruises.
func (s *CatalogService) ListCruises() ([]models.Cruise, error) {
	return s.cruiseRepo.ListAvailable()
}

// CreateCruise validates and inserts a cruise.
func (s *CatalogService) CreateCruise(in CruiseInput) (*models.Cruise, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	cruise := &models.Cruise{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Departure:   in.Departure,
		Duration:    in.Duration,
		Destination: in.Destination,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Available:   flagOrDefault(in.Available),
	}
	if err := s.cruiseRepo.Create(cruise); err != nil {
		return nil, err
	}
	logger.Infow("catalog_item_created", "kind", "cruise", "id", cruise.ID)
	return cruise, nil
}

// UpdateCruise replaces a cruise's fields; missing id yields ErrNotFound.
func (s *CatalogService) UpdateCruise(id uint, in CruiseInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	affected, err := s.cruiseRepo.UpdateFields(id, map[string]interface{}{
		"name":        in.Name,
		"description": in.Description,
		"price":       *in.Price,
		"departure":   in.Departure,
		"duration":    in.Duration,
		"destination": in.Destination,
		"category":    in.Category,
		"image_url":   in.ImageURL,
		"available":   flagOrDefault(in.Available),
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCruise removes a cruise; missing id yields ErrNotFound.
func (s *CatalogService) DeleteCruise(id uint) error {
	affected, err := s.cruiseRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCruisesByCategory bulk-deletes cruises; zero matches is success.
func (s *CatalogService) DeleteCruisesByCategory(category string) (int64, error) {
	count, err := s.cruiseRepo.DeleteByCategory(category)
	if err != nil {
		return 0, err
	}
	logger.Infow("catalog_category_deleted", "kind", "cruise", "category", category, "count", count)
	return count, nil
}

// ListServices returns storefront-visible services.
func (s *CatalogService) ListServices() ([]models.ServiceItem, error) {
	return s.serviceRepo.ListAvailable()
}

// CreateService validates and inserts a service.
func (s *CatalogService) CreateService(in ServiceInput) (*models.ServiceItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	item := &models.ServiceItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Available:   flagOrDefault(in.Available),
	}
	if err := s.serviceRepo.Create(item); err != nil {
		return nil, err
	}
	logger.Infow("catalog_item_created", "kind", "service", "id", item.ID)
	return item, nil
}

// UpdateService replaces a service's fields; missing id yields ErrNotFound.
func (s *CatalogService) UpdateService(id uint, in ServiceInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	affected, err := s.serviceRepo.UpdateFields(id, map[string]interface{}{
		"name":        in.Name,
		"description": in.Description,
		"price":       *in.Price,
		"category":    in.Category,
		"image_url":   in.ImageURL,
		"available":   flagOrDefault(in.Available),
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteService removes a service; missing id yields ErrNotFound.
func (s *CatalogService) DeleteService(id uint) error {
	affected, err := s.serviceRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteServicesByCategory bulk-deletes services; zero matches is success.
func (s *CatalogService) DeleteServicesByCategory(category string) (int64, error) {
	count, err := s.serviceRepo.DeleteByCategory(category)
	if err != nil {
		return 0, err
	}
	logger.Infow("catalog_category_deleted", "kind", "service", "category", category, "count", count)
	return count, nil
}

// ListPromotions returns storefront-visible promotions.
func (s *CatalogService) ListPromotions() ([]models.Promotion, error) {
	return s.promotionRepo.ListActive()
}

// CreatePromotion validates and inserts a promotion.
func (s *CatalogService) CreatePromotion(in PromotionInput) (*models.Promotion, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	promotion := &models.Promotion{
		Title:           in.Title,
		Description:     in.Description,
		DiscountPercent: *in.DiscountPercent,
		ValidUntil:      in.ValidUntil,
		Category:        in.Category,
		ImageURL:        in.ImageURL,
		Active:          flagOrDefault(in.Active),
	}
	if err := s.promotionRepo.Create(promotion); err != nil {
		return nil, err
	}
	logger.Infow("catalog_item_created", "kind", "promotion", "id", promotion.ID)
	return promotion, nil
}

// UpdatePromotion replaces a promotion's fields; missing id yields ErrNotFound.
func (s *CatalogService) UpdatePromotion(id uint, in PromotionInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	affected, err := s.promotionRepo.UpdateFields(id, map[string]interface{}{
		"title":            in.Title,
		"description":      in.Description,
		"discount_percent": *in.DiscountPercent,
		"valid_until":      in.ValidUntil,
		"category":         in.Category,
		"image_url":        in.ImageURL,
		"active":           flagOrDefault(in.Active),
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePromotion removes a promotion; missing id yields ErrNotFound.
func (s *CatalogService) DeletePromotion(id uint) error {
	affected, err := s.promotionRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePromotionsByCategory bulk-deletes promotions; zero matches is success.
func (s *CatalogService) DeletePromotionsByCategory(category string) (int64, error) {
	count, err := s.promotionRepo.DeleteByCategory(category)
	if err != nil {
		return 0, err
	}
	logger.Infow("catalog_category_deleted", "kind", "promotion", "category", category, "count", count)
	return count, nil
}
