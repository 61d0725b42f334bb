package service

import (
	"strings"
	"time"

	"github.com/sochitour-next/internal/models"
	"github.com/sochitour-next/internal/repository"
)

var knownCartItemTypes = map[string]struct{}{
	"tour":         {},
	"hotel":        {},
	"foreign_tour": {},
	"cruise":       {},
	"service":      {},
}

// CartService handles per-user cart lines.
type CartService struct {
	cartRepo repository.CartRepository
}

// NewCartService creates a cart service instance.
func NewCartService(cartRepo repository.CartRepository) *CartService {
	return &CartService{cartRepo: cartRepo}
}

// CartItemInput carries an add-to-cart request. The display fields are
// snapshots supplied by the caller; the catalog row is not consulted.
type CartItemInput struct {
	ItemID      uint
	ItemType    string
	Quantity    int
	Name        string
	Description string
	Price       *models.Money
	Duration    string
	Destination string
	Capacity    string
	Features    models.StringArray
	Country     string
	Highlights  models.StringArray
	Departure   string
}

// List returns the user's cart lines, most recently added first.
func (s *CartService) List(userID uint) ([]models.CartItem, error) {
	return s.cartRepo.ListByUser(userID)
}

// Add appends a cart line. Repeated adds of the same item create independent
// lines; the stored rows carry no product intent that would justify merging.
func (s *CartService) Add(userID uint, in CartItemInput) (*models.CartItem, error) {
	itemType := strings.TrimSpace(in.ItemType)
	if in.ItemID == 0 || itemType == "" {
		return nil, NewValidationError("item_id and item_type are required")
	}
	if _, ok := knownCartItemTypes[itemType]; !ok {
		return nil, NewValidationError("unknown item_type: " + itemType)
	}
	if strings.TrimSpace(in.Name) == "" || in.Price == nil {
		return nil, NewValidationError("item data with name and price is required")
	}

	quantity := in.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	item := &models.CartItem{
		UserID:      userID,
		ItemID:      in.ItemID,
		ItemType:    itemType,
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Quantity:    quantity,
		Duration:    in.Duration,
		Destination: in.Destination,
		Capacity:    in.Capacity,
		Features:    in.Features,
		Country:     in.Country,
		Highlights:  in.Highlights,
		Departure:   in.Departure,
		AddedAt:     time.Now(),
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Remove deletes one of the caller's cart lines. A foreign or missing line
// yields ErrNotFound without revealing which.
func (s *CartService) Remove(userID, cartItemID uint) error {
	affected, err := s.cartRepo.DeleteByIDAndUser(cartItemID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
