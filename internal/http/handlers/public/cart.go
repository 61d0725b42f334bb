package public

import (
	"strconv"

	"github.com/sochitour-next/internal/http/response"
	"github.com/sochitour-next/internal/models"
	"github.com/sochitour-next/internal/service"

	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	ItemID   uint          `json:"item_id"`
	ItemType string        `json:"item_type"`
	Quantity int           `json:"quantity"`
	ItemData *cartItemData `json:"item_data"`
}

// cartItemData is the display snapshot supplied by the storefront.
type cartItemData struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       *models.Money      `json:"price"`
	Duration    string             `json:"duration"`
	Destination string             `json:"destination"`
	Capacity    string             `json:"capacity"`
	Features    models.StringArray `json:"features"`
	Country     string             `json:"country"`
	Highlights  models.StringArray `json:"highlights"`
	Departure   string             `json:"departure"`
}

// GetCart handles GET /api/cart.
func (h *Handler) GetCart(c *gin.Context) {
	items, err := h.CartService.List(currentUserID(c))
	if err != nil {
		respondServiceError(c, err, "cart item not found")
		return
	}
	response.Success(c, items)
}

// AddToCart handles POST /api/cart/add.
func (h *Handler) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "item_id, item_type and item_data are required")
		return
	}
	if req.ItemData == nil {
		response.BadRequest(c, "item_id, item_type and item_data are required")
		return
	}

	item, err := h.CartService.Add(currentUserID(c), service.CartItemInput{
		ItemID:      req.ItemID,
		ItemType:    req.ItemType,
		Quantity:    req.Quantity,
		Name:        req.ItemData.Name,
		Description: req.ItemData.Description,
		Price:       req.ItemData.Price,
		Duration:    req.ItemData.Duration,
		Destination: req.ItemData.Destination,
		Capacity:    req.ItemData.Capacity,
		Features:    req.ItemData.Features,
		Country:     req.ItemData.Country,
		Highlights:  req.ItemData.Highlights,
		Departure:   req.ItemData.Departure,
	})
	if err != nil {
		respondServiceError(c, err, "cart item not found")
		return
	}

	response.SuccessWithMsg(c, "item added to cart", item)
}

// RemoveFromCart handles DELETE /api/cart/:id.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid cart item id")
		return
	}

	if err := h.CartService.Remove(currentUserID(c), uint(id)); err != nil {
		respondServiceError(c, err, "cart item not found")
		return
	}

	response.SuccessWithMsg(c, "item removed from cart", nil)
}
