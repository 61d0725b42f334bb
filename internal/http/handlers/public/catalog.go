package public

import (
	"github.com/sochitour-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListTours handles GET /api/tours.
func (h *Handler) ListTours(c *gin.Context) {
	tours, err := h.CatalogService.ListTours()
	if err != nil {
		respondServiceError(c, err, "tour not found")
		return
	}
	response.Success(c, tours)
}

// ListHotels handles GET /api/hotels.
func (h *Handler) ListHotels(c *gin.Context) {
	hotels, err := h.CatalogService.ListHotels()
	if err != nil {
		respondServiceError(c, err, "hotel not found")
		return
	}
	response.Success(c, hotels)
}

// ListForeignTours handles GET /api/foreign-tours.
func (h *Handler) ListForeignTours(c *gin.Context) {
	tours, err := h.CatalogService.ListForeignTours()
	if err != nil {
		respondServiceError(c, err, "foreign tour not found")
		return
	}
	response.Success(c, tours)
}

// ListCruises handles GET /api/cruises.
func (h *Handler) ListCruises(c *gin.Context) {
	cruises, err := h.CatalogService.ListCruises()
	if err != nil {
		respondServiceError(c, err, "cruise not found")
		return
	}
	response.Success(c, cruises)
}

// ListServices handles GET /api/services.
func (h *Handler) ListServices(c *gin.Context) {
	items, err := h.CatalogService.ListServices()
	if err != nil {
		respondServiceError(c, err, "service not found")
		return
	}
	response.Success(c, items)
}

// ListPromotions handles GET /api/promotions.
func (h *Handler) ListPromotions(c *gin.Context) {
	promotions, err := h.CatalogService.ListPromotions()
	if err != nil {
		respondServiceError(c, err, "promotion not found")
		return
	}
	response.Success(c, promotions)
}
