package admin

import (
	"net/url"

	"github.com/sochitour-next/internal/http/response"
	"github.com/sochitour-next/internal/models"
	"github.com/sochitour-next/internal/service"

	"github.com/gin-gonic/gin"
)

type tourRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       *models.Money `json:"price"`
	Duration    string        `json:"duration"`
	Destination string        `json:"destination"`
	Category    string        `json:"category"`
	ImageURL    string        `json:"image_url"`
	Available   *bool         `json:"available"`
}

func (r tourRequest) toInput() service.TourInput {
	return service.TourInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
		Destination: r.Destination,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		Available:   r.Available,
	}
}

type hotelRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       *models.Money `json:"price"`
	Location    string        `json:"location"`
	Stars       int           `json:"stars"`
	Category    string        `json:"category"`
	ImageURL    string        `json:"image_url"`
	Available   *bool         `json:"available"`
}

func (r hotelRequest) toInput() service.HotelInput {
	return service.HotelInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Location:    r.Location,
		Stars:       r.Stars,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		Available:   r.Available,
	}
}

type foreignTourRequest struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       *models.Money      `json:"price"`
	Country     string             `json:"country"`
	Duration    string             `json:"duration"`
	Highlights  models.StringArray `json:"highlights"`
	TourType    string             `json:"tour_type"`
	Category    string             `json:"category"`
	ImageURL    string             `json:"image_url"`
	Available   *bool              `json:"available"`
}

func (r foreignTourRequest) toInput() service.ForeignTourInput {
	return service.ForeignTourInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Country:     r.Country,
		Duration:    r.Duration,
		Highlights:  r.Highlights,
		TourType:    r.TourType,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		Available:   r.Available,
	}
}

type cruiseRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       *models.Money `json:"price"`
	Departure   string        `json:"departure"`
	Duration    string        `json:"duration"`
	Destination string        `json:"destination"`
	Category    string        `json:"category"`
	ImageURL    string        `json:"image_url"`
	Available   *bool         `json:"available"`
}

func (r cruiseRequest) toInput() service.CruiseInput {
	return service.CruiseInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Departure:   r.Departure,
		Duration:    r.Duration,
		Destination: r.Destination,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		Available:   r.Available,
	}
}

type serviceRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       *models.Money `json:"price"`
	Category    string        `json:"category"`
	ImageURL    string        `json:"image_url"`
	Available   *bool         `json:"available"`
}

func (r serviceRequest) toInput() service.ServiceInput {
	return service.ServiceInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		Available:   r.Available,
	}
}

type promotionRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	DiscountPercent *int   `json:"discount_percent"`
	ValidUntil      string `json:"valid_until"`
	Category        string `json:"category"`
	ImageURL        string `json:"image_url"`
	Active          *bool  `json:"active"`
}

func (r promotionRequest) toInput() service.PromotionInput {
	return service.PromotionInput{
		Title:           r.Title,
		Description:     r.Description,
		DiscountPercent: r.DiscountPercent,
		ValidUntil:      r.ValidUntil,
		Category:        r.Category,
		ImageURL:        r.ImageURL,
		Active:          r.Active,
	}
}

// pathCategory decodes the :category route parameter.
func pathCategory(c *gin.Context) string {
	raw := c.Param("category")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// CreateTour handles POST /api/tours.
func (h *Handler) CreateTour(c *gin.Context) {
	var req tourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name, description and price are required")
		return
	}
	tour, err := h.CatalogService.CreateTour(req.toInput())
	if err != nil {
		respondServiceError(c, err, "tour not found")
		return
	}
	response.SuccessWithMsg(c, "tour created", tour)
}

// UpdateTour handles PUT /api/tours/:id.
func (h *Handler) UpdateTour(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req tourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name, description and price are required")
		return
	}
	if err := h.CatalogService.UpdateTour(id, req.toInput()); err != nil {
		respondServiceError(c, err, "tour not found")
		return
	}
	response.SuccessWithMsg(c, "tour updated", nil)
}

// DeleteTour handles DELETE /api/tours/:id.
func (h *Handler) DeleteTour(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteTour(id); err != nil {
		respondServiceError(c, err, "tour not found")
		return
	}
	response.SuccessWithMsg(c, "tour deleted", nil)
}

// DeleteToursByCategory handles DELETE /api/tours/category/:category.
func (h *Handler) DeleteToursByCategory(c *gin.Context) {
	count, err := h.CatalogService.DeleteToursByCategory(pathCategory(c))
	if err != nil {
		respondServiceError(c, err, "tour not found")
		return
	}
	response.SuccessWithMsg(c, "category deleted", gin.H{"deletedCount": count})
}

// CreateHotel handles POST /api/hotels.
func (h *Handler) CreateHotel(c *gin.Context) {
	var req hotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name, description, price and location are required")
		return
	}
	hotel, err := h.CatalogService.CreateHotel(req.toInput())
	if err != nil {
		respondServiceError(c, err, "hotel not found")
		return
	}
	response.SuccessWithMsg(c, "hotel created", hotel)
}

// UpdateHotel handles PUT /api/hotels/:id.
func (h *Handler) UpdateHotel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req hotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name, description, price and location are required")
		return
	}
	if err := h.CatalogService.UpdateHotel(id, req.toInput()); err != nil {
		respondServiceError(c, err, "hotel not found")
		return
	}
	response.SuccessWithMsg(c, "hotel updated", nil)
}

// DeleteHotel handles DELETE /api/hotels/:id.
func (h *Handler) DeleteHotel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteHotel(id); err != nil {
		respondServiceError(c, err, "hotel not found")
		return
	}
	response.SuccessWithMsg(c, "hotel deleted", nil)
}

// DeleteHotelsByCategory handles DELETE /api/hotels/category/:category.
func (h *Handler) DeleteHotelsByCategory(c *gin.Context) {
	count, err := h.CatalogService.DeleteHotelsByCategory(pathCategory(c))
	if err != nil {
		respondServiceError(c, err, "hotel not found")
		return
	}
	response.SuccessWithMsg(c, "category deleted", gin.H{"deletedCount": count})
}

// CreateForeignTour handles POST /api/foreign-tours.
func (h *Handler) CreateForeignTour(c *gin.Context) {
	var req foreignTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name, description, price and country are required")
		return
	}
	tour, err := h.CatalogService.CreateForeignTour(req.toInput())
	if err != nil {
		respondServiceError(c, err, "foreign tour not found")
		return
	}
	response.SuccessWithMsg(c, "foreign tour created", tour)
}

// UpdateForeignTour handles PUT /api/foreign-tours/:id.
func (h *Handler) UpdateForeignTour(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req foreignTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name, description, price and country are required")
		return
	}
	if err := h.CatalogService.UpdateForeignTour(id, req.toInput()); err != nil {
		respondServiceError(c, err, "foreign tour not found")
		return
	}
	response.SuccessWithMsg(c, "foreign tour updated", nil)
}

// DeleteForeignTour handles DELETE /api/foreign-tours/:id.
func (h *Handler) DeleteForeignTour(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteForeignTour(id); err != nil {
		respondServiceError(c, err, "foreign tour not found")
		return
	}
	response.SuccessWithMsg(c, "foreign tour deleted", nil)
}

// DeleteForeignToursByCategory handles DELETE /api/foreign-tours/category/:category.
func (h *Handler) DeleteForeignToursByCategory(c *gin.Context) {
	count, err := h.CatalogService.DeleteForeignToursByCategory(pathCategory(c))
	if err != nil {
		respondServiceError(c, err, "foreign tour not found")
		return
	}
	response.SuccessWithMsg(c, "category deleted", gin.H{"deletedCount": count})
}

// CreateCruise handles POST /api/cruises.
func (h *Handler) CreateCruise(c *gin.Context) {
	var req cruiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name, description, price and departure are required")
		return
	}
	cruise, err := h.CatalogService.CreateCruise(req.toInput())
	if err != nil {
		respondServiceError(c, err, "cruise not found")
		return
	}
	response.SuccessWithMsg(c, "cruise created", cruise)
}

// UpdateCruise handles PUT /api/cruises/:id.
func (h *Handler) UpdateCruise(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req cruiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name, description, price and departure are required")
		return
	}
	if err := h.CatalogService.UpdateCruise(id, req.toInput()); err != nil {
		respondServiceError(c, err, "cruise not found")
		return
	}
	response.SuccessWithMsg(c, "cruise updated", nil)
}

// DeleteCruise handles DELETE /api/cruises/:id.
func (h *Handler) DeleteCruise(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteCruise(id); err != nil {
		respondServiceError(c, err, "cruise not found")
		return
	}
	response.SuccessWithMsg(c, "cruise deleted", nil)
}

// DeleteCruisesByCategory handles DELETE /api/cruises/category/:category.
func (h *Handler) DeleteCruisesByCategory(c *gin.Context) {
	count, err := h.CatalogService.DeleteCruisesByCategory(pathCategory(c))
	if err != nil {
		respondServiceError(c, err, "cruise not found")
		return
	}
	response.SuccessWithMsg(c, "category deleted", gin.H{"deletedCount": count})
}

// CreateService handles POST /api/services.
func (h *Handler) CreateService(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name, description and price are required")
		return
	}
	item, err := h.CatalogService.CreateService(req.toInput())
	if err != nil {
		respondServiceError(c, err, "service not found")
		return
	}
	response.SuccessWithMsg(c, "service created", item)
}

// UpdateService handles PUT /api/services/:id.
func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name, description and price are required")
		return
	}
	if err := h.CatalogService.UpdateService(id, req.toInput()); err != nil {
		respondServiceError(c, err, "service not found")
		return
	}
	response.SuccessWithMsg(c, "service updated", nil)
}

// DeleteService handles DELETE /api/services/:id.
func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteService(id); err != nil {
		respondServiceError(c, err, "service not found")
		return
	}
	response.SuccessWithMsg(c, "service deleted", nil)
}

// DeleteServicesByCategory handles DELETE /api/services/category/:category.
func (h *Handler) DeleteServicesByCategory(c *gin.Context) {
	count, err := h.CatalogService.DeleteServicesByCategory(pathCategory(c))
	if err != nil {
		respondServiceError(c, err, "service not found")
		return
	}
	response.SuccessWithMsg(c, "category deleted", gin.H{"deletedCount": count})
}

// CreatePromotion handles POST /api/promotions.
func (h *Handler) CreatePromotion(c *gin.Context) {
	var req promotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title, description and discount_percent are required")
		return
	}
	promotion, err := h.CatalogService.CreatePromotion(req.toInput())
	if err != nil {
		respondServiceError(c, err, "promotion not found")
		return
	}
	response.SuccessWithMsg(c, "promotion created", promotion)
}

// UpdatePromotion handles PUT /api/promotions/:id.
func (h *Handler) UpdatePromotion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req promotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title, description and discount_percent are required")
		return
	}
	if err := h.CatalogService.UpdatePromotion(id, req.toInput()); err != nil {
		respondServiceError(c, err, "promotion not found")
		return
	}
	response.SuccessWithMsg(c, "promotion updated", nil)
}

// DeletePromotion handles DELETE /api/promotions/:id.
func (h *Handler) DeletePromotion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.CatalogService.DeletePromotion(id); err != nil {
		respondServiceError(c, err, "promotion not found")
		return
	}
	response.SuccessWithMsg(c, "promotion deleted", nil)
}

// DeletePromotionsByCategory handles DELETE /api/promotions/category/:category.
func (h *Handler) DeletePromotionsByCategory(c *gin.Context) {
	count, err := h.CatalogService.DeletePromotionsByCategory(pathCategory(c))
	if err != nil {
		respondServiceError(c, err, "promotion not found")
		return
	}
	response.SuccessWithMsg(c, "category deleted", gin.H{"deletedCount": count})
}
