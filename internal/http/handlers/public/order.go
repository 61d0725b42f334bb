package public

import (
	"github.com/sochitour-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CreateOrder handles POST /api/orders: checkout of the current cart.
func (h *Handler) CreateOrder(c *gin.Context) {
	order, err := h.OrderService.Checkout(currentUserID(c))
	if err != nil {
		respondServiceError(c, err, "order not found")
		return
	}

	response.SuccessWithMsg(c, "order created", gin.H{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
		"status":       order.Status,
	})
}

// ListOrders handles GET /api/orders.
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.OrderService.ListByUser(currentUserID(c))
	if err != nil {
		respondServiceError(c, err, "order not found")
		return
	}
	response.Success(c, orders)
}
