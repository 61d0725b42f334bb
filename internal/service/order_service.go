package service

import (
	"github.com/sochitour-next/internal/logger"
	"github.com/sochitour-next/internal/models"
	"github.com/sochitour-next/internal/queue"
	"github.com/sochitour-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService handles checkout and order history.
type OrderService struct {
	db           *gorm.DB
	cartRepo     repository.CartRepository
	orderRepo    repository.OrderRepository
	queueClient  *queue.Client
	notification *NotificationService
}

// NewOrderService creates an order service instance.
func NewOrderService(
	db *gorm.DB,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	queueClient *queue.Client,
	notification *NotificationService,
) *OrderService {
	return &OrderService{
		db:           db,
		cartRepo:     cartRepo,
		orderRepo:    orderRepo,
		queueClient:  queueClient,
		notification: notification,
	}
}

// Checkout converts the user's cart into an order. The order and its items
// commit in one transaction; clearing the cart and notifying the operator
// happen after commit and never fail the call.
func (s *OrderService) Checkout(userID uint) (*models.Order, error) {
	lines, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	total := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		lineTotal := line.Price.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(lineTotal)
		orderItems = append(orderItems, models.OrderItem{
			ItemID:   line.ItemID,
			ItemType: line.ItemType,
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}

	order := &models.Order{
		UserID:      userID,
		TotalAmount: models.NewMoneyFromDecimal(total),
		Status:      models.OrderStatusPending,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.WithTx(tx).Create(order, orderItems)
	})
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.ClearByUser(userID); err != nil {
		logger.Warnw("cart_clear_after_checkout_failed", "user_id", userID, "order_id", order.ID, "error", err)
	}
	s.dispatchNotification(order.ID)

	logger.Infow("order_created",
		"order_id", order.ID,
		"user_id", userID,
		"total", order.TotalAmount.String(),
		"items", len(orderItems),
	)
	order.Items = orderItems
	return order, nil
}

// dispatchNotification hands the order off to the queue, or sends directly
// from a goroutine when the queue is disabled.
func (s *OrderService) dispatchNotification(orderID uint) {
	if s.queueClient.Enabled() {
		if err := s.queueClient.EnqueueOrderCreated(queue.OrderCreatedPayload{OrderID: orderID}); err != nil {
			logger.Warnw("order_notification_enqueue_failed", "order_id", orderID, "error", err)
		}
		return
	}
	if s.notification != nil {
		s.notification.NotifyAsync(orderID)
	}
}

// ListByUser returns the user's orders newest first, items included.
func (s *OrderService) ListByUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.ListByUser(userID)
}
