package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sochitour-next/internal/logger"
	"github.com/sochitour-next/internal/models"
	"github.com/sochitour-next/internal/notify"
	"github.com/sochitour-next/internal/repository"
)

// NotificationService renders and sends order notifications to Telegram.
// Every path is best-effort: a missing sender, order or user degrades to a
// logged no-op, never an error surfaced to checkout.
type NotificationService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	sender    *notify.TelegramSender
}

// NewNotificationService creates a notification service instance.
func NewNotificationService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	sender *notify.TelegramSender,
) *NotificationService {
	return &NotificationService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		sender:    sender,
	}
}

// SendOrderCreated fetches the order and posts the message to Telegram.
func (s *NotificationService) SendOrderCreated(ctx context.Context, orderID uint) error {
	if s == nil || !s.sender.Enabled() {
		return nil
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		logger.Debugw("order_notification_skip_order_not_found", "order_id", orderID)
		return nil
	}

	user, err := s.userRepo.GetByID(order.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		logger.Debugw("order_notification_skip_user_not_found", "order_id", orderID, "user_id", order.UserID)
		return nil
	}

	message := renderOrderMessage(order, user)
	if err := s.sender.SendMessage(ctx, message); err != nil {
		return err
	}
	logger.Infow("order_notification_sent", "order_id", order.ID)
	return nil
}

// renderOrderMessage formats the operator-facing Telegram text.
func renderOrderMessage(order *models.Order, user *models.User) string {
	phone := strings.TrimSpace(user.Phone)
	if phone == "" {
		phone = "Не указан"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🛒 НОВЫЙ ЗАКАЗ #%d\n\n", order.ID)
	fmt.Fprintf(&b, "👤 Покупатель: %s\n", user.Name)
	fmt.Fprintf(&b, "📧 Email: %s\n", user.Email)
	fmt.Fprintf(&b, "📱 Телефон: %s\n\n", phone)
	fmt.Fprintf(&b, "💰 Сумма: %s ₽\n", order.TotalAmount.String())
	fmt.Fprintf(&b, "📅 Дата: %s\n\n", order.CreatedAt.Format("02.01.2006 15:04:05"))
	b.WriteString("📋 Товары:\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "• %s x%d - %s ₽\n", item.Name, item.Quantity, item.Price.String())
	}
	return b.String()
}

// NotifyAsync fires the notification from a goroutine, used when the queue
// is disabled. Failures are logged and swallowed.
func (s *NotificationService) NotifyAsync(orderID uint) {
	if s == nil || !s.sender.Enabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.SendOrderCreated(ctx, orderID); err != nil {
			logger.Warnw("order_notification_failed", "order_id", orderID, "error", err)
		}
	}()
}
