package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sochitour-next/internal/models"
	"github.com/sochitour-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderService := NewOrderService(db, cartRepo, orderRepo, nil, nil)
	cartService := NewCartService(cartRepo)
	return orderService, cartService, db
}

func TestOrderServiceCheckout(t *testing.T) {
	orderService, cartService, db := setupOrderServiceTest(t)
	userID := uint(7)

	price1 := models.NewMoneyFromDecimal(decimal.NewFromInt(2500))
	price2 := models.NewMoneyFromDecimal(decimal.NewFromInt(1800))
	if _, err := cartService.Add(userID, CartItemInput{
		ItemID:   1,
		ItemType: "tour",
		Name:     "Экскурсия по Сочи",
		Price:    &price1,
		Quantity: 1,
	}); err != nil {
		t.Fatalf("add first cart line failed: %v", err)
	}
	if _, err := cartService.Add(userID, CartItemInput{
		ItemID:   3,
		ItemType: "tour",
		Name:     "Морская прогулка",
		Price:    &price2,
		Quantity: 2,
	}); err != nil {
		t.Fatalf("add second cart line failed: %v", err)
	}

	order, err := orderService.Checkout(userID)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.ID == 0 {
		t.Fatalf("order id should be set")
	}
	if order.Status != models.OrderStatusPending {
		t.Fatalf("status want pending got %s", order.Status)
	}
	if got := order.TotalAmount.String(); got != "6100.00" {
		t.Fatalf("total want 6100.00 got %s", got)
	}
	if len(order.Items) != 2 {
		t.Fatalf("order items want 2 got %d", len(order.Items))
	}

	var itemCount int64
	if err := db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error; err != nil {
		t.Fatalf("count order items failed: %v", err)
	}
	if itemCount != 2 {
		t.Fatalf("persisted order items want 2 got %d", itemCount)
	}

	lines, err := cartService.List(userID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("cart should be empty after checkout, got %d lines", len(lines))
	}
}

func TestOrderServiceCheckoutEmptyCart(t *testing.T) {
	orderService, _, db := setupOrderServiceTest(t)

	_, err := orderService.Checkout(42)
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart got %v", err)
	}

	var orderCount int64
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("no order should be created, got %d", orderCount)
	}
}

func TestOrderServiceListByUser(t *testing.T) {
	orderService, cartService, _ := setupOrderServiceTest(t)
	userID := uint(9)

	price := models.NewMoneyFromDecimal(decimal.NewFromInt(3500))
	if _, err := cartService.Add(userID, CartItemInput{
		ItemID:   2,
		ItemType: "tour",
		Name:     "Красная Поляна",
		Price:    &price,
	}); err != nil {
		t.Fatalf("add cart line failed: %v", err)
	}
	if _, err := orderService.Checkout(userID); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	orders, err := orderService.ListByUser(userID)
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("orders want 1 got %d", len(orders))
	}
	if len(orders[0].Items) != 1 {
		t.Fatalf("order items should be preloaded, got %d", len(orders[0].Items))
	}
	if orders[0].Items[0].Name != "Красная Поляна" {
		t.Fatalf("unexpected item name %s", orders[0].Items[0].Name)
	}

	other, err := orderService.ListByUser(100)
	if err != nil {
		t.Fatalf("list orders for other user failed: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("other user should see no orders, got %d", len(other))
	}
}
