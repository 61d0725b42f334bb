package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sochitour-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderRepositoryTest(t *testing.T) (*GormOrderRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewOrderRepository(db), db
}

func TestOrderRepositoryCreateAndGet(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)

	order := &models.Order{
		UserID:      1,
		TotalAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(4300)),
		Status:      models.OrderStatusPending,
	}
	items := []models.OrderItem{
		{ItemID: 1, ItemType: "tour", Name: "Экскурсия по Сочи", Quantity: 1, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(2500))},
		{ItemID: 3, ItemType: "tour", Name: "Морская прогулка", Quantity: 1, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(1800))},
	}
	if err := repo.Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	got, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got == nil {
		t.Fatalf("order should exist")
	}
	if len(got.Items) != 2 {
		t.Fatalf("items want 2 got %d", len(got.Items))
	}
	for _, item := range got.Items {
		if item.OrderID != order.ID {
			t.Fatalf("item order_id want %d got %d", order.ID, item.OrderID)
		}
	}

	missing, err := repo.GetByID(99999)
	if err != nil {
		t.Fatalf("get missing order failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("missing order should be nil")
	}
}

func TestOrderRepositoryWithTxRollback(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)

	boom := errors.New("boom")
	err := db.Transaction(func(tx *gorm.DB) error {
		order := &models.Order{
			UserID:      2,
			TotalAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
			Status:      models.OrderStatusPending,
		}
		if err := repo.WithTx(tx).Create(order, []models.OrderItem{
			{ItemID: 1, ItemType: "service", Name: "Трансфер", Quantity: 1, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(100))},
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("transaction should surface the inner error, got %v", err)
	}

	var orderCount, itemCount int64
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if err := db.Model(&models.OrderItem{}).Count(&itemCount).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if orderCount != 0 || itemCount != 0 {
		t.Fatalf("rollback should leave no rows, orders=%d items=%d", orderCount, itemCount)
	}
}

func TestOrderRepositoryListByUser(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)

	for i := 0; i < 2; i++ {
		order := &models.Order{
			UserID:      5,
			TotalAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(int64(1000 * (i + 1)))),
			Status:      models.OrderStatusPending,
		}
		if err := repo.Create(order, nil); err != nil {
			t.Fatalf("create order %d failed: %v", i, err)
		}
	}
	if err := repo.Create(&models.Order{
		UserID:      6,
		TotalAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(500)),
		Status:      models.OrderStatusPending,
	}, nil); err != nil {
		t.Fatalf("create other user's order failed: %v", err)
	}

	orders, err := repo.ListByUser(5)
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("orders want 2 got %d", len(orders))
	}
	for _, order := range orders {
		if order.UserID != 5 {
			t.Fatalf("expected only user 5 orders, got user_id=%d", order.UserID)
		}
	}
}
