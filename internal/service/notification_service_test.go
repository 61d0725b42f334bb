package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sochitour-next/internal/models"

	"github.com/shopspring/decimal"
)

func TestRenderOrderMessage(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 18, 30, 5, 0, time.Local)
	order := &models.Order{
		ID:          17,
		TotalAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(6100)),
		CreatedAt:   createdAt,
		Items: []models.OrderItem{
			{Name: "Экскурсия по Сочи", Quantity: 1, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(2500))},
			{Name: "Морская прогулка", Quantity: 2, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(1800))},
		},
	}
	user := &models.User{
		Name:  "Иван Петров",
		Email: "ivan@example.com",
		Phone: "+7 900 000-00-00",
	}

	got := renderOrderMessage(order, user)

	want := "🛒 НОВЫЙ ЗАКАЗ #17\n\n" +
		"👤 Покупатель: Иван Петров\n" +
		"📧 Email: ivan@example.com\n" +
		"📱 Телефон: +7 900 000-00-00\n\n" +
		"💰 Сумма: 6100.00 ₽\n" +
		"📅 Дата: 14.03.2026 18:30:05\n\n" +
		"📋 Товары:\n" +
		"• Экскурсия по Сочи x1 - 2500.00 ₽\n" +
		"• Морская прогулка x2 - 1800.00 ₽\n"
	if got != want {
		t.Fatalf("message mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderOrderMessageMissingPhone(t *testing.T) {
	order := &models.Order{ID: 1, TotalAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(100))}
	user := &models.User{Name: "Без Телефона", Email: "np@example.com", Phone: "  "}

	got := renderOrderMessage(order, user)
	if !strings.Contains(got, "📱 Телефон: Не указан\n") {
		t.Fatalf("blank phone should render as Не указан, got:\n%s", got)
	}
}

func TestNotificationServiceDisabledSender(t *testing.T) {
	// Nil sender means notifications are off; nothing should error.
	svc := NewNotificationService(nil, nil, nil)
	if err := svc.SendOrderCreated(context.Background(), 5); err != nil {
		t.Fatalf("disabled sender should be a no-op, got %v", err)
	}
	svc.NotifyAsync(5)
}
