package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sochitour-next/internal/models"
	"github.com/sochitour-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCatalogServiceTest(t *testing.T) (*CatalogService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:catalog_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Tour{},
		&models.Hotel{},
		&models.ForeignTour{},
		&models.Cruise{},
		&models.ServiceItem{},
		&models.Promotion{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	svc := NewCatalogService(
		repository.NewTourRepository(db),
		repository.NewHotelRepository(db),
		repository.NewForeignTourRepository(db),
		repository.NewCruiseRepository(db),
		repository.NewServiceRepository(db),
		repository.NewPromotionRepository(db),
	)
	return svc, db
}

func TestCatalogServiceCreateTour(t *testing.T) {
	svc, _ := setupCatalogServiceTest(t)

	price := models.NewMoneyFromFloat(2500)
	tour, err := svc.CreateTour(TourInput{
		Name:        "Экскурсия по Сочи",
		Description: "Обзорная экскурсия",
		Price:       &price,
		Destination: "Сочи",
	})
	if err != nil {
		t.Fatalf("create tour failed: %v", err)
	}
	if !tour.Available {
		t.Fatalf("availability should default to true")
	}

	tours, err := svc.ListTours()
	if err != nil {
		t.Fatalf("list tours failed: %v", err)
	}
	if len(tours) != 1 {
		t.Fatalf("tours want 1 got %d", len(tours))
	}
}

func TestCatalogServiceCreateTourUnavailable(t *testing.T) {
	svc, _ := setupCatalogServiceTest(t)

	price := models.NewMoneyFromFloat(2500)
	unavailable := false
	tour, err := svc.CreateTour(TourInput{
		Name:        "Закрытый маршрут",
		Description: "Временно недоступен",
		Price:       &price,
		Available:   &unavailable,
	})
	if err != nil {
		t.Fatalf("create tour failed: %v", err)
	}
	if tour.Available {
		t.Fatalf("explicit available=false must be honored")
	}

	tours, err := svc.ListTours()
	if err != nil {
		t.Fatalf("list tours failed: %v", err)
	}
	if len(tours) != 0 {
		t.Fatalf("unavailable tour must be hidden from the storefront, got %d", len(tours))
	}
}

func TestCatalogServiceCreateValidation(t *testing.T) {
	svc, _ := setupCatalogServiceTest(t)
	price := models.NewMoneyFromFloat(100)
	discount := 10
	var validation *ValidationError

	if _, err := svc.CreateTour(TourInput{Name: "x", Description: "y"}); !errors.As(err, &validation) {
		t.Fatalf("tour without price want ValidationError got %v", err)
	}
	if _, err := svc.CreateHotel(HotelInput{Name: "x", Description: "y", Price: &price}); !errors.As(err, &validation) {
		t.Fatalf("hotel without location want ValidationError got %v", err)
	}
	if _, err := svc.CreateForeignTour(ForeignTourInput{Name: "x", Description: "y", Price: &price}); !errors.As(err, &validation) {
		t.Fatalf("foreign tour without country want ValidationError got %v", err)
	}
	if _, err := svc.CreateCruise(CruiseInput{Name: "x", Description: "y", Price: &price}); !errors.As(err, &validation) {
		t.Fatalf("cruise without departure want ValidationError got %v", err)
	}
	if _, err := svc.CreatePromotion(PromotionInput{Title: "x", Description: "y"}); !errors.As(err, &validation) {
		t.Fatalf("promotion without discount want ValidationError got %v", err)
	}
	if _, err := svc.CreatePromotion(PromotionInput{Title: "x", Description: "y", DiscountPercent: &discount}); err != nil {
		t.Fatalf("valid promotion failed: %v", err)
	}
}

func TestCatalogServiceUpdateTour(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)

	price := models.NewMoneyFromFloat(2500)
	tour, err := svc.CreateTour(TourInput{
		Name:        "Экскурсия по Сочи",
		Description: "Обзорная экскурсия",
		Price:       &price,
	})
	if err != nil {
		t.Fatalf("create tour failed: %v", err)
	}

	newPrice := models.NewMoneyFromFloat(2900)
	if err := svc.UpdateTour(tour.ID, TourInput{
		Name:        "Экскурсия по Сочи",
		Description: "Обновлённая программа",
		Price:       &newPrice,
		Destination: "Сочи",
	}); err != nil {
		t.Fatalf("update tour failed: %v", err)
	}

	var stored models.Tour
	if err := db.First(&stored, tour.ID).Error; err != nil {
		t.Fatalf("load tour failed: %v", err)
	}
	if stored.Description != "Обновлённая программа" {
		t.Fatalf("description not updated: %s", stored.Description)
	}
	if stored.Price.String() != "2900.00" {
		t.Fatalf("price want 2900.00 got %s", stored.Price.String())
	}

	if err := svc.UpdateTour(99999, TourInput{
		Name:        "x",
		Description: "y",
		Price:       &newPrice,
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id want ErrNotFound got %v", err)
	}
}

func TestCatalogServiceDeleteTour(t *testing.T) {
	svc, _ := setupCatalogServiceTest(t)

	price := models.NewMoneyFromFloat(1800)
	tour, err := svc.CreateTour(TourInput{
		Name:        "Морская прогулка",
		Description: "Прогулка на катере",
		Price:       &price,
	})
	if err != nil {
		t.Fatalf("create tour failed: %v", err)
	}

	if err := svc.DeleteTour(tour.ID); err != nil {
		t.Fatalf("delete tour failed: %v", err)
	}
	if err := svc.DeleteTour(tour.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete want ErrNotFound got %v", err)
	}
}

func TestCatalogServiceDeleteByCategory(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)

	price := models.NewMoneyFromFloat(2000)
	for _, name := range []string{"Тур 1", "Тур 2"} {
		if _, err := svc.CreateTour(TourInput{
			Name:        name,
			Description: "описание",
			Price:       &price,
			Category:    "Горные туры",
		}); err != nil {
			t.Fatalf("create tour %s failed: %v", name, err)
		}
	}
	if _, err := svc.CreateTour(TourInput{
		Name:        "Тур 3",
		Description: "описание",
		Price:       &price,
		Category:    "Морские туры",
	}); err != nil {
		t.Fatalf("create tour 3 failed: %v", err)
	}

	count, err := svc.DeleteToursByCategory("Горные туры")
	if err != nil {
		t.Fatalf("delete by category failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("deleted count want 2 got %d", count)
	}

	var remaining int64
	if err := db.Model(&models.Tour{}).Count(&remaining).Error; err != nil {
		t.Fatalf("count tours failed: %v", err)
	}
	if remaining != 1 {
		t.Fatalf("remaining tours want 1 got %d", remaining)
	}

	// Deleting an empty category is not an error.
	count, err = svc.DeleteToursByCategory("Нет такой категории")
	if err != nil {
		t.Fatalf("delete empty category failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("empty category count want 0 got %d", count)
	}
}
