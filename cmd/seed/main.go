package main

import (
	"github.com/sochitour-next/internal/config"
	"github.com/sochitour-next/internal/logger"
	"github.com/sochitour-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	tours := []models.Tour{
		{
			Name:        "Экскурсия по Сочи",
			Description: "Увлекательная экскурсия по главным достопримечательностям Сочи",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(2500)),
			Duration:    "4 часа",
			Destination: "Сочи",
			ImageURL:    "/images/sochi-tour.jpg",
			Available:   true,
		},
		{
			Name:        "Красная Поляна",
			Description: "Горнолыжный курорт и летний отдых в горах",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(3500)),
			Duration:    "8 часов",
			Destination: "Красная Поляна",
			ImageURL:    "/images/krasnaya-polyana.jpg",
			Available:   true,
		},
		{
			Name:        "Морская прогулка",
			Description: "Прогулка на катере по Черному морю",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(1800)),
			Duration:    "2 часа",
			Destination: "Сочи",
			ImageURL:    "/images/sea-tour.jpg",
			Available:   true,
		},
		{
			Name:        "Олимпийский парк",
			Description: "Посещение олимпийских объектов и парка развлечений",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(2200)),
			Duration:    "5 часов",
			Destination: "Адлер",
			ImageURL:    "/images/olympic-park.jpg",
			Available:   true,
		},
	}

	for _, tour := range tours {
		var existing models.Tour
		if err := models.DB.Where("name = ?", tour.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&tour).Error; err != nil {
				stdLog.Printf("Failed to create tour %s: %v", tour.Name, err)
			} else {
				stdLog.Printf("Created tour: %s", tour.Name)
			}
		} else {
			stdLog.Printf("Tour already exists: %s", tour.Name)
		}
	}

	stdLog.Println("Seed completed")
}
