package provider

import (
	"time"

	"github.com/sochitour-next/internal/cache"
	"github.com/sochitour-next/internal/config"
	"github.com/sochitour-next/internal/logger"
	"github.com/sochitour-next/internal/models"
	"github.com/sochitour-next/internal/notify"
	"github.com/sochitour-next/internal/queue"
	"github.com/sochitour-next/internal/repository"
	"github.com/sochitour-next/internal/service"
)

// Container is the dependency injection container.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo       repository.AdminRepository
	UserRepo        repository.UserRepository
	TourRepo        repository.TourRepository
	HotelRepo       repository.HotelRepository
	ForeignTourRepo repository.ForeignTourRepository
	CruiseRepo      repository.CruiseRepository
	ServiceRepo     repository.ServiceRepository
	PromotionRepo   repository.PromotionRepository
	CartRepo        repository.CartRepository
	OrderRepo       repository.OrderRepository

	// Services
	AuthService         *service.AuthService
	UserAuthService     *service.UserAuthService
	CatalogService      *service.CatalogService
	CartService         *service.CartService
	OrderService        *service.OrderService
	NotificationService *service.NotificationService
	UploadService       *service.UploadService
}

// NewContainer wires repositories and services.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.TourRepo = repository.NewTourRepository(db)
	c.HotelRepo = repository.NewHotelRepository(db)
	c.ForeignTourRepo = repository.NewForeignTourRepository(db)
	c.CruiseRepo = repository.NewCruiseRepository(db)
	c.ServiceRepo = repository.NewServiceRepository(db)
	c.PromotionRepo = repository.NewPromotionRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	var sender *notify.TelegramSender
	if c.Config.Telegram.Enabled {
		sender = notify.NewTelegramSender(
			c.Config.Telegram.BotToken,
			c.Config.Telegram.ChatID,
			time.Duration(c.Config.Telegram.TimeoutMS)*time.Millisecond,
		)
	}

	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(c.AuthService, c.UserRepo)
	c.CatalogService = service.NewCatalogService(
		c.TourRepo,
		c.HotelRepo,
		c.ForeignTourRepo,
		c.CruiseRepo,
		c.ServiceRepo,
		c.PromotionRepo,
	)
	c.CartService = service.NewCartService(c.CartRepo)
	c.NotificationService = service.NewNotificationService(c.OrderRepo, c.UserRepo, sender)
	c.OrderService = service.NewOrderService(models.DB, c.CartRepo, c.OrderRepo, c.QueueClient, c.NotificationService)
	c.UploadService = service.NewUploadService(c.Config)
}
