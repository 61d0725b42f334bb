package router

import (
	"net/http"

	"github.com/sochitour-next/internal/config"
	"github.com/sochitour-next/internal/http/handlers/admin"
	"github.com/sochitour-next/internal/http/handlers/public"
	"github.com/sochitour-next/internal/provider"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter builds the gin engine with the full route table.
func SetupRouter(cfg *config.Config, container *provider.Container) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(zap.L()))
	r.Use(CORSMiddleware(cfg.CORS))

	uploadDir := cfg.Upload.Dir
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	r.Static("/uploads", "./"+uploadDir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	publicHandler := public.New(container)
	adminHandler := admin.New(container)

	authRequired := JWTAuthMiddleware(container.AuthService)
	userRequired := RequireUser(container.UserRepo)

	api := r.Group("/api")
	{
		api.POST("/register", publicHandler.Register)
		api.POST("/login", publicHandler.Login)
		api.POST("/admin/login", adminHandler.Login)

		api.GET("/tours", publicHandler.ListTours)
		api.GET("/hotels", publicHandler.ListHotels)
		api.GET("/foreign-tours", publicHandler.ListForeignTours)
		api.GET("/cruises", publicHandler.ListCruises)
		api.GET("/services", publicHandler.ListServices)
		api.GET("/promotions", publicHandler.ListPromotions)
	}

	// Catalog writes and image upload accept any authenticated identity.
	manage := r.Group("/api", authRequired)
	{
		manage.POST("/tours", adminHandler.CreateTour)
		manage.PUT("/tours/:id", adminHandler.UpdateTour)
		manage.DELETE("/tours/:id", adminHandler.DeleteTour)
		manage.DELETE("/tours/category/:category", adminHandler.DeleteToursByCategory)

		manage.POST("/hotels", adminHandler.CreateHotel)
		manage.PUT("/hotels/:id", adminHandler.UpdateHotel)
		manage.DELETE("/hotels/:id", adminHandler.DeleteHotel)
		manage.DELETE("/hotels/category/:category", adminHandler.DeleteHotelsByCategory)

		manage.POST("/foreign-tours", adminHandler.CreateForeignTour)
		manage.PUT("/foreign-tours/:id", adminHandler.UpdateForeignTour)
		manage.DELETE("/foreign-tours/:id", adminHandler.DeleteForeignTour)
		manage.DELETE("/foreign-tours/category/:category", adminHandler.DeleteForeignToursByCategory)

		manage.POST("/cruises", adminHandler.CreateCruise)
		manage.PUT("/cruises/:id", adminHandler.UpdateCruise)
		manage.DELETE("/cruises/:id", adminHandler.DeleteCruise)
		manage.DELETE("/cruises/category/:category", adminHandler.DeleteCruisesByCategory)

		manage.POST("/services", adminHandler.CreateService)
		manage.PUT("/services/:id", adminHandler.UpdateService)
		manage.DELETE("/services/:id", adminHandler.DeleteService)
		manage.DELETE("/services/category/:category", adminHandler.DeleteServicesByCategory)

		manage.POST("/promotions", adminHandler.CreatePromotion)
		manage.PUT("/promotions/:id", adminHandler.UpdatePromotion)
		manage.DELETE("/promotions/:id", adminHandler.DeletePromotion)
		manage.DELETE("/promotions/category/:category", adminHandler.DeletePromotionsByCategory)

		manage.POST("/upload", adminHandler.Upload)
	}

	// Account, cart and order routes require a user identity.
	user := r.Group("/api", authRequired, userRequired)
	{
		user.GET("/profile", publicHandler.Profile)
		user.POST("/bonus/add", publicHandler.AddBonus)

		user.GET("/cart", publicHandler.GetCart)
		user.POST("/cart/add", publicHandler.AddToCart)
		user.DELETE("/cart/:id", publicHandler.RemoveFromCart)

		user.POST("/orders", publicHandler.CreateOrder)
		user.GET("/orders", publicHandler.ListOrders)
	}

	return r
}
