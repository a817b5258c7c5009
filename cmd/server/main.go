package main

import (
	"log"

	"github.com/Santykk/MERCADEO/internal/category"
	"github.com/Santykk/MERCADEO/internal/config"
	"github.com/Santykk/MERCADEO/internal/db"
	"github.com/Santykk/MERCADEO/internal/handler"
	"github.com/Santykk/MERCADEO/internal/logger"
	"github.com/Santykk/MERCADEO/internal/order"
	"github.com/Santykk/MERCADEO/internal/product"
	"github.com/Santykk/MERCADEO/internal/settings"
	"github.com/Santykk/MERCADEO/internal/user"
	"github.com/Santykk/MERCADEO/internal/wishlist"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	wishlistRepo := wishlist.NewRepository(database)
	wishlistSvc := wishlist.NewService(wishlistRepo)

	settingsRepo := settings.NewRepository(database)
	settingsSvc := settings.NewService(settingsRepo, userRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	router := handler.NewRouter(handler.Handlers{
		Auth:     handler.NewAuthHandler(userSvc, settingsSvc),
		Orders:   handler.NewOrderHandler(orderSvc, productSvc),
		Products: handler.NewProductHandler(productSvc),
		Category: handler.NewCategoryHandler(categorySvc),
		Wishlist: handler.NewWishlistHandler(wishlistSvc),
		Settings: handler.NewSettingsHandler(settingsSvc),
	})

	log.Printf("server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(router.Run(":" + cfg.AppPort))
}
