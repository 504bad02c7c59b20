// main.go
package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/krisdinakr/belle-catalog/config"
	"github.com/krisdinakr/belle-catalog/controllers"
	"github.com/krisdinakr/belle-catalog/db"
	"github.com/krisdinakr/belle-catalog/logger"
	"github.com/krisdinakr/belle-catalog/middleware"
	"github.com/krisdinakr/belle-catalog/routes"
	"github.com/krisdinakr/belle-catalog/services"
	"github.com/krisdinakr/belle-catalog/utils"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	utils.JwtKey = []byte(cfg.JwtSecret)

	// Connect to MongoDB
	client, err := db.ConnectMongo(cfg.MongoURI)
	if err != nil {
		logger.L().Fatal("mongo connection failed", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("mongo disconnect failed", zap.Error(err))
		}
	}()
	database := client.Database(cfg.MongoDatabase)

	// Connect to Redis
	rdb, err := db.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.L().Fatal("redis connection failed", zap.Error(err))
	}
	defer rdb.Close()

	emailService := utils.NewEmailService()

	// Initialize services
	tx := services.NewMongoTxRunner(client)
	userService := services.NewUserService(database)
	verificationService := services.NewVerificationService(database)
	tokenDenylist := services.NewTokenDenylist(rdb)
	addressService := services.NewAddressService(database)
	brandService := services.NewBrandService(database)
	categoryService := services.NewCategoryService(database)
	productService := services.NewProductService(database)
	combinationService := services.NewCombinationService(database)
	cartService := services.NewCartService(database)
	orderService := services.NewOrderService(database)
	checkoutService := services.NewCheckoutService(tx, cartService, combinationService, addressService, orderService, logger.L())

	// Initialize controllers
	authController := controllers.NewAuthController(userService, verificationService, tokenDenylist, tx, emailService)
	userController := controllers.NewUserController(addressService)
	cartController := controllers.NewCartController(cartService)
	brandController := controllers.NewBrandController(brandService)
	categoryController := controllers.NewCategoryController(categoryService, brandService, productService)
	productController := controllers.NewProductController(productService, brandService, categoryService, combinationService, tx)
	orderController := controllers.NewOrderController(checkoutService, orderService, emailService)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.AuthContext(userService, tokenDenylist))
	router.Use(middleware.RateLimitMiddleware)
	router.Use(middleware.MetricsMiddleware)
	router.Use(middleware.LoggingMiddleware)

	routes.RegisterRoutes(router,
		authController,
		userController,
		cartController,
		brandController,
		categoryController,
		productController,
		orderController,
	)

	server := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	logger.Info("server listening", zap.String("port", cfg.AppPort))
	if err := server.ListenAndServe(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
