package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cemerttu/backend-store-master/controllers"
	"github.com/cemerttu/backend-store-master/database"
	"github.com/cemerttu/backend-store-master/logger"
	"github.com/cemerttu/backend-store-master/middleware"
	"github.com/cemerttu/backend-store-master/repository"
	"github.com/cemerttu/backend-store-master/routes"
	"github.com/cemerttu/backend-store-master/services"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg := LoadConfig()

	logger.Initialize(cfg.Env)
	defer zap.L().Sync()

	// --- 1. Store connection (optional) ---
	// Without a configured or reachable store the catalog runs on
	// fallback sample data; writes that require persistence return 503.
	var store *database.Store
	if cfg.MongoURI != "" {
		var err error
		store, err = database.Connect(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			zap.L().Warn("Store unreachable, serving fallback data", zap.Error(err))
			store = nil
		} else {
			zap.L().Info("Connected to MongoDB", zap.String("database", cfg.MongoDB))
		}
	} else {
		zap.L().Warn("MONGODB_URI not set, serving fallback data")
	}

	var (
		productRepo repository.ProductRepository
		orderRepo   repository.OrderRepository
		contactRepo repository.ContactRepository
		ping        func(ctx context.Context) error
	)
	if store != nil {
		db := store.Database()
		productRepo = repository.NewMongoProductRepository(db)
		orderRepo = repository.NewMongoOrderRepository(db)
		contactRepo = repository.NewMongoContactRepository(db)
		ping = store.Ping
	}

	// Optional catalog cache.
	var catalogCache *controllers.CatalogCache
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			zap.L().Warn("Failed to parse REDIS_URL, caching disabled", zap.Error(err))
		} else {
			redisClient = redis.NewClient(redisOpts)
			catalogCache = controllers.NewCatalogCache(redisClient)
		}
	}

	// --- 2. Dependency injection ---
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo)
	contactService := services.NewContactService(contactRepo)

	productController := controllers.NewProductController(productService, catalogCache, cfg.Env)
	orderController := controllers.NewOrderController(orderService, cfg.Env)
	contactController := controllers.NewContactController(contactService, cfg.Env)
	healthController := controllers.NewHealthController(ping)

	// --- 3. HTTP server and middleware ---
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zap.L()))
	r.Use(middleware.Timeout(30 * time.Second))

	routes.RegisterRoutes(r, productController, orderController, contactController, healthController)

	// --- 4. Graceful shutdown ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Storefront API starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down Storefront API...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			zap.L().Error("Failed to close Redis", zap.Error(err))
		}
	}
	if store != nil {
		if err := store.Close(); err != nil {
			zap.L().Error("Failed to close MongoDB", zap.Error(err))
		}
	}

	zap.L().Info("Storefront API stopped gracefully")
}
