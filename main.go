package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JAYASASIREKHA/fooddelivery/config"
	"github.com/JAYASASIREKHA/fooddelivery/handlers"
	"github.com/JAYASASIREKHA/fooddelivery/logger"
	"github.com/JAYASASIREKHA/fooddelivery/metrics"
	"github.com/JAYASASIREKHA/fooddelivery/middleware"
	"github.com/JAYASASIREKHA/fooddelivery/peer"
	"github.com/JAYASASIREKHA/fooddelivery/routes"
	"github.com/JAYASASIREKHA/fooddelivery/service"
	"github.com/JAYASASIREKHA/fooddelivery/store"
)

func main() {
	cfg := config.Load()
	log := logger.Get()
	defer log.Sync()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	st := store.New()
	peerClient := peer.New(cfg.PeerBaseURL, log)
	defer peerClient.Close()

	notifier := service.NewNotifier(st, log)
	deliverySvc := service.NewDeliveryService(st, notifier)
	authSvc := service.NewAuthService(st, peerClient, log)
	catalogSvc := service.NewCatalogService(st, peerClient, log)
	orderSvc := service.NewOrderService(st, notifier, deliverySvc)

	httpMetrics := metrics.NewHTTPMetrics(cfg.ServiceName)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(httpMetrics.Middleware())

	// CORS for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": cfg.ServiceName,
		})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":   cfg.ServiceName,
			"status":    "running",
			"endpoints": "/api/restaurants, /api/orders, /api/notifications, /health",
		})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	routes.SetupRoutes(r, routes.Handlers{
		Auth:          handlers.NewAuthHandler(authSvc),
		Restaurants:   handlers.NewRestaurantHandler(catalogSvc),
		Orders:        handlers.NewOrderHandler(orderSvc),
		Deliveries:    handlers.NewDeliveryHandler(deliverySvc),
		Notifications: handlers.NewNotificationHandler(notifier),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", zap.String("port", cfg.Port), zap.String("peer", cfg.PeerBaseURL))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}
