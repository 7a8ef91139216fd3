package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	log "github.com/sirupsen/logrus"

	"clipfeed/cache"
	"clipfeed/config"
	"clipfeed/handlers"
	"clipfeed/media"
	"clipfeed/middleware"
	"clipfeed/routes"
	"clipfeed/session"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()
	setupLogging(cfg)

	// Initialize Redis (optional; only backs the rate limiter)
	cache.InitRedis(cfg.RedisURL)
	defer cache.Close()

	// Session gate and in-memory media store
	gate := session.NewGate(cfg.JWTSecret, cfg.SessionTTL(), cfg.SessionCacheSize)
	provider := media.NewBlobProvider(cfg.MaxUploadBytes())

	// Initialize handlers and middleware
	handlers.Init(gate, provider)
	middleware.InitMiddleware(cfg, gate)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName:   "Clipfeed API",
		BodyLimit: cfg.MaxUploadBytes() + 1<<20, // multipart overhead headroom
	})

	// Middleware
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Setup routes
	routes.Setup(app)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			log.WithError(err).Error("Server shutdown error")
		}
	}()

	// Start server
	log.WithField("port", cfg.Port).Info("Server starting")
	log.Fatal(app.Listen(":" + cfg.Port))
}
