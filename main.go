package main

import (
	"log"

	"travel-booking-webapp/chat"
	"travel-booking-webapp/config"
	"travel-booking-webapp/database"
	"travel-booking-webapp/handlers"
	"travel-booking-webapp/idempotency"
	"travel-booking-webapp/logger"
	"travel-booking-webapp/payment"
	"travel-booking-webapp/router"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}

	zlog, err := logger.Init(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer zlog.Sync()

	if err := database.InitCollections(); err != nil {
		zlog.Fatal("cannot initialize database", zap.Error(err))
	}
	if err := database.RedisInit(); err != nil {
		zlog.Fatal("cannot initialize redis", zap.Error(err))
	}

	var idemStore idempotency.Store
	if database.RedisClient != nil {
		idemStore = idempotency.NewRedisStore(database.RedisClient)
	} else {
		idemStore = idempotency.NewInMemoryStore()
	}

	handlers.Init(
		idemStore,
		payment.FromConfig(cfg),
		chat.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model),
	)

	app := fiber.New()

	router.SetupRoutes(app)

	zlog.Info("server starting",
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port))

	if err := app.Listen(":" + cfg.App.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
