package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/wrenfield/carelog/internal/api"
	"github.com/wrenfield/carelog/internal/db"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	location := mustLoadLocation(log, getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "carelog.db"))
	port := getEnv("PORT", "8080")
	cookieSecure := strings.EqualFold(getEnv("COOKIE_SECURE", "false"), "true")

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	handler := api.NewHandler(database, secretKey, location, cookieSecure, log)

	app := fiber.New(fiber.Config{
		AppName:               "Carelog",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("port", port).Str("db", dbPath).Str("tz", location.String()).Msg("carelog listening")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func mustLoadLocation(log zerolog.Logger, name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Str("tz", name).Msg("invalid TZ, falling back to UTC")
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
