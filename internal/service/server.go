package service

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/madeinoz67/partshub-sub000/pkg/view"
)

// New assembles the diagram service around a record source.
func New(cfg *Config, source view.RecordSource) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "PartsHub Diagram Service",
	})

	app.Use(recover.New())
	app.Use(requestLogger())

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})

	h := NewHandler(source)
	app.Get("/api/components/:id/symbol.svg", h.SymbolSVG)
	app.Get("/api/components/:id/footprint.svg", h.FootprintSVG)

	return app
}

// requestLogger returns the configured request logging middleware.
func requestLogger() fiber.Handler {
	return logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	})
}
