package main

import (
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/pflag"

	"bikeaccessories/internal/config"
	"bikeaccessories/internal/domain"
	"bikeaccessories/internal/events"
	"bikeaccessories/internal/http/handlers"
	applog "bikeaccessories/internal/log"
	"bikeaccessories/internal/metrics"
	"bikeaccessories/internal/storage"
)

func main() {
	cfg := config.Load()
	cfg.BindFlags(pflag.CommandLine)
	pflag.Parse()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	cfg.Log()

	seed, err := config.LoadSeed(cfg.SeedFile)
	if err != nil {
		log.Fatal(err)
	}

	var store storage.Backend
	store, err = storage.Open(cfg.StoreDSN)
	if err != nil {
		// keep serving from defaults; nothing persists until restart
		log.Printf("[warn] storage unavailable (%v); running without persistence", err)
		store = storage.Unavailable{}
	}
	defer store.Close()

	bus := events.New()
	bus.Subscribe(events.CartUpdated, func(ev events.Event) {
		items, _ := ev.Payload.([]domain.CartItem)
		applog.Info(nil, "cart.updated", map[string]any{
			"lines": len(items),
			"units": domain.CartItemCount(items),
			"total": domain.CartTotal(items),
		})
	})

	app := fiber.New(fiber.Config{
		Views:        handlers.Views(),
		ErrorHandler: handlers.ErrorHandler,
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := c.Path()
			return p == "/healthz" || p == "/metrics"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Warn(c, "rate.limit.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}))

	// ---------- App handlers ----------
	deps := handlers.NewDeps(store, seed, bus)
	handlers.Register(app, deps)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	app.Use(handlers.NotFound)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Printf("[server] shutting down")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.Printf("[warn] shutdown: %v", err)
		}
	}()

	log.Printf("[server] listening on :%s (store=%T)", cfg.Port, store)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
