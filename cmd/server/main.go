package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/saathi-labs/saarthi/internal/adapter/http/fiber/handlers"
	"github.com/saathi-labs/saarthi/internal/adapter/http/fiber/middleware"
	"github.com/saathi-labs/saarthi/internal/adapter/queue"
	"github.com/saathi-labs/saarthi/internal/adapter/session"
	"github.com/saathi-labs/saarthi/internal/adapter/storage/jsonfile"
	"github.com/saathi-labs/saarthi/internal/adapter/storage/postgres"
	wsAdapter "github.com/saathi-labs/saarthi/internal/adapter/websocket"
	"github.com/saathi-labs/saarthi/internal/observability/telemetry"
	"github.com/saathi-labs/saarthi/internal/ports"
	"github.com/saathi-labs/saarthi/internal/service/dialog"
	"github.com/saathi-labs/saarthi/internal/service/earnings"
	"github.com/saathi-labs/saarthi/pkg/config"
)

const (
	serviceName    = "saarthi-assistant"
	serviceVersion = "v1.0.0"
)

func main() {
	// 1. Initialize Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting Saarthi assistant backend",
		zap.String("service", serviceName),
		zap.String("version", serviceVersion),
	)

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// 3. Initialize Tracing
	if cfg.OpenTelemetry.Enabled {
		tracerProvider, err := telemetry.InitTracer(serviceName, serviceVersion, cfg.OpenTelemetry.JaegerEndpoint)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				logger.Error("Error shutting down tracer provider", zap.Error(err))
			}
		}()
	}

	// 4. Load Earnings Dataset (fatal if unavailable: never serve without it)
	earningsRepo := newEarningsRepository(cfg, logger)

	// 5. Initialize Session Store
	sessionStore := newSessionStore(cfg, logger)
	defer sessionStore.Close()

	// 6. Initialize Message Queue (optional)
	var messageQueue queue.MessageQueue
	if cfg.Queue.Enabled {
		messageQueue, err = newMessageQueue(cfg, logger)
		if err != nil {
			logger.Fatal("Failed to connect to message queue", zap.Error(err))
		}
		defer messageQueue.Close()

		if err := queue.StartEventLogger(messageQueue, logger); err != nil {
			logger.Fatal("Failed to subscribe to assist events", zap.Error(err))
		}
	}

	// 7. Initialize Services
	earningsService := earnings.NewService(earningsRepo, logger)
	dialogService := dialog.NewService(sessionStore, earningsService, messageQueue, cfg.Assistant.DefaultDriverID, logger)

	// 8. Initialize Fiber HTTP Server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		DisableStartupMessage: true,
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.HTTP.AllowedOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	// Health Check Endpoints
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		if err := sessionStore.Ping(); err != nil {
			return c.Status(503).SendString("Session store not ready")
		}
		if count, err := earningsRepo.Count(c.Context()); err != nil || count == 0 {
			return c.Status(503).SendString("Earnings dataset not ready")
		}
		return c.SendString("Ready")
	})

	// Metrics endpoint for Prometheus
	app.Get("/metrics", func(c *fiber.Ctx) error {
		handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		handler(c.Context())
		return nil
	})

	// API v1 Routes
	v1 := app.Group("/api/v1")

	assistHandler := handlers.NewAssistHandler(dialogService, logger)
	v1.Post("/assist", assistHandler.ProcessTurn)
	v1.Post("/forms/start", assistHandler.StartForm)

	earningsHandler := handlers.NewEarningsHandler(earningsService, logger)
	v1.Get("/earnings/:driverId", earningsHandler.GetBreakdown)

	// Chat WebSocket
	chatHandler := wsAdapter.NewChatStreamHandler(dialogService, logger)
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/chat", websocket.New(chatHandler.HandleChatStream))

	// 9. Start HTTP Server
	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 10. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// newEarningsRepository wires the configured dataset source. A load or
// connection failure here aborts startup: serving without the dataset is an
// unrecoverable configuration error.
func newEarningsRepository(cfg *config.Config, logger *zap.Logger) ports.EarningsRepository {
	switch cfg.Earnings.Source {
	case "postgres":
		db, err := postgres.NewConnection(cfg.Earnings.DatabaseURL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to earnings database", zap.Error(err))
		}
		return postgres.NewEarningsRepository(db, logger)
	default:
		repo, err := jsonfile.NewEarningsRepository(cfg.Earnings.DatasetPath, logger)
		if err != nil {
			logger.Fatal("Failed to load earnings dataset", zap.Error(err))
		}
		return repo
	}
}

func newSessionStore(cfg *config.Config, logger *zap.Logger) ports.SessionStore {
	switch cfg.Session.Backend {
	case "redis":
		store, err := session.NewRedisStore(cfg.Session.RedisURL, cfg.Session.TTL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to Redis session store", zap.Error(err))
		}
		return store
	default:
		return session.NewMemoryStore(cfg.Session.TTL, cfg.Session.MaxSessions, cfg.Session.CleanupInterval, logger)
	}
}

func newMessageQueue(cfg *config.Config, logger *zap.Logger) (queue.MessageQueue, error) {
	switch cfg.Queue.Driver {
	case "rabbitmq":
		return queue.NewRabbitMQQueue(cfg.Queue.RabbitMQURL, logger)
	default:
		return queue.NewNATSQueue(cfg.Queue.NATSURL, logger)
	}
}
