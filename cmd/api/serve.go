package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"bizreview/docs"
	"bizreview/internal/auth"
	"bizreview/internal/cache"
	"bizreview/internal/config"
	"bizreview/internal/database"
	"bizreview/internal/database/migration"
	"bizreview/internal/events"
	handlers "bizreview/internal/http/handler"
	"bizreview/internal/http/middleware"
	"bizreview/internal/logger"
	appotel "bizreview/internal/otel"
	"bizreview/internal/repository/mysql"
	"bizreview/internal/service"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.Named("server")

	shutdownTracing, err := appotel.Init(ctx)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	db, err := database.NewMySQL(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, database.HostLabel(cfg.Database)); err != nil {
			return err
		}
	}

	bizCache := newBusinessCache(ctx, cfg.Redis)
	if closer, ok := bizCache.(io.Closer); ok {
		defer closer.Close()
	}
	publisher := newPublisher(cfg.AMQP)
	defer publisher.Close()

	bizRepo := mysql.NewBusinessMySQL(db)
	reviewRepo := mysql.NewReviewMySQL(db)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	verifier, err := newVerifier(cfg.Auth)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath
	})))
	app.Use(promMiddleware.Handler())

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	app.Get("/swagger/*", swaggerHandler)

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:         db,
		Businesses: service.NewBusinessService(bizRepo, bizCache, publisher),
		Reviews:    service.NewReviewService(reviewRepo, bizRepo, publisher),
		Verifier:   verifier,
		Links:      handlers.Links{PublicBaseURL: cfg.PublicBaseURL},
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Info("server_listening", "addr", addr, "auth_enabled", verifier != nil)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	log.Info("server_shutdown")
	return app.ShutdownWithTimeout(shutdownTimeout)
}

// swaggerHandler serves Swagger UI with the caller's host and scheme.
func swaggerHandler(c *fiber.Ctx) error {
	scheme := c.Protocol()
	if proto := c.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}

	docs.SwaggerInfo.Host = c.Get("Host")
	docs.SwaggerInfo.Schemes = []string{scheme}

	return swagger.HandlerDefault(c)
}

// newBusinessCache connects to Redis when configured. An unreachable Redis
// only disables caching.
func newBusinessCache(ctx context.Context, cfg config.RedisConfig) cache.BusinessCache {
	log := logger.Named("cache")
	if cfg.Addr == "" {
		log.Info("cache_disabled")
		return cache.Noop{}
	}
	rc, err := cache.NewRedis(ctx, cfg)
	if err != nil {
		log.Warn("cache_unavailable", "addr", cfg.Addr, "error", err.Error())
		return cache.Noop{}
	}
	log.Info("cache_enabled", "addr", cfg.Addr)
	return rc
}

// newPublisher connects to RabbitMQ when configured. An unreachable broker
// only disables event publishing.
func newPublisher(cfg config.AMQPConfig) events.Publisher {
	log := logger.Named("events")
	if cfg.URL == "" {
		log.Info("events_disabled")
		return events.Noop{}
	}
	p, err := events.NewRabbitMQ(cfg)
	if err != nil {
		log.Warn("events_unavailable", "error", err.Error())
		return events.Noop{}
	}
	log.Info("events_enabled", "exchange", cfg.Exchange)
	return p
}

// newVerifier returns a nil interface when no secret is configured so the
// JWT middleware is skipped.
func newVerifier(cfg config.AuthConfig) (middleware.TokenVerifier, error) {
	if cfg.Secret == "" {
		return nil, nil
	}
	v, err := auth.NewVerifier(cfg)
	if err != nil {
		return nil, fmt.Errorf("init auth: %w", err)
	}
	return v, nil
}
