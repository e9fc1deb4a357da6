package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"dashboard/internal/config"
	"dashboard/internal/database"
	"dashboard/internal/database/migration"
	handlers "dashboard/internal/http/handler"
	"dashboard/internal/http/middleware"
	"dashboard/internal/otel"
	"dashboard/internal/repository/postgres"
	"dashboard/internal/service"
	"dashboard/internal/storage"
	"dashboard/internal/view"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.UTC

	// OpenTelemetry tracer provider (OTLP); degrades to noop when disabled
	shutdown, err := otel.Init(context.Background(), loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdown(context.Background())

	// PostgreSQL connection (pooled, otelsql-instrumented)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Bring the schema and fixtures up if the database is empty
	if err := migration.EnsureMigrated(context.Background(), db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Photo storage backend: local public directory or S3-compatible store
	var store storage.Storage
	switch cfg.Upload.Backend {
	case config.UploadBackendS3:
		store, err = storage.NewMinIO(cfg.MinIO)
	default:
		store, err = storage.NewFS(cfg.Upload.Dir)
	}
	if err != nil {
		log.Fatalf("failed to initialize photo storage: %v", err)
	}

	// Repositories and services
	invoiceSvc := service.NewInvoiceService(postgres.NewInvoicePostgres(db))
	customerSvc := service.NewCustomerService(store, postgres.NewCustomerPostgres(db))
	itemSvc := service.NewItemService(postgres.NewItemPostgres(db))

	// Rendered-listing cache, invalidated by the mutation pipelines
	cache, err := view.NewCache(cfg.Cache.ViewEntries)
	if err != nil {
		log.Fatalf("failed to initialize view cache: %v", err)
	}

	engine := handlers.NewEngine()

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	prom, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(prom.Handler())

	handlers.RegisterRoutes(app, &handlers.Handlers{
		DB:        db,
		Loc:       loc,
		DBHost:    cfg.Database.Host,
		Invoices:  invoiceSvc,
		Customers: customerSvc,
		Items:     itemSvc,
		Store:     store,
		Cache:     cache,
		Views:     engine,
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
