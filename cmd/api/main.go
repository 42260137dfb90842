package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/hashicorp/go-hclog"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cvapi/docs"
	"cvapi/internal/auth"
	"cvapi/internal/config"
	"cvapi/internal/database"
	"cvapi/internal/database/migration"
	"cvapi/internal/draft"
	handlers "cvapi/internal/http/handler"
	"cvapi/internal/http/middleware"
	"cvapi/internal/logging"
	"cvapi/internal/metrics"
	"cvapi/internal/otel"
	"cvapi/internal/repository/postgres"
	"cvapi/internal/service"
	"cvapi/internal/storage"
)

// @title CV API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Log.Location()
	log := logging.New("cvapi", logging.Options{Level: cfg.Log.Level, Location: loc})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		fatal(log, "failed to initialize tracing", err)
	}

	db, err := database.NewPostgres(ctx, cfg.Database, log)
	if err != nil {
		fatal(log, "failed to connect to database", err)
	}
	defer db.Close()
	if err := database.RegisterPoolMetrics(prometheus.DefaultRegisterer, db, cfg.Database.Name); err != nil {
		fatal(log, "failed to register pool metrics", err)
	}

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		fatal(log, "failed to migrate database", err)
	}

	// Photo storage is optional; without it photo endpoints answer 503.
	var objStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			fatal(log, "failed to initialize object storage", err)
		}
	} else {
		log.Warn("object storage disabled, MINIO_ENDPOINT is empty")
	}

	verifier, err := auth.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	if err != nil {
		fatal(log, "failed to initialize token verifier", err)
	}

	domainMetrics, err := metrics.NewDomain(prometheus.DefaultRegisterer)
	if err != nil {
		fatal(log, "failed to register domain metrics", err)
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		fatal(log, "failed to register http metrics", err)
	}

	drafts := draft.NewStore(cfg.Draft.TTL())
	go purgeDrafts(ctx, drafts, cfg.Draft.PurgeInterval(), log)

	photo := service.PhotoSettings{
		MaxBytes:      cfg.Photo.MaxBytes,
		AllowedPrefix: cfg.Photo.AllowedPrefix,
		URLExpiry:     cfg.Photo.URLExpiry(),
	}

	cvRepo := postgres.NewCVPostgres(db)
	analyticsRepo := postgres.NewAnalyticsPostgres(db)

	cvSvc := service.NewCVService(service.CVServiceDeps{
		Repo:      cvRepo,
		Analytics: analyticsRepo,
		Store:     objStore,
		Drafts:    drafts,
		Metrics:   domainMetrics,
		Logger:    log,
		Photo:     photo,
	})
	publicSvc := service.NewPublicService(service.PublicServiceDeps{
		Repo:      cvRepo,
		Analytics: analyticsRepo,
		Store:     objStore,
		Metrics:   domainMetrics,
		Logger:    log,
		Photo:     photo,
	})
	draftSvc := service.NewDraftService(drafts, cvSvc)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    int(cfg.Photo.MaxBytes) + 1<<20,
	})

	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())
	app.Use(middleware.Auth(verifier))

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, handlers.Dependencies{
		DB:      db,
		CVs:     cvSvc,
		Public:  publicSvc,
		Drafts:  draftSvc,
		Metrics: domainMetrics,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		log.Info("shutdown_started")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("http_shutdown_failed", "error", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Info("server_starting", "addr", addr, "app_host", cfg.AppHost)
	if err := app.Listen(addr); err != nil {
		fatal(log, "failed to start server", err)
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		log.Error("tracing_shutdown_failed", "error", err)
	}
	log.Info("shutdown_complete")
}

// purgeDrafts drops expired drafts until ctx is cancelled.
func purgeDrafts(ctx context.Context, store *draft.Store, every time.Duration, log hclog.Logger) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Purge(); n > 0 {
				log.Debug("drafts_purged", "count", n)
			}
		}
	}
}

func fatal(log hclog.Logger, msg string, err error) {
	log.Error(msg, "error", err)
	os.Exit(1)
}
