package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcapi "rentable-backend/internal/api/grpc"
	httpapi "rentable-backend/internal/api/http"
	"rentable-backend/internal/cache"
	"rentable-backend/internal/config"
	"rentable-backend/internal/jobs"
	"rentable-backend/internal/logger"
	"rentable-backend/internal/repository/postgres"
	"rentable-backend/internal/scheduler"
	"rentable-backend/internal/security"
	"rentable-backend/internal/service"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	withScheduler := flag.Bool("scheduler", true, "Run the nightly jobs in-process")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rentable backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "health_address", cfg.GetHealthAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *withScheduler); err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped. Goodbye!")
}

func run(ctx context.Context, cfg *config.Config, withScheduler bool) error {
	store, err := postgres.Open(ctx, cfg.GetDatabaseConnectionString(), postgres.PoolOptions{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: 30 * time.Minute,
	})
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return err
	}

	aggregates := cache.NewNoop()
	if cfg.Cache.Enabled {
		client, err := cache.Connect(ctx, cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		if err != nil {
			logger.Warn("Redis unavailable, aggregates will not be cached", "error", err)
		} else {
			defer client.Close()
			aggregates = cache.NewRedisAggregates(client, cfg.CacheTTL())
			logger.Info("Rental aggregate cache enabled", "addr", cfg.Cache.Addr)
		}
	}

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.AccessTokenTTL())

	svcs := httpapi.Services{
		Users:        service.NewUserService(store.UserRepository, tokenManager),
		Categories:   service.NewCategoryService(store.CategoryRepository, store.SubcategoryRepository),
		Equipment:    service.NewEquipmentService(store.EquipmentRepository, store.UserRepository),
		Reservations: service.NewReservationService(store.ReservationRepository, store.EquipmentRepository, aggregates),
		Reviews: service.NewReviewService(
			store.EquipmentReviewRepository,
			store.UserReviewRepository,
			store.EquipmentRepository,
			store.UserRepository,
		),
	}
	router := httpapi.NewRouter(svcs, tokenManager, httpapi.RouterOptions{LoginPerMinute: cfg.Server.LoginRatePerMinute})

	httpServer := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           httpapi.WithCORS(router, cfg.Server.CORSAllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	healthLis, err := net.Listen("tcp", cfg.GetHealthAddress())
	if err != nil {
		return err
	}
	health := grpcapi.NewHealthServer(store, 10*time.Second)

	if withScheduler {
		cronScheduler, err := scheduler.NewScheduler(jobs.NewJobRunner(store.ReservationRepository, aggregates, cfg))
		if err != nil {
			return err
		}
		cronScheduler.Start()
		defer cronScheduler.Stop()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("gRPC health server listening", "address", healthLis.Addr().String())
		return health.Server.Serve(healthLis)
	})
	g.Go(func() error {
		health.Watch(gctx)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down servers...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		health.Server.GracefulStop()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
