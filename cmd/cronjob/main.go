package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"rentable-backend/internal/cache"
	"rentable-backend/internal/config"
	"rentable-backend/internal/jobs"
	"rentable-backend/internal/logger"
	"rentable-backend/internal/repository/postgres"
	"rentable-backend/internal/scheduler"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'finish-elapsed', 'all')")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rentable cronjob runner...", "log_level", cfg.Log.Level)

	ctx := context.Background()
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	store, err := postgres.Open(ctx, cfg.GetDatabaseConnectionString(), postgres.PoolOptions{MaxOpenConns: 2})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	aggregates := cache.NewNoop()
	if cfg.Cache.Enabled {
		client, err := cache.Connect(ctx, cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		if err != nil {
			logger.Warn("Redis unavailable, cached aggregates will expire on their own", "error", err)
		} else {
			defer client.Close()
			aggregates = cache.NewRedisAggregates(client, cfg.CacheTTL())
		}
	}

	jobRunner := jobs.NewJobRunner(store.ReservationRepository, aggregates, cfg)

	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		if !runJobOnce(jobRunner, *runOnce) {
			store.Close()
			os.Exit(1)
		}
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	cronScheduler, err := scheduler.NewScheduler(jobRunner)
	if err != nil {
		log.Fatalf("Failed to build scheduler: %v", err)
	}
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job and reports whether the name was known.
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) bool {
	switch jobName {
	case "finish-elapsed":
		jobRunner.FinishElapsedReservations()
	case "all":
		jobRunner.RunAll()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - finish-elapsed\n")
		fmt.Printf("  - all\n")
		return false
	}
	return true
}
