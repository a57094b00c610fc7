package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmarkovic/racun-sync/internal/config"
	"github.com/dmarkovic/racun-sync/internal/jobs"
	"github.com/dmarkovic/racun-sync/internal/jobs/inmemory"
	"github.com/dmarkovic/racun-sync/internal/logger"
	"github.com/dmarkovic/racun-sync/internal/reconcile"
	"github.com/dmarkovic/racun-sync/internal/remote/filesource"
	"github.com/dmarkovic/racun-sync/internal/store"
	"github.com/dmarkovic/racun-sync/internal/syncer"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level)
	log.Info().Str("db", cfg.Database.Path).Msg("Starting sync worker")

	localStore, err := store.Open(cfg.Database.Path, cfg.Database.LogMode)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open local store")
	}

	source := filesource.New(cfg.Remote.Dir)
	parser := reconcile.NewParser(log)
	sync := syncer.New(source, localStore, parser, log)

	jobStore := inmemory.NewStore()
	jobQueue := inmemory.NewQueue(cfg.Sync.QueueSize, cfg.Sync.Workers, jobStore)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	handler := func(ctx context.Context, job jobs.Job) error {
		passJob, ok := job.(*jobs.SyncPassJob)
		if !ok {
			return fmt.Errorf("unexpected job type: %T", job)
		}

		log.Info().
			Str("job_id", passJob.JobID).
			Str("kind", passJob.Kind).
			Msg("Processing sync pass")

		res, err := sync.SyncPass(ctx, passJob.Kind)
		if err != nil {
			log.Error().
				Err(err).
				Str("job_id", passJob.JobID).
				Str("kind", passJob.Kind).
				Msg("Sync pass failed")
			return err
		}

		log.Info().
			Str("job_id", passJob.JobID).
			Str("kind", passJob.Kind).
			Int("applied", res.Applied).
			Int("stale", res.Stale).
			Int("skipped", res.Skipped).
			Msg("Sync pass completed")
		return nil
	}

	if err := jobQueue.Start(ctx, handler); err != nil {
		log.Fatal().Err(err).Msg("Failed to start job consumer")
	}

	// Publish a full round of passes now and then on every tick.
	publishAll := func() {
		for _, kind := range syncer.Kinds {
			job := &jobs.SyncPassJob{Kind: kind}
			if err := jobQueue.PublishSyncPass(ctx, job); err != nil {
				log.Error().Err(err).Str("kind", kind).Msg("Failed to publish sync pass")
			}
		}
	}
	publishAll()

	ticker := time.NewTicker(time.Duration(cfg.Sync.IntervalMinutes) * time.Minute)
	defer ticker.Stop()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				publishAll()
			}
		}
	}()

	log.Info().Int("interval_minutes", cfg.Sync.IntervalMinutes).Msg("Sync worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down sync worker...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := jobQueue.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during graceful shutdown")
	}
	if err := jobQueue.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close job queue")
	}

	log.Info().Msg("Sync worker exited")
}
