package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/dmarkovic/racun-sync/internal/config"
	"github.com/dmarkovic/racun-sync/internal/logger"
	"github.com/dmarkovic/racun-sync/internal/reconcile"
	"github.com/dmarkovic/racun-sync/internal/remote/filesource"
	"github.com/dmarkovic/racun-sync/internal/store"
	"github.com/dmarkovic/racun-sync/internal/summary"
	"github.com/dmarkovic/racun-sync/internal/syncer"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "sync":
		runSync()
	case "inspect":
		runInspect()
	case "summary":
		runSummary()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("racun-sync CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  cli <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  sync      Reconcile remote row dumps into the local store")
	fmt.Println("  inspect   Print one locally stored entity by kind and id")
	fmt.Println("  summary   Print monthly spending totals")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'cli <command> -h' for more information on a command.")
}

func setup(configPath string) (zerolog.Logger, *store.Store) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level)
	localStore, err := store.Open(cfg.Database.Path, cfg.Database.LogMode)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open local store")
	}
	return log, localStore
}

func runSync() {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config.yaml")
	dumpDir := fs.String("dump-dir", "", "Row dump directory (overrides config)")
	kind := fs.String("kind", "", "Entity kind to sync (receipt, device, household_bill); empty syncs all")
	fs.Parse(os.Args[2:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level)

	localStore, err := store.Open(cfg.Database.Path, cfg.Database.LogMode)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open local store")
	}

	dir := cfg.Remote.Dir
	if *dumpDir != "" {
		dir = *dumpDir
	}

	sync := syncer.New(filesource.New(dir), localStore, reconcile.NewParser(log), log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	var results []*syncer.PassResult
	if *kind != "" {
		res, err := sync.SyncPass(ctx, *kind)
		if err != nil {
			log.Fatal().Err(err).Msg("Sync failed")
		}
		results = append(results, res)
	} else {
		results, err = sync.SyncAll(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Sync failed")
		}
	}

	for _, res := range results {
		fmt.Printf("%-15s fetched=%d applied=%d stale=%d skipped=%d\n",
			res.Kind, res.Fetched, res.Applied, res.Stale, res.Skipped)
	}
}

func runInspect() {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config.yaml")
	kind := fs.String("kind", reconcile.KindReceipt, "Entity kind (receipt, device, household_bill)")
	id := fs.Int64("id", 0, "Entity id")
	fs.Parse(os.Args[2:])

	log, localStore := setup(*configPath)
	if *id == 0 {
		log.Fatal().Msg("Error: --id is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var entity any
	var err error
	switch *kind {
	case reconcile.KindReceipt:
		entity, err = localStore.GetReceipt(ctx, *id)
	case reconcile.KindDevice:
		entity, err = localStore.GetDevice(ctx, *id)
	case reconcile.KindBill:
		entity, err = localStore.GetBill(ctx, *id)
	default:
		log.Fatal().Str("kind", *kind).Msg("Unknown entity kind")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Lookup failed")
	}

	out, err := json.MarshalIndent(entity, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Encode failed")
	}
	fmt.Println(string(out))
}

func runSummary() {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config.yaml")
	fs.Parse(os.Args[2:])

	log, localStore := setup(*configPath)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	receipts, err := localStore.ListReceipts(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("List receipts failed")
	}

	for _, month := range summary.Monthly(receipts) {
		fmt.Printf("%s  total=%s  receipts=%d\n", month.Month, month.Total.StringFixed(2), month.Receipts)
		for category, total := range month.ByCategory {
			fmt.Printf("    %-15s %s\n", category, total.StringFixed(2))
		}
	}
}
