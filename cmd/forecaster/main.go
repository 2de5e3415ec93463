package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"TrendCast/internal/app"
	"TrendCast/internal/collector"
	"TrendCast/internal/config"
	"TrendCast/internal/recorder"
	"TrendCast/internal/scheduler"
	"TrendCast/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TrendCast starting...")

	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found, using environment as-is")
	}

	modeFlag := flag.String("mode", "", "run mode: fetch, predict, run or daemon")
	cfgFlag := flag.String("config", "", "path to config file")
	flag.Parse()

	mode := firstNonEmpty(*modeFlag, os.Getenv("MODE"), "run")
	cfgPath := firstNonEmpty(*cfgFlag, os.Getenv("CONFIG_PATH"), "configs/config.yaml")

	// Load config
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	fetcher := buildFetcher(cfg)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init collector
	col := collector.NewCollector(fetcher, cfg.Tickers, cfg.Data.HistoryDays, cfg.Data.Dir, cfg.Data.MaxRetries)

	// Init model registry
	st, err := store.Open(cfg.Output.StateFile)
	if err != nil {
		log.Fatalf("[FATAL] open model registry: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	a := app.New(cfg, col, st, rec)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	switch mode {
	case "fetch":
		if err := a.FetchOnce(ctx); err != nil {
			log.Fatalf("[FATAL] fetch: %v", err)
		}
	case "predict":
		if err := a.PredictOnce(ctx); err != nil {
			log.Fatalf("[FATAL] predict: %v", err)
		}
	case "run":
		if err := a.RunOnce(ctx); err != nil {
			log.Fatalf("[FATAL] run: %v", err)
		}
	case "daemon":
		runDaemon(ctx, cancel, cfg, a)
	default:
		log.Fatalf("[FATAL] unknown mode %q (want fetch, predict, run or daemon)", mode)
	}
}

func runDaemon(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, a *app.App) {
	sched := scheduler.NewScheduler(ctx, a)
	if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing task now")
		go sched.RunNow()
	}

	log.Println("[INFO] TrendCast is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] TrendCast stopped")
}

func buildFetcher(cfg *config.Config) collector.Fetcher {
	switch cfg.DataSource.Provider {
	case "alpaca":
		return collector.NewAlpacaFetcher(cfg.DataSource.APIKey, cfg.DataSource.APISecret)
	case "mock":
		return &collector.MockFetcher{BasePrice: 100}
	default:
		return collector.NewStooqFetcher(cfg.DataSource.BaseURL, cfg.DataSource.Suffix, cfg.Proxy)
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
