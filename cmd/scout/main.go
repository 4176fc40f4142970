package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"StockScout/internal/config"
	"StockScout/internal/engine"
	"StockScout/internal/model"
	"StockScout/internal/provider"
	"StockScout/internal/rank"
	"StockScout/internal/recorder"
	"StockScout/internal/resolver"
	"StockScout/internal/scheduler"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	if os.Getenv("LOG_LEVEL") == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Info().Msg("StockScout starting")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	prov := provider.NewYahooProvider(cfg.Proxy)
	log.Info().Str("provider", prov.Name()).Msg("data provider ready")

	eng := engine.New(prov)

	// One-shot subcommands
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "score":
			runScore(eng, os.Args[2:], cfg.Horizon())
			return
		case "search":
			runSearch(prov, os.Args[2:])
			return
		}
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ranker := rank.New(eng)
	sched := scheduler.NewScheduler(ctx, ranker, rec, cfg.Watchlist.Symbols, cfg.Horizon())
	if err := sched.Register(cfg.Schedule.ScanCron); err != nil {
		log.Fatal().Err(err).Msg("register cron task")
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, executing scan now")
		go sched.RunScanNow()
	}

	log.Info().Msg("StockScout is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
	log.Info().Msg("StockScout stopped")
}

func runScore(eng *engine.Engine, args []string, horizon model.Horizon) {
	if len(args) == 0 {
		log.Fatal().Msg("usage: scout score TICKER [short|long]")
	}
	if len(args) > 1 {
		horizon = model.ParseHorizon(args[1])
	}
	res, err := eng.Score(args[0], horizon)
	if err != nil {
		log.Fatal().Err(err).Str("ticker", args[0]).Msg("score failed")
	}

	fmt.Printf("%s (%s) | %s / %s | horizon: %s\n",
		res.Ticker, res.Company, res.Sector, res.Industry, res.Horizon)
	for _, wi := range res.Profile {
		sc := res.Breakdown[wi.Indicator]
		fmt.Printf("  %-16s %5.2f  (weight %.1f)\n", wi.Indicator, sc.Value, wi.Weight)
	}
	fmt.Printf("final score: %.2f / 100  [%s]\n", res.FinalScore, rank.Verdict(res.FinalScore))
}

func runSearch(prov provider.Provider, args []string) {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	r := resolver.New(prov)
	matches, err := r.Resolve(query, resolver.DefaultLimit)
	if err != nil {
		log.Fatal().Err(err).Str("query", query).Msg("no match")
	}
	for _, m := range matches {
		fmt.Printf("  %-8s %-40s confidence %d\n", m.Ticker, m.Name, m.Score)
	}
}
