package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/alienxp03/splitdecision/internal/config"
	"github.com/alienxp03/splitdecision/internal/gate"
	"github.com/alienxp03/splitdecision/internal/history"
	"github.com/alienxp03/splitdecision/internal/llm"
	"github.com/alienxp03/splitdecision/internal/ratelimit"
	"github.com/alienxp03/splitdecision/web/handlers"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	configPath := flag.String("config", "", "Config file path (default: ~/.splitdecision/config.yaml)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	// Initialize slog
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	if *debug {
		opts.Level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, opts))
	slog.SetDefault(logger)

	// Load configuration
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Shared key pieces are optional; without a key the server cannot serve
	// the free tier and the endpoints say so.
	var client *llm.Client
	var g *gate.Gate
	if cfg.OpenAI.APIKey != "" {
		client = llm.NewClient(cfg.OpenAI.APIKey)
		g = gate.New(client, cfg.OpenAI.Model, logger)
	} else {
		slog.Warn("No OpenAI API key configured, free tier disabled")
	}

	// Redis backs rate limiting and history when configured.
	var limiter *ratelimit.Limiter
	var store history.Store
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		limiter = ratelimit.New(rdb, cfg.RateLimit.DailyFreeLimit)
		store = history.NewRedisStore(rdb)
		slog.Info("Using Redis", "addr", cfg.Redis.Addr, "daily_limit", cfg.RateLimit.DailyFreeLimit)
	} else {
		slog.Warn("No Redis configured, rate limiting disabled")
		sqlite, err := history.NewSQLiteStore(cfg.History.DBPath)
		if err != nil {
			slog.Error("Failed to initialize history store", "error", err)
			os.Exit(1)
		}
		defer sqlite.Close()
		store = sqlite
		slog.Info("Using SQLite history", "path", cfg.History.DBPath)
	}

	h := handlers.New(client, g, limiter, store, cfg.OpenAI.Model, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: h.Router(),
	}

	// Handle shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
		slog.Info("Shutting down...")
		server.Close()
	}()

	slog.Info("Starting splitdecision server", "url", fmt.Sprintf("http://localhost%s", addr))
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}
