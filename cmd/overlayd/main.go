package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"overlayd/internal/fetch"
	"overlayd/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		addr         = flag.String("addr", envOr("OVERLAYD_ADDR", ":8080"), "listen address")
		fetchTimeout = flag.Duration("fetch-timeout", 10*time.Second, "timeout for fetching the source image")
		logLevel     = flag.String("log-level", envOr("OVERLAYD_LOG_LEVEL", "info"), "log level (debug, info, warn, error)")
		showVersion  = flag.Bool("version", false, "print version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("overlayd %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(*logLevel),
	}))
	slog.SetDefault(logger)

	srv := server.New(server.Config{
		Addr:    *addr,
		Logger:  logger,
		Fetcher: fetch.New(fetch.Config{Timeout: *fetchTimeout}),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
