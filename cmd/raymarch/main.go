package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/oliverbestmann/raymarch/raymarch"
)

func main() {
	configPath := flag.String("config", envOr("RAYMARCH_CONFIG", "raymarch.toml"), "path to an optional toml config file")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(os.Getenv("RAYMARCH_LOG_LEVEL")),
	})))

	opts, err := raymarch.LoadOptions(*configPath)
	if err != nil {
		slog.Error("Failed to load options", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := raymarch.Run(opts); err != nil {
		slog.Error("Ray marching failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func logLevel(value string) slog.Level {
	switch strings.ToLower(value) {
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
