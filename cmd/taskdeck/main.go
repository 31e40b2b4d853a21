package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"taskdeck/internal/api"
	"taskdeck/internal/config"
	"taskdeck/internal/ui"
)

func main() {
	cfg, err := config.LoadOrCreate(config.DefaultConfigFileName)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, closeLog, err := makeLogger(cfg.LogPath)
	if err != nil {
		fmt.Printf("failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	client := api.New(cfg.APIBaseURL, log)
	log.Info("starting", "api_base_url", cfg.APIBaseURL)

	if err := ui.Run(client, cfg); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}

// makeLogger writes JSON logs to the configured file. The terminal
// belongs to the UI, so an empty path discards everything.
func makeLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	log := slog.New(slog.NewJSONHandler(f, nil))
	return log, func() { _ = f.Close() }, nil
}
