package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/backend"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/config"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/console"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/httpapi"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/listview"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/logger"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/narration"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/voice"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/watcher"
	"github.com/nguyentantai21042004/wazigov-narrator/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Console output owns stdout
	log := logger.NewWithWriter(cfg.Logging.Level, os.Stderr)
	log.Info(ctx, "WaziGov narrator starting")
	log.Info(ctx, "Backend: %s (timeout %v)", cfg.Backend.BaseURL, cfg.Backend.Timeout)

	// Initialize dependencies
	exec := executor.New()
	catalog := voice.New(voice.NewEspeakInventory(exec, cfg.Speech.BinaryPath), log)
	speaker := narration.NewEspeakSpeaker(exec, cfg.Speech.BinaryPath, cfg.Speech.Rate, log)
	if !speaker.Available() {
		log.Warn(ctx, "Speech synthesizer %s not found, narration disabled", cfg.Speech.BinaryPath)
	}
	engine := narration.NewEngine(catalog, speaker, log)

	client := backend.NewWithFallback(backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, log), log)
	view := listview.New(client, catalog, engine, log)
	defer view.Close()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 4)
	rescan := func(ctx context.Context, source string) error {
		avail := catalog.Refresh(ctx)
		log.Debug(ctx, "Voices rescanned after %s: %v", source, avail.Languages)
		return nil
	}

	// Start voice inventory watchers
	watchers, err := startWatchers(ctx, cfg, rescan, log, errChan)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer func() {
		for _, w := range watchers {
			w.Stop()
		}
	}()

	if err := view.LoadRegions(ctx); err != nil {
		log.Warn(ctx, "Failed to load regions: %v", err)
	}
	view.Select(ctx, cfg.Browse.Region, cfg.Browse.Language)

	// Optional HTTP control surface
	var srv *http.Server
	if cfg.Server.Addr != "" {
		srv = &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           httpapi.New(view, catalog, client, log).Routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			log.Info(ctx, "HTTP control surface listening on %s", cfg.Server.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("http server: %w", err)
			}
		}()
	}

	// Interactive console
	consoleDone := make(chan struct{})
	go func() {
		defer close(consoleDone)
		c := console.New(view, catalog, client, os.Stdout, log)
		if err := c.Run(ctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- err
		}
	}()

	// Wait for shutdown signal, quit, or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case <-consoleDone:
	case err := <-errChan:
		log.Error(ctx, "Narrator error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	engine.Silence()
	cancel()

	if srv != nil {
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn(shutdownCtx, "HTTP shutdown: %v", err)
		}
	}

	log.Info(context.Background(), "WaziGov narrator stopped")
}

// startWatchers runs the rescan schedule and, when a voice directory is configured, a directory watcher
func startWatchers(ctx context.Context, cfg *config.Config, rescan watcher.EventHandler, log logger.Logger, errChan chan<- error) ([]watcher.Watcher, error) {
	scheduled, err := watcher.NewScheduled(cfg.Voices.RescanSchedule, rescan, log)
	if err != nil {
		return nil, err
	}
	watchers := []watcher.Watcher{scheduled}

	if cfg.Voices.DataDir != "" {
		dirWatcher, err := watcher.New(cfg.Voices.DataDir, rescan, log, 0)
		if err != nil {
			return nil, err
		}
		watchers = append(watchers, dirWatcher)
	}

	for _, w := range watchers {
		go func(w watcher.Watcher) {
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				errChan <- err
			}
		}(w)
	}
	return watchers, nil
}
