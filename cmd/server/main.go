package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/readaloud/internal/api"
	"github.com/dgallion1/readaloud/internal/config"
	"github.com/dgallion1/readaloud/internal/pipeline"
	"github.com/dgallion1/readaloud/internal/session"
	"github.com/dgallion1/readaloud/internal/tts"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	synth, err := tts.NewExecSynthesizer(cfg.TTSCommand)
	if err != nil {
		log.Error("invalid tts command", "error", err)
		os.Exit(1)
	}

	sessions := session.NewStore(cfg.SessionTTL)
	processor := &pipeline.Processor{MaxChunkSize: cfg.MaxChunkSize}

	// Evict idle sessions in the background.
	go func() {
		ticker := time.NewTicker(cfg.CleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := sessions.Cleanup(); n > 0 {
					log.Info("evicted idle sessions", "count", n)
				}
			}
		}
	}()

	srv := api.NewServer(sessions, synth, processor, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting readaloud", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
