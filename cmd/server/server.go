package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/emberforge/adventurer-api/internal/config"
	v1 "github.com/emberforge/adventurer-api/internal/handlers/metadata/v1"
	metadataorch "github.com/emberforge/adventurer-api/internal/orchestrators/metadata"
	redisclient "github.com/emberforge/adventurer-api/internal/redis"
	adventurerrepo "github.com/emberforge/adventurer-api/internal/repositories/adventurer"
)

var httpPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the adventurer-api HTTP server with the configured snapshot store.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 0, "HTTP server port (overrides HTTP_PORT)")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if httpPort != 0 {
		cfg.HTTPPort = httpPort
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		PoolSize:        cfg.RedisPoolSize,
		MinIdleConns:    cfg.RedisMinIdleConns,
		ConnMaxIdleTime: cfg.RedisConnMaxIdleTime,
		UseTLS:          cfg.RedisUseTLS,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}

	repo, err := adventurerrepo.NewRedis(&adventurerrepo.RedisConfig{Client: client})
	if err != nil {
		return fmt.Errorf("failed to create adventurer repository: %w", err)
	}

	orchestrator, err := metadataorch.New(&metadataorch.Config{AdventurerRepo: repo})
	if err != nil {
		return fmt.Errorf("failed to create metadata orchestrator: %w", err)
	}

	handler, err := v1.NewHandler(&v1.HandlerConfig{Service: orchestrator})
	if err != nil {
		return fmt.Errorf("failed to create metadata handler: %w", err)
	}

	router := mux.NewRouter()
	handler.Register(router)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, forcing close", "error", err)
			return srv.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
