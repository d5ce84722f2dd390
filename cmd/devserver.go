package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/workforce-management/internal/devstore"
	"github.com/frahmantamala/workforce-management/pkg/logger"
)

var devServerCmd = &cobra.Command{
	Use:   "devserver",
	Short: "Start the in-memory development server",
	Long:  `Serve the store's HTTP contract from a throwaway in-memory database, for local development and demos.`,
	Run: func(cmd *cobra.Command, args []string) {
		startDevServer()
	},
}

func startDevServer() {
	cfg, err := loadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	store, err := devstore.New(logger.LoggerWrapper())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dev store: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", cfg.DevServer.Port)
	slog.Info("Starting dev server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      store.Handler(),
		ReadTimeout:  cfg.DevServer.ReadTimeout,
		WriteTimeout: cfg.DevServer.WriteTimeout,
		IdleTimeout:  cfg.DevServer.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Dev server stopped")
}
