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

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/epicstalent-sudo/level-up-backend/api"
	"github.com/epicstalent-sudo/level-up-backend/config"
	"github.com/epicstalent-sudo/level-up-backend/internal/analytics"
)

const shutdownTimeout = 5 * time.Second

var (
	servePort string
	serveData string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the candidate search HTTP server",
	Long:  `Load the dataset, build the text index and serve POST /api/search until interrupted.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (default from PORT, 5000)")
	serveCmd.Flags().StringVar(&serveData, "data", "", "Path to the candidate dataset (default from DATA_FILE, data.json)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}
	if serveData != "" {
		cfg.DataFile = serveData
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	svc, err := loadSearchService(cfg.DataFile, log)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	apiHandler := api.NewAPI(svc, svc, analytics.NewService(svc), log)
	router := api.NewRouter(api.RouterConfig{
		MaxRequestBytes: cfg.MaxRequestBytes,
		CORSAllowOrigin: cfg.CORSAllowOrigin,
	}, apiHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// Graceful Shutdown
	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("server exiting")
	return nil
}
