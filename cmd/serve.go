package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpLayer "debt-planner/http"

	"github.com/spf13/cobra"
)

var flagPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the planner HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&flagPort, "port", "p", 0, "Listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagPort > 0 {
		cfg.HTTP.Port = flagPort
	}

	logger, err := newLogger(cfg.Logging, false)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	a, err := newApp(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close(logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window.Duration)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(logger, httpLayer.RouterDependencies{
		Plans:       httpLayer.NewPlanHandler(a.service, logger),
		Terms:       httpLayer.NewTermRecommendationHandler(a.terms, logger),
		RateLimiter: rateLimiter,
		Health:      a.health,
	})
	server := httpLayer.NewServer(logger, cfg.HTTP, router)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Errorw("server stopped", "error", err)
		}
		return err
	case sig := <-quit:
		logger.Infow("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorw("error during server shutdown", "error", err)
		return err
	}

	logger.Info("server exited")
	return nil
}
