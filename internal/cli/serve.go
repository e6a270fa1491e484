package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stdguard/stdguard/internal/providers"
	"github.com/stdguard/stdguard/internal/review"
	"github.com/stdguard/stdguard/internal/rules"
	"github.com/stdguard/stdguard/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the review backend",
	Long: "Serve loads the rule store, connects the configured LLM provider, and\n" +
		"exposes the review API over HTTP until interrupted.",
	Run: func(cmd *cobra.Command, args []string) {
		exitCode = runServe()
	},
}

func runServe() int {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitRuntimeError
	}

	provider, err := providers.New(cfg.Provider, cfg.Model())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitRuntimeError
	}
	if !provider.Configured() {
		logger.Warn("provider has no API key; review requests will fail",
			zap.String("provider", provider.Name()))
	}

	store := rules.NewStore(cfg.RulesFile)
	ruleSet := store.Load()
	logger.Info("rule store loaded",
		zap.String("path", store.Path()),
		zap.Int("rules", len(ruleSet)))

	engine := review.NewEngine(ruleSet, provider, logger)
	srv := server.New(engine, cfg, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", zap.Error(err))
			return ExitRuntimeError
		}
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
			return ExitRuntimeError
		}
	}
	return ExitSuccess
}
