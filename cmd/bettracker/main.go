package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/bet-tracker/internal/cli"
	"github.com/yourusername/bet-tracker/internal/config"
	"github.com/yourusername/bet-tracker/internal/ledger"
	"github.com/yourusername/bet-tracker/internal/logger"
	"github.com/yourusername/bet-tracker/internal/metrics"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	appLogger  *logrus.Logger
	cfg        *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "bettracker",
	Short: "Track personal sports bets and their outcomes",
	Long: `An interactive tracker for personal sports wagers: record bets in
American odds format, settle them as they complete, and review win
rate, amounts wagered, profit/loss, and the break-even gap.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		appLogger = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bettracker %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
	// Version needs no configuration.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	metrics.InitRegistry()
	if cfg.Metrics.Enabled {
		startMetricsServer()
	}

	betLedger := ledger.New(appLogger)
	auditLogger := logger.NewAuditLogger(appLogger)

	loop := cli.New(betLedger, auditLogger, cfg.Display.CurrencySymbol, os.Stdin, os.Stdout)
	return loop.Run()
}

// startMetricsServer exposes the Prometheus endpoint for the lifetime
// of the interactive session.
func startMetricsServer() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	go func() {
		appLogger.WithField("address", cfg.Metrics.Address).Info("Starting metrics server")
		if err := http.ListenAndServe(cfg.Metrics.Address, mux); err != nil {
			appLogger.WithError(err).Warn("Metrics server stopped")
		}
	}()
}
