package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vilaca/portfolio-stats/internal/api"
	"github.com/vilaca/portfolio-stats/internal/api/codeforces"
	"github.com/vilaca/portfolio-stats/internal/api/github"
	"github.com/vilaca/portfolio-stats/internal/api/leetcode"
	"github.com/vilaca/portfolio-stats/internal/config"
	"github.com/vilaca/portfolio-stats/internal/dashboard"
	"github.com/vilaca/portfolio-stats/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app carries what every subcommand needs once the root command has initialized.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "portfolio-stats",
		Short: "Coding-profile statistics for the portfolio page",
		Long: `Fetches GitHub, LeetCode and Codeforces statistics concurrently and
merges them into one snapshot. Unavailable sources are replaced by fixed
fallback records, so every field always has a value.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", os.Getenv("CONFIG_FILE"), "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newServeCmd(a), newSnapshotCmd(a))

	return root
}

// init builds the logger and loads configuration.
func (a *app) init() error {
	zc := zap.NewProductionConfig()
	if a.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg

	return nil
}

// buildAggregator wires the source clients into the aggregator.
// This is the composition root for the statistics sources.
func buildAggregator(cfg *config.Config, logger *zap.Logger) *service.Aggregator {
	httpClient := &http.Client{
		Timeout: cfg.RequestTimeout,
	}

	githubClient := github.NewClient(api.ClientConfig{
		BaseURL: cfg.GitHub.URL,
		Handle:  cfg.GitHub.Handle,
	}, httpClient)

	leetcodeClient := leetcode.NewClient(api.ClientConfig{
		BaseURL: cfg.LeetCode.URL,
		Handle:  cfg.LeetCode.Handle,
	}, httpClient)

	codeforcesClient := codeforces.NewClient(api.ClientConfig{
		BaseURL: cfg.Codeforces.URL,
		Handle:  cfg.Codeforces.Handle,
	}, cfg.Codeforces.RecentSubmissions, httpClient)

	return service.NewAggregator(service.AggregatorConfig{
		Profile:     githubClient,
		LeetCode:    leetcodeClient,
		Codeforces:  codeforcesClient,
		RecentLimit: cfg.Codeforces.RecentSubmissions,
		Logger:      logger,
	})
}

// buildServer returns the HTTP handler serving the statistics API.
func buildServer(aggregator *service.Aggregator, logger *zap.Logger) http.Handler {
	handler := dashboard.NewHandler(dashboard.HandlerConfig{
		Renderer: dashboard.NewJSONRenderer(),
		Logger:   logger,
		Stats:    aggregator,
	})

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	return dashboard.LoggingMiddleware(logger, mux)
}
