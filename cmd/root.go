package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/pable/go-faceit-insights/internal/config"
	"github.com/pable/go-faceit-insights/internal/faceit"
	"github.com/pable/go-faceit-insights/internal/logging"
	"github.com/pable/go-faceit-insights/internal/storage"
)

var (
	cfgPath  string
	dbPath   string
	logLevel string
	noCache  bool

	cfg *config.Config
	log = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:               "faceitstats",
	Short:             "FACEIT match analytics",
	Long:              "Fetch FACEIT match and player statistics and derive badges, team comparisons and chart data.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	_ = log.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file (default $FACEITSTATS_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to SQLite payload cache (default ~/.faceitstats/cache.db)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "always fetch match payloads from the API")

	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// setup loads config and applies flag overrides before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(cmd.Context(), cfgPath)
	if err != nil {
		return err
	}
	if dbPath != "" {
		c.DBPath = dbPath
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if noCache {
		c.CacheEnabled = false
	}

	lvl, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	log = logging.NewConsole(os.Stderr, lvl)
	logging.SetDefault(log)
	cfg = c
	return nil
}

// openCache opens the payload cache, creating its directory on first use.
func openCache() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, errors.Wrap(err, "create cache directory")
	}
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, errors.Wrap(err, "open storage")
	}
	return db, nil
}

// newClient builds a FACEIT client from config. The returned close func
// releases the cache and is always safe to call.
func newClient() (*faceit.Client, func(), error) {
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, nil, err
	}
	opts := []faceit.Option{
		faceit.WithBaseURL(cfg.BaseURL),
		faceit.WithTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second),
		faceit.WithLogger(log),
	}
	closeFn := func() {}
	if cfg.CacheEnabled {
		db, err := openCache()
		if err != nil {
			// The cache is an optimisation; run uncached.
			log.Warn("payload cache unavailable", "path", cfg.DBPath, "error", err)
		} else {
			opts = append(opts, faceit.WithCache(db))
			closeFn = func() { db.Close() }
		}
	}
	return faceit.NewClient(cfg.APIKey, opts...), closeFn, nil
}
