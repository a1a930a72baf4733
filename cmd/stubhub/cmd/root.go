// Package cmd implements the stubhub CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/stubhub/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "stubhub",
	Short: "Manage StubHub seller inventory from the terminal",
	Long: "stubhub is a command-line client for the StubHub seller API.\n" +
		"It logs in, creates and edits listings, looks up sales, prices\n" +
		"and events, delivers tickets, and can run a background service\n" +
		"that keeps the session fresh and mirrors sales into PostgreSQL.",
	SilenceUsage: true,
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1) //nolint:gocritic // stop already called
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (optional; flags and STUBHUB_* env are enough)")
	flags.String("consumer-key", "", "application consumer key")
	flags.String("consumer-secret", "", "application consumer secret")
	flags.String("base-url", "", "API base URL (default https://api.stubhub.com)")
	flags.Bool("sandbox", false, "send scope=SANDBOX with every request")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("output", "table", "output format (table, json)")

	for key, flag := range map[string]string{
		"config":          "config",
		"consumer_key":    "consumer-key",
		"consumer_secret": "consumer-secret",
		"base_url":        "base-url",
		"sandbox":         "sandbox",
		"log_level":       "log-level",
		"output":          "output",
	} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(flag)))
	}

	rootCmd.AddCommand(
		loginCmd(),
		logoutCmd(),
		listingsCmd(),
		salesCmd(),
		priceCmd(),
		eventsCmd(),
		fulfillCmd(),
		syncCmd(),
		migrateCmd(),
		serveCmd(),
		versionCmd(),
	)
}

func initConfig() {
	viper.SetEnvPrefix("STUBHUB")
	viper.AutomaticEnv()
}

// loadConfig builds the configuration from the optional config file, then
// applies flag and STUBHUB_* environment overrides.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	if path := viper.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		if err := config.LoadDotEnv(".env"); err != nil {
			return nil, err
		}
		cfg = config.Default()
	}

	applyOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func applyOverrides(cfg *config.Config) {
	if v := viper.GetString("consumer_key"); v != "" {
		cfg.StubHub.ConsumerKey = v
	}
	if v := viper.GetString("consumer_secret"); v != "" {
		cfg.StubHub.ConsumerSecret = v
	}
	if v := viper.GetString("base_url"); v != "" {
		cfg.StubHub.BaseURL = v
	}
	if viper.GetBool("sandbox") {
		cfg.StubHub.Sandbox = true
	}
	if v := viper.GetString("log_level"); v != "" {
		cfg.Logging.Level = v
	}
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
