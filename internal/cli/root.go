package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/veritext/veritext/internal/api"
	"github.com/veritext/veritext/internal/model"
	"github.com/veritext/veritext/internal/session"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "veritext",
	Short: "Veritext - Fact-aware drafting for your documents",
	Long: `Veritext is a client for the Veritext fact-checking backend.

Draft documents, run sentence-level fact analysis against the backend,
and review flagged sentences with suggested corrections and sources --
from the command line or the interactive workspace.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("veritext v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.veritext/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		dir, err := model.ConfigDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(dir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match VERITEXT_*
	viper.SetEnvPrefix("VERITEXT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig builds the effective configuration: defaults, overridden by the
// config file and VERITEXT_* environment variables.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("api.base_url"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := viper.GetDuration("api.timeout"); v > 0 {
		cfg.API.Timeout = v
	}
	if v := viper.GetString("api.user_agent"); v != "" {
		cfg.API.UserAgent = v
	}
	if v := viper.GetFloat64("api.requests_per_second"); v > 0 {
		cfg.API.RequestsPerSecond = v
	}
	if v := viper.GetInt("api.burst"); v > 0 {
		cfg.API.Burst = v
	}
	if v := viper.GetDuration("cache.preview_ttl"); v > 0 {
		cfg.Cache.PreviewTTL = v
	}
	if v := viper.GetDuration("cache.cleanup_interval"); v > 0 {
		cfg.Cache.CleanupInterval = v
	}
	if v := viper.GetInt("concurrency.correction_workers"); v > 0 {
		cfg.Concurrency.CorrectionWorkers = v
	}
	if v := viper.GetInt("concurrency.preview_workers"); v > 0 {
		cfg.Concurrency.PreviewWorkers = v
	}
	if v := viper.GetString("output.log_file"); v != "" {
		cfg.Output.LogFile = v
	}
	cfg.Output.Verbose = verbose || viper.GetBool("verbose")

	return cfg
}

// newClient builds the API client from the effective configuration.
func newClient(cfg *model.Config) *api.Client {
	return api.NewClient(cfg.API)
}

// openSession opens the session cache under the config directory.
func openSession() (*session.Cache, error) {
	dir, err := model.ConfigDir()
	if err != nil {
		return nil, fmt.Errorf("locate config directory: %w", err)
	}
	return session.New(dir)
}

// requireUser returns the logged-in user or a friendly error.
func requireUser() (*model.User, *session.Cache, error) {
	cache, err := openSession()
	if err != nil {
		return nil, nil, err
	}
	user := cache.Current()
	if user == nil {
		return nil, nil, fmt.Errorf("not logged in: run 'veritext login' first")
	}
	return user, cache, nil
}

// commandContext returns a context bounded by the API timeout with headroom
// for multi-request operations.
func commandContext(cfg *model.Config) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 4*cfg.API.Timeout)
}

// timeHint formats a backend timestamp for terminal output, falling back to
// the raw value when it is not RFC 3339.
func timeHint(raw string) string {
	if raw == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Local().Format("2006-01-02 15:04")
	}
	return raw
}
