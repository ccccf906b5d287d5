package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vilosource/aidoctool/internal/audit"
	"github.com/vilosource/aidoctool/internal/config"
	"github.com/vilosource/aidoctool/internal/llm"
	"github.com/vilosource/aidoctool/internal/storage"
)

var (
	version      = "dev"
	configSource string
	profileName  string
	verbose      bool
)

// registry holds the provider registry for the process. Built-ins are
// registered here; plugins may add their own before first resolution.
var registry = llm.NewDefaultRegistry()

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "aidoctool",
	Short: "AI-powered documentation and code tools",
	Long: `aidoctool dispatches documents to a configurable LLM backend.

Named profiles (provider, model, API key, parameters) live in
~/.aidoctool/config.yaml and are managed with the config subcommands.
Task commands such as summarize and convert use the default profile
unless --profile is given.`,
	Version: version,
	// main prints the single error line; cobra stays quiet
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configSource, "config-source", "yaml", "configuration source: yaml or env (env is read-only)")
	rootCmd.PersistentFlags().StringVar(&profileName, "profile", "", "profile to use (overrides config default)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose output")
}

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// verboseLog prints a message only if verbose mode is enabled
func verboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// newStore creates the profile store for the selected config source.
func newStore() (storage.Store, error) {
	switch configSource {
	case "yaml":
		return storage.NewYAMLStore(config.GetConfigDir())
	case "env":
		return storage.NewEnvStore(), nil
	default:
		return nil, fmt.Errorf("unknown config source %q (expected yaml or env)", configSource)
	}
}

var appSettings *config.Config

// settings loads application settings once per invocation, creating the
// defaults on first run.
func settings() (*config.Config, error) {
	if appSettings != nil {
		return appSettings, nil
	}
	cfg, err := config.LoadOrCreate("")
	if err != nil {
		return nil, err
	}
	appSettings = cfg
	return cfg, nil
}

// auditLog records an event when auditing is enabled. Audit failures are
// reported in verbose mode but never abort the operation.
func auditLog(eventType audit.EventType, profile, provider string, details map[string]string) {
	cfg, err := settings()
	if err != nil || !cfg.Audit.Enabled {
		return
	}

	logger, err := audit.NewLogger(cfg.Audit.File)
	if err != nil {
		verboseLog("audit logger unavailable: %v", err)
		return
	}
	if err := logger.Log(eventType, profile, provider, details); err != nil {
		verboseLog("audit write failed: %v", err)
	}
}
