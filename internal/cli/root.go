// Package cli implements the namuplot command line.
package cli

import (
	"fmt"
	"os"

	"github.com/opencode-ai/namuplot/internal/config"
	"github.com/opencode-ai/namuplot/internal/logging"
	"github.com/opencode-ai/namuplot/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile  string
	projectDir  string
	jsonOutput  bool
	jsonlOutput bool
	noColor     bool
	noProgress  bool
	logLevel    string

	appConfig *config.Config
	appViper  = config.NewViper()
)

var rootCmd = &cobra.Command{
	Use:           "namuplot",
	Short:         "Chart themes for go-chart",
	Long:          "namuplot provides light and dark chart themes and renders example charts for each of them.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(appViper)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default ~/.config/namuplot/config.yaml)")
	flags.StringVar(&projectDir, "project-dir", "", "project directory searched for .namuplot/themes")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&jsonlOutput, "jsonl", false, "output JSON lines")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&noProgress, "no-progress", false, "disable progress output")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	_ = appViper.BindPFlag("logging.level", flags.Lookup("log-level"))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func initConfig(v *viper.Viper) error {
	if jsonOutput && jsonlOutput {
		return fmt.Errorf("--json and --jsonl are mutually exclusive")
	}

	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}
	if err := logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	}); err != nil {
		return err
	}
	appConfig = &cfg
	return nil
}

// GetConfig returns the loaded configuration, or defaults before loading.
func GetConfig() *config.Config {
	if appConfig == nil {
		cfg := config.DefaultConfig()
		return &cfg
	}
	return appConfig
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

// IsJSONLOutput reports whether --jsonl was given.
func IsJSONLOutput() bool {
	return jsonlOutput
}

// loadRegistry builds the registry from configured paths, the search paths
// and the builtins.
func loadRegistry() (*themes.Registry, error) {
	reg, err := themes.LoadFromSearchPaths(projectDir, GetConfig().Theme.Paths...)
	if err != nil {
		return nil, fmt.Errorf("load themes: %w", err)
	}
	logger := logging.Component("cli")
	logger.Debug().Strs("themes", reg.Available()).Msg("loaded themes")
	return reg, nil
}
