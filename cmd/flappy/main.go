// flappy is a single-screen Flappy Bird arcade game.
//
// Usage:
//
//	flappy                   - Play in a desktop window
//	flappy play [frontend]   - Play with the given frontend (window, term)
//	flappy list              - List available frontends
//	flappy assets            - Check that every sprite and sound loads
//
// Global flags:
//
//	--config <path>     - Config YAML overlaying the defaults
//	--assets <dir>      - Asset directory (default: from config, "assets")
//	--log-level <lvl>   - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/flappybird/internal/platform/tui"
	_ "github.com/vovakirdan/flappybird/internal/platform/window"

	"github.com/vovakirdan/flappybird/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagAssets   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird - flap through the pipes",
	Long: `Flappy Bird: keep the bird in the air and fly it through the gaps.

Each pipe pair passed scores one point. Touching a pipe or leaving the
field ends the run; press Enter, click OK or flap to play again.

Examples:
  flappy
  flappy play term
  flappy play --seed 42 --mute
  flappy assets --assets ./assets`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(assetsCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig loads the configuration and applies the global overrides.
func loadConfig(logger *log.Logger) (config.FlappyConfig, string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("cannot load config", "err", err)
	}
	logger.Debug("config loaded", "source", source)

	assetDir := cfg.Window.AssetDir
	if flagAssets != "" {
		assetDir = flagAssets
	}
	return cfg, assetDir
}
