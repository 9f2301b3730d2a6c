package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappybird/internal/platform/window"
	"github.com/vovakirdan/flappybird/internal/registry"
)

var (
	flagSeed  int64
	flagMute  bool
	flagScale float64
)

var playCmd = &cobra.Command{
	Use:   "play [frontend]",
	Short: "Play the game",
	Long: `Start a game with the given frontend (default: window).

Controls:
  Space        - Flap
  Enter / OK   - Play again after game over
  Esc / Q      - Quit

Examples:
  flappy play
  flappy play term
  flappy play window --scale 2 --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().Float64Var(&flagScale, "scale", 0, "Window scale factor (0 = from config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()

	frontendID := window.ID
	if len(args) > 0 {
		frontendID = args[0]
	}

	if !registry.Exists(frontendID) {
		logger.Error("unknown frontend", "frontend", frontendID)
		logger.Print("Run 'flappy list' to see available frontends.")
		os.Exit(1)
	}

	cfg, assetDir := loadConfig(logger)
	if flagMute {
		cfg.Audio.Muted = true
	}
	if flagScale > 0 {
		cfg.Window.Scale = flagScale
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid flags", "err", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	frontend, err := registry.Create(frontendID)
	if err != nil {
		logger.Fatal("cannot create frontend", "err", err)
	}

	err = frontend.Run(registry.Session{
		Config:   cfg,
		Seed:     seed,
		AssetDir: assetDir,
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal("game failed", "frontend", frontendID, "err", err)
	}
}
