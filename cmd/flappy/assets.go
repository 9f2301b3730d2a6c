package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappybird/internal/assets"
	"github.com/vovakirdan/flappybird/internal/platform/window"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Check the asset directory",
	Long: `Loads every sprite and sound clip the window frontend needs and
reports the first one that is missing or broken.`,
	Args: cobra.NoArgs,
	Run:  runAssets,
}

func runAssets(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg, dir := loadConfig(logger)

	store, err := assets.Load(os.DirFS(dir), assets.OptionsFromConfig(cfg))
	if err != nil {
		logger.Error("asset check failed", "dir", dir, "err", err)
		os.Exit(1)
	}

	pcm, err := window.DecodeSounds(store, cfg.Audio.SampleRate)
	if err != nil {
		logger.Error("asset check failed", "dir", dir, "err", err)
		os.Exit(1)
	}

	images, sounds := store.Stats()
	fmt.Printf("Assets in %s:\n\n", dir)
	for _, name := range assets.Images() {
		b := store.Image(name).Bounds()
		fmt.Printf("  %-24s %dx%d\n", name, b.Dx(), b.Dy())
	}
	for _, name := range assets.Sounds() {
		fmt.Printf("  %-24s %d bytes, %d bytes PCM\n", name, len(store.Sound(name)), len(pcm[name]))
	}
	fmt.Printf("\n%d images, %d sounds OK\n", images, sounds)
}
