// Package window runs the game in a desktop window using Ebitengine.
package window

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappybird/internal/assets"
	"github.com/vovakirdan/flappybird/internal/flappy"
	"github.com/vovakirdan/flappybird/internal/registry"
)

// ID is the registry identifier of this frontend.
const ID = "window"

func init() {
	registry.Register(ID, func() registry.Frontend { return &Frontend{} })
}

// Frontend is the default, sprite-based frontend.
type Frontend struct{}

// ID returns the frontend identifier.
func (f *Frontend) ID() string { return ID }

// Title returns the frontend name.
func (f *Frontend) Title() string { return "Desktop window (Ebitengine)" }

// Run loads the assets, opens the window and blocks until the player quits.
func (f *Frontend) Run(s registry.Session) error {
	cfg := s.Config
	logger := s.Logger

	store, err := assets.Load(os.DirFS(s.AssetDir), assets.OptionsFromConfig(cfg))
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	images, sounds := store.Stats()
	logger.Info("assets loaded", "dir", s.AssetDir, "images", images, "sounds", sounds)

	mix, err := newMixer(store, cfg.Audio)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}

	r := newRunner(flappy.New(cfg, s.Seed), store, mix, logger)

	w, h := cfg.Field.Width, cfg.Field.Height
	ebiten.SetWindowSize(int(float64(w)*cfg.Window.Scale), int(float64(h)*cfg.Window.Scale))
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Physics.TickRate)
	ebiten.SetWindowClosingHandled(true)

	logger.Info("frontend started", "frontend", ID, "seed", s.Seed, "tps", cfg.Physics.TickRate)

	err = ebiten.RunGame(r)
	mix.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}

	logger.Info("bye", "high_score", r.game.HighScore())
	return nil
}
