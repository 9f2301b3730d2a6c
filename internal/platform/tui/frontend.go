package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/flappybird/internal/flappy"
	"github.com/vovakirdan/flappybird/internal/registry"
)

// ID is the registry identifier of this frontend.
const ID = "term"

// Fallback size when stdout is not a terminal.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

func init() {
	registry.Register(ID, func() registry.Frontend { return &Frontend{} })
}

// Frontend plays the game in the terminal. It needs no asset files.
type Frontend struct{}

// ID returns the frontend identifier.
func (f *Frontend) ID() string { return ID }

// Title returns the frontend name.
func (f *Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run starts the Bubble Tea program and blocks until the player quits.
func (f *Frontend) Run(s registry.Session) error {
	width, height := defaultWidth, defaultHeight
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	game := flappy.New(s.Config, s.Seed)
	model := NewModel(game, s.Logger, width, height)

	s.Logger.Info("frontend started", "frontend", ID, "seed", s.Seed, "size", fmt.Sprintf("%dx%d", width, height))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	s.Logger.Info("bye", "high_score", game.HighScore())
	return nil
}
