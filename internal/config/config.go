// Package config provides YAML-based game configuration loading for the
// Flappy Bird game. Every field has a default equal to the classic tuning,
// so a config file only needs to name what it changes.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all configuration for the game and its frontends.
type FlappyConfig struct {
	Field     FieldConfig    `yaml:"field"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Bird      BirdConfig     `yaml:"bird"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Bounds    BoundsConfig   `yaml:"bounds"`
	Ground    GroundConfig   `yaml:"ground"`
	Effects   EffectsConfig  `yaml:"effects"`
	HUD       HUDConfig      `yaml:"hud"`
	Audio     AudioConfig    `yaml:"audio"`
	Window    WindowConfig   `yaml:"window"`
}

// FieldConfig defines the logical playfield size.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines per-tick kinematics.
type PhysicsConfig struct {
	TickRate    int     `yaml:"tick_rate"`
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every tick
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity after a flap (negative = up)
	PipeSpeed   float64 `yaml:"pipe_speed"`   // Leftward obstacle shift per tick
}

// BirdConfig defines the bird's start pose, hitbox and display.
type BirdConfig struct {
	StartX     float64 `yaml:"start_x"` // Center
	StartY     float64 `yaml:"start_y"` // Center
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FrameTicks int     `yaml:"frame_ticks"` // Ticks per animation frame
	TiltFactor float64 `yaml:"tilt_factor"` // Degrees of tilt per unit of velocity
}

// ObstacleConfig defines obstacle generation.
type ObstacleConfig struct {
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	GapCenters    []float64     `yaml:"gap_centers"` // Candidate gap anchors
	Gap           float64       `yaml:"gap"`         // Vertical gap between upper and lower rect
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
	SpawnMargin   float64       `yaml:"spawn_margin"` // Spawn center = field width + margin
	DespawnX      float64       `yaml:"despawn_x"`    // Removed once right edge <= this
}

// BoundsConfig defines the out-of-bounds death lines.
type BoundsConfig struct {
	Ceiling float64 `yaml:"ceiling"` // Dead when bird top <= ceiling
	Floor   float64 `yaml:"floor"`   // Dead when bird bottom >= floor
}

// GroundConfig defines the scrolling ground strip.
type GroundConfig struct {
	Y     float64 `yaml:"y"`
	Width float64 `yaml:"width"` // Wrap width of one tile
	Speed float64 `yaml:"speed"`
}

// EffectsConfig defines cosmetic effects.
type EffectsConfig struct {
	FlashFrames int   `yaml:"flash_frames"`
	FlashAlpha  uint8 `yaml:"flash_alpha"`
}

// HUDConfig defines overlay placement.
type HUDConfig struct {
	ScoreY        float64      `yaml:"score_y"`
	FinalScoreY   float64      `yaml:"final_score_y"`
	HighScoreY    float64      `yaml:"high_score_y"`
	GameOverX     float64      `yaml:"game_over_x"`
	GameOverY     float64      `yaml:"game_over_y"`
	ConfirmButton ButtonConfig `yaml:"confirm_button"`
}

// ButtonConfig defines a clickable control by center and size.
type ButtonConfig struct {
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Muted      bool `yaml:"muted"`
	SampleRate int  `yaml:"sample_rate"`
}

// WindowConfig defines the desktop window and visual theme.
type WindowConfig struct {
	Title      string  `yaml:"title"`
	Scale      float64 `yaml:"scale"`
	Background string  `yaml:"background"` // "day" or "night"
	AssetDir   string  `yaml:"asset_dir"`
}

// Background variants.
const (
	BackgroundDay   = "day"
	BackgroundNight = "night"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field size must be positive, got %dx%d", ErrInvalid, c.Field.Width, c.Field.Height)
	case c.Physics.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.Physics.TickRate)
	case c.Obstacles.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn_interval must be positive, got %s", ErrInvalid, c.Obstacles.SpawnInterval)
	case len(c.Obstacles.GapCenters) == 0:
		return fmt.Errorf("%w: gap_centers must not be empty", ErrInvalid)
	case c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0:
		return fmt.Errorf("%w: obstacle size must be positive", ErrInvalid)
	case c.Bird.Width <= 0 || c.Bird.Height <= 0:
		return fmt.Errorf("%w: bird size must be positive", ErrInvalid)
	case c.Ground.Width <= 0:
		return fmt.Errorf("%w: ground width must be positive", ErrInvalid)
	case c.Effects.FlashFrames < 0:
		return fmt.Errorf("%w: flash_frames must not be negative", ErrInvalid)
	case c.HUD.ConfirmButton.Width <= 0 || c.HUD.ConfirmButton.Height <= 0:
		return fmt.Errorf("%w: confirm button size must be positive", ErrInvalid)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample_rate must be positive, got %d", ErrInvalid, c.Audio.SampleRate)
	case int(float64(c.Field.Width)*c.Window.Scale) < 1 || int(float64(c.Field.Height)*c.Window.Scale) < 1:
		return fmt.Errorf("%w: window scale %v gives an empty window", ErrInvalid, c.Window.Scale)
	case c.Window.Background != BackgroundDay && c.Window.Background != BackgroundNight:
		return fmt.Errorf("%w: background must be %q or %q, got %q", ErrInvalid, BackgroundDay, BackgroundNight, c.Window.Background)
	}
	return nil
}
