package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in Flappy Bird configuration.
// It matches defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: FieldConfig{
			Width:  288,
			Height: 512,
		},
		Physics: PhysicsConfig{
			TickRate:    60,
			Gravity:     0.2,
			FlapImpulse: -6,
			PipeSpeed:   2,
		},
		Bird: BirdConfig{
			StartX:     50,
			StartY:     256,
			Width:      34,
			Height:     24,
			FrameTicks: 5,
			TiltFactor: 3,
		},
		Obstacles: ObstacleConfig{
			SpawnInterval: 1500 * time.Millisecond,
			GapCenters:    []float64{200, 300, 400},
			Gap:           150,
			Width:         52,
			Height:        320,
			SpawnMargin:   50,
			DespawnX:      -50,
		},
		Bounds: BoundsConfig{
			Ceiling: -50,
			Floor:   450,
		},
		Ground: GroundConfig{
			Y:     412,
			Width: 288,
			Speed: 1,
		},
		Effects: EffectsConfig{
			FlashFrames: 8,
			FlashAlpha:  128,
		},
		HUD: HUDConfig{
			ScoreY:      50,
			FinalScoreY: 150,
			HighScoreY:  250,
			GameOverX:   50,
			GameOverY:   200,
			ConfirmButton: ButtonConfig{
				CenterX: 144,
				CenterY: 306,
				Width:   100,
				Height:  35,
			},
		},
		Audio: AudioConfig{
			Muted:      false,
			SampleRate: 44100,
		},
		Window: WindowConfig{
			Title:      "Flappy Bird",
			Scale:      1.5,
			Background: BackgroundDay,
			AssetDir:   "assets",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
