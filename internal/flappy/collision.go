package flappy

import (
	"github.com/vovakirdan/flappybird/internal/config"
	"github.com/vovakirdan/flappybird/internal/core"
)

// Outcome is the result of a collision check.
type Outcome int

const (
	Alive       Outcome = iota
	HitObstacle         // Bird overlaps a pipe rectangle
	OutOfBounds         // Bird crossed the ceiling or floor line
)

// String returns a human-readable outcome.
func (o Outcome) String() string {
	switch o {
	case Alive:
		return "alive"
	case HitObstacle:
		return "hit obstacle"
	case OutOfBounds:
		return "out of bounds"
	default:
		return "unknown"
	}
}

// CheckCollision tests the bird against every obstacle and the bounds.
// Obstacles are checked first so a pipe hit wins over a simultaneous
// bounds crossing.
func CheckCollision(bird core.Rect, obstacles []Obstacle, bounds config.BoundsConfig) Outcome {
	for _, o := range obstacles {
		if bird.Intersects(o.Upper) || bird.Intersects(o.Lower) {
			return HitObstacle
		}
	}

	if bird.Y <= bounds.Ceiling || bird.Bottom() >= bounds.Floor {
		return OutOfBounds
	}
	return Alive
}
