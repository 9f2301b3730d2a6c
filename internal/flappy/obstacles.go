package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappybird/internal/config"
	"github.com/vovakirdan/flappybird/internal/core"
)

// Obstacle is a pipe pair: an upper and a lower rectangle sharing one gap.
// Both rectangles always move together.
type Obstacle struct {
	ID        uint64    // Stable identity, assigned at spawn
	GapCenter float64   // Top edge of the lower rectangle
	Upper     core.Rect // Hangs from above, bottom edge at GapCenter - gap
	Lower     core.Rect // Rises from below, top edge at GapCenter
}

// CenterX returns the horizontal center shared by both rectangles.
func (o Obstacle) CenterX() float64 {
	return o.Lower.CenterX()
}

// Right returns the right edge shared by both rectangles.
func (o Obstacle) Right() float64 {
	return o.Lower.Right()
}

// Gap returns the vertical distance between the two rectangles.
func (o Obstacle) Gap() float64 {
	return o.Lower.Y - o.Upper.Bottom()
}

// Generator spawns obstacle pairs and scrolls them across the field.
type Generator struct {
	cfg    config.ObstacleConfig
	spawnX float64
	speed  float64
	rng    *rand.Rand
	nextID uint64
}

// NewGenerator creates a generator with the given RNG seed.
func NewGenerator(cfg config.FlappyConfig, seed int64) *Generator {
	return &Generator{
		cfg:    cfg.Obstacles,
		spawnX: float64(cfg.Field.Width) + cfg.Obstacles.SpawnMargin,
		speed:  cfg.Physics.PipeSpeed,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Spawn creates a new pair just beyond the right edge of the field.
// The gap center is drawn uniformly from the configured candidates.
func (gen *Generator) Spawn() Obstacle {
	gapCenter := gen.cfg.GapCenters[gen.rng.Intn(len(gen.cfg.GapCenters))]
	gen.nextID++

	return Obstacle{
		ID:        gen.nextID,
		GapCenter: gapCenter,
		Lower:     core.RectFromMidTop(gen.spawnX, gapCenter, gen.cfg.Width, gen.cfg.Height),
		Upper:     core.RectFromMidBottom(gen.spawnX, gapCenter-gen.cfg.Gap, gen.cfg.Width, gen.cfg.Height),
	}
}

// Advance moves every pair left by one tick and drops the ones whose right
// edge has reached the despawn line. Order is preserved and the input's
// backing array is reused.
func (gen *Generator) Advance(obstacles []Obstacle) []Obstacle {
	kept := obstacles[:0]
	for _, o := range obstacles {
		o.Upper = o.Upper.Translate(-gen.speed, 0)
		o.Lower = o.Lower.Translate(-gen.speed, 0)
		if o.Right() > gen.cfg.DespawnX {
			kept = append(kept, o)
		}
	}
	return kept
}
