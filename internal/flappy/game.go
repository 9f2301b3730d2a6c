// Package flappy implements the Flappy Bird game rules: a bird falls under
// constant gravity, flaps on input, and must pass through gaps between pipe
// pairs that scroll in from the right.
//
// The package is pure simulation. It consumes an ordered event list per tick
// and reports sound cues; frontends own input, timing, drawing and audio.
package flappy

import (
	"github.com/vovakirdan/flappybird/internal/config"
	"github.com/vovakirdan/flappybird/internal/core"
)

// Phase is the state machine position of the game.
type Phase int

const (
	PhaseActive   Phase = iota // Bird flying, world moving
	PhaseGameOver              // Frozen until flap or confirm
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	Phase     Phase
	Score     int
	HighScore int
	Cues      []Cue   // Sound triggers, in the order they happened
	Quit      bool    // A quit event was consumed; the loop should exit
	Restarted bool    // The game was reset this tick
	Died      bool    // The game entered PhaseGameOver this tick
	Outcome   Outcome // Why the bird died, when Died is set
}

// Game holds the whole mutable state of one play session.
// It is owned by a single loop and is not safe for concurrent use.
type Game struct {
	cfg       config.FlappyConfig
	phase     Phase
	bird      Bird
	obstacles []Obstacle
	gen       *Generator
	score     *ScoreTracker
	flash     Flash
	ground    Ground
	confirm   core.Rect
	ticks     int // Ticks since the process started
	flyTicks  int // Active ticks since the last reset, drives wing animation
}

// New creates a game in PhaseActive with the bird at its start pose.
func New(cfg config.FlappyConfig, seed int64) *Game {
	btn := cfg.HUD.ConfirmButton
	g := &Game{
		cfg:     cfg,
		gen:     NewGenerator(cfg, seed),
		score:   NewScoreTracker(),
		flash:   NewFlash(cfg.Effects.FlashFrames),
		ground:  NewGround(cfg.Ground.Width, cfg.Ground.Speed),
		confirm: core.RectFromCenter(btn.CenterX, btn.CenterY, float64(btn.Width), float64(btn.Height)),
	}
	g.Reset()
	return g
}

// Reset restores the start pose: bird at rest at its start position, no
// obstacles, no credited pairs, zero score, PhaseActive. The high score,
// the ground scroll and the obstacle RNG carry over.
func (g *Game) Reset() {
	g.phase = PhaseActive
	g.bird = NewBird(g.cfg.Bird.StartX, g.cfg.Bird.StartY, g.cfg.Bird.Width, g.cfg.Bird.Height)
	g.obstacles = g.obstacles[:0]
	g.score.Reset()
	g.flyTicks = 0
}

// Step consumes the events queued since the previous tick and advances the
// game by one tick.
func (g *Game) Step(events []core.Event) StepResult {
	var res StepResult

	g.flash.Advance()

	for _, ev := range events {
		switch ev.Kind {
		case core.EventQuit:
			res.Quit = true
			return g.result(res)

		case core.EventFlap:
			if g.phase == PhaseActive {
				g.bird.Flap(g.cfg.Physics.FlapImpulse)
				res.Cues = append(res.Cues, CueFlap)
			} else {
				g.restart(&res)
			}

		case core.EventConfirm:
			if g.phase == PhaseGameOver {
				g.restart(&res)
			}

		case core.EventPointerDown:
			if g.phase == PhaseGameOver && g.confirm.Contains(ev.X, ev.Y) {
				g.restart(&res)
			}

		case core.EventSpawnTick:
			// Nothing spawns while frozen; the list is cleared on reset anyway
			if g.phase == PhaseActive {
				g.obstacles = append(g.obstacles, g.gen.Spawn())
			}
		}
	}

	if g.phase == PhaseActive {
		g.simulate(&res)
	} else {
		g.score.Record()
	}

	g.ground.Advance()
	g.ticks++

	return g.result(res)
}

// simulate runs one active tick: kinematics, collision, scrolling, scoring.
// Collision is tested against the obstacles before they scroll this tick.
func (g *Game) simulate(res *StepResult) {
	g.flyTicks++
	g.bird.Integrate(g.cfg.Physics.Gravity)

	outcome := CheckCollision(g.bird.Rect(), g.obstacles, g.cfg.Bounds)
	switch outcome {
	case HitObstacle:
		res.Cues = append(res.Cues, CueHit)
	case OutOfBounds:
		res.Cues = append(res.Cues, CueDie)
	}

	g.obstacles = g.gen.Advance(g.obstacles)

	for n := g.score.Update(g.bird.X, g.obstacles); n > 0; n-- {
		res.Cues = append(res.Cues, CuePoint)
	}

	if outcome != Alive {
		g.phase = PhaseGameOver
		g.flash.Arm()
		g.score.Record()
		res.Died = true
		res.Outcome = outcome
	}
}

func (g *Game) restart(res *StepResult) {
	g.Reset()
	res.Restarted = true
	res.Cues = append(res.Cues, CueSwoosh)
}

func (g *Game) result(res StepResult) StepResult {
	res.Phase = g.phase
	res.Score = g.score.Score()
	res.HighScore = g.score.HighScore()
	return res
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Bird returns a copy of the bird.
func (g *Game) Bird() Bird {
	return g.bird
}

// Obstacles returns the live obstacle pairs in spawn order.
// The slice is only valid until the next Step and must not be modified.
func (g *Game) Obstacles() []Obstacle {
	return g.obstacles
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score.Score()
}

// HighScore returns the best score of this process.
func (g *Game) HighScore() int {
	return g.score.HighScore()
}

// FlashVisible reports whether the death flash should be drawn.
func (g *Game) FlashVisible() bool {
	return g.flash.Visible()
}

// GroundOffset returns the x position of the first ground tile.
func (g *Game) GroundOffset() float64 {
	return g.ground.Offset()
}

// ConfirmRect returns the clickable restart button on the game over screen.
func (g *Game) ConfirmRect() core.Rect {
	return g.confirm
}

// BirdFrame returns the wing animation frame in [0, BirdFrames).
// The wings stop while the game is over.
func (g *Game) BirdFrame() int {
	ft := g.cfg.Bird.FrameTicks
	if ft <= 0 {
		return 0
	}
	return (g.flyTicks / ft) % BirdFrames
}

// BirdTilt returns the bird's display rotation in degrees, counter-clockwise.
func (g *Game) BirdTilt() float64 {
	return g.bird.Tilt(g.cfg.Bird.TiltFactor)
}

// Ticks returns the number of ticks stepped since New.
func (g *Game) Ticks() int {
	return g.ticks
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}
