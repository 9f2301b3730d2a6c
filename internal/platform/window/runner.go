package window

import (
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappybird/internal/assets"
	"github.com/vovakirdan/flappybird/internal/config"
	"github.com/vovakirdan/flappybird/internal/core"
	"github.com/vovakirdan/flappybird/internal/flappy"
)

// runner adapts a flappy.Game to ebiten.Game. Ebitengine calls Update once
// per tick, so one Update is exactly one Game.Step.
type runner struct {
	game   *flappy.Game
	cfg    config.FlappyConfig
	store  *assets.Store
	mix    *mixer
	logger *log.Logger

	queue    *core.EventQueue
	spawn    *core.IntervalTimer
	touchIDs []ebiten.TouchID
	lastHigh int

	sprites map[string]*ebiten.Image
	digits  [10]*ebiten.Image
	birds   [flappy.BirdFrames]*ebiten.Image
	bg      *ebiten.Image
	flash   *ebiten.Image
}

func newRunner(g *flappy.Game, store *assets.Store, mix *mixer, logger *log.Logger) *runner {
	cfg := g.Config()
	r := &runner{
		game:    g,
		cfg:     cfg,
		store:   store,
		mix:     mix,
		logger:  logger,
		queue:   core.NewEventQueue(),
		spawn:   core.NewIntervalTimer(cfg.Obstacles.SpawnInterval, cfg.Physics.TickRate),
		sprites: make(map[string]*ebiten.Image),
	}

	for _, name := range assets.Images() {
		r.sprites[name] = ebiten.NewImageFromImage(store.Image(name))
	}
	for d := range r.digits {
		r.digits[d] = ebiten.NewImageFromImage(store.Digit(d))
	}
	for i := range r.birds {
		r.birds[i] = ebiten.NewImageFromImage(store.BirdFrame(i))
	}
	r.bg = ebiten.NewImageFromImage(store.Background(cfg.Window.Background))

	r.flash = ebiten.NewImage(cfg.Field.Width, cfg.Field.Height)
	r.flash.Fill(color.NRGBA{R: 255, G: 255, B: 255, A: cfg.Effects.FlashAlpha})

	return r
}

// Update advances the game by one tick.
func (r *runner) Update() error {
	r.poll().push(r.queue)
	if r.spawn.Tick() {
		r.queue.PushKind(core.EventSpawnTick)
	}

	res := r.game.Step(r.queue.Drain())
	if res.Quit {
		return ebiten.Termination
	}

	for _, c := range res.Cues {
		r.mix.Play(c)
	}
	r.mix.Cleanup()

	r.logTransitions(res)
	return nil
}

func (r *runner) logTransitions(res flappy.StepResult) {
	if res.Restarted {
		r.logger.Debug("game restarted", "tick", r.game.Ticks())
	}
	if res.Died {
		r.logger.Info("game over", "score", res.Score, "outcome", res.Outcome)
	}
	if res.HighScore > r.lastHigh {
		r.lastHigh = res.HighScore
		r.logger.Info("new high score", "score", res.HighScore)
	}
}

// Draw paints the current state. It never mutates the game.
func (r *runner) Draw(screen *ebiten.Image) {
	g := r.game
	hud := r.cfg.HUD

	screen.DrawImage(r.bg, nil)

	if g.Phase() == flappy.PhaseActive {
		r.drawObstacles(screen)
		r.drawBird(screen)
		r.drawGround(screen)
		r.drawNumber(screen, g.Score(), hud.ScoreY)
	} else {
		r.drawAt(screen, r.sprites[assets.GameOver], hud.GameOverX, hud.GameOverY)
		r.drawNumber(screen, g.Score(), hud.FinalScoreY)
		r.drawNumber(screen, g.HighScore(), hud.HighScoreY)
		btn := g.ConfirmRect()
		r.drawAt(screen, r.sprites[assets.ConfirmButton], btn.X, btn.Y)
		r.drawGround(screen)
	}

	if g.FlashVisible() {
		screen.DrawImage(r.flash, nil)
	}
}

// Layout keeps the logical field size; Ebitengine scales it to the window.
func (r *runner) Layout(_, _ int) (int, int) {
	return r.cfg.Field.Width, r.cfg.Field.Height
}

func (r *runner) drawAt(dst, img *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, op)
}

func (r *runner) drawObstacles(dst *ebiten.Image) {
	pipe := r.sprites[assets.Pipe]
	for _, o := range r.game.Obstacles() {
		r.drawAt(dst, pipe, o.Lower.X, o.Lower.Y)

		// Upper pipe is the same sprite flipped vertically
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(o.Upper.X, o.Upper.Bottom())
		dst.DrawImage(pipe, op)
	}
}

func (r *runner) drawBird(dst *ebiten.Image) {
	b := r.game.Bird()
	img := r.birds[r.game.BirdFrame()]
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	// Tilt is counter-clockwise; GeoM rotates clockwise in screen space
	op.GeoM.Rotate(-r.game.BirdTilt() * math.Pi / 180)
	op.GeoM.Translate(b.X, b.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func (r *runner) drawGround(dst *ebiten.Image) {
	base := r.sprites[assets.Base]
	x := r.game.GroundOffset()
	r.drawAt(dst, base, x, r.cfg.Ground.Y)
	r.drawAt(dst, base, x+r.cfg.Ground.Width, r.cfg.Ground.Y)
}

func (r *runner) drawNumber(dst *ebiten.Image, n int, y float64) {
	for _, gl := range flappy.DigitLayout(n, r.store.DigitWidth, r.cfg.Field.Width) {
		r.drawAt(dst, r.digits[gl.Digit], float64(gl.X), y)
	}
}

var _ ebiten.Game = (*runner)(nil)
