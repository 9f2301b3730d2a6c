package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappybird/internal/core"
	"github.com/vovakirdan/flappybird/internal/flappy"
)

// Field glyphs.
const (
	pipeChar    = '█'
	pipeCap     = '▓'
	birdChar    = '●'
	beakChar    = '>'
	groundTop   = '▔'
	groundLight = '░'
	groundDark  = '▒'
)

// wingChars is indexed by the bird animation frame.
var wingChars = [flappy.BirdFrames]rune{'^', '-', 'v'}

// projection maps playfield units onto terminal cells.
type projection struct {
	sx, sy float64 // Field units per cell
}

func newProjection(fieldW, fieldH, cols, rows int) projection {
	cols = max(cols, 1)
	rows = max(rows, 1)
	return projection{
		sx: float64(fieldW) / float64(cols),
		sy: float64(fieldH) / float64(rows),
	}
}

// row returns the cell row containing field y.
func (p projection) row(y float64) int {
	return int(math.Floor(y / p.sy))
}

// rect returns the cells covered by r, at least one cell in each direction.
func (p projection) rect(r core.Rect) (x, y, w, h int) {
	x = int(math.Floor(r.X / p.sx))
	y = int(math.Floor(r.Y / p.sy))
	w = max(int(math.Ceil(r.Right()/p.sx))-x, 1)
	h = max(int(math.Ceil(r.Bottom()/p.sy))-y, 1)
	return x, y, w, h
}

// toField returns the field point at the center of a cell.
func (p projection) toField(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * p.sx, (float64(row) + 0.5) * p.sy
}

// drawField renders the game state into dst.
func drawField(dst *core.Screen, g *flappy.Game, p projection) {
	dst.Clear()
	cfg := g.Config()

	if g.Phase() == flappy.PhaseActive {
		drawObstacles(dst, g.Obstacles(), p)
		drawBird(dst, g, p)
		drawGround(dst, g, p)
		dst.DrawTextCentered(p.row(cfg.HUD.ScoreY), fmt.Sprintf(" %d ", g.Score()), core.ColorBrightWhite)
	} else {
		dst.DrawTextCentered(p.row(cfg.HUD.GameOverY), "GAME OVER", core.ColorOrange)
		dst.DrawTextCentered(p.row(cfg.HUD.FinalScoreY), fmt.Sprintf("SCORE %d", g.Score()), core.ColorBrightWhite)
		dst.DrawTextCentered(p.row(cfg.HUD.HighScoreY), fmt.Sprintf("BEST %d", g.HighScore()), core.ColorBrightYellow)
		drawButton(dst, g.ConfirmRect(), p)
		drawGround(dst, g, p)
	}

	if g.FlashVisible() {
		washOut(dst)
	}
}

func drawObstacles(dst *core.Screen, obstacles []flappy.Obstacle, p projection) {
	for _, o := range obstacles {
		x, y, w, h := p.rect(o.Upper)
		dst.DrawRect(x, y, w, h, pipeChar, core.ColorGreen)
		dst.DrawHLine(x, y+h-1, w, pipeCap, core.ColorBrightGreen)

		x, y, w, h = p.rect(o.Lower)
		dst.DrawRect(x, y, w, h, pipeChar, core.ColorGreen)
		dst.DrawHLine(x, y, w, pipeCap, core.ColorBrightGreen)
	}
}

func drawBird(dst *core.Screen, g *flappy.Game, p projection) {
	x, y, w, h := p.rect(g.Bird().Rect())
	dst.DrawRect(x, y, w, h, birdChar, core.ColorBrightYellow)
	if w > 1 {
		dst.SetColored(x+w-1, y, beakChar, core.ColorOrange)
	}
	dst.SetColored(x, y, wingChars[g.BirdFrame()], core.ColorWhite)
}

func drawGround(dst *core.Screen, g *flappy.Game, p projection) {
	cfg := g.Config()
	top := p.row(cfg.Ground.Y)
	offset := g.GroundOffset()
	stripe := cfg.Ground.Width / 24

	dst.DrawHLine(0, top, dst.Width(), groundTop, core.ColorBrightGreen)
	for row := top + 1; row < dst.Height(); row++ {
		for col := 0; col < dst.Width(); col++ {
			fx, _ := p.toField(col, row)
			ch := groundLight
			if int(math.Floor((fx-offset)/stripe))%2 == 0 {
				ch = groundDark
			}
			dst.SetColored(col, row, ch, core.ColorOrange)
		}
	}
}

func drawButton(dst *core.Screen, r core.Rect, p projection) {
	x, y, w, h := p.rect(r)
	w = max(w, 4)
	h = max(h, 3)
	dst.DrawBox(x, y, w, h, core.ColorBrightWhite)
	dst.DrawTextColored(x+(w-2)/2, y+h/2, "OK", core.ColorBrightWhite)
}

// washOut recolors every cell for the death flash. Glyphs are kept so HUD
// text stays readable.
func washOut(dst *core.Screen) {
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			dst.SetColored(x, y, dst.GetCell(x, y).Rune, core.ColorBrightWhite)
		}
	}
}
