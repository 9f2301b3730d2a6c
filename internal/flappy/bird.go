package flappy

import "github.com/vovakirdan/flappybird/internal/core"

// BirdFrames is the number of wing animation frames.
const BirdFrames = 3

// Bird is the player-controlled sprite. X is fixed; Y is the vertical center.
type Bird struct {
	X   float64 // Horizontal center
	Y   float64 // Vertical center
	Vel float64 // Vertical velocity in units per tick (positive = down)
	W   float64 // Hitbox width
	H   float64 // Hitbox height
}

// NewBird creates a bird at rest centered on (x, y).
func NewBird(x, y, w, h float64) Bird {
	return Bird{X: x, Y: y, W: w, H: h}
}

// Integrate applies one tick of constant acceleration.
func (b *Bird) Integrate(gravity float64) {
	b.Vel += gravity
	b.Y += b.Vel
}

// Flap replaces the current velocity with the impulse.
// The kick does not depend on how fast the bird was falling.
func (b *Bird) Flap(impulse float64) {
	b.Vel = impulse
}

// Rect returns the bird's collision rectangle.
func (b Bird) Rect() core.Rect {
	return core.RectFromCenter(b.X, b.Y, b.W, b.H)
}

// Tilt returns the display rotation in degrees, counter-clockwise positive.
// Rising tilts the nose up, falling tilts it down.
func (b Bird) Tilt(factor float64) float64 {
	return -b.Vel * factor
}
