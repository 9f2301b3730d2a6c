package flappy

// Cue is a one-shot sound trigger emitted by a tick.
// Frontends decide how, or whether, to play it.
type Cue int

const (
	CueFlap   Cue = iota // Wing beat
	CueHit               // Hit a pipe
	CuePoint             // Passed a pipe pair
	CueDie               // Left the playfield
	CueSwoosh            // Game restarted
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CueHit:
		return "hit"
	case CuePoint:
		return "point"
	case CueDie:
		return "die"
	case CueSwoosh:
		return "swoosh"
	default:
		return "unknown"
	}
}
