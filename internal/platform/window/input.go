package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappybird/internal/core"
)

// inputSnapshot is the raw input of one frame.
type inputSnapshot struct {
	Quit     bool
	Flap     bool
	Confirm  bool
	Pointers [][2]int // Logical coordinates of new clicks and touches
}

// poll reads this frame's input from Ebitengine.
func (r *runner) poll() inputSnapshot {
	var in inputSnapshot

	in.Quit = ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.Flap = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Pointers = append(in.Pointers, [2]int{x, y})
	}

	r.touchIDs = inpututil.AppendJustPressedTouchIDs(r.touchIDs[:0])
	for _, id := range r.touchIDs {
		x, y := ebiten.TouchPosition(id)
		in.Pointers = append(in.Pointers, [2]int{x, y})
	}

	return in
}

// push translates a snapshot into events, in a fixed order: quit first so
// nothing else runs on the closing frame, then flap, confirm and pointers.
func (in inputSnapshot) push(q *core.EventQueue) {
	if in.Quit {
		q.PushKind(core.EventQuit)
	}
	if in.Flap {
		q.PushKind(core.EventFlap)
	}
	if in.Confirm {
		q.PushKind(core.EventConfirm)
	}
	for _, p := range in.Pointers {
		q.Push(core.PointerDown(float64(p[0]), float64(p[1])))
	}
}
