package window

import (
	"testing"

	"github.com/vovakirdan/flappybird/internal/core"
)

func TestInputSnapshotPush(t *testing.T) {
	tests := []struct {
		name     string
		in       inputSnapshot
		expected []core.EventKind
	}{
		{"idle", inputSnapshot{}, nil},
		{"flap", inputSnapshot{Flap: true}, []core.EventKind{core.EventFlap}},
		{"confirm", inputSnapshot{Confirm: true}, []core.EventKind{core.EventConfirm}},
		{
			"quit comes first",
			inputSnapshot{Flap: true, Quit: true},
			[]core.EventKind{core.EventQuit, core.EventFlap},
		},
		{
			"click and touch",
			inputSnapshot{Pointers: [][2]int{{144, 306}, {10, 20}}},
			[]core.EventKind{core.EventPointerDown, core.EventPointerDown},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := core.NewEventQueue()
			tc.in.push(q)
			got := q.Drain()

			if len(got) != len(tc.expected) {
				t.Fatalf("got %d events, expected %d", len(got), len(tc.expected))
			}
			for i, ev := range got {
				if ev.Kind != tc.expected[i] {
					t.Errorf("event %d = %v, expected %v", i, ev.Kind, tc.expected[i])
				}
			}
		})
	}
}

func TestInputPointerCoordinates(t *testing.T) {
	q := core.NewEventQueue()
	inputSnapshot{Pointers: [][2]int{{144, 306}}}.push(q)

	ev := q.Drain()[0]
	if ev.X != 144 || ev.Y != 306 {
		t.Errorf("pointer at (%v, %v), expected (144, 306)", ev.X, ev.Y)
	}
}
