package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/flappybird/internal/config"
	"github.com/vovakirdan/flappybird/internal/core"
)

const eps = 1e-9

func testConfig() config.FlappyConfig {
	return config.DefaultFlappyConfig()
}

// hoverConfig keeps the bird still inside a fixed gap so pipes can be passed
// without flapping.
func hoverConfig() config.FlappyConfig {
	cfg := testConfig()
	cfg.Physics.Gravity = 0
	cfg.Obstacles.GapCenters = []float64{300}
	return cfg
}

func events(kinds ...core.EventKind) []core.Event {
	out := make([]core.Event, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, core.Event{Kind: k})
	}
	return out
}

// dieOnFloor steps without input until the bird leaves the field.
func dieOnFloor(t *testing.T, g *Game) StepResult {
	t.Helper()
	for i := 0; i < 1000; i++ {
		res := g.Step(nil)
		if res.Died {
			return res
		}
	}
	t.Fatal("bird never died")
	return StepResult{}
}

func TestGameStartsActive(t *testing.T) {
	g := New(testConfig(), 1)

	if g.Phase() != PhaseActive {
		t.Errorf("initial phase = %v, expected active", g.Phase())
	}
	b := g.Bird()
	if b.X != 50 || b.Y != 256 || b.Vel != 0 {
		t.Errorf("start pose = %+v, expected (50, 256) at rest", b)
	}
	if len(g.Obstacles()) != 0 || g.Score() != 0 || g.HighScore() != 0 {
		t.Error("new game should have no obstacles and zero scores")
	}
}

func TestGameFallsTenTicks(t *testing.T) {
	g := New(testConfig(), 1)

	for i := 0; i < 10; i++ {
		g.Step(nil)
	}

	b := g.Bird()
	if math.Abs(b.Vel-2.0) > eps {
		t.Errorf("velocity after 10 ticks = %v, expected 2.0", b.Vel)
	}
	if math.Abs(b.Y-267.0) > eps {
		t.Errorf("y after 10 ticks = %v, expected 267.0", b.Y)
	}
}

func TestGameFlapOverridesFall(t *testing.T) {
	g := New(testConfig(), 1)
	for i := 0; i < 20; i++ {
		g.Step(nil)
	}

	res := g.Step(events(core.EventFlap))

	// Flap sets -6, then the same tick's gravity applies
	if v := g.Bird().Vel; math.Abs(v-(-6+0.2)) > eps {
		t.Errorf("velocity after flap tick = %v, expected -5.8", v)
	}
	if len(res.Cues) != 1 || res.Cues[0] != CueFlap {
		t.Errorf("cues = %v, expected [flap]", res.Cues)
	}
}

func TestGameSpawnTick(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles.GapCenters = []float64{300}
	g := New(cfg, 1)

	g.Step(events(core.EventSpawnTick))

	obs := g.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("obstacles = %d, expected 1", len(obs))
	}
	o := obs[0]
	if o.Lower.Y != 300 || o.Upper.Bottom() != 150 {
		t.Errorf("gap edges = (%v, %v), expected lower top 300, upper bottom 150", o.Lower.Y, o.Upper.Bottom())
	}
	// Spawned at 338 and scrolled once
	if o.CenterX() != 336 {
		t.Errorf("center x = %v, expected 336", o.CenterX())
	}
}

func TestGameScoresEachPairOnce(t *testing.T) {
	g := New(hoverConfig(), 7)

	const pairs = 4
	spawned := 0
	for tick := 0; tick < 90*pairs+200; tick++ {
		var evs []core.Event
		if tick%90 == 0 && spawned < pairs {
			evs = events(core.EventSpawnTick)
			spawned++
		}
		res := g.Step(evs)
		if res.Died {
			t.Fatalf("bird died at tick %d: %v", tick, res.Outcome)
		}
	}

	if g.Phase() != PhaseActive {
		t.Fatal("game should still be active")
	}
	if g.Score() != pairs {
		t.Errorf("score = %d, expected %d", g.Score(), pairs)
	}
}

func TestGameFloorDeath(t *testing.T) {
	g := New(testConfig(), 1)

	res := dieOnFloor(t, g)

	if res.Outcome != OutOfBounds {
		t.Errorf("outcome = %v, expected out of bounds", res.Outcome)
	}
	if g.Bird().Rect().Bottom() < 450 {
		t.Errorf("bird bottom = %v, expected >= 450", g.Bird().Rect().Bottom())
	}
	if res.Phase != PhaseGameOver {
		t.Errorf("phase = %v, expected game over", res.Phase)
	}
	if !containsCue(res.Cues, CueDie) {
		t.Errorf("cues = %v, expected die", res.Cues)
	}
	if !g.FlashVisible() {
		t.Error("death should arm the flash")
	}

	// Frozen: no second transition, no movement, no spawns
	y := g.Bird().Y
	for i := 0; i < 100; i++ {
		res := g.Step(events(core.EventSpawnTick))
		if res.Died {
			t.Fatal("death must trigger only once")
		}
	}
	if g.Bird().Y != y {
		t.Error("bird should not move while game over")
	}
	if len(g.Obstacles()) != 0 {
		t.Error("nothing should spawn while game over")
	}
}

func TestGameCeilingDeath(t *testing.T) {
	g := New(testConfig(), 1)

	var res StepResult
	for i := 0; i < 100 && !res.Died; i++ {
		res = g.Step(events(core.EventFlap))
	}

	if !res.Died || res.Outcome != OutOfBounds {
		t.Fatalf("expected ceiling death, got %+v", res)
	}
	if top := g.Bird().Rect().Y; top > -50 {
		t.Errorf("bird top = %v, expected <= -50", top)
	}
}

func TestGamePipeCollision(t *testing.T) {
	g := New(testConfig(), 1)

	// A pair right at the bird with a gap far below it
	g.obstacles = append(g.obstacles, Obstacle{
		ID:    99,
		Upper: core.NewRect(30, -100, 52, 400),
		Lower: core.NewRect(30, 450, 52, 320),
	})

	res := g.Step(nil)

	if !res.Died || res.Outcome != HitObstacle {
		t.Fatalf("expected pipe hit, got %+v", res)
	}
	if !containsCue(res.Cues, CueHit) {
		t.Errorf("cues = %v, expected hit", res.Cues)
	}
}

func TestGameRestartInputs(t *testing.T) {
	tests := []struct {
		name    string
		input   []core.Event
		restart bool
	}{
		{"flap", events(core.EventFlap), true},
		{"confirm key", events(core.EventConfirm), true},
		{"pointer inside button", []core.Event{core.PointerDown(144, 306)}, true},
		{"pointer at button corner", []core.Event{core.PointerDown(94, 288.5)}, true},
		{"pointer outside button", []core.Event{core.PointerDown(10, 10)}, false},
		{"pointer just right of button", []core.Event{core.PointerDown(194, 306)}, false},
		{"spawn tick", events(core.EventSpawnTick), false},
		{"no input", nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New(testConfig(), 1)
			dieOnFloor(t, g)

			res := g.Step(tc.input)

			if res.Restarted != tc.restart {
				t.Errorf("Restarted = %v, expected %v", res.Restarted, tc.restart)
			}
			wantPhase := PhaseGameOver
			if tc.restart {
				wantPhase = PhaseActive
			}
			if g.Phase() != wantPhase {
				t.Errorf("phase = %v, expected %v", g.Phase(), wantPhase)
			}
		})
	}
}

func TestGameConfirmIgnoredWhileActive(t *testing.T) {
	g := New(testConfig(), 1)
	res := g.Step([]core.Event{{Kind: core.EventConfirm}, core.PointerDown(144, 306)})
	if res.Restarted || len(res.Cues) != 0 {
		t.Errorf("confirm while active should do nothing, got %+v", res)
	}
}

func TestGameResetRestoresStartPose(t *testing.T) {
	g := New(hoverConfig(), 3)

	for tick := 0; tick < 400; tick++ {
		var evs []core.Event
		if tick%90 == 0 {
			evs = events(core.EventSpawnTick)
		}
		g.Step(evs)
	}
	if g.Score() == 0 || len(g.Obstacles()) == 0 {
		t.Fatal("setup should have scored and kept live obstacles")
	}
	g.bird.Y = 1000
	if res := g.Step(nil); !res.Died {
		t.Fatal("moving the bird below the floor should kill it")
	}

	res := g.Step(events(core.EventFlap))

	if !res.Restarted || !containsCue(res.Cues, CueSwoosh) {
		t.Errorf("expected restart with swoosh, got %+v", res)
	}
	if g.Score() != 0 || g.score.Passed() != 0 || len(g.Obstacles()) != 0 {
		t.Error("reset should clear score, passed-set and obstacles")
	}
	b := g.Bird()
	if b.X != 50 || b.Y != 256 || b.Vel != 0 {
		t.Errorf("bird after reset tick = %+v, expected start pose", b)
	}
	if g.HighScore() == 0 {
		t.Error("reset must keep the high score")
	}
}

func TestGameHighScore(t *testing.T) {
	g := New(hoverConfig(), 5)

	for tick := 0; tick < 90*2+200; tick++ {
		var evs []core.Event
		if tick == 0 || tick == 90 {
			evs = events(core.EventSpawnTick)
		}
		g.Step(evs)
	}
	if g.Score() != 2 {
		t.Fatalf("setup score = %d, expected 2", g.Score())
	}

	g.bird.Y = 1000
	res := g.Step(nil)
	if res.HighScore != 2 {
		t.Errorf("high score at death = %d, expected 2", res.HighScore)
	}

	// A worse run must not lower it
	g.Step(events(core.EventConfirm))
	g.bird.Y = 1000
	res = g.Step(nil)
	if !res.Died || res.Score != 0 {
		t.Fatalf("expected immediate zero-score death, got %+v", res)
	}
	if res.HighScore != 2 {
		t.Errorf("high score after worse run = %d, expected 2", res.HighScore)
	}
}

func TestGameFlashDuration(t *testing.T) {
	g := New(testConfig(), 1)
	dieOnFloor(t, g)

	visible := 1 // the death tick itself
	for i := 0; i < 20; i++ {
		g.Step(nil)
		if g.FlashVisible() {
			visible++
		}
	}
	if visible != 8 {
		t.Errorf("flash visible for %d ticks, expected 8", visible)
	}
}

func TestGameGroundScrollsInEveryPhase(t *testing.T) {
	g := New(testConfig(), 1)

	g.Step(nil)
	if g.GroundOffset() != -1 {
		t.Errorf("offset after 1 tick = %v, expected -1", g.GroundOffset())
	}

	dieOnFloor(t, g)
	before := g.GroundOffset()
	g.Step(nil)
	after := g.GroundOffset()
	if after == before {
		t.Error("ground should keep scrolling while game over")
	}
}

func TestGameQuit(t *testing.T) {
	g := New(testConfig(), 1)

	res := g.Step(events(core.EventQuit, core.EventFlap))

	if !res.Quit {
		t.Error("expected Quit")
	}
	if len(res.Cues) != 0 {
		t.Errorf("events after quit must not be consumed, got cues %v", res.Cues)
	}
	if g.Ticks() != 0 {
		t.Errorf("quit tick must not advance the game, ticks = %d", g.Ticks())
	}
}

func TestGameBirdAnimation(t *testing.T) {
	g := New(testConfig(), 1)

	frames := map[int]bool{}
	for i := 0; i < 15; i++ {
		frames[g.BirdFrame()] = true
		g.Step(events(core.EventFlap))
		if i%5 == 4 {
			g.bird.Y = 256 // stay clear of the ceiling
		}
	}
	if len(frames) != BirdFrames {
		t.Errorf("saw %d animation frames, expected %d", len(frames), BirdFrames)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() ([]float64, int) {
		g := New(testConfig(), 12345)
		var gaps []float64
		for tick := 0; tick < 600; tick++ {
			var evs []core.Event
			if tick%90 == 0 {
				evs = append(evs, core.Event{Kind: core.EventSpawnTick})
			}
			if tick%25 == 0 {
				evs = append(evs, core.Event{Kind: core.EventFlap})
			}
			res := g.Step(evs)
			if res.Died {
				g.Step(events(core.EventConfirm))
			}
			for _, o := range g.Obstacles() {
				gaps = append(gaps, o.GapCenter)
			}
		}
		return gaps, g.HighScore()
	}

	gaps1, high1 := run()
	gaps2, high2 := run()

	if high1 != high2 {
		t.Errorf("high scores differ: %d vs %d", high1, high2)
	}
	if len(gaps1) != len(gaps2) {
		t.Fatalf("obstacle histories differ in length: %d vs %d", len(gaps1), len(gaps2))
	}
	for i := range gaps1 {
		if gaps1[i] != gaps2[i] {
			t.Fatalf("obstacle history differs at %d", i)
		}
	}
}

func containsCue(cues []Cue, c Cue) bool {
	for _, x := range cues {
		if x == c {
			return true
		}
	}
	return false
}
