package flappy

import "github.com/kamstrup/intmap"

// ScoreTracker counts passed obstacle pairs and keeps the session high score.
type ScoreTracker struct {
	score  int
	high   int
	passed *intmap.Map[uint64, struct{}] // IDs already credited
}

// NewScoreTracker creates a tracker with zero score and high score.
func NewScoreTracker() *ScoreTracker {
	return &ScoreTracker{passed: intmap.New[uint64, struct{}](16)}
}

// Update credits every pair whose center has fallen behind birdX and that
// has not been credited before. Returns the number of pairs credited.
func (s *ScoreTracker) Update(birdX float64, obstacles []Obstacle) int {
	credited := 0
	for _, o := range obstacles {
		if o.CenterX() >= birdX {
			continue
		}
		if _, seen := s.passed.Get(o.ID); seen {
			continue
		}
		s.passed.Put(o.ID, struct{}{})
		s.score++
		credited++
	}
	return credited
}

// Record folds the current score into the high score.
// Safe to call repeatedly; returns true only when the high score grew.
func (s *ScoreTracker) Record() bool {
	if s.score > s.high {
		s.high = s.score
		return true
	}
	return false
}

// Reset zeroes the score and forgets credited pairs. The high score stays.
func (s *ScoreTracker) Reset() {
	s.score = 0
	s.passed = intmap.New[uint64, struct{}](16)
}

// Score returns the current score.
func (s *ScoreTracker) Score() int {
	return s.score
}

// HighScore returns the best recorded score of this process.
func (s *ScoreTracker) HighScore() int {
	return s.high
}

// Passed returns the number of credited pairs since the last reset.
func (s *ScoreTracker) Passed() int {
	return s.passed.Len()
}
