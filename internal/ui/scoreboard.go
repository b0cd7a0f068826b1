package ui

import (
	"sync"

	"github.com/amalg/go-snake/internal/game"
)

// ScoreView is what the HUD shows about the score.
type ScoreView struct {
	Score  int
	Best   int
	Games  int // Finished games this session
	Status game.GameStatus
}

// Scoreboard is a game.Scoreboard that remembers the session's best score.
type Scoreboard struct {
	mu   sync.Mutex
	view ScoreView
}

// NewScoreboard creates a scoreboard with no games played.
func NewScoreboard() *Scoreboard {
	return &Scoreboard{}
}

// UpdateScore records the latest score and status.
func (s *Scoreboard) UpdateScore(score int, status game.GameStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if status == game.StatusOver && s.view.Status != game.StatusOver {
		s.view.Games++
	}
	s.view.Score = score
	s.view.Status = status
	if score > s.view.Best {
		s.view.Best = score
	}
}

// View returns a copy of the current values.
func (s *Scoreboard) View() ScoreView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}
