package game

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Simulation is the authoritative snake state machine.
//
// Snake, food and score change only inside Tick. SetDirection may be called from
// another goroutine; the mutex makes each call land entirely before or entirely
// after a tick. Collaborators read the state through Snapshot copies.
type Simulation struct {
	config GameConfig
	board  Board
	rng    *RNG

	mu        sync.Mutex
	gameID    string
	snake     []Cell
	food      map[Cell]struct{}
	score     int
	status    GameStatus
	direction Direction // Used by the most recent tick
	pending   Direction // Used by the next tick
	ticks     uint64
}

// NewSimulation validates the config and returns a freshly reset simulation.
func NewSimulation(config GameConfig) (*Simulation, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	s := &Simulation{
		config: config,
		board:  NewBoard(config),
		rng:    NewRNG(config.Seed),
	}
	s.Reset()
	return s, nil
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() GameConfig {
	return s.config
}

// Reset reinitializes all state: a centered snake heading right, no food,
// zero score, and StatusIdle until Start is called.
func (s *Simulation) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gameID = uuid.NewString()
	s.snake = startingSnake(s.board, s.config.InitialLength)
	s.food = make(map[Cell]struct{}, s.config.MaxFood)
	s.score = 0
	s.status = StatusIdle
	s.direction = DirRight
	s.pending = DirRight
	s.ticks = 0

	log.Printf("[GAME] %s reset: head=%v length=%d", s.gameID, s.snake[0], len(s.snake))
}

// Start moves an idle game into StatusRunning. It has no effect in any other status.
func (s *Simulation) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusIdle {
		s.status = StatusRunning
		log.Printf("[GAME] %s started", s.gameID)
	}
}

// SetDirection requests a turn for the next tick.
//
// Unknown directions and the reverse of the direction used by the last tick are
// ignored. When several valid requests arrive between two ticks, the last one wins.
func (s *Simulation) SetDirection(d Direction) {
	if !d.Valid() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if d == s.direction.Opposite() {
		return
	}
	s.pending = d
}

// Tick advances the game by one step and returns the resulting snapshot.
// Outside StatusRunning it changes nothing.
func (s *Simulation) Tick() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusRunning {
		if s.shouldSpawnLocked() {
			s.createFoodLocked()
		}
		s.advanceLocked()
		s.ticks++
		if s.status == StatusOver {
			log.Printf("[GAME] %s over after %d ticks: score=%d length=%d",
				s.gameID, s.ticks, s.score, len(s.snake))
		}
	}

	return s.snapshotLocked()
}

// IsOver reports whether the game has reached a terminal condition.
func (s *Simulation) IsOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status == StatusOver
}

// Status returns the current game phase.
func (s *Simulation) Status() GameStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Snapshot returns a deep copy of the current state.
func (s *Simulation) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// snapshotLocked copies the live state.
// MUST be called while s.mu is held.
func (s *Simulation) snapshotLocked() Snapshot {
	snake := make([]Cell, len(s.snake))
	copy(snake, s.snake)

	food := make([]Cell, 0, len(s.food))
	for c := range s.food {
		food = append(food, c)
	}
	sort.Slice(food, func(i, j int) bool {
		if food[i].Y != food[j].Y {
			return food[i].Y < food[j].Y
		}
		return food[i].X < food[j].X
	})

	return Snapshot{
		GameID:    s.gameID,
		Tick:      s.ticks,
		Snake:     snake,
		Food:      food,
		Score:     s.score,
		Status:    s.status,
		Direction: s.direction,
		Width:     s.board.Width,
		Height:    s.board.Height,
		CellSize:  s.board.CellSize,
	}
}
