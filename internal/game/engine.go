package game

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// Renderer draws a snapshot: the board, every snake cell and every food cell.
type Renderer interface {
	Render(Snapshot)
}

// Scoreboard displays the score and whether the game is over.
type Scoreboard interface {
	UpdateScore(score int, status GameStatus)
}

// Engine drives a Simulation from a fixed-period ticker and forwards every
// resulting snapshot to its collaborators. All simulation calls that change
// state happen on the Run goroutine.
type Engine struct {
	Config     GameConfig
	sim        *Simulation
	directions chan Direction
	restart    chan struct{}
	done       chan struct{}
	stopOnce   sync.Once
	paused     atomic.Bool

	renderer   Renderer
	scoreboard Scoreboard
	onTick     func(Snapshot) // Callback after each emitted snapshot
}

// NewEngine creates an engine around a fresh simulation built from config.
func NewEngine(config GameConfig) (*Engine, error) {
	sim, err := NewSimulation(config)
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}

	return &Engine{
		Config:     config,
		sim:        sim,
		directions: make(chan Direction, 16),
		restart:    make(chan struct{}, 1),
		done:       make(chan struct{}),
	}, nil
}

// Simulation returns the underlying simulation.
func (e *Engine) Simulation() *Simulation {
	return e.sim
}

// SetRenderer sets the collaborator that draws each snapshot.
// Must be called before Run.
func (e *Engine) SetRenderer(r Renderer) {
	e.renderer = r
}

// SetScoreboard sets the collaborator that shows score and status.
// Must be called before Run.
func (e *Engine) SetScoreboard(sb Scoreboard) {
	e.scoreboard = sb
}

// OnTick sets a callback invoked with every emitted snapshot.
// Must be called before Run.
func (e *Engine) OnTick(fn func(Snapshot)) {
	e.onTick = fn
}

// Run processes ticks, restarts and the start delay until Stop is called.
// A snapshot is emitted after every reset, on start, and after every tick
// of a running game. Once a game is over nothing more is emitted for it.
func (e *Engine) Run() {
	ticker := time.NewTicker(e.Config.TickPeriod())
	defer ticker.Stop()

	var start <-chan time.Time

	for {
		select {
		case <-e.done:
			return
		case <-e.restart:
			e.discardDirections()
			e.sim.Reset()
			e.emit(e.sim.Snapshot())
			start = time.After(e.Config.StartDelay)
		case <-start:
			start = nil
			e.sim.Start()
			e.emit(e.sim.Snapshot())
		case <-ticker.C:
			e.tick()
		}
	}
}

// Stop halts the loop. It is safe to call more than once.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		close(e.done)
	})
}

// Restart asks the loop to reset the game and start it after the start delay.
// Requests made before the loop gets to them collapse into one.
func (e *Engine) Restart() {
	select {
	case e.restart <- struct{}{}:
	default:
	}
}

// Pause stops ticks from running without touching the game state.
func (e *Engine) Pause() {
	e.paused.Store(true)
}

// Resume lets ticks run again after Pause.
func (e *Engine) Resume() {
	e.paused.Store(false)
}

// Paused reports whether ticks are suspended.
func (e *Engine) Paused() bool {
	return e.paused.Load()
}

// EnqueueDirection queues a turn to be applied on the next tick.
func (e *Engine) EnqueueDirection(d Direction) {
	select {
	case e.directions <- d:
	default:
		// Drop input if buffer is full (prevents blocking)
	}
}

// tick applies queued turns and advances a running game by one step.
func (e *Engine) tick() {
	if e.paused.Load() || e.sim.Status() != StatusRunning {
		return
	}

	e.applyDirections()
	snap := e.sim.Tick()
	if snap.Status == StatusOver {
		log.Printf("[ENGINE] Game %s finished with score %d", snap.GameID, snap.Score)
	}
	e.emit(snap)
}

// applyDirections hands every queued turn to the simulation in arrival order.
func (e *Engine) applyDirections() {
	for {
		select {
		case d := <-e.directions:
			e.sim.SetDirection(d)
		default:
			return
		}
	}
}

// discardDirections drops turns queued for a game that is being replaced.
func (e *Engine) discardDirections() {
	for {
		select {
		case <-e.directions:
		default:
			return
		}
	}
}

func (e *Engine) emit(snap Snapshot) {
	if e.renderer != nil {
		e.renderer.Render(snap)
	}
	if e.scoreboard != nil {
		e.scoreboard.UpdateScore(snap.Score, snap.Status)
	}
	if e.onTick != nil {
		e.onTick(snap)
	}
}
