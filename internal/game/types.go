package game

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfiguration is returned when a GameConfig cannot describe a playable board.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Direction represents a movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return d
}

// Vector returns the (dx, dy) step for one tick on a grid of the given cell size.
func (d Direction) Vector(cell int) (int, int) {
	switch d {
	case DirUp:
		return 0, -cell
	case DirDown:
		return 0, cell
	case DirLeft:
		return -cell, 0
	case DirRight:
		return cell, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Cell is a grid-aligned board coordinate. Both components are multiples of the cell size.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns c shifted by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// GameStatus represents the current game phase.
type GameStatus int

const (
	StatusIdle    GameStatus = iota // Reset, waiting for the start delay
	StatusRunning                   // Ticking
	StatusOver                      // Hit a wall or itself; sticky until reset
)

func (s GameStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusOver:
		return "over"
	}
	return fmt.Sprintf("GameStatus(%d)", int(s))
}

// Snapshot is an immutable copy of the simulation handed to renderers and scoreboards.
type Snapshot struct {
	GameID    string     `json:"game_id"`
	Tick      uint64     `json:"tick"`
	Snake     []Cell     `json:"snake"` // Head first
	Food      []Cell     `json:"food"`  // Row-major order
	Score     int        `json:"score"`
	Status    GameStatus `json:"status"`
	Direction Direction  `json:"direction"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	CellSize  int        `json:"cell_size"`
}

// Head returns the first snake cell.
func (s Snapshot) Head() Cell {
	if len(s.Snake) == 0 {
		return Cell{}
	}
	return s.Snake[0]
}

// GameConfig holds the fixed parameters of a game session.
type GameConfig struct {
	Width         int           `json:"width"`
	Height        int           `json:"height"`
	CellSize      int           `json:"cell_size"`
	MaxFood       int           `json:"max_food"`
	InitialLength int           `json:"initial_length"`
	TickRate      int           `json:"tick_rate"` // Ticks per second
	StartDelay    time.Duration `json:"start_delay"`
	SpawnChance   float64       `json:"spawn_chance"` // Divided by the food count each tick
	Seed          int64         `json:"seed"`         // 0 seeds from the clock
}

// DefaultConfig returns the classic 300x300 board with 10-unit cells.
func DefaultConfig() GameConfig {
	return GameConfig{
		Width:         300,
		Height:        300,
		CellSize:      10,
		MaxFood:       5,
		InitialLength: 5,
		TickRate:      10,
		StartDelay:    200 * time.Millisecond,
		SpawnChance:   0.12,
	}
}

// TickPeriod returns the time between two ticks.
func (c GameConfig) TickPeriod() time.Duration {
	if c.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TickRate)
}

// Validate checks that the config describes a playable board.
// Every failure wraps ErrInvalidConfiguration.
func (c GameConfig) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidConfiguration, c.CellSize)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: board must be positive, got %dx%d", ErrInvalidConfiguration, c.Width, c.Height)
	}
	if c.Width%c.CellSize != 0 || c.Height%c.CellSize != 0 {
		return fmt.Errorf("%w: board %dx%d is not a multiple of cell size %d",
			ErrInvalidConfiguration, c.Width, c.Height, c.CellSize)
	}
	if c.MaxFood <= 0 {
		return fmt.Errorf("%w: max food must be positive, got %d", ErrInvalidConfiguration, c.MaxFood)
	}
	if c.InitialLength < 1 {
		return fmt.Errorf("%w: initial length must be at least 1, got %d", ErrInvalidConfiguration, c.InitialLength)
	}
	// The starting snake trails left from the center column.
	if cols := c.Width / c.CellSize; c.InitialLength > cols/2+1 {
		return fmt.Errorf("%w: initial length %d does not fit on %d columns",
			ErrInvalidConfiguration, c.InitialLength, cols)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate must be positive, got %d", ErrInvalidConfiguration, c.TickRate)
	}
	if c.StartDelay < 0 {
		return fmt.Errorf("%w: start delay must not be negative, got %s", ErrInvalidConfiguration, c.StartDelay)
	}
	if c.SpawnChance <= 0 || c.SpawnChance > 1 {
		return fmt.Errorf("%w: spawn chance must be in (0, 1], got %g", ErrInvalidConfiguration, c.SpawnChance)
	}
	return nil
}
