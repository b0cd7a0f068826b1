package game

// Board describes the playing field: [0, Width) x [0, Height), quantized to CellSize.
type Board struct {
	Width    int
	Height   int
	CellSize int
}

// NewBoard returns the board described by the config.
func NewBoard(config GameConfig) Board {
	return Board{
		Width:    config.Width,
		Height:   config.Height,
		CellSize: config.CellSize,
	}
}

// Columns returns the number of cells across.
func (b Board) Columns() int { return b.Width / b.CellSize }

// Rows returns the number of cells down.
func (b Board) Rows() int { return b.Height / b.CellSize }

// CellAt converts a column/row index into board units.
func (b Board) CellAt(col, row int) Cell {
	return Cell{X: col * b.CellSize, Y: row * b.CellSize}
}

// Contains reports whether c lies on the board.
// Lower bounds are inclusive, upper bounds exclusive.
func (b Board) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Center returns the middle cell, rounded down onto the grid.
func (b Board) Center() Cell {
	return b.CellAt(b.Columns()/2, b.Rows()/2)
}

// FreeCells returns every board cell for which occupied returns false, in row-major order.
func (b Board) FreeCells(occupied func(Cell) bool) []Cell {
	free := make([]Cell, 0, b.Columns()*b.Rows())
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Columns(); col++ {
			c := b.CellAt(col, row)
			if !occupied(c) {
				free = append(free, c)
			}
		}
	}
	return free
}

// startingSnake lays out a snake of the given length with its head on the
// center cell and the body trailing to the left.
func startingSnake(b Board, length int) []Cell {
	head := b.Center()
	snake := make([]Cell, 0, length)
	for i := 0; i < length; i++ {
		snake = append(snake, head.Add(-i*b.CellSize, 0))
	}
	return snake
}
