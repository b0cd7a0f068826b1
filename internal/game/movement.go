package game

// selfCollisionSkip is how many leading snake cells are never checked against the
// new head. Moving one cell per tick, the head cannot reach any of them.
const selfCollisionSkip = 4

// advanceLocked moves the snake one cell along the pending direction.
// Wall and self collisions end the game; eating food grows the snake.
// MUST be called while s.mu is held.
func (s *Simulation) advanceLocked() {
	s.direction = s.pending
	head := s.nextHead()

	// A head past the edge is never written into the snake, so every
	// snapshot, including the game-over frame, stays on the board.
	if !s.board.Contains(head) {
		s.status = StatusOver
		return
	}

	s.snake = append([]Cell{head}, s.snake...)

	if s.hitsSelf() {
		s.status = StatusOver
		return
	}

	if _, ok := s.food[head]; ok {
		delete(s.food, head)
		s.score++
		s.createFoodLocked()
		return
	}

	s.snake = s.snake[:len(s.snake)-1]
}

// nextHead returns where the head lands after one step in the committed direction.
func (s *Simulation) nextHead() Cell {
	dx, dy := s.direction.Vector(s.board.CellSize)
	return s.snake[0].Add(dx, dy)
}

// hitsSelf reports whether the head overlaps a body cell far enough back to be reachable.
func (s *Simulation) hitsSelf() bool {
	head := s.snake[0]
	for i := selfCollisionSkip; i < len(s.snake); i++ {
		if s.snake[i] == head {
			return true
		}
	}
	return false
}

// onSnake reports whether c is occupied by any snake cell.
func (s *Simulation) onSnake(c Cell) bool {
	for _, part := range s.snake {
		if part == c {
			return true
		}
	}
	return false
}
