package game

// maxPlacementAttempts bounds random sampling before CreateFood falls back to
// picking from the list of free cells.
const maxPlacementAttempts = 64

// CreateFood tries to place one food cell and reports whether it did.
// It is a no-op once MaxFood items are on the board.
func (s *Simulation) CreateFood() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createFoodLocked()
}

// createFoodLocked draws grid cells uniformly until one is free of snake and food.
// MUST be called while s.mu is held.
func (s *Simulation) createFoodLocked() bool {
	if len(s.food) >= s.config.MaxFood {
		return false
	}

	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		c := s.board.CellAt(s.rng.IntN(s.board.Columns()), s.rng.IntN(s.board.Rows()))
		if s.occupied(c) {
			continue
		}
		s.food[c] = struct{}{}
		return true
	}

	// A crowded board makes rejection sampling slow; choose among what is left.
	free := s.board.FreeCells(s.occupied)
	if len(free) == 0 {
		return false
	}
	s.food[free[s.rng.IntN(len(free))]] = struct{}{}
	return true
}

// occupied reports whether c holds a snake cell or food.
func (s *Simulation) occupied(c Cell) bool {
	if _, ok := s.food[c]; ok {
		return true
	}
	return s.onSnake(c)
}

// shouldSpawnLocked decides whether this tick attempts a food placement.
// An empty board always spawns; otherwise the chance is SpawnChance divided by
// the food count, so spawns slow down as food accumulates.
// MUST be called while s.mu is held.
func (s *Simulation) shouldSpawnLocked() bool {
	n := len(s.food)
	switch {
	case n == 0:
		return true
	case n >= s.config.MaxFood:
		return false
	}
	p := s.config.SpawnChance / float64(n)
	if p >= 1 {
		return true
	}
	return s.rng.Float64() < p
}
