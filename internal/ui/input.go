package ui

import "github.com/amalg/go-snake/internal/game"

// keyDirections maps bubbletea key names to turns.
var keyDirections = map[string]game.Direction{
	"up":    game.DirUp,
	"w":     game.DirUp,
	"down":  game.DirDown,
	"s":     game.DirDown,
	"left":  game.DirLeft,
	"a":     game.DirLeft,
	"right": game.DirRight,
	"d":     game.DirRight,
}

// KeyDirection translates a key into a direction.
// The second result is false for keys that do not steer.
func KeyDirection(key string) (game.Direction, bool) {
	d, ok := keyDirections[key]
	return d, ok
}
