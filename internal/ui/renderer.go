package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-snake/internal/game"
)

// Color palette
var (
	// Cell styles
	backgroundStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#f5f5f5"))

	snakeHeadStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#4682b4")).
			Foreground(lipgloss.Color("#00008b"))

	snakeBodyStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#add8e6")).
			Foreground(lipgloss.Color("#00008b"))

	foodStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#f5f5f5")).
			Foreground(lipgloss.Color("#006400")).
			Bold(true)

	// Game over dims everything to grey
	overBackgroundStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#bdbdbd"))

	overSnakeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#8a9ba8"))

	overFoodStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#bdbdbd")).
			Foreground(lipgloss.Color("#6b7d6b"))

	boardBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("#000000"))

	// HUD styles
	hudBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#44aa44")).
			Bold(true)

	idleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#44aaff")).
			Bold(true)

	gameOverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// cellRole is what occupies a board cell.
type cellRole int

const (
	roleBackground cellRole = iota
	roleFood
	roleSnakeBody
	roleSnakeHead
)

// RenderBoard converts a snapshot into a bordered, styled terminal string.
func RenderBoard(s *game.Snapshot) string {
	if s == nil || s.CellSize <= 0 {
		return "Waiting for game state..."
	}

	cols, rows := s.Width/s.CellSize, s.Height/s.CellSize
	roles := make(map[game.Cell]cellRole, len(s.Snake)+len(s.Food))
	for _, f := range s.Food {
		roles[f] = roleFood
	}
	for _, c := range s.Snake {
		roles[c] = roleSnakeBody
	}
	if len(s.Snake) > 0 {
		roles[s.Snake[0]] = roleSnakeHead
	}

	over := s.Status == game.StatusOver
	lines := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		var b strings.Builder
		for col := 0; col < cols; col++ {
			c := game.Cell{X: col * s.CellSize, Y: row * s.CellSize}
			b.WriteString(renderCell(roles[c], over))
		}
		lines = append(lines, b.String())
	}

	return boardBorderStyle.Render(strings.Join(lines, "\n"))
}

// renderCell renders a single board cell with the appropriate style.
// Each cell is 2 characters wide for a square-ish appearance.
func renderCell(role cellRole, over bool) string {
	switch role {
	case roleSnakeHead:
		if over {
			return overSnakeStyle.Render("  ")
		}
		return snakeHeadStyle.Render("  ")
	case roleSnakeBody:
		if over {
			return overSnakeStyle.Render("  ")
		}
		return snakeBodyStyle.Render("  ")
	case roleFood:
		if over {
			return overFoodStyle.Render("()")
		}
		return foodStyle.Render("()")
	default:
		if over {
			return overBackgroundStyle.Render("  ")
		}
		return backgroundStyle.Render("  ")
	}
}

// RenderHUD renders the score panel and controls.
func RenderHUD(view ScoreView, paused bool) string {
	var parts []string

	parts = append(parts, titleStyle.Render("SNAKE"))
	parts = append(parts, "")
	parts = append(parts, fmt.Sprintf("Score: %d", view.Score))
	parts = append(parts, mutedStyle.Render(fmt.Sprintf("Best:  %d", view.Best)))
	parts = append(parts, mutedStyle.Render(fmt.Sprintf("Games: %d", view.Games)))
	parts = append(parts, "")

	switch {
	case view.Status == game.StatusOver:
		parts = append(parts, gameOverStyle.Render("GAME OVER"))
		parts = append(parts, "Press [Enter] to play again")
	case view.Status == game.StatusIdle:
		parts = append(parts, idleStyle.Render("Press [Enter] to start"))
	case paused:
		parts = append(parts, idleStyle.Render("PAUSED"))
	default:
		parts = append(parts, "")
	}

	parts = append(parts, "")
	parts = append(parts, mutedStyle.Render("WASD/Arrows: Move | P: Pause | Q: Quit"))

	return hudBorderStyle.Render(strings.Join(parts, "\n"))
}
