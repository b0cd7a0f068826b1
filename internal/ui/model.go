package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-snake/internal/game"
)

// Controller is the part of the engine the TUI drives.
type Controller interface {
	EnqueueDirection(game.Direction)
	Restart()
	Pause()
	Resume()
	Paused() bool
}

// snapshotMsg carries a new snapshot from the feed.
type snapshotMsg game.Snapshot

// Model is the Bubbletea model for the game.
type Model struct {
	engine   Controller
	feed     *Feed
	scores   *Scoreboard
	snapshot *game.Snapshot
	quitting bool
}

// NewModel creates a TUI model that steers engine and draws what feed delivers.
func NewModel(engine Controller, feed *Feed, scores *Scoreboard) Model {
	return Model{
		engine: engine,
		feed:   feed,
		scores: scores,
	}
}

// Init starts listening for snapshots.
func (m Model) Init() tea.Cmd {
	return waitForSnapshot(m.feed)
}

// Update handles incoming messages (key presses, snapshots).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case snapshotMsg:
		s := game.Snapshot(msg)
		m.snapshot = &s
		return m, waitForSnapshot(m.feed)
	}

	return m, nil
}

// View renders the board next to the HUD.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if m.snapshot == nil {
		return RenderHUD(m.scores.View(), m.engine.Paused()) + "\n"
	}

	board := RenderBoard(m.snapshot)
	hud := RenderHUD(m.scores.View(), m.engine.Paused())

	// Layout: board on the left, HUD on the right
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		board,
		"  ",
		hud,
	) + "\n"
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "enter", "r":
		m.engine.Restart()

	case "p", " ":
		if m.engine.Paused() {
			m.engine.Resume()
		} else {
			m.engine.Pause()
		}

	default:
		if d, ok := KeyDirection(key); ok {
			m.engine.EnqueueDirection(d)
		}
	}

	return m, nil
}

// waitForSnapshot returns a Cmd that waits for the next snapshot from the feed.
func waitForSnapshot(feed *Feed) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(<-feed.Snapshots())
	}
}
