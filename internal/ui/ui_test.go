package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-snake/internal/game"
)

// fakeController records what the model asked the engine to do.
type fakeController struct {
	directions []game.Direction
	restarts   int
	paused     bool
}

func (f *fakeController) EnqueueDirection(d game.Direction) { f.directions = append(f.directions, d) }
func (f *fakeController) Restart() { f.restarts++ }
func (f *fakeController) Pause() { f.paused = true }
func (f *fakeController) Resume() { f.paused = false }
func (f *fakeController) Paused() bool { return f.paused }

func testSnapshot(status game.GameStatus) *game.Snapshot {
	return &game.Snapshot{
		Snake:    []game.Cell{{X: 50, Y: 50}, {X: 40, Y: 50}, {X: 30, Y: 50}},
		Food:     []game.Cell{{X: 0, Y: 0}},
		Status:   status,
		Width:    100,
		Height:   80,
		CellSize: 10,
	}
}

func TestKeyDirection(t *testing.T) {
	tests := []struct {
		key  string
		want game.Direction
		ok   bool
	}{
		{"up", game.DirUp, true},
		{"down", game.DirDown, true},
		{"left", game.DirLeft, true},
		{"right", game.DirRight, true},
		{"w", game.DirUp, true},
		{"d", game.DirRight, true},
		{"x", 0, false},
		{"enter", 0, false},
	}

	for _, tt := range tests {
		got, ok := KeyDirection(tt.key)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("KeyDirection(%q) = %s, %v; want %s, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestModelSteersEngine(t *testing.T) {
	ctrl := &fakeController{}
	var m tea.Model = NewModel(ctrl, NewFeed(), NewScoreboard())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})

	want := []game.Direction{game.DirUp, game.DirLeft}
	if len(ctrl.directions) != len(want) {
		t.Fatalf("expected %v, got %v", want, ctrl.directions)
	}
	for i := range want {
		if ctrl.directions[i] != want[i] {
			t.Errorf("direction %d: expected %s, got %s", i, want[i], ctrl.directions[i])
		}
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if ctrl.restarts != 1 {
		t.Errorf("expected enter to restart, got %d restarts", ctrl.restarts)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if !ctrl.paused {
		t.Error("expected p to pause")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if ctrl.paused {
		t.Error("expected second p to resume")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil || !m.(Model).quitting {
		t.Error("expected q to quit")
	}
}

func TestModelStoresSnapshot(t *testing.T) {
	var m tea.Model = NewModel(&fakeController{}, NewFeed(), NewScoreboard())
	m, cmd := m.Update(snapshotMsg(*testSnapshot(game.StatusRunning)))

	if m.(Model).snapshot == nil {
		t.Fatal("expected snapshot to be stored")
	}
	if cmd == nil {
		t.Error("expected the model to keep listening for snapshots")
	}
	if !strings.Contains(m.View(), "SNAKE") {
		t.Error("expected the HUD in the view")
	}
}

func TestRenderBoardSize(t *testing.T) {
	out := RenderBoard(testSnapshot(game.StatusRunning))

	// 10x8 cells, two columns per cell, plus the border.
	if w := lipgloss.Width(out); w != 22 {
		t.Errorf("expected width 22, got %d", w)
	}
	if h := lipgloss.Height(out); h != 10 {
		t.Errorf("expected height 10, got %d", h)
	}
	if !strings.Contains(out, "()") {
		t.Error("expected food to be drawn")
	}
}

func TestRenderBoardWithoutState(t *testing.T) {
	if out := RenderBoard(nil); !strings.Contains(out, "Waiting") {
		t.Errorf("unexpected placeholder: %q", out)
	}
}

func TestRenderHUDStatus(t *testing.T) {
	if out := RenderHUD(ScoreView{Status: game.StatusOver, Score: 3}, false); !strings.Contains(out, "GAME OVER") {
		t.Errorf("expected game over banner:\n%s", out)
	}
	if out := RenderHUD(ScoreView{Status: game.StatusIdle}, false); !strings.Contains(out, "to start") {
		t.Errorf("expected start prompt:\n%s", out)
	}
	if out := RenderHUD(ScoreView{Status: game.StatusRunning}, true); !strings.Contains(out, "PAUSED") {
		t.Errorf("expected pause banner:\n%s", out)
	}
}

func TestScoreboard(t *testing.T) {
	sb := NewScoreboard()
	sb.UpdateScore(0, game.StatusRunning)
	sb.UpdateScore(4, game.StatusRunning)
	sb.UpdateScore(4, game.StatusOver)
	sb.UpdateScore(0, game.StatusIdle)
	sb.UpdateScore(2, game.StatusOver)

	v := sb.View()
	if v.Best != 4 {
		t.Errorf("expected best 4, got %d", v.Best)
	}
	if v.Score != 2 || v.Status != game.StatusOver {
		t.Errorf("expected latest score 2 and over, got %+v", v)
	}
	if v.Games != 2 {
		t.Errorf("expected 2 finished games, got %d", v.Games)
	}
}

func TestFeedKeepsLatest(t *testing.T) {
	feed := NewFeed()
	for i := uint64(1); i <= 3; i++ {
		feed.Render(game.Snapshot{Tick: i})
	}

	select {
	case s := <-feed.Snapshots():
		if s.Tick != 3 {
			t.Errorf("expected the latest snapshot, got tick %d", s.Tick)
		}
	default:
		t.Fatal("expected a snapshot")
	}

	select {
	case s := <-feed.Snapshots():
		t.Errorf("expected older snapshots to be dropped, got tick %d", s.Tick)
	default:
	}
}
