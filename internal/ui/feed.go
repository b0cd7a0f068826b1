package ui

import "github.com/amalg/go-snake/internal/game"

// Feed is a game.Renderer that hands snapshots to the TUI.
// Only the newest snapshot is kept; a slow terminal skips frames, not state.
type Feed struct {
	ch chan game.Snapshot
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{ch: make(chan game.Snapshot, 1)}
}

// Render queues s for display, replacing any snapshot not yet drawn.
func (f *Feed) Render(s game.Snapshot) {
	for {
		select {
		case f.ch <- s:
			return
		default:
		}
		// Drop the stale frame; the latest state matters most
		select {
		case <-f.ch:
		default:
		}
	}
}

// Snapshots yields rendered snapshots in order, skipping replaced ones.
func (f *Feed) Snapshots() <-chan game.Snapshot {
	return f.ch
}
