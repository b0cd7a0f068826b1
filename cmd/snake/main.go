package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/amalg/go-snake/internal/game"
	"github.com/amalg/go-snake/internal/ui"
)

func main() {
	defaults := game.DefaultConfig()

	width := flag.Int("width", defaults.Width, "Board width in units (multiple of -cell)")
	height := flag.Int("height", defaults.Height, "Board height in units (multiple of -cell)")
	cell := flag.Int("cell", defaults.CellSize, "Cell size in units")
	maxFood := flag.Int("max-food", defaults.MaxFood, "Maximum food on the board")
	length := flag.Int("length", defaults.InitialLength, "Initial snake length")
	tickRate := flag.Int("tick-rate", defaults.TickRate, "Ticks per second")
	startDelay := flag.Duration("start-delay", defaults.StartDelay, "Pause between reset and the first tick")
	spawnChance := flag.Float64("spawn-chance", defaults.SpawnChance, "Food spawn chance per tick, divided by food on board")
	seed := flag.Int64("seed", 0, "RNG seed (0 = random)")
	logFile := flag.String("log", "", "Log file path (default: discard logs)")
	flag.Parse()

	// Redirect log output before anything logs; stderr output corrupts
	// Bubbletea's alternate screen.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "snake needs an interactive terminal on stdin")
		os.Exit(1)
	}

	config := game.GameConfig{
		Width:         *width,
		Height:        *height,
		CellSize:      *cell,
		MaxFood:       *maxFood,
		InitialLength: *length,
		TickRate:      *tickRate,
		StartDelay:    *startDelay,
		SpawnChance:   *spawnChance,
		Seed:          *seed,
	}

	engine, err := game.NewEngine(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	feed := ui.NewFeed()
	scores := ui.NewScoreboard()
	engine.SetRenderer(feed)
	engine.SetScoreboard(scores)

	// Show the idle board right away; the game starts on Enter.
	feed.Render(engine.Simulation().Snapshot())

	go engine.Run()
	log.Printf("[MAIN] Engine running: %dx%d board, cell %d, %d ticks/s",
		config.Width, config.Height, config.CellSize, config.TickRate)

	// Handle OS signals for clean shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		engine.Stop()
		os.Exit(0)
	}()

	model := ui.NewModel(engine, feed, scores)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		engine.Stop()
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	engine.Stop()
}
