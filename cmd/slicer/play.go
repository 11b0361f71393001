package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruit-slicer/internal/core"
	"github.com/vovakirdan/fruit-slicer/internal/platform/tui"
	"github.com/vovakirdan/fruit-slicer/internal/prefs"
	"github.com/vovakirdan/fruit-slicer/internal/registry"
	"github.com/vovakirdan/fruit-slicer/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start a round in the given difficulty mode. When the round ends you
can enter your initials for the leaderboard and return to the menu.

Controls:
  Mouse drag  - Slice
  P/Esc       - Pause
  Enter       - Continue (after game over)
  R           - Restart (after game over)
  B           - Back to menu (paused or game over)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Examples:
  slicer play easy
  slicer play hard --seed 7
  slicer play normal --config ./my-slicer.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'slicer list' to see the modes", gameID)
	}
	return runApp(gameID)
}

// runApp opens the shared resources and runs the TUI, starting on gameID
// when it is set and on the menu otherwise.
func runApp(gameID string) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	p, err := prefs.Open()
	if err != nil {
		logger.Warn("preferences unavailable", "error", err)
	}

	err = tui.Run(tui.Options{
		Store:  store,
		Prefs:  p,
		Logger: logger,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		GameID: gameID,
		Player: os.Getenv("USER"),
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
