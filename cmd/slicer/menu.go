package main

import (
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the mode picker",
	Long: `Start the game on its menu. Pick a difficulty, play a round, enter
your initials, and you are back at the menu for another go.

Controls:
  Up/Down/j/k  - Choose mode
  Enter/Space  - Play
  Tab          - High scores
  Q            - Quit

Examples:
  slicer menu
  slicer menu --fps 30
  slicer menu --db ./scores.db`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runApp("")
	},
}
