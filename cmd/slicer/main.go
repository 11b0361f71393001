// slicer is a fruit slicing arcade game for the terminal. Drag the mouse to
// slice fruit thrown across the screen and avoid the bombs.
//
// Usage:
//
//	slicer list              - List difficulty modes
//	slicer play <mode>       - Play a mode directly
//	slicer menu              - Start with the mode picker
//	slicer serve             - Start SSH server for remote play
//	slicer scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>       - Set frame rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.slicer/scores.db)
//	--config <path>    - Use a custom slicer.yaml
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-slicer/internal/games/slicer"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

// logger is configured by the root command before any subcommand runs.
var (
	logger    = log.New(io.Discard)
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slicer",
	Short: "Fruit Slicer - slice fruit in your terminal",
	Long: `Fruit Slicer throws fruit and bombs into the air. Drag the mouse across
them to slice the fruit; chain slices for combo points and keep away from
the bombs.

Available commands:
  list     - Show the difficulty modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  slicer menu
  slicer play hard
  slicer play normal --seed 42
  slicer serve --ssh :2222
  slicer scores easy`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slicer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom slicer.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup applies the global flags: logging and the game config path.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	if cmd == serveCmd {
		w = os.Stderr
	}
	if flagLogFile != "" {
		if dir := filepath.Dir(flagLogFile); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("cannot create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		w, logCloser = f, f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "slicer",
		Level:           level,
	})

	slicer.SetLogger(logger)
	if flagConfig != "" {
		if _, err := os.Stat(flagConfig); err != nil {
			return fmt.Errorf("cannot read --config: %w", err)
		}
	}
	slicer.SetConfigPath(flagConfig)
	return nil
}
