// dasher is a side-scrolling runner: jump the nebulae and reach the finish
// line, in the terminal, in a desktop window or over SSH.
//
// Usage:
//
//	dasher play [variant]    - Run in the terminal
//	dasher menu              - Pick a variant and difficulty interactively
//	dasher window [variant]  - Run in a desktop window
//	dasher serve             - Start SSH server for remote play
//	dasher scores [variant]  - Show the best runs
//	dasher list              - List variants
//	dasher config            - Print the default config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Custom YAML or TOML config
//	--difficulty <preset> - easy, normal or hard
//	--db <path>           - Set database path (default: ~/.dasher/runs.db)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/games/dasher"
	"github.com/vovakirdan/dasher/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagLogFile    string
	flagDebug      bool
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dasher",
	Short: "Dasher - jump the nebulae, reach the finish line",
	Long: `Dasher is a side-scrolling runner. Obstacles stream in from the right,
each a little faster than the last; jump over them until the finish line
passes you.

Available commands:
  play     - Run in the terminal
  menu     - Interactive variant and difficulty picker
  window   - Run in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the best runs
  list     - Show all variants
  config   - Print the default config

Examples:
  dasher play
  dasher play dasher-classic --difficulty hard
  dasher window --assets ./resources
  dasher serve --ssh :2222
  dasher scores`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Fail before any screen is taken over
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		if flagConfig != "" {
			if _, err := config.LoadDasher(flagConfig); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dasher/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Full-screen front-ends pass
// io.Discard as the fallback so log lines never tear the display; --log-file
// overrides it.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dasher",
		Level:           level,
	})
	return logger, closeFn, nil
}

// openStore opens the runs database. The game still works without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}

// applyGameFlags hands --config and --difficulty to the runner before it is
// created.
func applyGameFlags() config.DifficultyPreset {
	preset, _ := config.ParsePreset(flagDifficulty) // checked in PersistentPreRunE
	dasher.SetConfigPath(flagConfig)
	dasher.SetDifficultyPreset(preset)
	return preset
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}
